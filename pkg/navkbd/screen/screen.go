package screen

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/navkbd/pkg/navkbd"
	"github.com/pawndev/navkbd/pkg/navkbd/hardware"
	"github.com/pawndev/navkbd/pkg/navkbd/i18n"
	"github.com/pawndev/navkbd/pkg/navkbd/internal"
	"github.com/pawndev/navkbd/pkg/navkbd/textedit"
	"github.com/pawndev/navkbd/pkg/navkbd/widget"
)

const (
	frameDelay = 16

	// expandedResultRows is how many results fit above an expanded keyboard.
	expandedResultRows = 3
)

// PromptOptions configures one keyboard prompt.
type PromptOptions struct {
	Title       string
	InitialText string
	// Mode is the starting keyboard mode code. Negative picks the locale
	// default.
	Mode int
	// Search opens the search variant and shows a result list.
	Search bool
	// Coordinates opens the coordinate layout.
	Coordinates bool
	// Results, if set, is queried after every keystroke to fill the list.
	Results func(query string) []string
	// Hardware delivers physical key presses. It may be nil.
	Hardware <-chan hardware.Event
}

// Screen is a prompt with an edit field, an optional result list and the
// on-screen keyboard below them.
type Screen struct {
	window  *Window
	fonts   *Fonts
	painter *painter
	config  navkbd.Config

	root  *widget.Widget
	title *widget.Widget
	field *widget.Widget
	list  *widget.Widget
	hint  *widget.Widget

	buffer   *textedit.Buffer
	keyboard *navkbd.Keyboard
	results  func(string) []string
	dirty    bool
}

var _ navkbd.Menu = (*Screen)(nil)

func (s *Screen) ScreenSize() (int32, int32) {
	return s.window.GetWidth(), s.window.GetHeight()
}

func (s *Screen) Background() *widget.Color {
	c := s.painter.theme.KeyColor
	return &c
}

func (s *Screen) ClearHighlight() {
	if s.root == nil {
		return
	}
	s.root.Walk(func(w *widget.Widget) bool {
		w.State &^= widget.StateHighlighted
		return true
	})
}

// Render repacks and draws w in place.
func (s *Screen) Render(w *widget.Widget) {
	widget.Pack(w, s.painter)
	widget.Render(s.painter, s.painter.style(), w)
	s.window.Renderer.Present()
}

// Redraw repacks and draws the whole prompt.
func (s *Screen) Redraw() {
	if s.root == nil {
		return
	}
	renderer := s.window.Renderer
	bg := s.painter.theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()
	s.window.RenderBackground()

	width, height := s.ScreenSize()
	s.root.X, s.root.Y = 0, 0
	s.root.SetSize(width, height)
	_, lineHeight := s.painter.TextSize("Ag", s.field.Font)
	s.field.SetSize(width, lineHeight+s.field.BorderTop+s.field.BorderBottom)
	widget.Pack(s.root, s.painter)
	layoutField(s.field, s.buffer, s.painter)
	widget.Render(s.painter, s.painter.style(), s.root)
	renderer.Present()
	s.dirty = false
}

func (s *Screen) SearchList() *widget.Widget {
	return s.list
}

// Type receives keyboard output for the edit field.
func (s *Screen) Type(text string) {
	s.buffer.Type(text)
	s.field.Text = s.buffer.String()
	s.refreshResults()
	s.dirty = true
}

func (s *Screen) moveCursor(direction int) {
	s.buffer.MoveCursor(direction)
	s.dirty = true
}

// tickCursor advances the cursor blink and marks the screen dirty when it
// flips.
func (s *Screen) tickCursor(now time.Time) {
	visible := s.buffer.CursorVisible(now)
	if visible != s.field.Field.CursorVisible {
		s.field.Field.CursorVisible = visible
		s.dirty = true
	}
}

// layoutField places the cursor of the edit field and scrolls text wider
// than the field so the cursor stays in view.
func layoutField(field *widget.Widget, buffer *textedit.Buffer, m widget.Measurer) {
	field.Text = buffer.String()
	cursorX, _ := m.TextSize(buffer.BeforeCursor(), field.Font)
	textW, _ := m.TextSize(field.Text, field.Font)
	visibleW := field.W - field.BorderLeft - field.BorderRight

	field.Field.CursorX = cursorX
	field.Field.ScrollX = textedit.ScrollOffset(cursorX, visibleW, textW, field.BorderRight)
}

func (s *Screen) refreshResults() {
	if s.list == nil || s.results == nil {
		return
	}
	s.list.DestroyChildren()
	for _, result := range s.results(s.buffer.String()) {
		s.list.Append(widget.NewLabelFont(result, navkbd.FontSmall))
	}
}

func (s *Screen) build(opts PromptOptions) {
	theme := s.painter.theme

	s.root = widget.NewBox(widget.OrientationVertical | widget.FlagsFill)

	title := opts.Title
	if title == "" {
		switch {
		case opts.Coordinates:
			title = i18n.Localize(&i18n.Message{ID: "coordinates_title", Other: "Enter coordinates"}, nil)
		case opts.Search:
			title = i18n.Localize(&i18n.Message{ID: "search_title", Other: "Search"}, nil)
		default:
			title = i18n.Localize(&i18n.Message{ID: "prompt_title", Other: "Enter text"}, nil)
		}
	}
	s.title = widget.NewLabelFont(title, navkbd.FontSmall)
	s.root.Append(s.title)

	s.buffer = textedit.NewBuffer(opts.InitialText)
	s.field = widget.NewField(s.buffer.String(), navkbd.FontNormal)
	s.field.Background = &theme.EditColor
	s.root.Append(s.field)

	s.list = nil
	s.results = opts.Results
	if opts.Search {
		s.list = widget.NewTable()
		s.list.Table.MaxRows = expandedResultRows
		s.root.Append(s.list)
		s.refreshResults()
	}

	s.hint = widget.NewLabelFont(
		i18n.Localize(&i18n.Message{ID: "hint_confirm", Other: "Return: confirm"}, nil)+"   "+
			i18n.Localize(&i18n.Message{ID: "hint_cancel", Other: "Escape: cancel"}, nil),
		navkbd.FontTiny)
	s.root.Append(s.hint)
}

func (s *Screen) initialMode(table *navkbd.ModeTable, opts PromptOptions) navkbd.Mode {
	if opts.Mode >= 0 {
		if m, ok := table.Decode(opts.Mode); ok {
			return m
		}
		internal.GetInternalLogger().Warn("Invalid keyboard mode, using locale default", "mode", opts.Mode)
	}
	if opts.Coordinates {
		return navkbd.Mode{Family: navkbd.FamilyCoordinates}
	}

	m := table.InitialMode(s.config.Locale)
	if opts.Search {
		m.Variant = navkbd.VariantSearch
	}
	return m
}

// Prompt runs the event loop until the user confirms or cancels. A
// disabled keyboard still shows the edit field for physical keys.
func (s *Screen) Prompt(opts PromptOptions) (*navkbd.PromptResult, error) {
	s.build(opts)

	kbOpts := s.config.Options()
	kbOpts.Menu = s
	kbOpts.Target = s
	kbOpts.Payloads = s.painter

	s.keyboard = navkbd.Open(kbOpts, s.initialMode(kbOpts.Table, opts))
	if s.keyboard != nil {
		s.root.Append(s.keyboard.Widget())
		defer s.keyboard.Close()
	}

	sdl.StartTextInput()
	defer sdl.StopTextInput()

	s.Redraw()

	for {
		done, confirmed := s.handleEvents()
		if !done {
			done, confirmed = s.drainHardware(opts.Hardware)
		}
		if done {
			if !confirmed {
				return nil, navkbd.ErrCancelled
			}
			result := &navkbd.PromptResult{Text: s.buffer.String(), Mode: -1}
			if s.keyboard != nil {
				result.Mode = s.keyboard.Code()
			}
			return result, nil
		}

		s.tickCursor(time.Now())
		if s.dirty {
			s.Redraw()
		}
		sdl.Delay(frameDelay)
	}
}

// handleEvents polls SDL and reports whether the prompt is over and, if
// so, whether it was confirmed.
func (s *Screen) handleEvents() (bool, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true, false

		case *sdl.MouseMotionEvent:
			s.highlightAt(e.X, e.Y)

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
				s.pressAt(e.X, e.Y)
			}

		case *sdl.TouchFingerEvent:
			if e.Type == sdl.FINGERDOWN {
				w, h := s.ScreenSize()
				s.pressAt(int32(e.X*float32(w)), int32(e.Y*float32(h)))
			}

		case *sdl.TextInputEvent:
			s.typeText(e.GetText())

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_RETURN, sdl.K_KP_ENTER:
				return true, true
			case sdl.K_ESCAPE:
				return true, false
			case sdl.K_BACKSPACE:
				s.typeText(navkbd.Backspace)
			case sdl.K_TAB:
				s.toggle()
			case sdl.K_LEFT:
				s.moveCursor(-1)
			case sdl.K_RIGHT:
				s.moveCursor(1)
			}
		}
	}
	return false, false
}

func (s *Screen) drainHardware(events <-chan hardware.Event) (bool, bool) {
	if events == nil {
		return false, false
	}
	for {
		select {
		case event := <-events:
			internal.GetInternalLogger().Debug("Hardware key", "kind", event.Kind.String(), "text", event.Text)
			switch event.Kind {
			case hardware.EventText:
				s.typeText(event.Text)
			case hardware.EventBackspace:
				s.typeText(navkbd.Backspace)
			case hardware.EventToggle:
				s.toggle()
			case hardware.EventConfirm:
				return true, true
			case hardware.EventCancel:
				return true, false
			}
		default:
			return false, false
		}
	}
}

// typeText routes physical input through the keyboard so mode rules such
// as auto-lowercase apply.
func (s *Screen) typeText(text string) {
	if s.keyboard != nil {
		s.keyboard.Type(text)
		return
	}
	s.Type(text)
}

func (s *Screen) toggle() {
	if s.keyboard != nil {
		s.keyboard.Toggle()
	}
}

func (s *Screen) highlightAt(x, y int32) {
	hit := s.root.HitTest(x, y)
	current := s.root.Find(widget.StateHighlighted)
	if hit == current {
		return
	}
	s.ClearHighlight()
	if hit != nil {
		hit.State |= widget.StateHighlighted
	}
	s.dirty = true
}

func (s *Screen) pressAt(x, y int32) {
	hit := s.root.HitTest(x, y)
	if hit == nil {
		return
	}
	hit.Press()
	s.dirty = true
}
