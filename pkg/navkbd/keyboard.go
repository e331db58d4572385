package navkbd

import (
	"github.com/pawndev/navkbd/pkg/navkbd/internal"
	"github.com/pawndev/navkbd/pkg/navkbd/widget"
)

// Options wires a keyboard to its screen.
type Options struct {
	// Enabled is the toolkit keyboard switch. Open returns nil without it.
	Enabled bool
	// Table defaults to NewModeTable(0).
	Table  *ModeTable
	Menu   Menu
	Target TextTarget
	// Composer, if set, receives keystrokes while the Hangul layout is up.
	Composer Composer
	Payloads PayloadTracker
	// Locale is a country or language code, e.g. "KR" or "ko_KR.UTF-8".
	Locale string
}

type renderPath int

const (
	renderNone renderPath = iota
	renderSubtree
	renderMenu
)

// Keyboard is the container widget of an on-screen keyboard together with
// its session state: the active mode and the live key grid.
type Keyboard struct {
	table    *ModeTable
	menu     Menu
	target   TextTarget
	composer Composer
	payloads PayloadTracker
	locale   string

	container *widget.Widget
	grid      *widget.Widget
	mode      Mode
}

// Open builds a keyboard in mode. The caller appends Widget() to its
// screen and renders it.
func Open(opts Options, mode Mode) *Keyboard {
	if !opts.Enabled {
		internal.GetInternalLogger().Debug("Keyboard disabled, not opening")
		return nil
	}

	kb := &Keyboard{
		table:    opts.Table,
		menu:     opts.Menu,
		target:   opts.Target,
		composer: opts.Composer,
		payloads: opts.Payloads,
		locale:   opts.Locale,
	}
	if kb.table == nil {
		kb.table = NewModeTable(0)
	}
	if kb.payloads == nil {
		kb.payloads = noopPayloads{}
	}

	kb.build(mode)
	return kb
}

// OpenCode is Open for an integer mode code.
func OpenCode(opts Options, code int) *Keyboard {
	if opts.Table == nil {
		opts.Table = NewModeTable(0)
	}
	return Open(opts, opts.Table.MustDecode(code))
}

func (kb *Keyboard) Mode() Mode {
	return kb.mode
}

func (kb *Keyboard) Code() int {
	return kb.table.Code(kb.mode)
}

func (kb *Keyboard) Table() *ModeTable {
	return kb.table
}

// Widget is the keyboard container.
func (kb *Keyboard) Widget() *widget.Widget {
	return kb.container
}

// Grid is the current key grid. It is replaced on every mode change.
func (kb *Keyboard) Grid() *widget.Widget {
	return kb.grid
}

// ChangeMode rebuilds the keyboard in mode, replacing every key.
func (kb *Keyboard) ChangeMode(mode Mode) {
	internal.GetInternalLogger().Debug("Keyboard mode change",
		"from", kb.mode.String(),
		"to", mode.String(),
		"code", kb.table.Code(mode),
	)
	kb.build(mode)
}

// Toggle collapses an expanded keyboard and expands a collapsed one.
func (kb *Keyboard) Toggle() {
	if kb.mode.Collapsed {
		kb.ChangeMode(kb.mode.Expand())
	} else {
		kb.ChangeMode(kb.mode.Collapse())
	}
}

// Press is the callback of every key.
func (kb *Keyboard) Press(w *widget.Widget) {
	action, _ := w.Data.(KeyAction)
	switch a := action.(type) {
	case InsertText:
		kb.Type(a.Text)
	case ChangeMode:
		kb.ChangeMode(a.Mode)
	case Noop, nil:
	}
}

// Type delivers text to the target and drops search variants of upper
// case layouts to lower case after the first keystroke.
func (kb *Keyboard) Type(text string) {
	if kb.composer != nil && kb.mode.Family == FamilyHangul && !kb.mode.Collapsed {
		kb.composer.Feed(kb.target, text)
	} else {
		kb.target.Type(text)
	}

	if next, ok := kb.table.LowerTarget(kb.mode); ok {
		kb.ChangeMode(next)
	}
}

// Close commits pending composition and tears the keys down.
func (kb *Keyboard) Close() {
	kb.flushComposer()
	kb.destroyKeys()
}

func (kb *Keyboard) destroyKeys() {
	if kb.grid != nil {
		internal.GetInternalLogger().Debug("Tearing down keyboard keys", "keys", len(kb.grid.Children))
	}
	kb.container.DestroyChildren()
	kb.grid = nil
}

func (kb *Keyboard) flushComposer() {
	if kb.composer == nil {
		return
	}
	kb.composer.Flush(kb.target)
}

func (kb *Keyboard) build(mode Mode) {
	render := renderNone
	flags := widget.GravityCenter | widget.OrientationHorizontalVertical | widget.FlagsFill

	if kb.container != nil {
		kb.menu.ClearHighlight()
		if kb.mode.Collapsed {
			render = renderMenu
		} else {
			render = renderSubtree
		}
		kb.destroyKeys()
	} else {
		kb.container = widget.NewBox(flags)
	}

	kb.mode = mode
	kb.flushComposer()

	width, height := kb.menu.ScreenSize()
	keyW, keyH := width/gridCols, height/gridCols

	layout := kb.table.Layout(mode, kb.locale)

	grid := widget.NewBox(flags)
	grid.Background = kb.menu.Background()
	grid.Cols = layout.Cols
	grid.SpacingX = 0
	grid.SpacingY = 0
	grid.OffsetY = keyH * 2
	if layout.Wide {
		keyH = keyH * 4 / 5
		keyW = keyW * 8 / 9
	}
	kb.grid = grid

	if layout.Collapsed {
		kb.makeExpandKey(grid, layout.Keys[0], keyW, keyH)
		if render != renderNone {
			render = renderMenu
		}
	} else {
		for _, key := range layout.Keys {
			kb.emitKey(grid, key, keyW, keyH)
		}
	}

	if list := kb.menu.SearchList(); list != nil && list.Table != nil {
		list.Table.ScrollButtonsHidden = !mode.Collapsed
	}

	kb.container.Append(grid)

	switch render {
	case renderSubtree:
		kb.menu.Render(kb.container)
	case renderMenu:
		kb.menu.Redraw()
	}
}
