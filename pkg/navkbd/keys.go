package navkbd

import "github.com/pawndev/navkbd/pkg/navkbd/widget"

// Text delivered by the space and backspace keys.
const (
	Space     = " "
	Backspace = "\b"
)

const (
	spaceLabel     = "_"
	backspaceLabel = "←"
	hideLabel      = "▼"
	unhideLabel    = "▲"
)

// KeyAction is what a key does when pressed: InsertText, ChangeMode or Noop.
type KeyAction interface {
	keyAction()
}

type InsertText struct {
	Text string
}

type ChangeMode struct {
	Mode Mode
}

type Noop struct{}

func (InsertText) keyAction() {}
func (ChangeMode) keyAction() {}
func (Noop) keyAction()       {}

// Key is one slot of a layout.
type Key struct {
	Label  string
	Font   int
	Action KeyAction
}

func charKey(text string) Key {
	return Key{Label: text, Action: InsertText{Text: text}}
}

func charKeys(texts []string) []Key {
	keys := make([]Key, len(texts))
	for i, text := range texts {
		keys[i] = charKey(text)
	}
	return keys
}

func spaceKey() Key {
	return Key{Label: spaceLabel, Action: InsertText{Text: Space}}
}

func backspaceKey() Key {
	return Key{Label: backspaceLabel, Action: InsertText{Text: Backspace}}
}

func spacer() Key {
	return Key{Action: Noop{}}
}

func collapseKey(m Mode) Key {
	return Key{Label: hideLabel, Action: ChangeMode{Mode: m.Collapse()}}
}

func (t *ModeTable) jumpKey(to Mode) Key {
	e := t.Entry(to.Family)
	return Key{Label: e.Label, Font: e.Font, Action: ChangeMode{Mode: to}}
}

func (kb *Keyboard) emitKey(grid *widget.Widget, key Key, w, h int32) *widget.Widget {
	if insert, ok := key.Action.(InsertText); ok {
		return kb.makeKey(grid, key.Label, insert.Text, w, h)
	}
	return kb.makeControlKey(grid, key.Label, key.Font, key.Action, w, h)
}

// makeKey appends a character key. Its payload is released when the key
// is torn down.
func (kb *Keyboard) makeKey(grid *widget.Widget, label, text string, w, h int32) *widget.Widget {
	kb.payloads.Acquire(text)
	key := kb.makeControlKey(grid, label, FontNormal, InsertText{Text: text}, w, h)
	key.SetRelease(func() {
		kb.payloads.Release(text)
	})
	return key
}

// makeControlKey appends a key with an arbitrary action. Noop keys get no
// callback and act as spacers.
func (kb *Keyboard) makeControlKey(grid *widget.Widget, label string, font int, action KeyAction, w, h int32) *widget.Widget {
	var onPress func(*widget.Widget)
	if _, ok := action.(Noop); !ok {
		onPress = kb.Press
	}

	key := widget.NewButton(label, font, widget.GravityCenter|widget.OrientationVertical, onPress)
	key.Data = action
	key.Background = kb.menu.Background()
	key.BorderLeft = 0
	key.BorderRight = 0
	key.BorderTop = 0
	key.BorderBottom = 0
	key.SetSize(w, h)

	grid.Append(key)
	return key
}

// makeExpandKey appends the single key shown while collapsed: the expand
// glyph next to the family label.
func (kb *Keyboard) makeExpandKey(grid *widget.Widget, key Key, w, h int32) *widget.Widget {
	box := widget.NewBox(widget.GravityCenter | widget.OrientationHorizontal | widget.FlagsFill)
	box.OnPress = kb.Press
	box.Data = key.Action
	box.Background = kb.menu.Background()
	box.SetSize(w, h)
	box.State |= widget.StateSensitive

	glyph := widget.NewLabel(unhideLabel)
	box.Append(glyph)
	label := widget.NewLabelFont(key.Label, key.Font)
	box.Append(label)

	grid.Append(box)
	return box
}
