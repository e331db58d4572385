package widget

// Color is an RGBA color. The SDL screen converts it to sdl.Color.
type Color struct {
	R, G, B, A uint8
}

func HexToColor(hex uint32) Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return Color{R: r, G: g, B: b, A: 255}
}

// Flags describe how a box places its children.
type Flags uint32

const (
	GravityCenter Flags = 1 << iota
	OrientationHorizontal
	OrientationVertical
	FlagsFill

	OrientationHorizontalVertical = OrientationHorizontal | OrientationVertical
)

// State bits of a widget.
type State uint32

const (
	StateSensitive State = 1 << iota
	StateHighlighted
	StateEdit
	StateSelected
)

type Kind int

const (
	KindBox Kind = iota
	KindButton
	KindLabel
	KindTable
)

// TableData is attached to table widgets such as search result lists.
type TableData struct {
	ScrollButtonsHidden bool
	// MaxRows caps the visible rows while scroll buttons are shown. Zero
	// means no cap.
	MaxRows int
}

// FieldData is attached to edit fields. CursorX is measured from the
// start of the text; ScrollX shifts the text left to keep the cursor in
// view.
type FieldData struct {
	CursorX       int32
	ScrollX       int32
	CursorVisible bool
}

// Widget is a node of the widget tree.
//
// Size fields set before Pack are treated as fixed; zero means "measure".
// Data is an attachment for the owner of the callback, the tree never
// looks at it.
type Widget struct {
	Kind  Kind
	Text  string
	Font  int
	Flags Flags
	State State

	Background *Color

	BorderLeft   int32
	BorderRight  int32
	BorderTop    int32
	BorderBottom int32

	X, Y, W, H int32

	OffsetX, OffsetY int32

	Cols     int
	SpacingX int32
	SpacingY int32

	OnPress func(w *Widget)
	Data    any
	Table   *TableData
	Field   *FieldData

	Parent   *Widget
	Children []*Widget

	release   func()
	destroyed bool
	fixedW    bool
	fixedH    bool
}

const (
	defaultBorder = 4
	fieldPadding  = 10
)

func NewBox(flags Flags) *Widget {
	return &Widget{
		Kind:  KindBox,
		Flags: flags,
	}
}

// NewButton creates a pressable widget. Buttons carry default border
// insets; callers that tile buttons edge to edge zero them.
func NewButton(text string, font int, flags Flags, onPress func(w *Widget)) *Widget {
	w := &Widget{
		Kind:         KindButton,
		Text:         text,
		Font:         font,
		Flags:        flags,
		BorderLeft:   defaultBorder,
		BorderRight:  defaultBorder,
		BorderTop:    defaultBorder,
		BorderBottom: defaultBorder,
		OnPress:      onPress,
	}
	if onPress != nil {
		w.State |= StateSensitive
	}
	return w
}

func NewLabel(text string) *Widget {
	return NewLabelFont(text, 0)
}

func NewLabelFont(text string, font int) *Widget {
	return &Widget{
		Kind: KindLabel,
		Text: text,
		Font: font,
	}
}

func NewTable() *Widget {
	return &Widget{
		Kind:  KindTable,
		Flags: OrientationVertical | FlagsFill,
		Table: &TableData{},
	}
}

// NewField creates a single line edit field with a cursor at the start.
func NewField(text string, font int) *Widget {
	return &Widget{
		Kind:         KindLabel,
		Text:         text,
		Font:         font,
		State:        StateEdit,
		BorderLeft:   fieldPadding,
		BorderRight:  fieldPadding,
		BorderTop:    defaultBorder,
		BorderBottom: defaultBorder,
		Field:        &FieldData{CursorVisible: true},
	}
}

// SetSize fixes the widget size so Pack does not measure it.
func (w *Widget) SetSize(width, height int32) {
	w.W, w.H = width, height
	w.fixedW, w.fixedH = true, true
}

// SetRelease registers a hook run once when the widget is destroyed.
func (w *Widget) SetRelease(fn func()) {
	w.release = fn
}

func (w *Widget) Append(child *Widget) {
	child.Parent = w
	w.Children = append(w.Children, child)
}

// DestroyChildren tears down every descendant, running release hooks
// depth-first, and empties the child list.
func (w *Widget) DestroyChildren() {
	for _, child := range w.Children {
		child.destroy()
	}
	w.Children = nil
}

// Destroy tears the widget down and detaches it from its parent.
func (w *Widget) Destroy() {
	if p := w.Parent; p != nil {
		for i, c := range p.Children {
			if c == w {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
	}
	w.destroy()
}

func (w *Widget) destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	for _, child := range w.Children {
		child.destroy()
	}
	w.Children = nil
	w.Parent = nil
	if w.release != nil {
		fn := w.release
		w.release = nil
		fn()
	}
}

func (w *Widget) Destroyed() bool {
	return w.destroyed
}

// Walk visits w and its descendants in tree order until fn returns false.
func (w *Widget) Walk(fn func(*Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, child := range w.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first descendant (or w itself) carrying all bits of state.
func (w *Widget) Find(state State) *Widget {
	var found *Widget
	w.Walk(func(c *Widget) bool {
		if c.State&state == state {
			found = c
			return false
		}
		return true
	})
	return found
}

// Visible returns the children that are laid out and drawn. A table
// showing scroll buttons shows at most MaxRows of them.
func (w *Widget) Visible() []*Widget {
	if t := w.Table; t != nil && !t.ScrollButtonsHidden && t.MaxRows > 0 && len(w.Children) > t.MaxRows {
		return w.Children[:t.MaxRows]
	}
	return w.Children
}

// HitTest returns the deepest sensitive widget containing the point.
func (w *Widget) HitTest(x, y int32) *Widget {
	if x < w.X || y < w.Y || x >= w.X+w.W || y >= w.Y+w.H {
		return nil
	}
	visible := w.Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		if hit := visible[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	if w.State&StateSensitive != 0 {
		return w
	}
	return nil
}

// Press invokes the widget callback, if any.
func (w *Widget) Press() {
	if w.OnPress != nil && !w.destroyed {
		w.OnPress(w)
	}
}
