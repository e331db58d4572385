package widget

const cursorWidth = 2

// Painter draws primitives for Render. The SDL screen provides the real
// implementation.
type Painter interface {
	FillRect(x, y, w, h int32, color Color)
	DrawText(text string, font int, x, y, w, h int32, highlighted bool)
	// DrawTextClipped draws text left aligned, skipping its first scrollX
	// pixels and clipping it to w.
	DrawTextClipped(text string, font int, x, y, w, h, scrollX int32)
}

// Style holds the colors Render needs beyond per-widget backgrounds.
type Style struct {
	Highlight Color
	Cursor    Color
}

// Render paints w and its subtree in tree order.
func Render(p Painter, style Style, w *Widget) {
	if w.destroyed {
		return
	}

	highlighted := w.State&StateHighlighted != 0
	if highlighted {
		p.FillRect(w.X, w.Y, w.W, w.H, style.Highlight)
	} else if w.Background != nil {
		p.FillRect(w.X, w.Y, w.W, w.H, *w.Background)
	}

	if w.Field != nil {
		renderField(p, style, w)
	} else if w.Text != "" && (w.Kind == KindButton || w.Kind == KindLabel) {
		p.DrawText(w.Text, w.Font,
			w.X+w.BorderLeft, w.Y+w.BorderTop,
			w.W-w.BorderLeft-w.BorderRight, w.H-w.BorderTop-w.BorderBottom,
			highlighted)
	}

	for _, child := range w.Visible() {
		Render(p, style, child)
	}
}

func renderField(p Painter, style Style, w *Widget) {
	x := w.X + w.BorderLeft
	y := w.Y + w.BorderTop
	visibleW := w.W - w.BorderLeft - w.BorderRight
	h := w.H - w.BorderTop - w.BorderBottom

	if w.Text != "" {
		p.DrawTextClipped(w.Text, w.Font, x, y, visibleW, h, w.Field.ScrollX)
	}

	if !w.Field.CursorVisible {
		return
	}
	cursorX := x + w.Field.CursorX - w.Field.ScrollX
	if cursorX < x || cursorX > x+visibleW {
		return
	}
	p.FillRect(cursorX, y, cursorWidth, h, style.Cursor)
}
