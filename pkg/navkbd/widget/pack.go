package widget

// Measurer reports the rendered size of a text in a given font.
type Measurer interface {
	TextSize(text string, font int) (w, h int32)
}

// Pack computes the geometry of w and its subtree. The position of w
// itself is kept; children are placed relative to it.
func Pack(w *Widget, m Measurer) {
	measure(w, m)
	place(w, w.X-w.OffsetX, w.Y-w.OffsetY)
}

func measure(w *Widget, m Measurer) {
	for _, child := range w.Children {
		measure(child, m)
	}

	var cw, ch int32
	switch {
	case w.Kind == KindLabel || w.Kind == KindButton:
		if len(w.Children) == 0 {
			cw, ch = m.TextSize(w.Text, w.Font)
			break
		}
		cw, ch = stackSize(w, w.Flags&OrientationVertical == 0)
	case w.Cols > 0:
		cw, ch = gridSize(w)
	default:
		cw, ch = stackSize(w, w.Flags&OrientationVertical == 0 && w.Kind != KindTable)
	}

	if !w.fixedW {
		w.W = cw + w.BorderLeft + w.BorderRight
	}
	if !w.fixedH {
		w.H = ch + w.BorderTop + w.BorderBottom
	}
}

func cellSize(w *Widget) (int32, int32) {
	var cellW, cellH int32
	for _, child := range w.Children {
		cellW = max(cellW, child.W)
		cellH = max(cellH, child.H)
	}
	return cellW, cellH
}

func gridSize(w *Widget) (int32, int32) {
	n := len(w.Children)
	if n == 0 {
		return 0, 0
	}
	cols := min(n, w.Cols)
	rows := (n + w.Cols - 1) / w.Cols
	cellW, cellH := cellSize(w)
	width := int32(cols)*cellW + int32(cols-1)*w.SpacingX
	height := int32(rows)*cellH + int32(rows-1)*w.SpacingY
	return width, height
}

func stackSize(w *Widget, horizontal bool) (int32, int32) {
	var width, height int32
	for i, child := range w.Visible() {
		if horizontal {
			width += child.W
			if i > 0 {
				width += w.SpacingX
			}
			height = max(height, child.H)
		} else {
			height += child.H
			if i > 0 {
				height += w.SpacingY
			}
			width = max(width, child.W)
		}
	}
	return width, height
}

func place(w *Widget, x, y int32) {
	w.X = x + w.OffsetX
	w.Y = y + w.OffsetY

	innerX := w.X + w.BorderLeft
	innerY := w.Y + w.BorderTop
	innerW := w.W - w.BorderLeft - w.BorderRight
	innerH := w.H - w.BorderTop - w.BorderBottom

	if len(w.Children) == 0 {
		return
	}

	if w.Cols > 0 && w.Kind == KindBox {
		cellW, cellH := cellSize(w)
		gw, _ := gridSize(w)
		startX := innerX
		if w.Flags&GravityCenter != 0 && gw < innerW {
			startX += (innerW - gw) / 2
		}
		for i, child := range w.Children {
			col := int32(i % w.Cols)
			row := int32(i / w.Cols)
			cx := startX + col*(cellW+w.SpacingX)
			cy := innerY + row*(cellH+w.SpacingY)
			if w.Flags&GravityCenter != 0 {
				cx += (cellW - child.W) / 2
				cy += (cellH - child.H) / 2
			}
			place(child, cx, cy)
		}
		return
	}

	horizontal := w.Flags&OrientationVertical == 0 && w.Kind != KindTable
	sw, sh := stackSize(w, horizontal)
	cx, cy := innerX, innerY
	if w.Flags&GravityCenter != 0 {
		if horizontal && sw < innerW {
			cx += (innerW - sw) / 2
		}
		if !horizontal && sh < innerH {
			cy += (innerH - sh) / 2
		}
	}
	for _, child := range w.Visible() {
		if horizontal {
			childY := cy
			if w.Flags&GravityCenter != 0 {
				childY += (innerH - child.H) / 2
			}
			place(child, cx, childY)
			cx += child.W + w.SpacingX
		} else {
			childX := cx
			if w.Flags&GravityCenter != 0 {
				childX += (innerW - child.W) / 2
			}
			place(child, childX, cy)
			cy += child.H + w.SpacingY
		}
	}
}
