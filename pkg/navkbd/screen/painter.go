package screen

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/navkbd/pkg/navkbd"
	"github.com/pawndev/navkbd/pkg/navkbd/internal"
	"github.com/pawndev/navkbd/pkg/navkbd/widget"
)

const highlightRadius = 8

type glyphKey struct {
	text        string
	font        int
	highlighted bool
}

type glyph struct {
	texture *sdl.Texture
	w, h    int32
}

// painter draws widgets with SDL. It also tracks character key payloads:
// every live key keeps its rendered glyphs cached until it is destroyed.
type painter struct {
	renderer *sdl.Renderer
	fonts    *Fonts
	theme    Theme

	refs   map[string]int
	glyphs map[glyphKey]glyph
}

var (
	_ widget.Painter        = (*painter)(nil)
	_ widget.Measurer       = (*painter)(nil)
	_ navkbd.PayloadTracker = (*painter)(nil)
)

func newPainter(renderer *sdl.Renderer, fonts *Fonts, theme Theme) *painter {
	return &painter{
		renderer: renderer,
		fonts:    fonts,
		theme:    theme,
		refs:     map[string]int{},
		glyphs:   map[glyphKey]glyph{},
	}
}

func (p *painter) style() widget.Style {
	return widget.Style{Highlight: p.theme.HighlightColor, Cursor: p.theme.TextColor}
}

func (p *painter) TextSize(text string, font int) (int32, int32) {
	w, h, err := p.fonts.Get(font).SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

func (p *painter) FillRect(x, y, w, h int32, color widget.Color) {
	rect := &sdl.Rect{X: x, Y: y, W: w, H: h}
	if color == p.theme.HighlightColor {
		drawRoundedRect(p.renderer, rect, highlightRadius, sdlColor(color))
		return
	}
	p.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	p.renderer.FillRect(rect)
}

func (p *painter) DrawText(text string, font int, x, y, w, h int32, highlighted bool) {
	key := glyphKey{text: text, font: font, highlighted: highlighted}

	g, cached := p.glyphs[key]
	if !cached {
		var ok bool
		if g, ok = p.renderGlyph(key); !ok {
			return
		}
		if p.refs[text] > 0 {
			p.glyphs[key] = g
		} else {
			defer g.texture.Destroy()
		}
	}

	dst := &sdl.Rect{
		X: x + (w-g.w)/2,
		Y: y + (h-g.h)/2,
		W: g.w,
		H: g.h,
	}
	p.renderer.Copy(g.texture, nil, dst)
}

// DrawTextClipped draws edit field text. It changes with every keystroke
// so its texture is not cached.
func (p *painter) DrawTextClipped(text string, font int, x, y, w, h, scrollX int32) {
	g, ok := p.renderGlyph(glyphKey{text: text, font: font})
	if !ok {
		return
	}
	defer g.texture.Destroy()

	src := &sdl.Rect{X: scrollX, Y: 0, W: min(w, g.w-scrollX), H: g.h}
	if src.W <= 0 {
		return
	}
	dst := &sdl.Rect{X: x, Y: y + (h-g.h)/2, W: src.W, H: g.h}
	p.renderer.Copy(g.texture, src, dst)
}

func (p *painter) renderGlyph(key glyphKey) (glyph, bool) {
	color := p.theme.TextColor
	if key.highlighted {
		color = p.theme.HighlightedTextColor
	}

	surface, err := p.fonts.Get(key.font).RenderUTF8Blended(key.text, sdlColor(color))
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render text", "text", key.text, "error", err)
		return glyph{}, false
	}
	defer surface.Free()

	texture, err := p.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create text texture", "text", key.text, "error", err)
		return glyph{}, false
	}
	return glyph{texture: texture, w: surface.W, h: surface.H}, true
}

func (p *painter) Acquire(text string) {
	p.refs[text]++
}

// Release drops a payload reference, freeing its glyphs with the last one.
func (p *painter) Release(text string) {
	n := p.refs[text] - 1
	if n > 0 {
		p.refs[text] = n
		return
	}
	delete(p.refs, text)
	for key, g := range p.glyphs {
		if key.text == text {
			g.texture.Destroy()
			delete(p.glyphs, key)
		}
	}
}

func (p *painter) close() {
	for key, g := range p.glyphs {
		g.texture.Destroy()
		delete(p.glyphs, key)
	}
}

func drawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 || rect.W < 2*radius || rect.H < 2*radius {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, rect.X+rect.W-radius, rect.Y+rect.H, color)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius, rect.Y+rect.H-radius, color)
	gfx.BoxColor(renderer, rect.X+rect.W-radius, rect.Y+radius, rect.X+rect.W, rect.Y+rect.H-radius, color)

	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)
	if radius > 5 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}
