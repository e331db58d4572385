package screen

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/navkbd/pkg/navkbd/widget"
)

type Theme struct {
	Name                 string
	BackgroundColor      widget.Color // Screen background
	KeyColor             widget.Color // Fill behind keys
	HighlightColor       widget.Color // Key under the pointer
	TextColor            widget.Color
	HighlightedTextColor widget.Color
	HintColor            widget.Color // Title and hints
	EditColor            widget.Color // Edit field fill
	BackgroundImagePath  string
}

var DayTheme = Theme{
	Name:                 "day",
	BackgroundColor:      widget.HexToColor(0xF2F2F2),
	KeyColor:             widget.HexToColor(0xDADDE1),
	HighlightColor:       widget.HexToColor(0x2F6FDE),
	TextColor:            widget.HexToColor(0x1B1B1B),
	HighlightedTextColor: widget.HexToColor(0xFFFFFF),
	HintColor:            widget.HexToColor(0x5C5C5C),
	EditColor:            widget.HexToColor(0xFFFFFF),
}

var NightTheme = Theme{
	Name:                 "night",
	BackgroundColor:      widget.HexToColor(0x101418),
	KeyColor:             widget.HexToColor(0x252B33),
	HighlightColor:       widget.HexToColor(0xE0A526),
	TextColor:            widget.HexToColor(0xE6E6E6),
	HighlightedTextColor: widget.HexToColor(0x101418),
	HintColor:            widget.HexToColor(0x8A939E),
	EditColor:            widget.HexToColor(0x1A1F25),
}

// ThemeByName returns the night theme for "night" and the day theme for
// anything else.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, NightTheme.Name) {
		return NightTheme
	}
	return DayTheme
}

func sdlColor(c widget.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
