package screen

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/pawndev/navkbd/pkg/navkbd"
	"github.com/pawndev/navkbd/pkg/navkbd/internal"
)

type FontSizes struct {
	Normal int `toml:"normal"`
	Small  int `toml:"small"`
	Tiny   int `toml:"tiny"`
}

var DefaultFontSizes = FontSizes{
	Normal: 44,
	Small:  34,
	Tiny:   24,
}

// Fonts holds one face per key font size.
type Fonts struct {
	normal *ttf.Font
	small  *ttf.Font
	tiny   *ttf.Font
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Damp growth above the reference width
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return int(float32(baseSize) * scaleFactor)
}

func loadFonts(path string, screenWidth int32, sizes FontSizes) (*Fonts, error) {
	if path == "" {
		return nil, errors.New("no font configured: set font_path or FALLBACK_FONT")
	}

	calcSize := func(base int) int {
		return CalculateFontSizeForResolution(base, screenWidth)
	}

	fonts := &Fonts{}
	var err error
	if fonts.normal, err = openFont(path, calcSize(sizes.Normal)); err != nil {
		return nil, err
	}
	if fonts.small, err = openFont(path, calcSize(sizes.Small)); err != nil {
		fonts.Close()
		return nil, err
	}
	if fonts.tiny, err = openFont(path, calcSize(sizes.Tiny)); err != nil {
		fonts.Close()
		return nil, err
	}
	return fonts, nil
}

func openFont(path string, size int) (*ttf.Font, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, fmt.Errorf("loading font %s at size %d: %w", path, size, err)
	}
	internal.GetInternalLogger().Debug("Loaded font", "path", path, "size", size)
	return font, nil
}

// Get returns the face for a key font size, defaulting to the normal face.
func (f *Fonts) Get(size int) *ttf.Font {
	switch size {
	case navkbd.FontSmall:
		return f.small
	case navkbd.FontTiny:
		return f.tiny
	}
	return f.normal
}

func (f *Fonts) Close() {
	for _, font := range []*ttf.Font{f.normal, f.small, f.tiny} {
		if font != nil {
			font.Close()
		}
	}
}
