package screen

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/pawndev/navkbd/pkg/navkbd"
	"github.com/pawndev/navkbd/pkg/navkbd/i18n"
	"github.com/pawndev/navkbd/pkg/navkbd/internal"
)

// Options configures the SDL screen.
type Options struct {
	WindowTitle string
	Config      navkbd.Config
	FontSizes   FontSizes
}

// Init brings up SDL, the window and fonts. Close must be called when done.
func Init(options Options) (*Screen, error) {
	navkbd.Init(options.Config)

	if err := i18n.Init(options.Config.Locale); err != nil {
		internal.GetInternalLogger().Warn("Failed to load translations", "locale", options.Config.Locale, "error", err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("initializing TTF: %w", err)
	}

	theme := ThemeByName(options.Config.Theme)
	window, err := initWindow(options.WindowTitle, theme.BackgroundImagePath)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	sizes := options.FontSizes
	if sizes == (FontSizes{}) {
		sizes = DefaultFontSizes
	}
	fonts, err := loadFonts(options.Config.FontPath, window.GetWidth(), sizes)
	if err != nil {
		window.closeWindow()
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	return &Screen{
		window:  window,
		fonts:   fonts,
		painter: newPainter(window.Renderer, fonts, theme),
		config:  options.Config,
	}, nil
}

// Close tidies up SDL.
func (s *Screen) Close() {
	s.painter.close()
	s.fonts.Close()
	s.window.closeWindow()
	ttf.Quit()
	sdl.Quit()
	navkbd.CloseLogger()
}
