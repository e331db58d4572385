package screen

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/navkbd/pkg/navkbd/internal"
)

type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background *sdl.Texture
}

func isDevMode() bool {
	return os.Getenv("NAVKBD_DEV") != ""
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func initWindow(title string, backgroundPath string) (*Window, error) {
	var width, height int32
	x, y := int32(0), int32(0)
	windowFlags := uint32(sdl.WINDOW_SHOWN)

	if isDevMode() {
		x, y = 50, 50
		width = envSize("WINDOW_WIDTH", 1024)
		height = envSize("WINDOW_HEIGHT", 768)
		windowFlags |= sdl.WINDOW_BORDERLESS
	} else {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return nil, fmt.Errorf("getting display mode: %w", err)
		}
		width, height = displayMode.W, displayMode.H
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	renderer.SetLogicalSize(width, height)

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
	}
	win.loadBackground(backgroundPath)
	return win, nil
}

func (window *Window) loadBackground(path string) {
	if path == "" {
		return
	}
	img.Init(img.INIT_PNG)

	texture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		internal.GetInternalLogger().Debug("No background image", "path", path, "error", err)
		return
	}
	window.Background = texture
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

func (window *Window) RenderBackground() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
		img.Quit()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}
