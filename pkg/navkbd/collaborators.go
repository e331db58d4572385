package navkbd

import "github.com/pawndev/navkbd/pkg/navkbd/widget"

//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

// Menu is the screen that owns the keyboard.
type Menu interface {
	// ScreenSize is the size keys are derived from.
	ScreenSize() (width, height int32)
	// Background is the fill used behind keys, nil for none.
	Background() *widget.Color
	ClearHighlight()
	// Render packs and draws a subtree in place.
	Render(w *widget.Widget)
	// Redraw repacks and draws the whole screen.
	Redraw()
	// SearchList returns the result list of the screen, or nil.
	SearchList() *widget.Widget
}

// TextTarget receives typed text: characters, Space or Backspace.
type TextTarget interface {
	Type(text string)
}

// Composer assembles several keystrokes into one character, writing the
// result to target.
type Composer interface {
	Feed(target TextTarget, text string)
	// Flush commits any pending partial composition.
	Flush(target TextTarget)
}

// PayloadTracker observes the lifetime of character key payloads. Every
// Acquire is matched by exactly one Release when the key is destroyed.
type PayloadTracker interface {
	Acquire(text string)
	Release(text string)
}

type noopPayloads struct{}

func (noopPayloads) Acquire(string) {}
func (noopPayloads) Release(string) {}
