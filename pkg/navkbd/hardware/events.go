// Package hardware feeds physical key presses into an on-screen keyboard.
package hardware

type EventKind int

const (
	EventText EventKind = iota
	EventBackspace
	EventConfirm
	EventCancel
	// EventToggle collapses or expands the keyboard.
	EventToggle
)

// Event is one translated key-down.
type Event struct {
	Kind EventKind
	Text string
}

func (k EventKind) String() string {
	switch k {
	case EventText:
		return "text"
	case EventBackspace:
		return "backspace"
	case EventConfirm:
		return "confirm"
	case EventCancel:
		return "cancel"
	case EventToggle:
		return "toggle"
	}
	return "unknown"
}
