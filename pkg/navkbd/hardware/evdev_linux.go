//go:build linux

package hardware

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/pawndev/navkbd/pkg/navkbd/internal"
)

type keyChar struct {
	lower, upper string
}

var keyChars = map[evdev.EvCode]keyChar{
	evdev.KEY_A: {"a", "A"}, evdev.KEY_B: {"b", "B"},
	evdev.KEY_C: {"c", "C"}, evdev.KEY_D: {"d", "D"},
	evdev.KEY_E: {"e", "E"}, evdev.KEY_F: {"f", "F"},
	evdev.KEY_G: {"g", "G"}, evdev.KEY_H: {"h", "H"},
	evdev.KEY_I: {"i", "I"}, evdev.KEY_J: {"j", "J"},
	evdev.KEY_K: {"k", "K"}, evdev.KEY_L: {"l", "L"},
	evdev.KEY_M: {"m", "M"}, evdev.KEY_N: {"n", "N"},
	evdev.KEY_O: {"o", "O"}, evdev.KEY_P: {"p", "P"},
	evdev.KEY_Q: {"q", "Q"}, evdev.KEY_R: {"r", "R"},
	evdev.KEY_S: {"s", "S"}, evdev.KEY_T: {"t", "T"},
	evdev.KEY_U: {"u", "U"}, evdev.KEY_V: {"v", "V"},
	evdev.KEY_W: {"w", "W"}, evdev.KEY_X: {"x", "X"},
	evdev.KEY_Y: {"y", "Y"}, evdev.KEY_Z: {"z", "Z"},

	evdev.KEY_1: {"1", "1"}, evdev.KEY_2: {"2", "2"},
	evdev.KEY_3: {"3", "3"}, evdev.KEY_4: {"4", "4"},
	evdev.KEY_5: {"5", "5"}, evdev.KEY_6: {"6", "6"},
	evdev.KEY_7: {"7", "7"}, evdev.KEY_8: {"8", "8"},
	evdev.KEY_9: {"9", "9"}, evdev.KEY_0: {"0", "0"},

	evdev.KEY_MINUS:      {"-", "-"},
	evdev.KEY_APOSTROPHE: {"'", "\""},
	evdev.KEY_DOT:        {".", ":"},
	evdev.KEY_SLASH:      {"/", "?"},
	evdev.KEY_SPACE:      {" ", " "},
}

// Key-down and autorepeat values of EV_KEY events.
const (
	keyUp     = 0
	keyDown   = 1
	keyRepeat = 2
)

// device is the part of evdev.InputDevice the reader needs.
type device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Reader translates key events of one evdev device.
type Reader struct {
	dev     device
	running *atomic.Bool
	closed  *atomic.Bool
	shift   bool
}

func Open(path string) (*Reader, error) {
	dev, err := evdev.OpenWithFlags(path, os.O_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("opening input device %s: %w", path, err)
	}

	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("Opened input device", "path", path, "name", name)

	return newReader(dev), nil
}

func newReader(dev device) *Reader {
	return &Reader{dev: dev, running: atomic.NewBool(false), closed: atomic.NewBool(false)}
}

// Run forwards translated key-downs to events until ctx is done, Stop is
// called or the device fails. It closes the device on return.
func (r *Reader) Run(ctx context.Context, events chan<- Event) error {
	if !r.running.CompareAndSwap(false, true) {
		return errors.New("input reader already running")
	}
	defer r.running.Store(false)
	defer r.closeDevice()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			r.Stop()
		case <-done:
		}
	}()

	for r.running.Load() {
		evt, err := r.dev.ReadOne()
		if err != nil {
			if !r.running.Load() {
				return nil
			}
			return fmt.Errorf("reading input device: %w", err)
		}

		event, ok := r.translate(evt)
		if !ok {
			continue
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// Stop ends Run. The pending read returns once the device is closed.
func (r *Reader) Stop() {
	if r.running.CompareAndSwap(true, false) {
		r.closeDevice()
	}
}

func (r *Reader) closeDevice() {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}
	if err := r.dev.Close(); err != nil {
		internal.GetInternalLogger().Debug("Failed to close input device", "error", err)
	}
}

func (r *Reader) translate(evt *evdev.InputEvent) (Event, bool) {
	if evt.Type != evdev.EV_KEY {
		return Event{}, false
	}

	switch evt.Code {
	case evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTSHIFT:
		r.shift = evt.Value != keyUp
		return Event{}, false
	}

	if evt.Value != keyDown && evt.Value != keyRepeat {
		return Event{}, false
	}

	switch evt.Code {
	case evdev.KEY_BACKSPACE:
		return Event{Kind: EventBackspace}, true
	case evdev.KEY_ENTER, evdev.KEY_KPENTER:
		return Event{Kind: EventConfirm}, true
	case evdev.KEY_ESC:
		return Event{Kind: EventCancel}, true
	case evdev.KEY_TAB:
		return Event{Kind: EventToggle}, true
	}

	if evt.Value == keyRepeat {
		return Event{}, false
	}

	c, ok := keyChars[evt.Code]
	if !ok {
		internal.GetInternalLogger().Debug("Ignoring unmapped key", "code", int(evt.Code))
		return Event{}, false
	}
	if r.shift {
		return Event{Kind: EventText, Text: c.upper}, true
	}
	return Event{Kind: EventText, Text: c.lower}, true
}
