package textedit

import (
	"time"
)

const backspace = "\b"

const cursorBlinkRate = 500 * time.Millisecond

// Buffer is the edited text of a search or entry field with a rune
// cursor. It receives keystrokes from an on-screen keyboard.
type Buffer struct {
	text   []rune
	cursor int

	cursorVisible   bool
	lastCursorBlink time.Time
}

func NewBuffer(initial string) *Buffer {
	text := []rune(initial)
	return &Buffer{
		text:            text,
		cursor:          len(text),
		cursorVisible:   true,
		lastCursorBlink: time.Now(),
	}
}

func (b *Buffer) String() string {
	return string(b.text)
}

// BeforeCursor is the text left of the cursor, used to place it on screen.
func (b *Buffer) BeforeCursor() string {
	return string(b.text[:b.cursor])
}

// Type inserts text at the cursor. "\b" deletes the rune left of it.
func (b *Buffer) Type(text string) {
	if text == backspace {
		b.Backspace()
		return
	}
	b.Insert(text)
}

func (b *Buffer) Insert(text string) {
	runes := []rune(text)
	if b.cursor == len(b.text) {
		b.text = append(b.text, runes...)
	} else {
		out := make([]rune, 0, len(b.text)+len(runes))
		out = append(out, b.text[:b.cursor]...)
		out = append(out, runes...)
		out = append(out, b.text[b.cursor:]...)
		b.text = out
	}
	b.cursor += len(runes)
	b.showCursor()
}

func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	b.showCursor()
}

// MoveCursor moves the cursor one rune left for a negative direction and
// one rune right for a positive one.
func (b *Buffer) MoveCursor(direction int) {
	if direction > 0 && b.cursor < len(b.text) {
		b.cursor++
	} else if direction < 0 && b.cursor > 0 {
		b.cursor--
	}
	b.showCursor()
}

// CursorVisible advances the blink state to now and reports it.
func (b *Buffer) CursorVisible(now time.Time) bool {
	if now.Sub(b.lastCursorBlink) > cursorBlinkRate {
		b.cursorVisible = !b.cursorVisible
		b.lastCursorBlink = now
	}
	return b.cursorVisible
}

func (b *Buffer) showCursor() {
	b.cursorVisible = true
	b.lastCursorBlink = time.Now()
}

// ScrollOffset is how far a field of visibleWidth must scroll left so the
// cursor at cursorX stays in view.
func ScrollOffset(cursorX, visibleWidth, textWidth, padding int32) int32 {
	offsetX := int32(0)
	if cursorX > visibleWidth {
		offsetX = cursorX - visibleWidth + padding
	}
	return min(offsetX, max(textWidth-visibleWidth, 0))
}
