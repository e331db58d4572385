package navkbd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feed(c *HangulComposer, target TextTarget, jamo ...string) {
	for _, j := range jamo {
		c.Feed(target, j)
	}
}

func TestHangulComposer_Syllables(t *testing.T) {
	tests := []struct {
		name string
		jamo []string
		want string
	}{
		{"single syllable", []string{"ㅎ", "ㅏ", "ㄴ"}, "한"},
		{"two syllables", []string{"ㅎ", "ㅏ", "ㄴ", "ㄱ", "ㅡ", "ㄹ"}, "한글"},
		{"final moves on", []string{"ㄱ", "ㅏ", "ㅅ", "ㅏ"}, "가사"},
		{"compound vowel", []string{"ㅇ", "ㅗ", "ㅏ"}, "와"},
		{"compound final", []string{"ㄷ", "ㅏ", "ㄹ", "ㄱ"}, "닭"},
		{"compound final splits", []string{"ㄷ", "ㅏ", "ㄹ", "ㄱ", "ㅣ"}, "달기"},
		{"lone consonants", []string{"ㅋ", "ㅋ"}, "ㅋㅋ"},
		{"lone vowel", []string{"ㅏ"}, "ㅏ"},
		{"doubled initial cannot be final", []string{"ㅇ", "ㅏ", "ㄸ"}, "아ㄸ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &typedText{}
			feed(NewHangulComposer(), target, tt.jamo...)
			assert.Equal(t, tt.want, target.String())
		})
	}
}

func TestHangulComposer_Backspace(t *testing.T) {
	target := &typedText{}
	c := NewHangulComposer()

	feed(c, target, "ㄷ", "ㅏ", "ㄹ", "ㄱ")
	assert.Equal(t, "닭", target.String())

	c.Feed(target, Backspace)
	assert.Equal(t, "달", target.String())
	c.Feed(target, Backspace)
	assert.Equal(t, "다", target.String())
	c.Feed(target, Backspace)
	assert.Equal(t, "ㄷ", target.String())
	c.Feed(target, Backspace)
	assert.Equal(t, "", target.String())
	assert.Equal(t, "", c.Preedit())

	target.WriteString("x")
	c.Feed(target, Backspace)
	assert.Equal(t, "", target.String())
}

func TestHangulComposer_FlushCommits(t *testing.T) {
	target := &typedText{}
	c := NewHangulComposer()

	feed(c, target, "ㄱ", "ㅏ")
	assert.Equal(t, "가", c.Preedit())

	c.Flush(target)
	assert.Equal(t, "", c.Preedit())

	feed(c, target, "ㄴ")
	assert.Equal(t, "가ㄴ", target.String())
}

func TestHangulComposer_PassesThroughOtherText(t *testing.T) {
	target := &typedText{}
	c := NewHangulComposer()

	feed(c, target, "ㅁ", "ㅜ", Space, "ㄴ")
	assert.Equal(t, "무 ㄴ", target.String())
	assert.Equal(t, "ㄴ", c.Preedit())
}
