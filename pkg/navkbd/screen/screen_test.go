package screen

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawndev/navkbd/pkg/navkbd/i18n"
	"github.com/pawndev/navkbd/pkg/navkbd/textedit"
	"github.com/pawndev/navkbd/pkg/navkbd/widget"
)

type runeMeasurer struct{}

func (runeMeasurer) TextSize(text string, font int) (int32, int32) {
	return int32(len([]rune(text))) * 10, 20
}

func newFieldScreen(text string) *Screen {
	s := &Screen{
		buffer: textedit.NewBuffer(text),
		field:  widget.NewField(text, 0),
	}
	s.field.SetSize(120, 28)
	return s
}

func TestLayoutField_CursorFollowsBuffer(t *testing.T) {
	s := newFieldScreen("hello")
	layoutField(s.field, s.buffer, runeMeasurer{})
	assert.Equal(t, int32(50), s.field.Field.CursorX)
	assert.Zero(t, s.field.Field.ScrollX)

	s.moveCursor(-1)
	s.moveCursor(-1)
	assert.True(t, s.dirty)
	layoutField(s.field, s.buffer, runeMeasurer{})
	assert.Equal(t, int32(30), s.field.Field.CursorX)

	s.Type("x")
	layoutField(s.field, s.buffer, runeMeasurer{})
	assert.Equal(t, "helxlo", s.field.Text)
	assert.Equal(t, int32(40), s.field.Field.CursorX)
}

func TestLayoutField_ScrollsLongText(t *testing.T) {
	s := newFieldScreen("abcdefghijklmno")

	layoutField(s.field, s.buffer, runeMeasurer{})
	assert.Equal(t, int32(150), s.field.Field.CursorX)
	assert.Equal(t, int32(50), s.field.Field.ScrollX)

	for i := 0; i < 12; i++ {
		s.moveCursor(-1)
	}
	layoutField(s.field, s.buffer, runeMeasurer{})
	assert.Equal(t, int32(30), s.field.Field.CursorX)
	assert.Zero(t, s.field.Field.ScrollX)
}

func TestTickCursor_MarksDirtyOnBlink(t *testing.T) {
	s := newFieldScreen("abc")
	start := time.Now()

	s.tickCursor(start)
	assert.False(t, s.dirty)

	blink := start.Add(600 * time.Millisecond)
	s.tickCursor(blink)
	assert.True(t, s.dirty)
	assert.False(t, s.field.Field.CursorVisible)

	s.dirty = false
	s.tickCursor(blink)
	assert.False(t, s.dirty)

	s.moveCursor(-1)
	s.dirty = false
	s.tickCursor(time.Now())
	assert.True(t, s.dirty, "moving the cursor shows it again")
	assert.True(t, s.field.Field.CursorVisible)
}

func TestBuild_CapsResultsWhileExpanded(t *testing.T) {
	require.NoError(t, i18n.Init("en"))
	s := &Screen{painter: newPainter(nil, nil, DayTheme)}

	s.build(PromptOptions{
		Search: true,
		Results: func(query string) []string {
			results := make([]string, 6)
			for idx := range results {
				results[idx] = fmt.Sprintf("place %d", idx)
			}
			return results
		},
	})

	require.NotNil(t, s.list)
	require.Len(t, s.list.Children, 6)
	assert.Len(t, s.list.Visible(), expandedResultRows)

	s.list.Table.ScrollButtonsHidden = true
	assert.Len(t, s.list.Visible(), 6)

	assert.NotNil(t, s.field.Field)
	assert.Same(t, s.field, s.root.Find(widget.StateEdit))
}
