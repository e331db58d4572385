package navkbd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pawndev/navkbd/pkg/navkbd"
	"github.com/pawndev/navkbd/pkg/navkbd/mocks"
	"github.com/pawndev/navkbd/pkg/navkbd/widget"
)

func expectScreen(menu *mocks.MockMenu, list *widget.Widget) {
	menu.EXPECT().ScreenSize().Return(int32(800), int32(480)).AnyTimes()
	menu.EXPECT().Background().Return(nil).AnyTimes()
	menu.EXPECT().SearchList().Return(list).AnyTimes()
}

func findKey(kb *navkbd.Keyboard, label string) *widget.Widget {
	var found *widget.Widget
	kb.Grid().Walk(func(w *widget.Widget) bool {
		if w.Kind == widget.KindButton && w.Text == label {
			found = w
			return false
		}
		return true
	})
	return found
}

func TestKeyboard_TypesThroughTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	menu := mocks.NewMockMenu(ctrl)
	target := mocks.NewMockTextTarget(ctrl)
	expectScreen(menu, nil)

	kb := navkbd.Open(navkbd.Options{
		Enabled: true,
		Menu:    menu,
		Target:  target,
	}, navkbd.Mode{Family: navkbd.FamilyCoordinates})
	require.NotNil(t, kb)

	gomock.InOrder(
		target.EXPECT().Type("N"),
		target.EXPECT().Type("4"),
		target.EXPECT().Type("°"),
		target.EXPECT().Type(navkbd.Space),
		target.EXPECT().Type(navkbd.Backspace),
	)

	for _, label := range []string{"N", "4", "°", "_", "←"} {
		key := findKey(kb, label)
		require.NotNil(t, key, label)
		key.Press()
	}
}

func TestKeyboard_AutoLowercaseRebuildsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	menu := mocks.NewMockMenu(ctrl)
	target := mocks.NewMockTextTarget(ctrl)
	list := widget.NewTable()
	expectScreen(menu, list)

	kb := navkbd.Open(navkbd.Options{
		Enabled: true,
		Menu:    menu,
		Target:  target,
	}, navkbd.Mode{Family: navkbd.FamilyLatinUpper, Variant: navkbd.VariantSearch})
	require.NotNil(t, kb)

	target.EXPECT().Type("M")
	target.EXPECT().Type("u")
	menu.EXPECT().ClearHighlight().Times(1)
	menu.EXPECT().Render(kb.Widget()).Times(1)

	findKey(kb, "M").Press()
	findKey(kb, "u").Press()

	assert.Equal(t, 8+2, kb.Code())
	assert.True(t, list.Table.ScrollButtonsHidden)
}

func TestKeyboard_CollapseRedrawsMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	menu := mocks.NewMockMenu(ctrl)
	list := widget.NewTable()
	expectScreen(menu, list)

	kb := navkbd.Open(navkbd.Options{
		Enabled: true,
		Menu:    menu,
		Target:  mocks.NewMockTextTarget(ctrl),
	}, navkbd.Mode{Family: navkbd.FamilyNumeric, Variant: navkbd.VariantSearch})
	require.NotNil(t, kb)

	menu.EXPECT().ClearHighlight().Times(2)
	menu.EXPECT().Redraw().Times(2)

	findKey(kb, "▼").Press()
	assert.Equal(t, 1024+16+2, kb.Code())
	assert.False(t, list.Table.ScrollButtonsHidden)

	kb.Grid().Children[0].Press()
	assert.Equal(t, 16+2, kb.Code())
	assert.True(t, list.Table.ScrollButtonsHidden)
}

func TestKeyboard_PayloadsMatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	menu := mocks.NewMockMenu(ctrl)
	payloads := mocks.NewMockPayloadTracker(ctrl)
	expectScreen(menu, nil)

	letters := []string{"0", "1", "2", "3", "4", "N", "S", "5", "6", "7", "8", "9", "E", "W", "°", ".", "'", navkbd.Space, navkbd.Backspace}
	for _, text := range letters {
		payloads.EXPECT().Acquire(text).Times(1)
	}

	kb := navkbd.Open(navkbd.Options{
		Enabled:  true,
		Menu:     menu,
		Target:   mocks.NewMockTextTarget(ctrl),
		Payloads: payloads,
	}, navkbd.Mode{Family: navkbd.FamilyCoordinates})
	require.NotNil(t, kb)

	for _, text := range letters {
		payloads.EXPECT().Release(text).Times(1)
	}
	kb.Close()
}

func TestKeyboard_ComposerFlushedOnModeChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	menu := mocks.NewMockMenu(ctrl)
	target := mocks.NewMockTextTarget(ctrl)
	composer := mocks.NewMockComposer(ctrl)
	expectScreen(menu, nil)
	menu.EXPECT().ClearHighlight().AnyTimes()
	menu.EXPECT().Render(gomock.Any()).AnyTimes()

	composer.EXPECT().Flush(target).Times(1)
	kb := navkbd.Open(navkbd.Options{
		Enabled:  true,
		Table:    navkbd.NewModeTable(navkbd.FeatureHangul),
		Menu:     menu,
		Target:   target,
		Composer: composer,
	}, navkbd.Mode{Family: navkbd.FamilyHangul, Variant: navkbd.VariantSearch})
	require.NotNil(t, kb)

	gomock.InOrder(
		composer.EXPECT().Feed(target, "ㅂ"),
		composer.EXPECT().Flush(target),
		target.EXPECT().Type("3"),
	)

	findKey(kb, "ㅂ").Press()
	findKey(kb, "123").Press()
	findKey(kb, "3").Press()
}
