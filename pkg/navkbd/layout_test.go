package navkbd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(keys []Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.Label
	}
	return out
}

func countActions[T KeyAction](keys []Key) int {
	n := 0
	for _, k := range keys {
		if _, ok := k.Action.(T); ok {
			n++
		}
	}
	return n
}

func TestLayout_SlotCounts(t *testing.T) {
	table := NewModeTable(FeatureHangul)

	tests := []struct {
		family Family
		slots  int
		cols   int
		wide   bool
	}{
		{FamilyLatinUpper, 32, 8, false},
		{FamilyLatinLower, 32, 8, false},
		{FamilyNumeric, 32, 8, false},
		{FamilyDiacriticUpper, 32, 8, false},
		{FamilyDiacriticLower, 32, 8, false},
		{FamilyCyrillicUpper, 45, 9, true},
		{FamilyCyrillicLower, 45, 9, true},
		{FamilyHangul, 45, 9, true},
		{FamilyCoordinates, 24, 8, false},
	}

	for _, tt := range tests {
		for _, variant := range []Variant{VariantPlain, VariantSearch} {
			t.Run(Mode{Family: tt.family, Variant: variant}.String(), func(t *testing.T) {
				layout := table.Layout(Mode{Family: tt.family, Variant: variant}, "")
				assert.Len(t, layout.Keys, tt.slots)
				assert.Equal(t, tt.cols, layout.Cols)
				assert.Equal(t, tt.wide, layout.Wide)
				assert.False(t, layout.Collapsed)
			})
		}
	}
}

func TestLayout_LatinSearchControls(t *testing.T) {
	table := NewModeTable(0)
	m := Mode{Family: FamilyLatinUpper, Variant: VariantSearch}

	keys := table.Layout(m, "").Keys
	assert.Equal(t, []string{"_", "▼", "abc", "123", "ÄÖÜ", "←"}, labels(keys[26:]))

	assert.Equal(t, ChangeMode{Mode: m.Collapse()}, keys[27].Action)
	assert.Equal(t, ChangeMode{Mode: Mode{Family: FamilyLatinLower, Variant: VariantSearch}}, keys[28].Action)
	assert.Equal(t, ChangeMode{Mode: Mode{Family: FamilyNumeric, Variant: VariantSearch}}, keys[29].Action)
	assert.Equal(t, InsertText{Text: Backspace}, keys[31].Action)
}

func TestLayout_LatinPlainHasNoJumps(t *testing.T) {
	table := NewModeTable(0)

	keys := table.Layout(Mode{Family: FamilyLatinUpper}, "").Keys
	assert.Equal(t, []string{"_", "-", "'", "▼", "ÄÖÜ", "←"}, labels(keys[26:]))
	assert.Equal(t, 2, countActions[ChangeMode](keys))
}

func TestLayout_NumericOffersCyrillicOrHangul(t *testing.T) {
	search := Mode{Family: FamilyNumeric, Variant: VariantSearch}

	keys := NewModeTable(FeatureHangul).Layout(search, "DE").Keys
	assert.Contains(t, labels(keys), "АБВ")
	assert.Contains(t, labels(keys), "абв")
	assert.NotContains(t, labels(keys), "한글")

	keys = NewModeTable(FeatureHangul).Layout(search, "ko_KR").Keys
	assert.Contains(t, labels(keys), "한글")
	assert.NotContains(t, labels(keys), "АБВ")
	assert.Len(t, keys, 32)

	keys = NewModeTable(0).Layout(search, "KR").Keys
	assert.Contains(t, labels(keys), "АБВ")
}

func TestLayout_Coordinates(t *testing.T) {
	table := NewModeTable(0)

	keys := table.Layout(Mode{Family: FamilyCoordinates}, "").Keys
	require.Len(t, keys, 24)
	assert.Equal(t, []string{
		"0", "1", "2", "3", "4", "",
		"N", "S", "5", "6", "7", "8", "9", "",
		"E", "W", "°", ".", "'", "_", "", "▼", "", "←",
	}, labels(keys))
	assert.Equal(t, 20, len(keys)-countActions[Noop](keys))
}

func TestLayout_DiacriticLowerHasSharpS(t *testing.T) {
	keys := NewModeTable(0).Layout(Mode{Family: FamilyDiacriticLower}, "").Keys
	assert.Contains(t, labels(keys), "ß")
	assert.Equal(t, 0, countActions[Noop](keys))
}

func TestLayout_Collapsed(t *testing.T) {
	table := NewModeTable(0)
	m := Mode{Family: FamilyCyrillicLower, Variant: VariantSearch, Collapsed: true}

	layout := table.Layout(m, "")
	require.Len(t, layout.Keys, 1)
	assert.True(t, layout.Collapsed)
	assert.Equal(t, "абв", layout.Keys[0].Label)
	assert.Equal(t, ChangeMode{Mode: m.Expand()}, layout.Keys[0].Action)
}

func TestLayout_HangulWithoutFeaturePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewModeTable(0).Layout(Mode{Family: FamilyHangul}, "")
	})
}
