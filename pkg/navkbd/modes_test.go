package navkbd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeTable_Numbering(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		family   Family
		want     int
	}{
		{"latin upper", 0, FamilyLatinUpper, 0},
		{"latin lower", 0, FamilyLatinLower, 8},
		{"numeric", 0, FamilyNumeric, 16},
		{"diacritic upper", 0, FamilyDiacriticUpper, 24},
		{"diacritic lower", 0, FamilyDiacriticLower, 32},
		{"cyrillic upper", 0, FamilyCyrillicUpper, 40},
		{"cyrillic lower", 0, FamilyCyrillicLower, 48},
		{"coordinates without hangul", 0, FamilyCoordinates, 56},
		{"hangul", FeatureHangul, FamilyHangul, 56},
		{"coordinates with hangul", FeatureHangul, FamilyCoordinates, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewModeTable(tt.features)
			assert.Equal(t, tt.want, table.Base(tt.family))
		})
	}
}

func TestModeTable_HangulAbsentWithoutFeature(t *testing.T) {
	table := NewModeTable(0)

	assert.False(t, table.Has(FamilyHangul))
	assert.Len(t, table.Families(), 8)
	assert.Panics(t, func() { table.Entry(FamilyHangul) })
}

func TestModeTable_CodeDecodeRoundTrip(t *testing.T) {
	table := NewModeTable(FeatureHangul)

	for _, family := range table.Families() {
		for _, variant := range []Variant{VariantPlain, VariantSearch, 5} {
			for _, collapsed := range []bool{false, true} {
				m := Mode{Family: family, Variant: variant, Collapsed: collapsed}
				code := table.Code(m)

				decoded, ok := table.Decode(code)
				require.True(t, ok, "code %d", code)
				assert.Equal(t, m, decoded)
			}
		}
	}
}

func TestModeTable_CollapsedCode(t *testing.T) {
	table := NewModeTable(0)
	m := Mode{Family: FamilyLatinLower, Variant: VariantSearch}

	assert.Equal(t, 10, table.Code(m))
	assert.Equal(t, 1034, table.Code(m.Collapse()))
	assert.Equal(t, m, m.Collapse().Expand())
}

func TestModeTable_DecodeRejects(t *testing.T) {
	table := NewModeTable(0)

	for _, code := range []int{-1, 64, 1024 + 64, 5000} {
		_, ok := table.Decode(code)
		assert.False(t, ok, "code %d", code)
	}
	assert.Panics(t, func() { table.MustDecode(-1) })
}

func TestModeTable_CaseTargetIsInvolution(t *testing.T) {
	table := NewModeTable(FeatureHangul)

	for _, family := range table.Families() {
		m := Mode{Family: family, Variant: VariantSearch}
		to, ok := table.CaseTarget(m)
		if !ok {
			continue
		}
		back, ok := table.CaseTarget(to)
		require.True(t, ok, "case target of %s has no way back", to)
		assert.Equal(t, m, back)
	}
}

func TestModeTable_Targets(t *testing.T) {
	table := NewModeTable(0)
	search := Mode{Family: FamilyLatinUpper, Variant: VariantSearch}

	to, ok := table.DiacriticTarget(search)
	require.True(t, ok)
	assert.Equal(t, Mode{Family: FamilyDiacriticUpper, Variant: VariantSearch}, to)

	back, ok := table.DiacriticTarget(to)
	require.True(t, ok)
	assert.Equal(t, search, back)

	_, ok = table.CaseTarget(Mode{Family: FamilyNumeric})
	assert.False(t, ok)
	_, ok = table.DiacriticTarget(Mode{Family: FamilyCyrillicUpper})
	assert.False(t, ok)
	_, ok = table.DiacriticTarget(Mode{Family: FamilyCoordinates})
	assert.False(t, ok)
}

func TestModeTable_LowerTarget(t *testing.T) {
	table := NewModeTable(0)

	to, ok := table.LowerTarget(Mode{Family: FamilyLatinUpper, Variant: VariantSearch})
	require.True(t, ok)
	assert.Equal(t, Mode{Family: FamilyLatinLower, Variant: VariantSearch}, to)

	to, ok = table.LowerTarget(Mode{Family: FamilyCyrillicUpper, Variant: VariantSearch})
	require.True(t, ok)
	assert.Equal(t, FamilyCyrillicLower, to.Family)

	to, ok = table.LowerTarget(Mode{Family: FamilyDiacriticUpper, Variant: VariantSearch})
	require.True(t, ok)
	assert.Equal(t, Mode{Family: FamilyDiacriticLower, Variant: VariantSearch}, to)
	assert.Equal(t, 34, table.Code(to))

	_, ok = table.LowerTarget(Mode{Family: FamilyLatinUpper})
	assert.False(t, ok, "plain variant keeps its case")
	_, ok = table.LowerTarget(Mode{Family: FamilyLatinUpper, Variant: VariantSearch, Collapsed: true})
	assert.False(t, ok)
	_, ok = table.LowerTarget(Mode{Family: FamilyLatinLower, Variant: VariantSearch})
	assert.False(t, ok)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "latin-upper/2", Mode{Family: FamilyLatinUpper, Variant: VariantSearch}.String())
	assert.Equal(t, "numeric/0/collapsed", Mode{Family: FamilyNumeric, Collapsed: true}.String())
	assert.Equal(t, "family(42)", Family(42).String())
}
