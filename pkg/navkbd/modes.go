package navkbd

import "fmt"

// Family identifies one keyboard layout family, e.g. upper case Latin.
type Family int

const (
	FamilyNone Family = iota - 1
	FamilyLatinUpper
	FamilyLatinLower
	FamilyNumeric
	FamilyDiacriticUpper
	FamilyDiacriticLower
	FamilyCyrillicUpper
	FamilyCyrillicLower
	FamilyHangul
	FamilyCoordinates
)

func (f Family) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyLatinUpper:
		return "latin-upper"
	case FamilyLatinLower:
		return "latin-lower"
	case FamilyNumeric:
		return "numeric"
	case FamilyDiacriticUpper:
		return "diacritic-upper"
	case FamilyDiacriticLower:
		return "diacritic-lower"
	case FamilyCyrillicUpper:
		return "cyrillic-upper"
	case FamilyCyrillicLower:
		return "cyrillic-lower"
	case FamilyHangul:
		return "hangul"
	case FamilyCoordinates:
		return "coordinates"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Variant is the sub-code inside a family. It survives jumps between
// families.
type Variant uint8

const (
	// VariantPlain is the family root: no case or numeric jump keys.
	VariantPlain Variant = 0
	// VariantSearch shows case and numeric jumps and drops to lower case
	// after the first letter.
	VariantSearch Variant = 2

	maxVariant Variant = 7
)

const (
	familySpan    = 8
	collapsedFlag = 1024
)

// Mode is a complete keyboard state.
type Mode struct {
	Family    Family
	Variant   Variant
	Collapsed bool
}

func (m Mode) Collapse() Mode {
	m.Collapsed = true
	return m
}

func (m Mode) Expand() Mode {
	m.Collapsed = false
	return m
}

// Jump returns the expanded mode of family f keeping m's variant.
func (m Mode) Jump(f Family) Mode {
	return Mode{Family: f, Variant: m.Variant}
}

func (m Mode) String() string {
	s := fmt.Sprintf("%s/%d", m.Family, m.Variant)
	if m.Collapsed {
		s += "/collapsed"
	}
	return s
}

// Features is the set of optional script families compiled into a table.
type Features uint8

const (
	FeatureHangul Features = 1 << iota
)

func (f Features) Has(feature Features) bool {
	return f&feature != 0
}

// Font sizes used on keys.
const (
	FontNormal = 0
	FontSmall  = 1
	FontTiny   = 2
)

// ModeEntry describes one family: its label on jump keys and where the
// case, diacritic and auto-lowercase transitions lead.
type ModeEntry struct {
	Family    Family
	Label     string
	Font      int
	Case      Family
	Diacritic Family
	Lower     Family
}

// ModeTable is the immutable registry of families. Build one with
// NewModeTable and share it.
type ModeTable struct {
	features Features
	entries  []ModeEntry
	index    map[Family]int
}

func NewModeTable(features Features) *ModeTable {
	entries := []ModeEntry{
		{FamilyLatinUpper, "ABC", FontTiny, FamilyLatinLower, FamilyDiacriticUpper, FamilyLatinLower},
		{FamilyLatinLower, "abc", FontTiny, FamilyLatinUpper, FamilyDiacriticLower, FamilyNone},
		{FamilyNumeric, "123", FontTiny, FamilyNone, FamilyDiacriticUpper, FamilyNone},
		{FamilyDiacriticUpper, "ÄÖÜ", FontTiny, FamilyNone, FamilyLatinUpper, FamilyDiacriticLower},
		{FamilyDiacriticLower, "äöü", FontTiny, FamilyNone, FamilyLatinLower, FamilyNone},
		{FamilyCyrillicUpper, "АБВ", FontTiny, FamilyCyrillicLower, FamilyNone, FamilyCyrillicLower},
		{FamilyCyrillicLower, "абв", FontTiny, FamilyCyrillicUpper, FamilyNone, FamilyNone},
	}
	if features.Has(FeatureHangul) {
		entries = append(entries, ModeEntry{FamilyHangul, "한글", FontTiny, FamilyHangul, FamilyNone, FamilyNone})
	}
	entries = append(entries, ModeEntry{FamilyCoordinates, "DEG", FontTiny, FamilyNone, FamilyNone, FamilyNone})

	index := make(map[Family]int, len(entries))
	for i, e := range entries {
		index[e.Family] = i
	}

	return &ModeTable{
		features: features,
		entries:  entries,
		index:    index,
	}
}

func (t *ModeTable) Features() Features {
	return t.features
}

// Has reports whether the family is offered by this table.
func (t *ModeTable) Has(f Family) bool {
	_, ok := t.index[f]
	return ok
}

// Entry returns the entry of f. Asking for a family the table does not
// carry is a programming error.
func (t *ModeTable) Entry(f Family) ModeEntry {
	i, ok := t.index[f]
	if !ok {
		panic(fmt.Sprintf("navkbd: family %s not in mode table", f))
	}
	return t.entries[i]
}

func (t *ModeTable) Families() []Family {
	out := make([]Family, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Family
	}
	return out
}

// Base returns the integer code of the family root.
func (t *ModeTable) Base(f Family) int {
	i, ok := t.index[f]
	if !ok {
		panic(fmt.Sprintf("navkbd: family %s not in mode table", f))
	}
	return i * familySpan
}

// Code encodes m as the integer mode code used by menus and settings.
func (t *ModeTable) Code(m Mode) int {
	code := t.Base(m.Family) + int(m.Variant&maxVariant)
	if m.Collapsed {
		code += collapsedFlag
	}
	return code
}

// Decode turns an integer mode code back into a Mode.
func (t *ModeTable) Decode(code int) (Mode, bool) {
	if code < 0 {
		return Mode{}, false
	}
	var m Mode
	if code >= collapsedFlag {
		m.Collapsed = true
		code -= collapsedFlag
	}
	i := code / familySpan
	if i >= len(t.entries) {
		return Mode{}, false
	}
	m.Family = t.entries[i].Family
	m.Variant = Variant(code % familySpan)
	return m, true
}

func (t *ModeTable) MustDecode(code int) Mode {
	m, ok := t.Decode(code)
	if !ok {
		panic(fmt.Sprintf("navkbd: invalid mode code %d", code))
	}
	return m
}

// CaseTarget is the mode a case-switch key leads to.
func (t *ModeTable) CaseTarget(m Mode) (Mode, bool) {
	return t.target(m, t.Entry(m.Family).Case)
}

// DiacriticTarget is the mode a diacritic-switch key leads to.
func (t *ModeTable) DiacriticTarget(m Mode) (Mode, bool) {
	return t.target(m, t.Entry(m.Family).Diacritic)
}

// LowerTarget is the mode the keyboard drops to after the first letter
// typed in m. Only search variants of upper case families have one.
func (t *ModeTable) LowerTarget(m Mode) (Mode, bool) {
	if m.Collapsed || m.Variant != VariantSearch {
		return Mode{}, false
	}
	return t.target(m, t.Entry(m.Family).Lower)
}

func (t *ModeTable) target(m Mode, f Family) (Mode, bool) {
	if f == FamilyNone || !t.Has(f) {
		return Mode{}, false
	}
	return m.Jump(f), true
}
