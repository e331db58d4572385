package navkbd

import "strings"

const (
	gridCols     = 8
	wideGridCols = 9
)

var (
	latinUpper = strings.Fields("A B C D E F G H I J K L M N O P Q R S T U V W X Y Z")
	latinLower = strings.Fields("a b c d e f g h i j k l m n o p q r s t u v w x y z")

	digits  = strings.Fields("0 1 2 3 4 5 6 7 8 9")
	symbols = strings.Fields(`. ° ' " - + * / ( ) = ? :`)

	diacriticUpper = strings.Fields(`
		Ä Ë Ï Ö Ü Æ Ø Å
		Á É Í Ó Ú Š Č Ž
		À È Ì Ò Ù Ś Ć Ź
		Â Ê Î Ô Û`)
	diacriticLower = strings.Fields(`
		ä ë ï ö ü æ ø å
		á é í ó ú š č ž
		à è ì ò ù ś ć ź
		â ê î ô û ß`)

	cyrillicUpper = strings.Fields(`
		А Б В Г Д Е Ж З И
		Й К Л М Н О П Р С
		Т У Ф Х Ц Ч Ш Щ Ъ
		Ы Ь Э Ю Я Ё І Ї Ў`)
	cyrillicLower = strings.Fields(`
		а б в г д е ж з и
		й к л м н о п р с
		т у ф х ц ч ш щ ъ
		ы ь э ю я ё і ї ў`)

	hangulJamo = strings.Fields(`
		ㄱ ㄲ ㄴ ㄷ ㄸ ㄹ ㅁ ㅂ ㅃ
		ㅅ ㅆ ㅇ ㅈ ㅉ ㅊ ㅋ ㅌ ㅍ
		ㅎ ㅏ ㅐ ㅑ ㅒ ㅓ ㅔ ㅕ ㅖ
		ㅗ ㅚ ㅛ ㅜ ㅟ ㅠ ㅡ ㅢ ㅣ`)
)

// Layout is the ordered key list of one mode.
type Layout struct {
	Cols int
	// Wide layouts use nine narrower, shorter keys per row.
	Wide bool
	// Collapsed layouts hold a single expand key.
	Collapsed bool
	Keys      []Key
}

// Layout builds the key list for m. locale decides whether the numeric
// layout offers Hangul instead of Cyrillic.
func (t *ModeTable) Layout(m Mode, locale string) Layout {
	if m.Collapsed {
		e := t.Entry(m.Family)
		return Layout{
			Cols:      gridCols,
			Collapsed: true,
			Keys:      []Key{{Label: e.Label, Font: e.Font, Action: ChangeMode{Mode: m.Expand()}}},
		}
	}

	switch m.Family {
	case FamilyLatinUpper:
		return Layout{Cols: gridCols, Keys: t.latinKeys(m, latinUpper)}
	case FamilyLatinLower:
		return Layout{Cols: gridCols, Keys: t.latinKeys(m, latinLower)}
	case FamilyNumeric:
		return Layout{Cols: gridCols, Keys: t.numericKeys(m, locale)}
	case FamilyDiacriticUpper:
		keys := charKeys(diacriticUpper)
		keys = append(keys, spacer())
		keys = t.appendDiacritic(keys, m)
		keys = append(keys, backspaceKey())
		return Layout{Cols: gridCols, Keys: keys}
	case FamilyDiacriticLower:
		keys := charKeys(diacriticLower)
		keys = t.appendDiacritic(keys, m)
		keys = append(keys, backspaceKey())
		return Layout{Cols: gridCols, Keys: keys}
	case FamilyCyrillicUpper:
		return Layout{Cols: wideGridCols, Wide: true, Keys: t.wideKeys(m, cyrillicUpper)}
	case FamilyCyrillicLower:
		return Layout{Cols: wideGridCols, Wide: true, Keys: t.wideKeys(m, cyrillicLower)}
	case FamilyHangul:
		if t.Has(FamilyHangul) {
			return Layout{Cols: wideGridCols, Wide: true, Keys: t.wideKeys(m, hangulJamo)}
		}
	case FamilyCoordinates:
		return Layout{Cols: gridCols, Keys: coordinateKeys(m)}
	}
	panic("navkbd: no layout for " + m.String())
}

func (t *ModeTable) latinKeys(m Mode, letters []string) []Key {
	keys := charKeys(letters)
	keys = append(keys, spaceKey())
	if m.Variant == VariantPlain {
		keys = append(keys, charKey("-"), charKey("'"), collapseKey(m))
	} else {
		keys = append(keys, collapseKey(m))
		keys = t.appendCase(keys, m)
		keys = append(keys, t.jumpKey(m.Jump(FamilyNumeric)))
	}
	keys = t.appendDiacritic(keys, m)
	return append(keys, backspaceKey())
}

func (t *ModeTable) numericKeys(m Mode, locale string) []Key {
	keys := charKeys(digits)
	keys = append(keys, charKeys(symbols)...)
	keys = append(keys, spacer())

	if m.Variant == VariantPlain {
		keys = append(keys, spacer(), charKey("-"), charKey("'"), collapseKey(m), spacer(), spacer())
	} else {
		keys = append(keys, spacer())
		if t.Has(FamilyHangul) && isHangulLocale(locale) {
			keys = append(keys, spacer(), t.jumpKey(m.Jump(FamilyHangul)))
		} else {
			keys = append(keys,
				t.jumpKey(m.Jump(FamilyCyrillicUpper)),
				t.jumpKey(m.Jump(FamilyCyrillicLower)))
		}
		keys = append(keys,
			collapseKey(m),
			t.jumpKey(m.Jump(FamilyLatinUpper)),
			t.jumpKey(m.Jump(FamilyLatinLower)))
	}

	keys = t.appendDiacritic(keys, m)
	return append(keys, backspaceKey())
}

// wideKeys lays out a 36 letter script in the nine column grid.
func (t *ModeTable) wideKeys(m Mode, letters []string) []Key {
	keys := charKeys(letters)
	keys = append(keys, spacer(), spacer(), spacer(), spaceKey(), collapseKey(m))
	keys = t.appendCase(keys, m)
	keys = append(keys, t.jumpKey(m.Jump(FamilyNumeric)), spacer())
	return append(keys, backspaceKey())
}

func coordinateKeys(m Mode) []Key {
	keys := charKeys(strings.Fields("0 1 2 3 4"))
	keys = append(keys, spacer())
	keys = append(keys, charKeys(strings.Fields("N S 5 6 7 8 9"))...)
	keys = append(keys, spacer())
	keys = append(keys, charKeys(strings.Fields("E W ° . '"))...)
	keys = append(keys, spaceKey(), spacer(), collapseKey(m), spacer())
	return append(keys, backspaceKey())
}

func (t *ModeTable) appendCase(keys []Key, m Mode) []Key {
	if to, ok := t.CaseTarget(m); ok {
		keys = append(keys, t.jumpKey(to))
	}
	return keys
}

func (t *ModeTable) appendDiacritic(keys []Key, m Mode) []Key {
	if to, ok := t.DiacriticTarget(m); ok {
		keys = append(keys, t.jumpKey(to))
	}
	return keys
}
