package navkbd

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Region codes of countries writing in Cyrillic script.
var cyrillicRegions = []string{"RU", "UA", "BY", "RS", "BG", "MK", "KZ", "KG", "TJ", "MN"}

const hangulRegion = "KR"

func upperCode(s string) string {
	return cases.Upper(language.Und).String(s)
}

// InitialMode picks the keyboard family for a language or country code
// such as "ru", "ru_RU.UTF-8" or "BY".
//
// Every check runs and a later match overrides an earlier one, so a code
// containing both a Cyrillic region and KR yields Hangul when enabled.
func (t *ModeTable) InitialMode(lang string) Mode {
	lang = upperCode(lang)

	family := FamilyLatinUpper
	for _, region := range cyrillicRegions {
		if strings.Contains(lang, region) {
			family = FamilyCyrillicUpper
		}
	}
	if t.Has(FamilyHangul) && strings.Contains(lang, hangulRegion) {
		family = FamilyHangul
	}

	return Mode{Family: family}
}

// InitialCode is InitialMode as an integer mode code.
func (t *ModeTable) InitialCode(lang string) int {
	return t.Code(t.InitialMode(lang))
}

func isHangulLocale(locale string) bool {
	return strings.Contains(upperCode(locale), hangulRegion)
}
