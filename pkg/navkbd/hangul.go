package navkbd

import (
	"golang.org/x/text/unicode/norm"

	"github.com/pawndev/navkbd/pkg/navkbd/internal"
)

// Compatibility jamo in conjoining order.
var (
	choseong  = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	jongseong = []rune("ㄱㄲㄳㄴㄵㄶㄷㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅄㅅㅆㅇㅈㅊㅋㅌㅍㅎ")
)

const (
	compatVowelFirst = 'ㅏ'
	compatVowelLast  = 'ㅣ'

	conjoiningL = 0x1100
	conjoiningV = 0x1161
	conjoiningT = 0x11A8
)

var compoundVowels = map[[2]rune]rune{
	{'ㅗ', 'ㅏ'}: 'ㅘ',
	{'ㅗ', 'ㅐ'}: 'ㅙ',
	{'ㅗ', 'ㅣ'}: 'ㅚ',
	{'ㅜ', 'ㅓ'}: 'ㅝ',
	{'ㅜ', 'ㅔ'}: 'ㅞ',
	{'ㅜ', 'ㅣ'}: 'ㅟ',
	{'ㅡ', 'ㅣ'}: 'ㅢ',
}

var compoundFinals = map[[2]rune]rune{
	{'ㄱ', 'ㅅ'}: 'ㄳ',
	{'ㄴ', 'ㅈ'}: 'ㄵ',
	{'ㄴ', 'ㅎ'}: 'ㄶ',
	{'ㄹ', 'ㄱ'}: 'ㄺ',
	{'ㄹ', 'ㅁ'}: 'ㄻ',
	{'ㄹ', 'ㅂ'}: 'ㄼ',
	{'ㄹ', 'ㅅ'}: 'ㄽ',
	{'ㄹ', 'ㅌ'}: 'ㄾ',
	{'ㄹ', 'ㅍ'}: 'ㄿ',
	{'ㄹ', 'ㅎ'}: 'ㅀ',
	{'ㅂ', 'ㅅ'}: 'ㅄ',
}

func indexOf(set []rune, r rune) int {
	for i, c := range set {
		if c == r {
			return i
		}
	}
	return -1
}

func isConsonant(r rune) bool {
	return indexOf(choseong, r) >= 0
}

func isVowel(r rune) bool {
	return r >= compatVowelFirst && r <= compatVowelLast
}

func canBeFinal(r rune) bool {
	return indexOf(jongseong, r) >= 0
}

// splitFinal undoes a compound final, returning the part that stays and
// the part that moves on to the next syllable.
func splitFinal(t rune) (rune, rune) {
	for pair, compound := range compoundFinals {
		if compound == t {
			return pair[0], pair[1]
		}
	}
	return 0, t
}

func splitVowel(v rune) (rune, bool) {
	for pair, compound := range compoundVowels {
		if compound == v {
			return pair[0], true
		}
	}
	return 0, false
}

// syllable is the composition in progress. Zero fields are absent.
type syllable struct {
	initial rune
	medial  rune
	final   rune
}

func (s syllable) empty() bool {
	return s.initial == 0 && s.medial == 0 && s.final == 0
}

// text renders the syllable, composing conjoining jamo with NFC when it
// has both an initial and a medial.
func (s syllable) text() string {
	switch {
	case s.empty():
		return ""
	case s.initial == 0:
		return string(s.medial)
	case s.medial == 0:
		return string(s.initial)
	}

	jamo := []rune{
		conjoiningL + rune(indexOf(choseong, s.initial)),
		conjoiningV + (s.medial - compatVowelFirst),
	}
	if s.final != 0 {
		jamo = append(jamo, conjoiningT+rune(indexOf(jongseong, s.final)))
	}
	return norm.NFC.String(string(jamo))
}

// HangulComposer assembles dubeolsik jamo keystrokes into syllables. The
// syllable in progress is shown in the target and replaced, via
// Backspace, each time it grows.
type HangulComposer struct {
	current syllable
	shown   string
}

func NewHangulComposer() *HangulComposer {
	return &HangulComposer{}
}

// Preedit is the syllable currently being composed.
func (c *HangulComposer) Preedit() string {
	return c.current.text()
}

func (c *HangulComposer) Feed(target TextTarget, text string) {
	runes := []rune(text)
	if len(runes) != 1 {
		c.Flush(target)
		target.Type(text)
		return
	}

	r := runes[0]
	switch {
	case text == Backspace:
		c.backspace(target)
	case isConsonant(r):
		c.consonant(target, r)
	case isVowel(r):
		c.vowel(target, r)
	default:
		c.Flush(target)
		target.Type(text)
	}
}

func (c *HangulComposer) Flush(target TextTarget) {
	if c.current.empty() {
		return
	}
	internal.GetInternalLogger().Debug("Hangul composition committed", "syllable", c.current.text())
	c.current = syllable{}
	c.shown = ""
}

func (c *HangulComposer) consonant(target TextTarget, r rune) {
	s := c.current
	switch {
	case s.initial != 0 && s.medial != 0 && s.final == 0 && canBeFinal(r):
		s.final = r
	case s.final != 0:
		if compound, ok := compoundFinals[[2]rune{s.final, r}]; ok {
			s.final = compound
			break
		}
		c.commit()
		s = syllable{initial: r}
	default:
		c.commit()
		s = syllable{initial: r}
	}
	c.update(target, s)
}

func (c *HangulComposer) vowel(target TextTarget, r rune) {
	s := c.current
	switch {
	case s.initial != 0 && s.medial == 0:
		s.medial = r
	case s.final != 0:
		keep, move := splitFinal(s.final)
		s.final = keep
		c.update(target, s)
		c.commit()
		s = syllable{initial: move, medial: r}
	case s.medial != 0 && s.final == 0:
		if compound, ok := compoundVowels[[2]rune{s.medial, r}]; ok {
			s.medial = compound
			break
		}
		c.commit()
		s = syllable{medial: r}
	default:
		c.commit()
		s = syllable{medial: r}
	}
	c.update(target, s)
}

func (c *HangulComposer) backspace(target TextTarget) {
	s := c.current
	switch {
	case s.empty():
		target.Type(Backspace)
		return
	case s.final != 0:
		keep, _ := splitFinal(s.final)
		s.final = keep
	case s.medial != 0:
		if first, ok := splitVowel(s.medial); ok {
			s.medial = first
		} else {
			s.medial = 0
		}
	default:
		s.initial = 0
	}
	c.update(target, s)
}

// commit leaves the shown syllable in the target and starts a new one.
func (c *HangulComposer) commit() {
	c.current = syllable{}
	c.shown = ""
}

func (c *HangulComposer) update(target TextTarget, s syllable) {
	next := s.text()
	if next != c.shown {
		for range []rune(c.shown) {
			target.Type(Backspace)
		}
		if next != "" {
			target.Type(next)
		}
	}
	c.current = s
	c.shown = next
}
