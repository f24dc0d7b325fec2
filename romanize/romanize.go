package romanize

import (
	"strings"

	"github.com/npillmayer/hangul"
	"github.com/npillmayer/hangul/pronounce"
)

var onsetLetters = map[rune]string{
	'ㄱ': "g", 'ㄲ': "kk", 'ㅋ': "k",
	'ㄷ': "d", 'ㄸ': "tt", 'ㅌ': "t",
	'ㅂ': "b", 'ㅃ': "pp", 'ㅍ': "p",
	'ㅈ': "j", 'ㅉ': "jj", 'ㅊ': "ch",
	'ㅅ': "s", 'ㅆ': "ss", 'ㅎ': "h",
	'ㄴ': "n", 'ㅁ': "m", 'ㅇ': "", 'ㄹ': "r",
}

var nucleusLetters = map[rune]string{
	'ㅏ': "a", 'ㅓ': "eo", 'ㅗ': "o", 'ㅜ': "u", 'ㅡ': "eu", 'ㅣ': "i",
	'ㅐ': "ae", 'ㅔ': "e", 'ㅚ': "oe", 'ㅟ': "wi",
	'ㅑ': "ya", 'ㅕ': "yeo", 'ㅛ': "yo", 'ㅠ': "yu", 'ㅒ': "yae", 'ㅖ': "ye",
	'ㅘ': "wa", 'ㅙ': "wae", 'ㅝ': "wo", 'ㅞ': "we", 'ㅢ': "ui",
}

// After conversion to standard pronunciation only the seven representative
// codas are left. Compound codas have no entry.
var codaLetters = map[string]string{
	"ㄱ": "k", "ㄴ": "n", "ㄷ": "t", "ㄹ": "l", "ㅁ": "m", "ㅂ": "p", "ㅇ": "ng",
}

// Romanize transcribes text into Latin letters.
//
//    Romanize("한국은korea")  =>  "hangugeunkorea"
//
func Romanize(text string) string {
	if text == "" {
		return ""
	}
	pron := []rune(pronounce.StandardizeWith(text, false))
	tracer().Debugf("romanizing pronunciation %q", string(pron))
	var b strings.Builder
	b.Grow(2 * len(pron))
	for i, r := range pron {
		s, ok := hangul.Decompose(r)
		if !ok {
			b.WriteString(romanizeRune(r))
			continue
		}
		onset := onsetLetters[s.Onset]
		if s.Onset == 'ㄹ' && i > 0 && followsLateral(pron[i-1]) {
			onset = "l"
		}
		b.WriteString(onset)
		b.WriteString(nucleusLetters[s.Nucleus])
		b.WriteString(codaLetters[s.Coda])
	}
	return b.String()
}

// followsLateral is true if r is a syllable with coda ㄹ.
func followsLateral(r rune) bool {
	s, ok := hangul.Decompose(r)
	return ok && s.Coda == "ㄹ"
}

// romanizeRune transcribes a stand-alone rune. Vowels and onset consonants
// are transcribed, every other rune is copied.
func romanizeRune(r rune) string {
	if l, ok := nucleusLetters[r]; ok {
		return l
	}
	if hangul.CanBeOnset(r) {
		return onsetLetters[r]
	}
	return string(r)
}
