package hangul

import (
	"strings"
	"unicode/utf8"
)

// CodaVariant selects which kinds of final consonants HasCoda will accept.
type CodaVariant int8

// Coda variants for HasCoda.
const (
	AnyCoda    CodaVariant = iota // any final consonant
	SingleCoda                    // a simple consonant or a geminate (ㄱ, ㄲ)
	DoubleCoda                    // a compound coda of two distinct consonants (ㄳ)
)

// HasCoda is a predicate: does r end with a final consonant (batchim)?
// Runes other than precomposed syllables never have a coda. An optional
// variant restricts the kind of coda accepted.
//
//    HasCoda('값')              =>  true
//    HasCoda('값', SingleCoda)  =>  false
//    HasCoda('값', DoubleCoda)  =>  true
//
func HasCoda(r rune, variant ...CodaVariant) bool {
	_, _, c, ok := indices(r)
	if !ok || c == 0 {
		return false
	}
	v := AnyCoda
	if len(variant) > 0 {
		v = variant[0]
	}
	_, compound := compoundCodas[codas[c]]
	switch v {
	case SingleCoda:
		return !compound
	case DoubleCoda:
		return compound
	}
	return true
}

// Onsets extracts the initial consonants of the syllables in s. Other
// characters are kept as they are. This is what Korean input methods use
// for "chosung search".
//
//    Onsets("라면 먹자!")  =>  "ㄹㅁ ㅁㅈ!"
//
func Onsets(s string) string {
	var b strings.Builder
	for _, r := range s {
		if o, _, _, ok := indices(r); ok {
			b.WriteRune(onsets[o])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// OnsetIncludes is a predicate: does the onset sequence of s contain query?
// query is expected to consist of onset jamo; an empty query matches every
// string.
//
//    OnsetIncludes("라면", "ㄹㅁ")  =>  true
//
func OnsetIncludes(s, query string) bool {
	return strings.Contains(Onsets(s), query)
}

// RemoveLastCharacter removes the last jamo from text, the way the backspace
// key of a Hangul input method does. Syllables shrink one jamo at a time,
// compound codas and compound vowels lose their second component first.
//
//    RemoveLastCharacter("안녕하세요 값")  =>  "안녕하세요 갑"
//    RemoveLastCharacter("전화")         =>  "전호"
//    RemoveLastCharacter("가")           =>  "ㄱ"
//
func RemoveLastCharacter(text string) string {
	last, size := utf8.DecodeLastRuneInString(text)
	if size == 0 {
		return text
	}
	prefix := text[:len(text)-size]
	o, n, c, ok := indices(last)
	if !ok {
		if IsCompatJamo(last) {
			if parts := []rune(decomposeJamo(last)); len(parts) == 2 {
				return prefix + string(parts[0])
			}
		}
		return prefix
	}
	if c > 0 {
		if parts, ok := compoundCodas[codas[c]]; ok {
			first, _ := utf8.DecodeRuneInString(parts)
			return prefix + string(compose(o, n, jamo().codaIndex[first]))
		}
		return prefix + string(compose(o, n, 0))
	}
	if parts, ok := compoundNuclei[nuclei[n]]; ok {
		first, _ := utf8.DecodeRuneInString(parts)
		return prefix + string(compose(o, jamo().nucleusIndex[first], 0))
	}
	return prefix + string(onsets[o])
}
