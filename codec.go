package hangul

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidJamo is returned by composition functions if a caller supplies
// an onset, nucleus or coda outside of the closed set of jamo.
var ErrInvalidJamo = errors.New("invalid hangul characters")

// Syllable is a precomposed Hangul syllable, split into its components.
// Coda is the empty string for a syllable without a final consonant;
// otherwise it holds a single coda jamo, which may be a compound
// coda like ㄳ.
type Syllable struct {
	Onset   rune
	Nucleus rune
	Coda    string
}

// HasCoda is a predicate: does the syllable end with a final consonant?
func (s Syllable) HasCoda() bool {
	return s.Coda != ""
}

// Rune composes s back into a precomposed syllable.
func (s Syllable) Rune() (rune, error) {
	return CombineCharacter(string(s.Onset), string(s.Nucleus), s.Coda)
}

func (s Syllable) String() string {
	return fmt.Sprintf("(%c,%c,%s)", s.Onset, s.Nucleus, s.Coda)
}

// Decompose splits a precomposed syllable into onset, nucleus and coda.
// If r is not within U+AC00…U+D7A3, Decompose returns false.
func Decompose(r rune) (Syllable, bool) {
	o, n, c, ok := indices(r)
	if !ok {
		return Syllable{}, false
	}
	s := Syllable{Onset: onsets[o], Nucleus: nuclei[n]}
	if c > 0 {
		s.Coda = string(codas[c])
	}
	return s, true
}

// indices returns the table indices of the components of syllable r.
func indices(r rune) (onset, nucleus, coda int, ok bool) {
	if !IsHangul(r) {
		return
	}
	code := int(r - SyllableFirst)
	onset = code / blockSize
	nucleus = (code % blockSize) / CodaCount
	coda = code % CodaCount
	return onset, nucleus, coda, true
}

// compose is the inverse of indices. Callers have to make sure the indices
// are in range; compose panics otherwise.
func compose(onset, nucleus, coda int) rune {
	assert(onset >= 0 && onset < OnsetCount, "onset index out of range")
	assert(nucleus >= 0 && nucleus < NucleusCount, "nucleus index out of range")
	assert(coda >= 0 && coda < CodaCount, "coda index out of range")
	return SyllableFirst + rune((onset*NucleusCount+nucleus)*CodaCount+coda)
}

// CombineCharacter creates a syllable from jamo literals. onset has to be a
// single onset jamo. nucleus may be a single vowel or a pair of vowels which
// form a compound vowel ("ㅗㅏ" → ㅘ). coda is optional and may be empty,
// a single coda jamo or a pair forming a compound coda ("ㅂㅅ" → ㅄ).
//
// If any of the arguments is not a valid jamo for its position,
// CombineCharacter returns an error wrapping ErrInvalidJamo.
//
//    CombineCharacter("ㄱ", "ㅏ", "ㅂㅅ")  =>  '값'
//
func CombineCharacter(onset, nucleus, coda string) (rune, error) {
	o, ok := onsetIndexOf(onset)
	if !ok {
		return 0, invalidJamo(onset, nucleus, coda)
	}
	n, ok := nucleusIndexOf(nucleus)
	if !ok {
		return 0, invalidJamo(onset, nucleus, coda)
	}
	c, ok := codaIndexOf(coda)
	if !ok {
		return 0, invalidJamo(onset, nucleus, coda)
	}
	return compose(o, n, c), nil
}

func invalidJamo(onset, nucleus, coda string) error {
	return fmt.Errorf("%w: %s, %s, %s", ErrInvalidJamo, onset, nucleus, coda)
}

func onsetIndexOf(s string) (int, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	i, ok := jamo().onsetIndex[r]
	return i, ok
}

func nucleusIndexOf(s string) (int, bool) {
	switch utf8.RuneCountInString(s) {
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		i, ok := jamo().nucleusIndex[r]
		return i, ok
	case 2:
		if r, ok := jamo().composeNucleus[s]; ok {
			return jamo().nucleusIndex[r], true
		}
	}
	return 0, false
}

// codaIndexOf returns 0 for an empty coda.
func codaIndexOf(s string) (int, bool) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return 0, true
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		i, ok := jamo().codaIndex[r]
		return i, ok
	case 2:
		if r, ok := jamo().composeCoda[s]; ok {
			return jamo().codaIndex[r], true
		}
	}
	return 0, false
}

// CombineVowels combines two vowels into a compound vowel. If the vowels do not
// form a compound, they are returned as a string of two vowels.
//
//    CombineVowels('ㅗ', 'ㅏ')  =>  "ㅘ"
//    CombineVowels('ㅗ', 'ㅓ')  =>  "ㅗㅓ"
//
func CombineVowels(v1, v2 rune) string {
	pair := string([]rune{v1, v2})
	if r, ok := jamo().composeNucleus[pair]; ok {
		return string(r)
	}
	return pair
}
