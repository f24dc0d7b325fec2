package hangul

import (
	"unicode"
	"unicode/utf8"
)

// IsHangul returns true if r is a precomposed Hangul syllable.
func IsHangul(r rune) bool {
	return r >= SyllableFirst && r <= SyllableLast
}

// IsCompatJamo returns true if r is a Hangul compatibility jamo,
// i.e. in the range U+3131…U+3163.
func IsCompatJamo(r rune) bool {
	return unicode.Is(CompatibilityJamo, r)
}

// IsHangulString returns true if s is non-empty and consists of precomposed
// syllables only. White space is permitted.
func IsHangulString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsHangul(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// CanBeOnset is a predicate: may r start a syllable?
func CanBeOnset(r rune) bool {
	_, ok := jamo().onsetIndex[r]
	return ok
}

// CanBeNucleus is a predicate: may r be the vowel of a syllable?
// Compound vowels given as a single jamo (ㅘ) are valid nuclei.
func CanBeNucleus(r rune) bool {
	_, ok := jamo().nucleusIndex[r]
	return ok
}

// CanBeCoda is a predicate: may r be the final consonant of a syllable?
// Compound codas given as a single jamo (ㄳ) are valid codas. Note that ㄸ, ㅃ
// and ㅉ may never end a syllable.
func CanBeCoda(r rune) bool {
	_, ok := jamo().codaIndex[r]
	return ok
}

// CanBeNucleusString is the string version of CanBeNucleus. A string of two
// vowels is valid if and only if it forms one of the 7 compound vowels.
func CanBeNucleusString(s string) bool {
	switch utf8.RuneCountInString(s) {
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return CanBeNucleus(r)
	case 2:
		_, ok := jamo().composeNucleus[s]
		return ok
	}
	return false
}

// CanBeCodaString is the string version of CanBeCoda. A string of two
// consonants is valid if and only if it forms one of the 11 compound codas.
func CanBeCodaString(s string) bool {
	switch utf8.RuneCountInString(s) {
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return CanBeCoda(r)
	case 2:
		_, ok := jamo().composeCoda[s]
		return ok
	}
	return false
}

// DecomposeCoda returns the two consonants of a compound coda.
// Any other rune is returned unchanged, including geminates.
//
//    DecomposeCoda('ㄳ')  =>  "ㄱㅅ"
//    DecomposeCoda('ㄲ')  =>  "ㄲ"
//
func DecomposeCoda(r rune) string {
	if s, ok := compoundCodas[r]; ok {
		return s
	}
	return string(r)
}

// DecomposeNucleus returns the two vowels of a compound vowel.
// Any other rune is returned unchanged.
func DecomposeNucleus(r rune) string {
	if s, ok := compoundNuclei[r]; ok {
		return s
	}
	return string(r)
}

// ComposeCoda is the inverse of DecomposeCoda for compound codas.
// It returns false if s does not denote a compound coda.
func ComposeCoda(s string) (rune, bool) {
	r, ok := jamo().composeCoda[s]
	return r, ok
}

// ComposeNucleus is the inverse of DecomposeNucleus for compound vowels.
// It returns false if s does not denote a compound vowel.
func ComposeNucleus(s string) (rune, bool) {
	r, ok := jamo().composeNucleus[s]
	return r, ok
}

// decomposeJamo expands compound codas and compound vowels.
func decomposeJamo(r rune) string {
	if s, ok := compoundCodas[r]; ok {
		return s
	}
	return DecomposeNucleus(r)
}
