package hangul

import (
	"strings"
	"unicode/utf8"
)

// Disassemble breaks down text into atomic jamo. Compound vowels and compound
// codas are split into their components, geminates are left intact.
// Compatibility jamo are expanded in the same way, all other characters
// are copied.
//
//    Disassemble("값이 비싸다")  =>  "ㄱㅏㅂㅅㅇㅣ ㅂㅣㅆㅏㄷㅏ"
//
func Disassemble(text string) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 3)
	for _, r := range text {
		if s, ok := Decompose(r); ok {
			b.WriteRune(s.Onset)
			b.WriteString(DecomposeNucleus(s.Nucleus))
			if s.HasCoda() {
				c, _ := utf8.DecodeRuneInString(s.Coda)
				b.WriteString(DecomposeCoda(c))
			}
		} else if IsCompatJamo(r) {
			b.WriteString(decomposeJamo(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DisassembleToGroups works like Disassemble, but keeps the jamo of every
// input character in a separate group. This is useful for clients which
// have to know how many jamo an input character consists of, e.g., for
// deleting text jamo by jamo.
//
//    DisassembleToGroups("사과")  =>  [[ㅅ ㅏ] [ㄱ ㅗ ㅏ]]
//
func DisassembleToGroups(text string) [][]string {
	groups := make([][]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		var group []string
		if s, ok := Decompose(r); ok {
			group = appendJamo(group, s.Onset)
			group = appendJamo(group, s.Nucleus)
			if s.HasCoda() {
				c, _ := utf8.DecodeRuneInString(s.Coda)
				group = appendJamo(group, c)
			}
		} else if IsCompatJamo(r) {
			group = appendJamo(group, r)
		} else {
			group = append(group, string(r))
		}
		groups = append(groups, group)
	}
	return groups
}

func appendJamo(group []string, r rune) []string {
	for _, j := range decomposeJamo(r) {
		group = append(group, string(j))
	}
	return group
}
