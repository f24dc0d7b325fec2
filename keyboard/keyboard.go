package keyboard

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/hangul"
	"github.com/samber/lo"
)

// Dubeolsik layout, unshifted.
var keys = map[rune]rune{
	'q': 'ㅂ', 'w': 'ㅈ', 'e': 'ㄷ', 'r': 'ㄱ', 't': 'ㅅ',
	'y': 'ㅛ', 'u': 'ㅕ', 'i': 'ㅑ', 'o': 'ㅐ', 'p': 'ㅔ',
	'a': 'ㅁ', 's': 'ㄴ', 'd': 'ㅇ', 'f': 'ㄹ', 'g': 'ㅎ',
	'h': 'ㅗ', 'j': 'ㅓ', 'k': 'ㅏ', 'l': 'ㅣ',
	'z': 'ㅋ', 'x': 'ㅌ', 'c': 'ㅊ', 'v': 'ㅍ', 'b': 'ㅠ', 'n': 'ㅜ', 'm': 'ㅡ',
}

// Keys typing a different jamo with Shift pressed.
var shiftedKeys = map[rune]rune{
	'Q': 'ㅃ', 'W': 'ㅉ', 'E': 'ㄸ', 'R': 'ㄲ', 'T': 'ㅆ',
	'O': 'ㅒ', 'P': 'ㅖ',
}

var jamoKeys map[rune]rune
var invertOnce sync.Once

// keyFor returns the key typing jamo r.
func keyFor(r rune) (rune, bool) {
	invertOnce.Do(func() {
		jamoKeys = lo.Assign(lo.Invert(keys), lo.Invert(shiftedKeys))
	})
	k, ok := jamoKeys[r]
	return k, ok
}

// jamoFor returns the jamo typed by key k.
func jamoFor(k rune) (rune, bool) {
	if j, ok := shiftedKeys[k]; ok {
		return j, true
	}
	j, ok := keys[unicode.ToLower(k)]
	return j, ok
}

// QwertyToJamo converts keystrokes to the jamo printed on the keys.
// Runes which are not Latin letters are copied unchanged.
//
//    QwertyToJamo("RkrEnrl")  =>  "ㄲㅏㄱㄸㅜㄱㅣ"
//
func QwertyToJamo(text string) string {
	return strings.Map(func(r rune) rune {
		if j, ok := jamoFor(r); ok {
			return j
		}
		return r
	}, text)
}

// QwertyToHangul converts keystrokes to jamo and assembles them to
// syllables, like an input method would do.
//
//    QwertyToHangul("dkssud")  =>  "안녕"
//
func QwertyToHangul(text string) string {
	jamo := QwertyToJamo(text)
	tracer().Debugf("keystrokes %q typed jamo %q", text, jamo)
	return hangul.AssembleString(jamo)
}

// JamoToQwerty converts jamo to the keystrokes typing them. Compound
// jamo and syllables are not split; use HangulToQwerty for them.
func JamoToQwerty(text string) string {
	return strings.Map(func(r rune) rune {
		if k, ok := keyFor(r); ok {
			return k
		}
		return r
	}, text)
}

// HangulToQwerty converts Hangul text to the keystrokes typing it.
// Syllables and compound jamo are disassembled first.
//
//    HangulToQwerty("과궈")  =>  "rhkrnj"
//
func HangulToQwerty(text string) string {
	return JamoToQwerty(hangul.Disassemble(text))
}
