package hangul

import (
	"sync"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/rangetable"
)

// Code-point ranges of precomposed syllables and of compatibility jamo.
const (
	SyllableFirst   rune = 0xAC00 // 가
	SyllableLast    rune = 0xD7A3 // 힣
	CompatJamoFirst rune = 0x3131 // ㄱ
	CompatJamoLast  rune = 0x3163 // ㅣ
)

// Sizes of the jamo tables. Coda index 0 means "no coda".
const (
	OnsetCount   = 19
	NucleusCount = 21
	CodaCount    = 28
)

const blockSize = NucleusCount * CodaCount // 588 syllables per onset

var onsets = [OnsetCount]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

var nuclei = [NucleusCount]rune{
	'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
	'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
}

// codas[0] is unused and stands for "no coda".
var codas = [CodaCount]rune{
	0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
	'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// Compound codas consist of two distinct consonants. Geminates like ㄲ or ㅆ
// are atomic and therefore not listed here.
var compoundCodas = map[rune]string{
	'ㄳ': "ㄱㅅ",
	'ㄵ': "ㄴㅈ",
	'ㄶ': "ㄴㅎ",
	'ㄺ': "ㄹㄱ",
	'ㄻ': "ㄹㅁ",
	'ㄼ': "ㄹㅂ",
	'ㄽ': "ㄹㅅ",
	'ㄾ': "ㄹㅌ",
	'ㄿ': "ㄹㅍ",
	'ㅀ': "ㄹㅎ",
	'ㅄ': "ㅂㅅ",
}

var compoundNuclei = map[rune]string{
	'ㅘ': "ㅗㅏ",
	'ㅙ': "ㅗㅐ",
	'ㅚ': "ㅗㅣ",
	'ㅝ': "ㅜㅓ",
	'ㅞ': "ㅜㅔ",
	'ㅟ': "ㅜㅣ",
	'ㅢ': "ㅡㅣ",
}

// jamoTables holds the lookup structures derived from the static tables above.
type jamoTables struct {
	onsetIndex     map[rune]int
	nucleusIndex   map[rune]int
	codaIndex      map[rune]int    // without "no coda"
	composeCoda    map[string]rune // inverse of compoundCodas
	composeNucleus map[string]rune // inverse of compoundNuclei
}

var tables *jamoTables
var setupOnce sync.Once

// jamo returns the jamo lookup tables, creating them on first use.
// (Concurrency-safe).
func jamo() *jamoTables {
	setupOnce.Do(func() {
		t := &jamoTables{
			onsetIndex:     make(map[rune]int, OnsetCount),
			nucleusIndex:   make(map[rune]int, NucleusCount),
			codaIndex:      make(map[rune]int, CodaCount-1),
			composeCoda:    lo.Invert(compoundCodas),
			composeNucleus: lo.Invert(compoundNuclei),
		}
		for i, r := range onsets {
			t.onsetIndex[r] = i
		}
		for i, r := range nuclei {
			t.nucleusIndex[r] = i
		}
		for i, r := range codas[1:] {
			t.codaIndex[r] = i + 1
		}
		tables = t
		tracer().Debugf("jamo tables initialized")
	})
	return tables
}

// Range tables for Hangul letters. CompatibilityJamo contains exactly the
// jamo of the tables of this package, which cover the whole block
// U+3131…U+3163 of Hangul compatibility jamo.
var (
	Syllables = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: uint16(SyllableFirst), Hi: uint16(SyllableLast), Stride: 1},
		},
	}
	CompatibilityJamo = rangetable.New(allJamo()...)
	Letters           = rangetable.Merge(Syllables, CompatibilityJamo)
)

func allJamo() []rune {
	all := make([]rune, 0, 64)
	all = append(all, onsets[:]...)
	all = append(all, nuclei[:]...)
	all = append(all, lo.Keys(compoundCodas)...)
	return all
}
