package pronounce

import "github.com/emirpasic/gods/sets/hashset"

// Codas are represented in their expanded form, i.e. ㄳ is "ㄱㅅ".

// silentOnset is ㅇ in onset position, which has no sound value.
const silentOnset = 'ㅇ'

// Names of the jamo (rule 16). The names of ㄷ ㅈ ㅊ ㅋ ㅌ ㅍ ㅎ end with a
// coda which is linked irregularly.
var (
	jamoNames          = hashset.New("기역", "니은", "리을", "미음", "비읍", "시옷", "이응")
	irregularJamoNames = hashset.New("디귿", "지읒", "치읓", "키읔", "티읕", "피읖", "히읗")
)

var irregularJamoNameLinking = map[rune]rune{
	'ㄷ': 'ㅅ', 'ㅈ': 'ㅅ', 'ㅊ': 'ㅅ', 'ㅌ': 'ㅅ', 'ㅎ': 'ㅅ',
	'ㅋ': 'ㄱ',
	'ㅍ': 'ㅂ',
}

// Palatalization (rule 17).
var palatalized = map[string]rune{
	"ㄷ":  'ㅈ',
	"ㅌ":  'ㅊ',
	"ㄹㅌ": 'ㅊ',
}

// ㄴ/ㄹ epenthesis: a ㄴ or ㄹ is inserted between a coda and a following
// y-vowel or ㅣ, if the current syllable has one of epentheticVowels.
var (
	epentheticVowels     = hashset.New('ㅏ', 'ㅐ', 'ㅓ', 'ㅔ', 'ㅗ', 'ㅜ', 'ㅟ')
	epenthesisTriggers   = hashset.New('ㅑ', 'ㅕ', 'ㅛ', 'ㅠ', 'ㅣ', 'ㅒ', 'ㅖ')
	epenthesisToN        = hashset.New("ㄱ", "ㄴ", "ㄷ", "ㅁ", "ㅂ", "ㅇ")
	epenthesisToL        = hashset.New("ㄹ")
	nasalsBeforeLateral  = hashset.New("ㅁ", "ㅇ", "ㄱ", "ㅂ") // rule 19
	nasalizedToNg        = hashset.New("ㄱ", "ㄲ", "ㅋ", "ㄱㅅ", "ㄹㄱ")
	nasalizedToN         = hashset.New("ㄷ", "ㅅ", "ㅆ", "ㅈ", "ㅊ", "ㅌ", "ㅎ")
	nasalizedToM         = hashset.New("ㅂ", "ㅍ", "ㄹㅂ", "ㄹㅍ", "ㅂㅅ")
	lateralizingCodas    = hashset.New("ㄹ", "ㄹㅎ", "ㄹㅌ")
	hieutCodas           = hashset.New("ㅎ", "ㄴㅎ", "ㄹㅎ")
	hieutClusterCodas    = hashset.New("ㄴㅎ", "ㄹㅎ")
	aspiratedBeforeHieut = hashset.New("ㄱ", "ㄹㄱ", "ㄷ", "ㅂ", "ㄹㅂ", "ㅈ", "ㄴㅈ")
)

// Aspiration (rule 12).
var aspiratedAfterHieut = map[rune]rune{
	'ㄱ': 'ㅋ',
	'ㄷ': 'ㅌ',
	'ㅈ': 'ㅊ',
	'ㅅ': 'ㅆ',
}

var aspiratedOnset = map[string]rune{
	"ㄱ":  'ㅋ',
	"ㄹㄱ": 'ㅋ',
	"ㄷ":  'ㅌ',
	"ㅂ":  'ㅍ',
	"ㄹㅂ": 'ㅍ',
	"ㅈ":  'ㅊ',
	"ㄴㅈ": 'ㅊ',
}

// Neutralization of final consonants (rules 9 to 11).
var representativeCoda = map[string]string{
	"ㄲ": "ㄱ", "ㅋ": "ㄱ", "ㄱㅅ": "ㄱ", "ㄹㄱ": "ㄱ",
	"ㅅ": "ㄷ", "ㅆ": "ㄷ", "ㅈ": "ㄷ", "ㅊ": "ㄷ", "ㅌ": "ㄷ",
	"ㅍ": "ㅂ", "ㅂㅅ": "ㅂ", "ㄹㅍ": "ㅂ",
	"ㄴㅈ": "ㄴ",
	"ㄹㅂ": "ㄹ", "ㄹㅅ": "ㄹ", "ㄹㅌ": "ㄹ",
	"ㄹㅁ": "ㅁ",
}

// Tensification (rules 23 to 25).
var tensed = map[rune]rune{
	'ㄱ': 'ㄲ',
	'ㄷ': 'ㄸ',
	'ㅂ': 'ㅃ',
	'ㅅ': 'ㅆ',
	'ㅈ': 'ㅉ',
}

var (
	tensingCodas = hashset.New(
		"ㄱ", "ㄲ", "ㅋ", "ㄱㅅ", "ㄹㄱ",
		"ㄷ", "ㅅ", "ㅆ", "ㅈ", "ㅊ", "ㅌ",
		"ㅂ", "ㅍ", "ㄹㅂ", "ㄹㅍ", "ㅂㅅ")
	stemCodas = hashset.New("ㄴ", "ㄴㅈ", "ㅁ", "ㄹㅁ", "ㄹㅂ", "ㄹㅌ")
)

// Consonant clusters and their simplification.
var clusterSimplified = map[string]string{
	"ㄱㅅ": "ㄱ",
	"ㄴㅈ": "ㄴ",
	"ㄴㅎ": "ㄴ",
	"ㄹㄱ": "ㄱ",
	"ㄹㅁ": "ㅁ",
	"ㄹㅂ": "ㄹ",
	"ㄹㅅ": "ㄹ",
	"ㄹㅌ": "ㄹ",
	"ㄹㅍ": "ㄹ",
	"ㄹㅎ": "ㄹ",
	"ㅂㅅ": "ㅂ",
}

func isCluster(coda string) bool {
	_, ok := clusterSimplified[coda]
	return ok
}
