package josa

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/hangul"
	"github.com/samber/lo"
)

// ErrUnknownParticle is returned by Lookup for patterns it does not know.
var ErrUnknownParticle = errors.New("unknown particle")

// Particle is a postpositional particle with its two allomorphs.
// WithoutCoda may be empty for particles which are dropped after vowels.
type Particle struct {
	WithCoda    string // form used after a final consonant
	WithoutCoda string // form used after a vowel
}

func (p Particle) String() string {
	return p.WithCoda + "/" + p.WithoutCoda
}

// Predefined particles.
var (
	EulReul          = Particle{"을", "를"}      // object marker
	IGa              = Particle{"이", "가"}      // subject marker
	EunNeun          = Particle{"은", "는"}      // topic marker
	GwaWa            = Particle{"과", "와"}      // conjunction, comparison
	AYa              = Particle{"아", "야"}      // vocative
	IEmpty           = Particle{"이", ""}       // copula stem, 철수이다 vs 영희다
	EuroRo           = Particle{"으로", "로"}     // direction
	InaNa            = Particle{"이나", "나"}     // choice
	IranRan          = Particle{"이란", "란"}     // topic, definition
	IrangRang        = Particle{"이랑", "랑"}     // colloquial conjunction
	IeyoYeyo         = Particle{"이에요", "예요"}   // polite copula
	EuroseoRoseo     = Particle{"으로서", "로서"}   // capacity
	EurosseoRosseo   = Particle{"으로써", "로써"}   // means
	EurobuteoRobuteo = Particle{"으로부터", "로부터"} // origin
	IraRa            = Particle{"이라", "라"}     // quotation, topic
)

// patterns maps dictionary notation to particles.
var patterns = map[string]Particle{
	"을/를":      EulReul,
	"이/가":      IGa,
	"은/는":      EunNeun,
	"와/과":      GwaWa,
	"과/와":      GwaWa,
	"아/야":      AYa,
	"이/":       IEmpty,
	"으로/로":     EuroRo,
	"이나/나":     InaNa,
	"이란/란":     IranRan,
	"이랑/랑":     IrangRang,
	"이에요/예요":   IeyoYeyo,
	"으로서/로서":   EuroseoRoseo,
	"으로써/로써":   EurosseoRosseo,
	"으로부터/로부터": EurobuteoRobuteo,
	"이라/라":     IraRa,
}

// Lookup finds a particle by its dictionary notation, e.g. "을/를".
// The notation may start with either of the two forms.
func Lookup(pattern string) (Particle, error) {
	p, ok := patterns[strings.TrimSpace(pattern)]
	if !ok {
		return Particle{}, fmt.Errorf("%w: %q", ErrUnknownParticle, pattern)
	}
	return p, nil
}

// Patterns returns the notations known to Lookup, sorted.
func Patterns() []string {
	keys := lo.Keys(patterns)
	sort.Strings(keys)
	return keys
}

// Attach appends the form of particle p which fits word.
// Attaching to an empty word results in an empty string.
func Attach(word string, p Particle) string {
	if word == "" {
		return ""
	}
	return word + Pick(word, p)
}

// Pick returns the form of particle p which fits word, without attaching it.
// For an empty word Pick returns the form used after a final consonant.
//
// Rules:
//   - Particles of the 로 family (으로/로, 으로서/로서, …) use their short
//     form after ㄹ, as ㄹ behaves like a vowel here: 서울로.
//   - 이에요/예요 contracts to 예요 after words ending in 이: 때밀이예요.
//   - Abbreviations in upper-case Latin letters are judged by the Korean
//     reading of their last letter: URL을, CSS를.
func Pick(word string, p Particle) string {
	if word == "" {
		return p.WithCoda
	}
	if abbreviation.MatchString(word) {
		last, _ := utf8.DecodeLastRuneInString(word)
		word = letterNames[last]
		tracer().Debugf("abbreviation judged by reading %q", word)
	}
	last, _ := utf8.DecodeLastRuneInString(word)
	if strings.HasPrefix(p.WithoutCoda, "로") {
		if s, ok := hangul.Decompose(last); ok && s.Coda == "ㄹ" {
			return p.WithoutCoda
		}
	}
	if p == IeyoYeyo && strings.HasSuffix(word, "이") {
		return p.WithoutCoda
	}
	if hangul.HasCoda(last) {
		return p.WithCoda
	}
	return p.WithoutCoda
}

var abbreviation = regexp.MustCompile(`^[A-Z]+$`)

// letterNames holds the Korean reading of Latin letters.
var letterNames = map[rune]string{
	'A': "에이", 'B': "비", 'C': "씨", 'D': "디", 'E': "이", 'F': "에프",
	'G': "지", 'H': "에이치", 'I': "아이", 'J': "제이", 'K': "케이", 'L': "엘",
	'M': "엠", 'N': "엔", 'O': "오", 'P': "피", 'Q': "큐", 'R': "알",
	'S': "에스", 'T': "티", 'U': "유", 'V': "브이", 'W': "더블유", 'X': "엑스",
	'Y': "와이", 'Z': "지",
}
