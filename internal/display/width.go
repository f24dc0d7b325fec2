package display

import (
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Context represents information about the output environment.
type Context struct {
	EastAsian bool            // render characters of ambiguous width wide
	Script    language.Script // ISO 15924 script identifier
	Locale    string          // IETF locale string
}

// EastAsianContext is a context for Korean terminals.
var EastAsianContext = &Context{
	EastAsian: true,
	Script:    language.MustParseScript("Kore"),
	Locale:    "ko-KR",
}

// LatinContext is a context for western terminals.
var LatinContext = &Context{
	Script: language.MustParseScript("Latn"),
	Locale: "en-US",
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.English, // The first language is used as fallback.
	language.Korean,
	language.Chinese,
	language.Japanese,
})

// NewContext creates a context for a locale string, e.g. "ko-KR". Locales
// of Chinese, Japanese and Korean result in an East Asian context.
func NewContext(locale string) *Context {
	lang, err := language.Parse(locale)
	if err != nil {
		tracer().Errorf("cannot parse locale %q: %v", locale, err)
		return LatinContext
	}
	script, _ := lang.Script()
	_, index, confidence := eaMatch.Match(lang)
	return &Context{
		EastAsian: index > 0 && confidence != language.No,
		Script:    script,
		Locale:    locale,
	}
}

// ContextFromEnvironment creates a context from the user's locale settings.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale: %v", err)
		userLocale = "en-US"
	}
	tracer().Debugf("user locale is %v", userLocale)
	return NewContext(userLocale)
}

// Conjoining jamo vowels and final consonants are rendered in the cell of
// the leading consonant.
var conjoiningJamo = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1160, 0x11ff, 1},
		{0xd7b0, 0xd7ff, 1},
	},
}

// Width returns the number of terminal columns occupied by r: 0, 1 or 2.
// If ctx is nil, LatinContext is assumed.
func Width(r rune, ctx *Context) int {
	if ctx == nil {
		ctx = LatinContext
	}
	if r == 0 || unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Cc, conjoiningJamo) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		if ctx.EastAsian {
			return 2
		}
	}
	return 1
}

// StringWidth returns the number of terminal columns occupied by s.
func StringWidth(s string, ctx *Context) int {
	w := 0
	for _, r := range s {
		w += Width(r, ctx)
	}
	return w
}
