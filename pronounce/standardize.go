package pronounce

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/hangul"
	"github.com/npillmayer/hangul/segment"
)

// Option configures the pronunciation engine.
type Option func(*config)

type config struct {
	hardConversion bool
}

func defaultConfig() config {
	return config{hardConversion: true}
}

// HardConversion switches tensification (rules 23 to 25) on or off.
// Default is on.
func HardConversion(on bool) Option {
	return func(c *config) {
		c.hardConversion = on
	}
}

// Standardize converts text to its standard pronunciation, written in Hangul.
//
//    Standardize("먹는")         =>  "멍는"
//    Standardize("힘듦이 있다")  =>  "힘드미 읻따"
//
func Standardize(text string, opts ...Option) string {
	conf := defaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}
	return standardize(text, conf)
}

// StandardizeWith is a shortcut for Standardize(text, HardConversion(hardConversion)).
func StandardizeWith(text string, hardConversion bool) string {
	return Standardize(text, HardConversion(hardConversion))
}

func standardize(text string, conf config) string {
	if text == "" {
		return ""
	}
	if pron, ok := Exception(text); ok {
		tracer().P("word", text).Debugf("irregular pronunciation")
		return pron
	}
	var b strings.Builder
	b.Grow(len(text))
	seg := segment.NewSegmenter()
	seg.Init(strings.NewReader(text))
	seg.Buffer(make([]byte, 0, 64), len(text))
	first := true
	for seg.Next() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		ph := newPooledPhrase(seg.Text())
		ph.applyRules(conf)
		ph.writeTo(&b)
		ph.releaseIntoPool()
	}
	return b.String()
}

// --- Phrases ---------------------------------------------------------------

// phrase is a unit of text between spaces. Syllables are subject to the rules,
// every other rune is a passthrough and is copied to the output.
type phrase struct {
	runes       []rune
	syllables   []syllable
	passthrough *treemap.Map // rune index → rune
}

func (ph *phrase) init(text string) {
	ph.runes = append(ph.runes[:0], []rune(text)...)
	for i, r := range ph.runes {
		s, ok := hangul.Decompose(r)
		if !ok {
			ph.passthrough.Put(i, r)
			continue
		}
		coda := ""
		if s.HasCoda() {
			c, _ := utf8.DecodeRuneInString(s.Coda)
			coda = hangul.DecomposeCoda(c)
		}
		ph.syllables = append(ph.syllables, syllable{
			onset:   s.Onset,
			nucleus: s.Nucleus,
			coda:    coda,
			pos:     i,
			orig:    r,
		})
	}
}

// Rules following linkJamoName, in the order of application.
// All of them need a following syllable.
var rulesWithNext = []rule{palatalize, nasalizeLateral, insertNL, nasalize, lateralize}

func (ph *phrase) applyRules(conf config) {
	for i := range ph.syllables {
		cur := &ph.syllables[i]
		var next *syllable
		if i+1 < len(ph.syllables) {
			next = &ph.syllables[i+1]
		}
		if next != nil && conf.hardConversion {
			tensify(cur, next, ph)
		}
		if next != nil {
			linkJamoName(cur, next, ph)
			for _, r := range rulesWithNext {
				r(cur, next, ph)
			}
		}
		aspirate(cur, next, ph)
		if next != nil {
			linkCoda(cur, next, ph)
		}
		neutralize(cur, next, ph)
	}
}

// writeTo recomposes the syllables and re-inserts the passthrough runes at
// their original positions.
func (ph *phrase) writeTo(b *strings.Builder) {
	syll := ph.syllables
	pos := 0
	it := ph.passthrough.Iterator()
	for it.Next() {
		at := it.Key().(int)
		for ; pos < at && len(syll) > 0; pos++ {
			b.WriteRune(syll[0].recompose())
			syll = syll[1:]
		}
		b.WriteRune(it.Value().(rune))
		pos++
	}
	for _, s := range syll {
		b.WriteRune(s.recompose())
	}
}

// recompose combines the jamo of s into a syllable. If this fails, the
// original syllable is returned.
func (s *syllable) recompose() rune {
	r, err := hangul.CombineCharacter(string(s.onset), string(s.nucleus), s.coda)
	if err != nil {
		tracer().Errorf("cannot recompose %c: %v", s.orig, err)
		return s.orig
	}
	return r
}

// --- Pooling ---------------------------------------------------------------

// Phrases are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type phrasePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalPhrasePool *phrasePool

func init() {
	globalPhrasePool = &phrasePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newPhrase(), nil
		})
	globalPhrasePool.ctx = context.Background()
	poolConfig := pool.NewDefaultPoolConfig()
	poolConfig.MaxTotal = -1 // infinity
	poolConfig.BlockWhenExhausted = false
	globalPhrasePool.opool = pool.NewObjectPool(globalPhrasePool.ctx, factory, poolConfig)
}

func newPhrase() *phrase {
	return &phrase{
		runes:       make([]rune, 0, 16),
		syllables:   make([]syllable, 0, 16),
		passthrough: treemap.NewWithIntComparator(),
	}
}

// newPooledPhrase returns a phrase for text, taken from the pool.
func newPooledPhrase(text string) *phrase {
	o, err := globalPhrasePool.opool.BorrowObject(globalPhrasePool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow phrase from pool: %v", err)
		o = newPhrase()
	}
	ph := o.(*phrase)
	ph.init(text)
	return ph
}

// releaseIntoPool clears the phrase and puts it back into the pool.
func (ph *phrase) releaseIntoPool() {
	ph.runes = ph.runes[:0]
	ph.syllables = ph.syllables[:0]
	ph.passthrough.Clear()
	_ = globalPhrasePool.opool.ReturnObject(globalPhrasePool.ctx, ph)
}
