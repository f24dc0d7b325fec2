package hangul

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// AssembleString scans a stream of jamo and combines them into syllables.
// Characters which cannot be part of a syllable are copied, as are
// precomposed syllables.
//
// Assembling has to decide where a syllable ends: a consonant following a
// vowel may either be the coda of the current syllable or the onset of the
// next one. AssembleString looks ahead at most two jamo and applies these
// rules:
//
//   - compound vowels are preferred over single vowels
//   - a consonant directly followed by a vowel starts a new syllable
//   - a compound coda directly followed by a vowel is split: its first
//     consonant ends the current syllable, the second one starts the next
//
//    AssembleString("ㅇㅏㅂㅓㅈㅣ")  =>  "아버지"
//    AssembleString("ㄱㅏㅂㅅㅇㅣ")  =>  "값이"
//    AssembleString("ㄷㅏㄹㄱㅏ")    =>  "달가"
//
func AssembleString(jamoString string) string {
	if jamoString == "" {
		return jamoString
	}
	asm := newPooledAssembler(jamoString)
	defer asm.releaseIntoPool()
	for step := asmSyllableStart; step != nil; {
		step = step(asm)
	}
	return asm.out.String()
}

// Assemble concatenates fragments of jamo and assembles the result.
//
//    Assemble([]string{"ㅇ", "ㅏ", "ㅂ", "ㅓ", "ㅈ", "ㅣ"})  =>  "아버지"
//
func Assemble(fragments []string) string {
	return AssembleString(strings.Join(fragments, ""))
}

// --- Assembler state machine -----------------------------------------------

// asmStateFn represents a state of the assembler. Every state function
// consumes zero or more runes of the input and returns the next state.
// Assembly stops as soon as a state function returns nil.
type asmStateFn func(*assembler) asmStateFn

// assembler holds the state of a single run of AssembleString.
type assembler struct {
	input   []rune
	pos     int // current position in input
	onset   int // table index of the pending syllable's onset
	nucleus int // table index of the pending syllable's nucleus
	coda    int // table index of the pending syllable's coda, 0 = none
	out     strings.Builder
}

func (asm *assembler) at(i int) (rune, bool) {
	if i >= len(asm.input) {
		return 0, false
	}
	return asm.input[i], true
}

// copyRune copies the rune at the current position and advances.
func (asm *assembler) copyRune() asmStateFn {
	asm.out.WriteRune(asm.input[asm.pos])
	asm.pos++
	return asmSyllableStart
}

func (asm *assembler) isNucleusAt(i int) bool {
	r, ok := asm.at(i)
	return ok && CanBeNucleus(r)
}

// asmSyllableStart expects the onset of a new syllable.
func asmSyllableStart(asm *assembler) asmStateFn {
	r, ok := asm.at(asm.pos)
	if !ok {
		return nil
	}
	if IsHangul(r) || !CanBeOnset(r) {
		return asm.copyRune()
	}
	if asm.pos+1 >= len(asm.input) {
		return asm.copyRune()
	}
	asm.onset = jamo().onsetIndex[r]
	asm.nucleus, asm.coda = 0, 0
	return asmNucleus
}

// asmNucleus tries a compound vowel first, then a single vowel. If the onset
// is not followed by a vowel, it is copied as a stand-alone jamo.
func asmNucleus(asm *assembler) asmStateFn {
	i := asm.pos + 1
	if i+1 < len(asm.input) {
		if r, ok := ComposeNucleus(string(asm.input[i : i+2])); ok {
			asm.nucleus = jamo().nucleusIndex[r]
			asm.pos += 3
			return asmCoda
		}
	}
	if r := asm.input[i]; CanBeNucleus(r) {
		asm.nucleus = jamo().nucleusIndex[r]
		asm.pos += 2
		return asmCoda
	}
	return asm.copyRune()
}

// asmCoda tries a compound coda first, then a single coda. A consonant
// directly followed by a vowel is left for the next syllable.
func asmCoda(asm *assembler) asmStateFn {
	r, ok := asm.at(asm.pos)
	if !ok {
		return asmEmit
	}
	if r2, ok := asm.at(asm.pos + 1); ok {
		if cc, ok := ComposeCoda(string([]rune{r, r2})); ok {
			if !asm.isNucleusAt(asm.pos + 2) {
				asm.coda = jamo().codaIndex[cc]
				asm.pos += 2
				return asmEmit
			}
			// give back the second consonant, it is the next syllable's onset
			tracer().P("coda", string(cc)).Debugf("compound coda split before vowel")
		}
	}
	if CanBeCoda(r) && !asm.isNucleusAt(asm.pos+1) {
		asm.coda = jamo().codaIndex[r]
		asm.pos++
	}
	return asmEmit
}

// asmEmit writes the pending syllable.
func asmEmit(asm *assembler) asmStateFn {
	asm.out.WriteRune(compose(asm.onset, asm.nucleus, asm.coda))
	return asmSyllableStart
}

// --- Pooling ---------------------------------------------------------------

// Assemblers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type assemblerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalAssemblerPool *assemblerPool

func init() {
	globalAssemblerPool = &assemblerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &assembler{}, nil
		})
	globalAssemblerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalAssemblerPool.opool = pool.NewObjectPool(globalAssemblerPool.ctx, factory, config)
}

// newPooledAssembler returns an assembler for input, taken from the pool.
func newPooledAssembler(input string) *assembler {
	o, err := globalAssemblerPool.opool.BorrowObject(globalAssemblerPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow assembler from pool: %v", err)
		o = &assembler{}
	}
	asm := o.(*assembler)
	asm.input = append(asm.input[:0], []rune(input)...)
	return asm
}

// releaseIntoPool clears the assembler and puts it back into the pool.
func (asm *assembler) releaseIntoPool() {
	asm.input = asm.input[:0]
	asm.pos = 0
	asm.onset, asm.nucleus, asm.coda = 0, 0, 0
	asm.out.Reset()
	_ = globalAssemblerPool.opool.ReturnObject(globalAssemblerPool.ctx, asm)
}
