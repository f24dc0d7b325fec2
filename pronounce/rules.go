package pronounce

import (
	"strings"
	"unicode/utf8"
)

// syllable is a syllable of a phrase while the rules are applied to it.
// The coda is kept in expanded form, "" if there is none.
type syllable struct {
	onset   rune
	nucleus rune
	coda    string
	pos     int  // rune index within the phrase
	orig    rune // precomposed syllable from the input
}

func (s *syllable) hasCoda() bool {
	return s.coda != ""
}

func (s *syllable) firstCodaRune() rune {
	r, _ := utf8.DecodeRuneInString(s.coda)
	return r
}

// stripHieut removes ㅎ from the coda.
func (s *syllable) stripHieut() {
	s.coda = strings.ReplaceAll(s.coda, "ㅎ", "")
}

// A rule changes the current syllable and/or the next one. Rules which are
// not applicable at the end of a phrase will not be called with next == nil.
type rule func(cur, next *syllable, ph *phrase)

func traceRule(name string, cur *syllable) {
	tracer().P("rule", name).Debugf("%c → (%c,%c,%q)", cur.orig, cur.onset, cur.nucleus, cur.coda)
}

// tensify implements rules 23 to 25: a plain obstruent following certain
// codas is pronounced tense.
func tensify(cur, next *syllable, _ *phrase) {
	t, ok := tensed[next.onset]
	if !ok || isCluster(next.coda) {
		return
	}
	if tensingCodas.Contains(cur.coda) || (stemCodas.Contains(cur.coda) && next.onset != 'ㅂ') {
		next.onset = t
		traceRule("tensification", cur)
	}
}

// linkJamoName implements rule 16: the final consonant of the name of a jamo
// is linked to a following vowel, with special sounds for the names of
// ㄷ ㅈ ㅊ ㅋ ㅌ ㅍ ㅎ.
func linkJamoName(cur, next *syllable, ph *phrase) {
	if !cur.hasCoda() || next.onset != silentOnset || cur.pos == 0 {
		return
	}
	name := string(ph.runes[cur.pos-1 : cur.pos+1])
	if irregularJamoNames.Contains(name) {
		if o, ok := irregularJamoNameLinking[cur.firstCodaRune()]; ok {
			cur.coda = ""
			next.onset = o
			traceRule("16", cur)
		}
	}
	if jamoNames.Contains(name) {
		next.onset = cur.firstCodaRune()
		if cur.coda != "ㅇ" {
			cur.coda = ""
		}
		traceRule("16", cur)
	}
}

// palatalize implements rule 17: ㄷ and ㅌ before ㅣ become ㅈ and ㅊ.
func palatalize(cur, next *syllable, _ *phrase) {
	if next.nucleus != 'ㅣ' {
		return
	}
	if o, ok := palatalized[cur.coda]; ok && next.onset == silentOnset {
		next.onset = o
		if cur.coda == "ㄹㅌ" {
			cur.coda = "ㄹ"
		} else {
			cur.coda = ""
		}
		traceRule("17", cur)
	}
	if next.onset == 'ㅎ' && cur.coda == "ㄷ" {
		next.onset = 'ㅊ'
		cur.coda = ""
		traceRule("17", cur)
	}
}

// nasalizeLateral implements rule 19: ㄹ after ㅁ ㅇ ㄱ ㅂ is pronounced ㄴ.
func nasalizeLateral(cur, next *syllable, _ *phrase) {
	if nasalsBeforeLateral.Contains(cur.coda) && next.onset == 'ㄹ' {
		next.onset = 'ㄴ'
		traceRule("19", cur)
	}
}

// insertNL inserts ㄴ or ㄹ between a coda and a following y-vowel or ㅣ.
func insertNL(cur, next *syllable, _ *phrase) {
	if !cur.hasCoda() {
		return
	}
	if next.onset != silentOnset || !epenthesisTriggers.Contains(next.nucleus) {
		return
	}
	// plain 이 after a simple coda is a particle or suffix
	if next.nucleus == 'ㅣ' && !next.hasCoda() && !isCluster(cur.coda) {
		return
	}
	if epentheticVowels.Contains(cur.nucleus) {
		if epenthesisToN.Contains(cur.coda) {
			if cur.coda == "ㄱ" {
				cur.coda = "ㅇ"
			}
			next.onset = 'ㄴ'
			traceRule("ㄴ-epenthesis", cur)
		}
		if epenthesisToL.Contains(cur.coda) {
			next.onset = 'ㄹ'
			traceRule("ㄹ-epenthesis", cur)
		}
		return
	}
	if simple, ok := clusterSimplified[cur.coda]; ok {
		cur.coda = simple
	} else {
		next.onset = cur.firstCodaRune()
	}
	traceRule("epenthesis/liaison", cur)
}

// nasalize implements rule 18: obstruent codas before ㄴ or ㅁ become nasals.
func nasalize(cur, next *syllable, _ *phrase) {
	if !cur.hasCoda() || (next.onset != 'ㄴ' && next.onset != 'ㅁ') {
		return
	}
	coda := cur.coda
	if nasalizedToNg.Contains(cur.coda) {
		cur.coda = "ㅇ"
	}
	if nasalizedToN.Contains(cur.coda) {
		cur.coda = "ㄴ"
	}
	if nasalizedToM.Contains(cur.coda) {
		cur.coda = "ㅁ"
	}
	if cur.coda != coda {
		traceRule("18", cur)
	}
}

// lateralize implements rule 20: ㄴ before or after ㄹ is pronounced ㄹ.
func lateralize(cur, next *syllable, _ *phrase) {
	if cur.coda == "ㄴ" && next.onset == 'ㄹ' {
		cur.coda = "ㄹ"
		traceRule("20", cur)
	}
	if next.onset == 'ㄴ' && lateralizingCodas.Contains(cur.coda) {
		next.onset = 'ㄹ'
		traceRule("20", cur)
	}
}

// aspirate implements rule 12: ㅎ merges with an adjacent plain consonant
// into an aspirate, and is silent before vowels and ㄴ.
// aspirate is called at the end of a phrase, too, with next == nil.
func aspirate(cur, next *syllable, _ *phrase) {
	if !cur.hasCoda() {
		return
	}
	if hieutCodas.Contains(cur.coda) {
		if next != nil {
			if o, ok := aspiratedAfterHieut[next.onset]; ok {
				next.onset = o
				cur.stripHieut()
			}
			if next.onset == 'ㄴ' && hieutClusterCodas.Contains(cur.coda) {
				cur.stripHieut()
			}
			if next.onset == silentOnset {
				if hieutClusterCodas.Contains(cur.coda) {
					cur.stripHieut()
				} else {
					cur.coda = ""
				}
			} else {
				cur.stripHieut()
			}
		} else {
			cur.stripHieut()
		}
		traceRule("12", cur)
	}
	if next != nil && next.onset == 'ㅎ' && aspiratedBeforeHieut.Contains(cur.coda) {
		if o, ok := aspiratedOnset[cur.coda]; ok {
			next.onset = o
			if utf8.RuneCountInString(cur.coda) == 1 {
				cur.coda = ""
			} else {
				cur.coda = string(cur.firstCodaRune())
			}
			traceRule("12", cur)
		}
	}
}

// linkCoda implements rules 13 and 14: before a vowel a simple coda moves to
// the next syllable, of a cluster only the second consonant moves.
func linkCoda(cur, next *syllable, _ *phrase) {
	if !cur.hasCoda() || next.onset != silentOnset {
		return
	}
	coda := []rune(cur.coda)
	if cur.coda != "ㅇ" && (len(coda) == 1 || (len(coda) == 2 && coda[0] == coda[1])) {
		next.onset = coda[0]
		cur.coda = ""
		coda = nil
		traceRule("13", cur)
	}
	if len(coda) == 2 && coda[0] != coda[1] {
		second := coda[1]
		if second == 'ㅅ' {
			next.onset = 'ㅆ'
		} else {
			next.onset = second
		}
		cur.coda = strings.ReplaceAll(cur.coda, string(second), "")
		traceRule("14", cur)
	}
}

// neutralize implements rules 9 to 11: at the end of a phrase or before a
// consonant, codas are pronounced as one of the representative sounds.
// neutralize is called at the end of a phrase, too, with next == nil.
func neutralize(cur, next *syllable, _ *phrase) {
	if !cur.hasCoda() {
		return
	}
	if next != nil && next.onset == silentOnset {
		return
	}
	if r, ok := representativeCoda[cur.coda]; ok {
		cur.coda = r
		traceRule("9–11", cur)
	}
}
