package pronounce

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/npillmayer/hangul/internal/tabfile"
)

//go:embed exceptions.txt
var exceptionData []byte

// Kinds of exceptional words.
const (
	saiSiot    = "sai-siot"
	singleWord = "single"
)

type exceptionDictionary struct {
	saiSiot map[string]string // compounds with sai-siot
	single  map[string]string // single words
}

var exceptions *exceptionDictionary
var loadExceptions sync.Once

// dictionary returns the dictionary of irregular words, loading it on
// first use. (Concurrency-safe).
func dictionary() *exceptionDictionary {
	loadExceptions.Do(func() {
		dict, err := parseExceptions(exceptionData)
		if err != nil {
			tracer().Errorf("cannot read exception dictionary: %v", err)
			panic(err)
		}
		exceptions = dict
		tracer().Debugf("loaded %d irregular words", len(dict.saiSiot)+len(dict.single))
	})
	return exceptions
}

func parseExceptions(data []byte) (*exceptionDictionary, error) {
	dict := &exceptionDictionary{
		saiSiot: make(map[string]string),
		single:  make(map[string]string),
	}
	err := tabfile.Parse(bytes.NewReader(data), func(token *tabfile.Token) error {
		word, pron := token.Field(1), token.Field(2)
		if word == "" || pron == "" {
			return fmt.Errorf("malformed entry %v", token)
		}
		switch token.Field(3) {
		case saiSiot:
			dict.saiSiot[word] = pron
		case singleWord:
			dict.single[word] = pron
		default:
			return fmt.Errorf("unknown kind of exception %q", token.Field(3))
		}
		return nil
	})
	return dict, err
}

// Exception looks up the pronunciation of an irregular word. The lookup
// succeeds only if word matches an entry exactly.
func Exception(word string) (string, bool) {
	dict := dictionary()
	if pron, ok := dict.saiSiot[word]; ok {
		return pron, true
	}
	pron, ok := dict.single[word]
	return pron, ok
}
