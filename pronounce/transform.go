package pronounce

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer converts a stream of Korean text to its standard
// pronunciation. It implements transform.Transformer and may therefore be
// used with transform.NewReader and transform.NewWriter, or chained with
// decoders:
//
//    r := transform.NewReader(file, transform.Chain(korean.EUCKR.NewDecoder(), pronounce.NewTransformer()))
//
// Every line of input is standardized separately, i.e. lines are treated
// like separate inputs to Standardize. Lines longer than 1 KiB are cut at
// spaces, so a Transformer works with the fixed-size buffers of
// transform.Reader and transform.Writer.
type Transformer struct {
	conf config
}

var _ transform.Transformer = (*Transformer)(nil)

// maxPendingLine is the number of bytes a Transformer will collect while
// waiting for the end of a line. Longer lines are cut at the last space.
const maxPendingLine = 1024

// NewTransformer creates a Transformer, configured by options.
func NewTransformer(opts ...Option) *Transformer {
	conf := defaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}
	return &Transformer{conf: conf}
}

// Reset is part of interface transform.Transformer. A Transformer keeps no
// state between calls to Transform.
func (t *Transformer) Reset() {}

// Transform is part of interface transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		n := chunkLength(src[nSrc:], atEOF)
		if n == 0 {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out := t.convert(string(src[nSrc : nSrc+n]))
		if len(out) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += n
	}
	return nDst, nSrc, nil
}

// chunkLength returns the length of the prefix of src which may be
// converted without knowing the text following it. It returns 0 if more
// input is needed. Chunks never exceed maxPendingLine bytes, with or
// without a line break: longer lines are cut at the last space or, if
// there is none, at a rune boundary.
func chunkLength(src []byte, atEOF bool) int {
	window := src
	if len(window) > maxPendingLine {
		window = window[:maxPendingLine]
	}
	if i := bytes.IndexByte(window, '\n'); i >= 0 {
		return i + 1
	}
	if atEOF && len(src) <= maxPendingLine {
		return len(src)
	}
	if len(src) < maxPendingLine {
		return 0
	}
	if i := bytes.LastIndexByte(window, ' '); i >= 0 {
		return i + 1
	}
	// no space at all: cut at a rune boundary
	n := len(window)
	if n == len(src) {
		n-- // the last rune may be incomplete
	}
	for n > 0 && !utf8.RuneStart(src[n]) {
		n--
	}
	if n == 0 {
		return len(window)
	}
	return n
}

// convert standardizes a chunk of text, keeping a trailing line break or
// space out of the conversion.
func (t *Transformer) convert(chunk string) string {
	body := strings.TrimRight(chunk, "\r\n ")
	tail := chunk[len(body):]
	if body == "" {
		return chunk
	}
	return standardize(body, t.conf) + tail
}
