/*
Package segment splits Korean text into phrases (eojeol).

Korean separates phrases by spaces. A phrase usually consists of a word
together with its particles or endings, and phonological rules are applied
within a phrase, but not across phrase boundaries.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the phrases of a file.
Clients are able to get runes of the segment by calling Bytes() or Text().

  segmenter := segment.NewSegmenter()
  segmenter.Init(...)
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

Segments are delimited by single separator runes, therefore consecutive
separators produce empty segments. Empty input results in exactly one
empty segment. Joining all segments with the separator reproduces the
input, which is what clients rely on to re-insert the spaces. */
package segment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hangul.segment'.
func tracer() tracing.Trace {
	return tracing.Select("hangul.segment")
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// segments it into phrases.
type Segmenter struct {
	reader        io.RuneReader // where we get the next runes from
	separators    []rune        // phrase separators, default is U+0020
	activeSegment []byte        // the most recent segment to build
	buffer        *bytes.Buffer // wrapper around activeSegment
	maxSegmentLen int           // maximum length allowed for segments
	pos           int64         // current position in text
	cnt           int           // number of segments delivered
	err           error
	done          bool // final segment has been delivered
	inUse         bool // Next() has been called; buffer is in use.
}

// MaxSegmentSize is the maximum size used to buffer a segment
// unless the user provides an explicit buffer with Segmenter.Buffer().
const MaxSegmentSize = 64 * 1024
const startBufSize = 256 // Size of initial allocation for buffer.

// ErrTooLong flags a buffer overflow.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("phrase segmenter: segment too long for buffer")
	ErrNotInitialized = errors.New("phrase segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter. Clients may provide the runes which
// separate phrases. Specifying no separator results in splitting at
// U+0020 SPACE.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter(separators ...rune) *Segmenter {
	s := &Segmenter{}
	if len(separators) == 0 {
		separators = []rune{' '}
	}
	s.separators = separators
	return s
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initializes a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.maxSegmentLen = MaxSegmentSize
	} else {
		s.buffer.Reset()
	}
	s.activeSegment = nil
	s.inUse = false
	s.done = false
	s.err = nil
	s.pos = 0
	s.cnt = 0
}

// Buffer sets the initial buffer to use when scanning and the maximum size of
// buffer that may be allocated during segmenting.
//
// By default, Segmenter uses an internal buffer and sets the maximum token size
// to MaxSegmentSize.
//
// Buffer panics if it is called after scanning has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.buffer = bytes.NewBuffer(buf[:0])
	s.maxSegmentLen = max
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next advances the Segmenter to the next phrase, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
// For the latter case Err() will return nil.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	if s.done || s.Err() != nil {
		s.activeSegment = nil
		return false
	}
	s.inUse = true
	s.buffer.Reset()
	for {
		r, sz, err := s.reader.ReadRune()
		if err == io.EOF {
			s.done = true
			break
		} else if err != nil {
			tracer().Errorf("ReadRune() error: %s", err)
			s.setErr(err)
			s.activeSegment = nil
			return false
		}
		s.pos += int64(sz)
		if s.isSeparator(r) {
			break
		}
		if s.buffer.Len()+sz > s.maxSegmentLen {
			s.setErr(ErrTooLong)
			s.activeSegment = nil
			return false
		}
		s.buffer.WriteRune(r)
	}
	s.activeSegment = s.buffer.Bytes()
	s.cnt++
	tracer().P("segment", fmt.Sprintf("%d", s.cnt)).Debugf("Next() = %q", string(s.activeSegment))
	return true
}

// Bytes returns the most recent token generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// Position returns the number of bytes consumed from the input so far.
func (s *Segmenter) Position() int64 {
	return s.pos
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

func (s *Segmenter) isSeparator(r rune) bool {
	for _, sep := range s.separators {
		if r == sep {
			return true
		}
	}
	return false
}

// Phrases is a convenience function which splits text into phrases
// at U+0020. It never returns an empty slice.
//
//    Phrases("a  b ")  =>  ["a", "", "b", ""]
//
func Phrases(text string) []string {
	seg := NewSegmenter()
	seg.Init(strings.NewReader(text))
	phrases := make([]string, 0, strings.Count(text, " ")+1)
	for seg.Next() {
		phrases = append(phrases, seg.Text())
	}
	return phrases
}
