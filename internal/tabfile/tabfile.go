/*
Package tabfile reads simple tabular data files.

The format resembles the data files of the Unicode Character Database, see
http://www.unicode.org/reports/tr44/: every non-empty line holds one data
item, fields are separated by semicolons and a '#' starts a comment, which
extends to the end of the line. Lines consisting of a comment only are
skipped.

    # word ; pronunciation
    깻잎   ; 깬닙           # sai-siot
*/
package tabfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hangul.tabfile'.
func tracer() tracing.Trace {
	return tracing.Select("hangul.tabfile")
}

// Token holds the content of a data line.
type Token struct {
	LineNo  int      // line number within the input, starting with 1
	Fields  []string // fields of the line, with white space trimmed
	Comment string   // rest-of-line comment, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %q # %q]", token.LineNo, token.Fields, token.Comment)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Scanner is a line-level scanner for tabular files.
//
// The scanner operates by calling scanning steps in a chain. Each step
// function inspects the current line and then possibly branches out to a
// subsequent step function. A step function returning nil accepts the line.
type Scanner struct {
	lines  *bufio.Scanner
	line   string
	lineNo int
	token  *Token
	err    error
}

type scannerStep func(*Scanner) scannerStep

// ErrNoInput is returned by New for a nil reader.
var ErrNoInput = errors.New("no input present")

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, ErrNoInput
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Next advances the scanner to the next data line. It returns false at the
// end of input or on a read error.
func (sc *Scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		sc.line = sc.lines.Text()
		sc.token = &Token{LineNo: sc.lineNo}
		step := scanItem
		for step != nil {
			step = step(sc)
		}
		if sc.token != nil {
			tracer().Debugf("tabfile: %s", sc.token)
			return true
		}
	}
	sc.err = sc.lines.Err()
	return false
}

// Token returns the most recent data line.
func (sc *Scanner) Token() *Token {
	return sc.token
}

// Err returns the first read error, if any.
func (sc *Scanner) Err() error {
	return sc.err
}

// scanItem is the step function to start recognizing a line.
//
//    line:
//      -> blank:   skip
//      -> comment: skip
//      -> other:   fields
//
func scanItem(sc *Scanner) scannerStep {
	trimmed := strings.TrimSpace(sc.line)
	if trimmed == "" || trimmed[0] == '#' {
		sc.token = nil
		return nil
	}
	sc.line = trimmed
	return scanComment
}

// scanComment splits off a rest-of-line comment.
func scanComment(sc *Scanner) scannerStep {
	if i := strings.IndexByte(sc.line, '#'); i >= 0 {
		sc.token.Comment = strings.TrimSpace(sc.line[i+1:])
		sc.line = sc.line[:i]
	}
	return scanFields
}

// scanFields splits the remainder of a line into fields.
func scanFields(sc *Scanner) scannerStep {
	fields := strings.Split(sc.line, ";")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	sc.token.Fields = fields
	return nil
}

// Parse iterates over each data line of r and calls callback f on it.
// If f returns an error, parsing stops and the error is returned, annotated
// with the line number.
func Parse(r io.Reader, f func(token *Token) error) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		if err := f(sc.Token()); err != nil {
			return fmt.Errorf("line %d: %w", sc.Token().LineNo, err)
		}
	}
	return sc.Err()
}
