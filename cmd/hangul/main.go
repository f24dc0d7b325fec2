/*
Command hangul is a command line front end for the Hangul packages.

Usage:

    hangul [flags] <subcommand> [flags] [text …]

Sub-commands:

    disassemble  split syllables into jamo
    assemble     combine jamo into syllables
    pronounce    convert text to its standard pronunciation
    romanize     transcribe text into Latin letters
    josa         attach particles to words
    numeral      spell numbers in Korean
    keyboard     convert between QWERTY keystrokes and Hangul

Text is taken from the command line or, if there is none, from standard
input. Flags may be set from the environment with prefix HANGUL, e.g.
HANGUL_ENCODING=euc-kr, or from a .env file in the working directory.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/hangul/internal/display"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func main() {
	if err := mainE(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "hangul: %v\n", err)
		os.Exit(1)
	}
}

// app holds the global flags and I/O streams, shared by all sub-commands.
type app struct {
	stdin    io.Reader
	stdout   io.Writer
	flags    *ff.FlagSet
	trace    *string
	encoding *string
	ctx      *display.Context
}

func mainE(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	_ = godotenv.Load()

	a := &app{stdin: stdin, stdout: stdout}
	a.flags = ff.NewFlagSet("hangul")
	a.trace = a.flags.StringEnumLong("trace", "trace level", "Error", "Info", "Debug")
	a.encoding = a.flags.StringEnumLong("encoding", "encoding of input and output", "utf-8", "euc-kr")

	root := &ff.Command{
		Name:      "hangul",
		Usage:     "hangul [FLAGS] <SUBCOMMAND> ...",
		ShortHelp: "tools for Korean text",
		Flags:     a.flags,
		Subcommands: []*ff.Command{
			a.disassembleCmd(),
			a.assembleCmd(),
			a.pronounceCmd(),
			a.romanizeCmd(),
			a.josaCmd(),
			a.numeralCmd(),
			a.keyboardCmd(),
		},
	}
	if err := root.Parse(args, ff.WithEnvVarPrefix("HANGUL")); err != nil {
		selected := root.GetSelected()
		if selected == nil {
			selected = root
		}
		fmt.Fprintf(stderr, "%s\n", ffhelp.Command(selected))
		return fmt.Errorf("parsing flags: %w", err)
	}
	a.setupTracing()
	a.ctx = display.ContextFromEnvironment()
	if err := root.Run(ctx); err != nil {
		if errors.Is(err, ff.ErrNoExec) {
			fmt.Fprintf(stderr, "%s\n", ffhelp.Command(root))
		}
		return err
	}
	return nil
}

// tracers lists the trace keys of all packages.
var tracers = []string{
	"hangul",
	"hangul.display",
	"hangul.josa",
	"hangul.keyboard",
	"hangul.numeral",
	"hangul.pronounce",
	"hangul.romanize",
	"hangul.segment",
	"hangul.tabfile",
}

func (a *app) setupTracing() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.TraceLevelFromString(*a.trace)
	for _, key := range tracers {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// --- Input and output ------------------------------------------------------

func (a *app) eucKR() bool {
	return strings.EqualFold(*a.encoding, "euc-kr")
}

// decode wraps r with a decoder for the input encoding.
func (a *app) decode(r io.Reader) io.Reader {
	if a.eucKR() {
		return transform.NewReader(r, korean.EUCKR.NewDecoder())
	}
	return r
}

// input returns the text of the command line arguments or, if there are
// none, standard input.
func (a *app) input(args []string) io.Reader {
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " ") + "\n")
	}
	return a.decode(a.stdin)
}

// inputText is like input, but reads the text completely.
func (a *app) inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(a.decode(a.stdin))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// output returns a writer for the output encoding. The writer has to be
// closed to flush it.
func (a *app) output() io.WriteCloser {
	if a.eucKR() {
		return transform.NewWriter(a.stdout, korean.EUCKR.NewEncoder())
	}
	return nopCloser{a.stdout}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// writeText writes s, followed by a newline, in the output encoding.
func (a *app) writeText(s string) error {
	w := a.output()
	if _, err := io.WriteString(w, s+"\n"); err != nil {
		return err
	}
	return w.Close()
}
