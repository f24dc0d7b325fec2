package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/npillmayer/hangul"
	"github.com/npillmayer/hangul/internal/display"
	"github.com/npillmayer/hangul/josa"
	"github.com/npillmayer/hangul/keyboard"
	"github.com/npillmayer/hangul/numeral"
	"github.com/npillmayer/hangul/pronounce"
	"github.com/npillmayer/hangul/romanize"
	"github.com/npillmayer/hangul/segment"
	"github.com/peterbourgon/ff/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"
)

func (a *app) disassembleCmd() *ff.Command {
	fs := ff.NewFlagSet("disassemble").SetParent(a.flags)
	groups := fs.BoolLong("groups", "print the jamo of every syllable in a column")
	return &ff.Command{
		Name:      "disassemble",
		Usage:     "hangul disassemble [--groups] [TEXT ...]",
		ShortHelp: "split syllables into jamo",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			if !*groups {
				return a.writeText(hangul.Disassemble(text))
			}
			table := display.NewTable(a.ctx)
			runes := []rune(text)
			for i, group := range hangul.DisassembleToGroups(text) {
				if runes[i] == ' ' {
					continue
				}
				table.AddRow(append([]string{string(runes[i])}, group...)...)
			}
			w := a.output()
			if _, err := table.WriteTo(w); err != nil {
				return err
			}
			return w.Close()
		},
	}
}

func (a *app) assembleCmd() *ff.Command {
	fs := ff.NewFlagSet("assemble").SetParent(a.flags)
	return &ff.Command{
		Name:      "assemble",
		Usage:     "hangul assemble [JAMO ...]",
		ShortHelp: "combine jamo into syllables",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			return a.eachLine(args, hangul.AssembleString)
		},
	}
}

func (a *app) pronounceCmd() *ff.Command {
	fs := ff.NewFlagSet("pronounce").SetParent(a.flags)
	soft := fs.BoolLong("no-tensification", "do not apply tensification (rules 23 to 25)")
	table := fs.BoolLong("table", "print spelling, pronunciation and romanization of every word")
	files := fs.BoolLong("files", "arguments are names of files to convert")
	return &ff.Command{
		Name:      "pronounce",
		Usage:     "hangul pronounce [FLAGS] [TEXT ... | FILE ...]",
		ShortHelp: "convert text to its standard pronunciation",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			opt := pronounce.HardConversion(!*soft)
			if *files {
				return a.convertFiles(ctx, args, func(r io.Reader, w io.Writer) error {
					_, err := io.Copy(w, transform.NewReader(r, pronounce.NewTransformer(opt)))
					return err
				})
			}
			if *table {
				return a.pronunciationTable(args, opt)
			}
			w := a.output()
			if _, err := io.Copy(w, transform.NewReader(a.input(args), pronounce.NewTransformer(opt))); err != nil {
				return err
			}
			return w.Close()
		},
	}
}

func (a *app) pronunciationTable(args []string, opt pronounce.Option) error {
	text, err := a.inputText(args)
	if err != nil {
		return err
	}
	table := display.NewTable(a.ctx)
	for _, line := range strings.Split(text, "\n") {
		for _, word := range segment.Phrases(strings.TrimSpace(line)) {
			if word == "" {
				continue
			}
			table.AddRow(word, pronounce.Standardize(word, opt), romanize.Romanize(word))
		}
	}
	w := a.output()
	if _, err := table.WriteTo(w); err != nil {
		return err
	}
	return w.Close()
}

func (a *app) romanizeCmd() *ff.Command {
	fs := ff.NewFlagSet("romanize").SetParent(a.flags)
	files := fs.BoolLong("files", "arguments are names of files to convert")
	return &ff.Command{
		Name:      "romanize",
		Usage:     "hangul romanize [--files] [TEXT ... | FILE ...]",
		ShortHelp: "transcribe text into Latin letters",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			if *files {
				return a.convertFiles(ctx, args, func(r io.Reader, w io.Writer) error {
					return convertLines(r, w, romanize.Romanize)
				})
			}
			return a.eachLine(args, romanize.Romanize)
		},
	}
}

func (a *app) josaCmd() *ff.Command {
	fs := ff.NewFlagSet("josa").SetParent(a.flags)
	particle := fs.StringLong("particle", "을/를", "particle to attach, e.g. 이/가")
	pick := fs.BoolLong("pick", "print the particle only")
	list := fs.BoolLong("list", "list known particles")
	return &ff.Command{
		Name:      "josa",
		Usage:     "hangul josa [--particle P] [--pick] WORD ...",
		ShortHelp: "attach particles to words",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			if *list {
				return a.writeText(strings.Join(josa.Patterns(), "\n"))
			}
			p, err := josa.Lookup(*particle)
			if err != nil {
				return err
			}
			words := make([]string, len(args))
			for i, word := range args {
				if *pick {
					words[i] = josa.Pick(word, p)
				} else {
					words[i] = josa.Attach(word, p)
				}
			}
			return a.writeText(strings.Join(words, "\n"))
		},
	}
}

func (a *app) numeralCmd() *ff.Command {
	fs := ff.NewFlagSet("numeral").SetParent(a.flags)
	kind := fs.StringEnumLong("kind", "kind of numeral",
		"sino", "float", "mixed", "amount", "native", "determiner", "days", "ordinal")
	spacing := fs.BoolLong("spacing", "separate groups of four digits by spaces")
	return &ff.Command{
		Name:      "numeral",
		Usage:     "hangul numeral [--kind K] [--spacing] NUMBER ...",
		ShortHelp: "spell numbers in Korean",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			var opts []numeral.Option
			if *spacing {
				opts = append(opts, numeral.WithSpacing())
			}
			out := make([]string, len(args))
			for i, arg := range args {
				s, err := spellNumber(*kind, arg, opts)
				if err != nil {
					return err
				}
				out[i] = s
			}
			return a.writeText(strings.Join(out, "\n"))
		},
	}
}

func spellNumber(kind, arg string, opts []numeral.Option) (string, error) {
	switch kind {
	case "amount":
		return numeral.Amount(arg, opts...)
	case "float":
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", err
		}
		return numeral.Float(f, opts...)
	case "sino", "mixed":
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return "", err
		}
		if kind == "mixed" {
			return numeral.Mixed(n, opts...), nil
		}
		return numeral.Sino(n, opts...), nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", err
	}
	switch kind {
	case "native":
		return numeral.Native(n, false)
	case "determiner":
		return numeral.Native(n, true)
	case "days":
		return numeral.Days(n)
	}
	return numeral.Ordinal(n)
}

func (a *app) keyboardCmd() *ff.Command {
	fs := ff.NewFlagSet("keyboard").SetParent(a.flags)
	to := fs.StringEnumLong("to", "target of the conversion", "hangul", "jamo", "qwerty")
	return &ff.Command{
		Name:      "keyboard",
		Usage:     "hangul keyboard [--to hangul|jamo|qwerty] [TEXT ...]",
		ShortHelp: "convert between QWERTY keystrokes and Hangul",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			convert := keyboard.QwertyToHangul
			switch *to {
			case "jamo":
				convert = keyboard.QwertyToJamo
			case "qwerty":
				convert = keyboard.HangulToQwerty
			}
			return a.eachLine(args, convert)
		},
	}
}

// --- Helpers ---------------------------------------------------------------

// eachLine converts the input line by line.
func (a *app) eachLine(args []string, convert func(string) string) error {
	w := a.output()
	if err := convertLines(a.input(args), w, convert); err != nil {
		return err
	}
	return w.Close()
}

func convertLines(r io.Reader, w io.Writer, convert func(string) string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if _, err := io.WriteString(w, convert(scanner.Text())+"\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// convertFiles converts a number of files concurrently and writes the
// results in the order of the file names.
func (a *app) convertFiles(ctx context.Context, names []string, convert func(io.Reader, io.Writer) error) error {
	results := make([]bytes.Buffer, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := convert(a.decode(f), &results[i]); err != nil {
				return fmt.Errorf("converting %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	w := a.output()
	for i := range results {
		if _, err := results[i].WriteTo(w); err != nil {
			return err
		}
	}
	return w.Close()
}
