package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := mainE(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	require.NoError(t, err, "stderr: %s", stderr.String())
	return stdout.String()
}

func TestSubcommands(t *testing.T) {
	for _, c := range []struct {
		stdin    string
		args     []string
		expected string
	}{
		{"", []string{"disassemble", "값"}, "ㄱㅏㅂㅅ\n"},
		{"", []string{"assemble", "ㅇㅏㅂㅓㅈㅣ"}, "아버지\n"},
		{"", []string{"pronounce", "닦다"}, "닥따\n"},
		{"", []string{"pronounce", "--no-tensification", "닦다"}, "닥다\n"},
		{"먹는\n깻잎\n", []string{"pronounce"}, "멍는\n깬닙\n"},
		{"", []string{"romanize", "왕십리"}, "wangsimni\n"},
		{"백마\n신라\n", []string{"romanize"}, "baengma\nsilla\n"},
		{"", []string{"josa", "--particle", "이/가", "샴푸", "칫솔"}, "샴푸가\n칫솔이\n"},
		{"", []string{"josa", "--pick", "서울"}, "을\n"},
		{"", []string{"numeral", "12345"}, "일만이천삼백사십오\n"},
		{"", []string{"numeral", "--kind", "mixed", "--spacing", "123456780"}, "1억 2,345만 6,780\n"},
		{"", []string{"numeral", "--kind", "ordinal", "1", "21"}, "첫째\n스물한째\n"},
		{"", []string{"keyboard", "dkssud"}, "안녕\n"},
		{"", []string{"keyboard", "--to", "qwerty", "한글"}, "gksrmf\n"},
	} {
		assert.Equal(t, c.expected, run(t, c.stdin, c.args...), "hangul %v", c.args)
	}
}

func TestTables(t *testing.T) {
	out := run(t, "", "pronounce", "--table", "먹는", "학여울")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"먹는", "멍는", "meongneun"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"학여울", "항녀울", "hangnyeoul"}, strings.Fields(lines[1]))
	//
	out = run(t, "", "disassemble", "--groups", "사과")
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"과", "ㄱ", "ㅗ", "ㅏ"}, strings.Fields(lines[1]))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	require.NoError(t, os.WriteFile(names[0], []byte("먹는\n"), 0o644))
	require.NoError(t, os.WriteFile(names[1], []byte("놓고\n"), 0o644))
	out := run(t, "", append([]string{"pronounce", "--files"}, names...)...)
	assert.Equal(t, "멍는\n노코\n", out)
	out = run(t, "", append([]string{"romanize", "--files"}, names...)...)
	assert.Equal(t, "meongneun\nnoko\n", out)
	//
	var stdout, stderr bytes.Buffer
	err := mainE(context.Background(), []string{"pronounce", "--files", filepath.Join(dir, "none.txt")},
		strings.NewReader(""), &stdout, &stderr)
	assert.Error(t, err)
}

func TestEncoding(t *testing.T) {
	input, _, err := transform.String(korean.EUCKR.NewEncoder(), "놓고\n")
	require.NoError(t, err)
	out := run(t, input, "--encoding", "euc-kr", "pronounce")
	decoded, err := io.ReadAll(transform.NewReader(strings.NewReader(out), korean.EUCKR.NewDecoder()))
	require.NoError(t, err)
	assert.Equal(t, "노코\n", string(decoded))
}

func TestErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := mainE(context.Background(), []string{"josa", "--particle", "에게/께", "친구"},
		strings.NewReader(""), &stdout, &stderr)
	assert.Error(t, err)
	err = mainE(context.Background(), []string{"numeral", "--kind", "days", "31"},
		strings.NewReader(""), &stdout, &stderr)
	assert.Error(t, err)
	err = mainE(context.Background(), []string{"--no-such-flag"},
		strings.NewReader(""), &stdout, &stderr)
	assert.Error(t, err)
}

func TestTraceLevel(t *testing.T) {
	run(t, "", "--trace", "Debug", "numeral", "7")
	for _, key := range tracers {
		assert.Equal(t, tracing.LevelDebug, tracing.Select(key).GetTraceLevel(), "tracer %q", key)
	}
	run(t, "", "numeral", "7")
	for _, key := range tracers {
		assert.Equal(t, tracing.LevelError, tracing.Select(key).GetTraceLevel(), "tracer %q", key)
	}
}
