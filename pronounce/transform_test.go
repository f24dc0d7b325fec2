package pronounce

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func TestTransformString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.pronounce")
	defer teardown()
	//
	s, _, err := transform.String(NewTransformer(), "먹는\n깻잎\n닦다")
	if err != nil {
		t.Fatal(err)
	}
	if s != "멍는\n깬닙\n닥따" {
		t.Errorf("expected lines to be standardized separately, have %q", s)
	}
	s, _, _ = transform.String(NewTransformer(HardConversion(false)), "닦다\r\n")
	if s != "닥다\r\n" {
		t.Errorf("expected '닥다\\r\\n', have %q", s)
	}
}

func TestTransformReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t)
	defer teardown()
	//
	var text strings.Builder
	var expected strings.Builder
	for i := 0; i < 500; i++ {
		text.WriteString("먹는 학여울 ")
		expected.WriteString("멍는 항녀울 ")
	}
	r := transform.NewReader(strings.NewReader(text.String()), NewTransformer())
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != expected.String() {
		t.Errorf("long line without line breaks has not been standardized correctly")
	}
}

func TestTransformEUCKR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.pronounce")
	defer teardown()
	//
	encoded, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte("놓고 먹는\n"))
	if err != nil {
		t.Fatal(err)
	}
	chain := transform.Chain(korean.EUCKR.NewDecoder(), NewTransformer())
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(encoded), chain))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "노코 멍는\n" {
		t.Errorf("expected '노코 멍는\\n', have %q", out)
	}
}

func TestChunkLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hangul.pronounce")
	defer teardown()
	//
	if n := chunkLength([]byte("ab\ncd"), false); n != 3 {
		t.Errorf("expected chunk to end after line break, is %d", n)
	}
	if n := chunkLength([]byte("ab cd"), false); n != 0 {
		t.Errorf("expected short line to wait for more input, is %d", n)
	}
	if n := chunkLength([]byte("ab cd"), true); n != 5 {
		t.Errorf("expected all input at EOF, is %d", n)
	}
	long := []byte(strings.Repeat("가", maxPendingLine))
	if n := chunkLength(long, false); n != maxPendingLine-1 {
		t.Errorf("expected long line to be cut at a rune boundary, is %d", n)
	}
	if n := chunkLength(append(long, '\n'), true); n != maxPendingLine-1 {
		t.Errorf("expected long line with line break to be cut, is %d", n)
	}
	spaced := []byte(strings.Repeat("먹는 ", 400) + "\n")
	if n := chunkLength(spaced, false); n > maxPendingLine || spaced[n-1] != ' ' {
		t.Errorf("expected long line to be cut after a space, is %d", n)
	}
}

func TestTransformWriter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t)
	defer teardown()
	//
	text := strings.Repeat("먹는 ", 2000) + "\n"
	var out bytes.Buffer
	w := transform.NewWriter(&out, NewTransformer())
	n, err := w.Write([]byte(text))
	if err != nil {
		t.Fatalf("writing a long line failed after %d bytes: %v", n, err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
	if expected := strings.Repeat("멍는 ", 2000) + "\n"; out.String() != expected {
		t.Errorf("long line has not been standardized correctly, have %d bytes", out.Len())
	}
}
