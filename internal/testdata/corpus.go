// Package testdata locates the test corpora shared by the packages of
// this module.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// CorpusReader returns a reader for the given corpus file for testing.
func CorpusReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(CorpusPath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// CorpusPath returns path for the given corpus file.
func CorpusPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "corpus", file)
}
