package scanner

import (
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Source is a character source for tokenizers. Open may be called more than
// once; each call has to deliver the input from the start.
// If the reader returned by Open is an io.Closer, the token stream will close it.
type Source interface {
	Open() (io.Reader, error)
}

// StringSource is a source for in-memory input.
type StringSource string

// Open is part of interface Source.
func (s StringSource) Open() (io.Reader, error) {
	return strings.NewReader(string(s)), nil
}

type fileSource string

// FileSource creates a source reading from a file.
func FileSource(path string) Source {
	return fileSource(path)
}

func (f fileSource) Open() (io.Reader, error) {
	return os.Open(string(f))
}

type nfcSource struct {
	src Source
}

// NFC wraps a source so that its input is normalized to Unicode normalization
// form C. Literals of a lexer are usually written in composed form; with NFC,
// decomposed input (e.g. 'e' followed by a combining accent) will match them.
func NFC(src Source) Source {
	return nfcSource{src: src}
}

func (n nfcSource) Open() (io.Reader, error) {
	r, err := n.src.Open()
	if err != nil {
		return nil, err
	}
	nr := norm.NFC.Reader(r)
	if c, ok := r.(io.Closer); ok {
		return readCloser{Reader: nr, Closer: c}, nil
	}
	return nr, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}
