// Package source opens translation documents from disk. Plain JSON and xz,
// gzip or zstd compressed JSON are detected by their magic bytes, so file
// names do not have to carry an extension.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/bible-io/core/corpus"
	bioerrors "github.com/FocuswithJustin/bible-io/core/errors"
)

// MaxDocumentSize bounds the decompressed size of a single document.
const MaxDocumentSize = 256 << 20

var (
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// Compression identifies how a document is stored.
type Compression int

const (
	// None is plain JSON.
	None Compression = iota
	// XZ is an xz stream.
	XZ
	// Gzip is a gzip stream.
	Gzip
	// Zstd is a zstandard stream.
	Zstd
)

func (c Compression) String() string {
	switch c {
	case XZ:
		return "xz"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "none"
}

// Open reads the document at path and loads it.
func Open(path string) (*corpus.Translation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bioerrors.Wrap(err, "open corpus")
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, bioerrors.Wrap(err, path)
	}
	return t, nil
}

// Read decompresses r if needed and loads the document it contains.
func Read(r io.Reader) (*corpus.Translation, error) {
	raw, _, err := ReadAll(r)
	if err != nil {
		return nil, err
	}
	return corpus.Load(raw)
}

// ReadAll returns the decompressed document bytes and the compression found.
func ReadAll(r io.Reader) ([]byte, Compression, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF {
		return nil, None, bioerrors.Wrap(err, "read corpus")
	}

	var reader io.Reader = br
	kind := None
	switch {
	case bytes.HasPrefix(head, xzMagic):
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, XZ, bioerrors.Wrap(err, "xz reader")
		}
		reader, kind = xzr, XZ
	case bytes.HasPrefix(head, gzipMagic):
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return nil, Gzip, bioerrors.Wrap(err, "gzip reader")
		}
		defer gzr.Close()
		reader, kind = gzr, Gzip
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, Zstd, bioerrors.Wrap(err, "zstd reader")
		}
		defer zr.Close()
		reader, kind = zr, Zstd
	}

	raw, err := io.ReadAll(io.LimitReader(reader, MaxDocumentSize+1))
	if err != nil {
		return nil, kind, bioerrors.Wrapf(err, "read %s corpus", kind)
	}
	if len(raw) > MaxDocumentSize {
		return nil, kind, fmt.Errorf("corpus exceeds %d bytes", MaxDocumentSize)
	}
	return raw, kind, nil
}
