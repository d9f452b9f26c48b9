package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/bible-io/core/canon"
	bioerrors "github.com/FocuswithJustin/bible-io/core/errors"
)

const kjvDoc = `{"id":"kjv","name":"KJV","description":"d","language":"English","books":{"gn":{"name":"Genesis","chapters":[["In the beginning...","And the earth..."]]}}}`

const webDoc = `{"id":"web","name":"WEB","description":"d","language":"English","books":{"jo":{"name":"John","chapters":{"1":{"1":"In the beginning was the Word"}}}}}`

func writePlain(t *testing.T, dir, name, doc string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func writeXZ(t *testing.T, dir, name, doc string) string {
	t.Helper()
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write([]byte(doc)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	return writePlain(t, dir, name, buf.String())
}

func writeGzip(t *testing.T, dir, name, doc string) string {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte(doc)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return writePlain(t, dir, name, buf.String())
}

func writeZstd(t *testing.T, dir, name, doc string) string {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write([]byte(doc)); err != nil {
		t.Fatalf("zstd write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}
	return writePlain(t, dir, name, buf.String())
}

func TestOpenFormats(t *testing.T) {
	dir := t.TempDir()
	paths := map[string]string{
		"plain":          writePlain(t, dir, "kjv.json", kjvDoc),
		"xz":             writeXZ(t, dir, "kjv.json.xz", kjvDoc),
		"gzip":           writeGzip(t, dir, "kjv.json.gz", kjvDoc),
		"zstd":           writeZstd(t, dir, "kjv.json.zst", kjvDoc),
		"xz no suffix":   writeXZ(t, dir, "kjv-xz", kjvDoc),
		"leading spaces": writePlain(t, dir, "spaced.json", "\n\t "+kjvDoc),
	}

	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			tr, err := Open(path)
			if err != nil {
				t.Fatalf("Open(%s) error: %v", path, err)
			}
			text, err := tr.Verse(canon.Genesis, 1, 1)
			if err != nil || text != "In the beginning..." {
				t.Errorf("Verse(gn 1:1) = %q, %v", text, err)
			}
		})
	}
}

func TestReadAllCompression(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		path string
		want Compression
	}{
		{writePlain(t, dir, "a.json", kjvDoc), None},
		{writeXZ(t, dir, "a.json.xz", kjvDoc), XZ},
		{writeGzip(t, dir, "a.json.gz", kjvDoc), Gzip},
		{writeZstd(t, dir, "a.json.zst", kjvDoc), Zstd},
	}
	for _, tt := range tests {
		f, err := os.Open(tt.path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		raw, kind, err := ReadAll(f)
		f.Close()
		if err != nil {
			t.Fatalf("ReadAll(%s) error: %v", tt.path, err)
		}
		if kind != tt.want {
			t.Errorf("ReadAll(%s) compression = %v, want %v", tt.path, kind, tt.want)
		}
		if string(raw) != kjvDoc {
			t.Errorf("ReadAll(%s) returned %d bytes, want the original document", tt.path, len(raw))
		}
	}
}

func TestReadShortInput(t *testing.T) {
	_, err := Read(strings.NewReader("{}"))
	if !errors.Is(err, bioerrors.ErrMissingField) {
		t.Errorf("Read({}) error = %v, want ErrMissingField", err)
	}

	_, err = Read(strings.NewReader(""))
	if !errors.Is(err, bioerrors.ErrMalformedDocument) {
		t.Errorf("Read(empty) error = %v, want ErrMalformedDocument", err)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Open(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := writePlain(t, dir, "bad.json", `{"id":"x"`)
	_, err := Open(bad)
	if !errors.Is(err, bioerrors.ErrMalformedDocument) {
		t.Errorf("Open(bad) error = %v, want ErrMalformedDocument", err)
	}
	if err != nil && !strings.Contains(err.Error(), bad) {
		t.Errorf("Open(bad) error %q does not name the file", err)
	}

	corrupt := writePlain(t, dir, "corrupt.xz", string(xzMagic)+"garbage")
	_, err = Open(corrupt)
	if err == nil {
		t.Fatal("Open(corrupt xz) succeeded")
	}
	for _, want := range []string{corrupt, "xz reader"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Open(corrupt xz) error %q does not mention %q", err, want)
		}
	}
}

func TestCompressionString(t *testing.T) {
	for c, want := range map[Compression]string{None: "none", XZ: "xz", Gzip: "gzip", Zstd: "zstd"} {
		if got := c.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", c, got, want)
		}
	}
}
