package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"qualifiers/internal/core/qualifier"
	"qualifiers/internal/platform/testkit"

	"github.com/klauspost/compress/gzip"
)

const listing = "SMITH\tJOHN\t0000001\t001\t7:30 AM\t1\t0001\tCenter\tAddr\r\n" +
	"DOE\tJANE\tMARIE\t0000002\t002\t7:30 AM\t2\t0001\tCenter\tAddr\n"

func readAll(t *testing.T, path string) string {
	t.Helper()
	r, closeFn, err := openInput(path)
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	defer func() { _ = closeFn() }()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestOpenInput_StripsBOM(t *testing.T) {
	t.Parallel()

	p := testkit.WriteFile(t, "bom.txt", "\xEF\xBB\xBF"+listing)
	if got := readAll(t, p); got != listing {
		t.Fatalf("BOM not removed: %q", got[:8])
	}

	r, closeFn, err := openInput(p)
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	defer func() { _ = closeFn() }()
	recs := 0
	for rec, err := range qualifier.FromReader(r).All() {
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if recs == 0 && rec.Surname != "Smith" {
			t.Fatalf("first surname %q", rec.Surname)
		}
		recs++
	}
	if recs != 2 {
		t.Fatalf("want 2 records, got %d", recs)
	}
}

func TestOpenInput_PlainAndShort(t *testing.T) {
	t.Parallel()

	if got := readAll(t, testkit.WriteFile(t, "plain.txt", listing)); got != listing {
		t.Fatalf("plain input changed")
	}
	if got := readAll(t, testkit.WriteFile(t, "short.txt", "A")); got != "A" {
		t.Fatalf("input shorter than a BOM should pass through, got %q", got)
	}
	if got := readAll(t, testkit.WriteFile(t, "empty.txt", "")); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
}

func TestOpenInput_Gzip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("\xEF\xBB\xBF" + listing)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	p := filepath.Join(t.TempDir(), "listing.txt.GZ")
	if err := os.WriteFile(p, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := readAll(t, p); got != listing {
		t.Fatalf("gzip input not decoded: %q", got)
	}
}

func TestOpenInput_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := openInput(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("missing file should fail")
	}
	if _, _, err := openInput(testkit.WriteFile(t, "bad.gz", "not gzip")); err == nil {
		t.Fatalf("corrupt gzip should fail")
	}
}
