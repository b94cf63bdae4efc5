package main

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// openInput opens path for reading, "-" being stdin. A .gz suffix is decompressed.
// The returned reader has any leading UTF-8 byte order mark removed.
func openInput(path string) (*bufio.Reader, func() error, error) {
	var (
		r       io.Reader
		closers []io.Closer
	)
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		r = f
		closers = append(closers, f)
	}

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		r = zr
		closers = append([]io.Closer{zr}, closers...)
	}

	br, err := skipBOM(r)
	if err != nil {
		closeAll(closers)
		return nil, nil, err
	}
	return br, func() error { return closeAll(closers) }, nil
}

// skipBOM buffers r and drops a leading UTF-8 byte order mark
func skipBOM(r io.Reader) (*bufio.Reader, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	head, err := br.Peek(len(utf8BOM))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br, nil
}

func closeAll(cs []io.Closer) error {
	var first error
	for _, c := range cs {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
