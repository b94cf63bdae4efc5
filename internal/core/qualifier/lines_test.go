package qualifier

import (
	"errors"
	"io"
	"strings"
	"testing"
	"unsafe"
)

func drain(t *testing.T, src LineSource) []string {
	t.Helper()
	var out []string
	for {
		line, err := src.NextLine()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("NextLine: %v", err)
		}
		out = append(out, line)
	}
}

func TestLineSources(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
		{"a\rb\n", []string{"a\rb"}},
	}
	for _, c := range cases {
		for name, src := range map[string]LineSource{
			"string": NewStringLines(c.in),
			"stream": NewStreamLines(strings.NewReader(c.in)),
		} {
			got := drain(t, src)
			if strings.Join(got, "|") != strings.Join(c.want, "|") || len(got) != len(c.want) {
				t.Fatalf("%s %q: got %q want %q", name, c.in, got, c.want)
			}
		}
	}
}

func TestStringLines_ZeroCopy(t *testing.T) {
	t.Parallel()
	in := "first\nsecond"
	src := NewStringLines(in)
	line, _ := src.NextLine()
	if line != "first" || unsafe.StringData(line) != unsafe.StringData(in) {
		t.Fatalf("first line should share the input's bytes")
	}
	line, _ = src.NextLine()
	if line != "second" || unsafe.StringData(line) != unsafe.StringData(in[6:]) {
		t.Fatalf("second line should share the input's bytes")
	}
}

func TestStreamLines_InvalidUTF8(t *testing.T) {
	t.Parallel()

	src := NewStreamLines(strings.NewReader("ok\n7:30 \xffAM\nnext\n\xfe"))
	if line, err := src.NextLine(); err != nil || line != "ok" {
		t.Fatalf("first line = %q, %v", line, err)
	}

	_, err := src.NextLine()
	if !errors.Is(err, ErrIO) || !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("want KindIO caused by invalid UTF-8, got %v", err)
	}
	if pe, _ := AsParseError(err); pe.Line != 0 {
		t.Fatalf("read errors carry no line, got %d", pe.Line)
	}

	if line, err := src.NextLine(); err != nil || line != "next" {
		t.Fatalf("source should resume after the bad line, got %q, %v", line, err)
	}
	if _, err := src.NextLine(); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("unterminated final line should be checked too, got %v", err)
	}
	if _, err := src.NextLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("want EOF, got %v", err)
	}
}
