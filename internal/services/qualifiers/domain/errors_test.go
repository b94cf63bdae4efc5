package domain

import (
	"errors"
	"io"
	"testing"

	"qualifiers/internal/core/qualifier"
	perr "qualifiers/internal/platform/errors"
)

func TestFromParseError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    error
		code  perr.ErrorCode
		field string
		line  uint32
	}{
		{"bad column", &qualifier.ParseError{Kind: qualifier.KindInvalidSeatNumber, Line: 4}, perr.ErrorCodeValidation, "seat_number", 4},
		{"missing column", &qualifier.ParseError{Kind: qualifier.KindMissingTestCenterAddr, Line: 9}, perr.ErrorCodeValidation, "test_center_addr", 9},
		{"too big", &qualifier.ParseError{Kind: qualifier.KindTooBig, Line: 7}, perr.ErrorCodeValidation, "", 7},
		{"read failure", &qualifier.ParseError{Kind: qualifier.KindIO, Err: io.ErrUnexpectedEOF}, perr.ErrorCodeUnavailable, "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := FromParseError(c.in)
			w := perr.WireFrom(err)
			if w.Code != c.code || w.Field != c.field || w.Line != c.line {
				t.Fatalf("unexpected wire %+v", w)
			}
			if !errors.Is(err, c.in) {
				t.Fatalf("the parse error should stay reachable")
			}
		})
	}
}

func TestFromParseError_IORootIsCause(t *testing.T) {
	t.Parallel()

	err := FromParseError(&qualifier.ParseError{Kind: qualifier.KindIO, Err: io.ErrUnexpectedEOF})
	if perr.Root(err) != io.ErrUnexpectedEOF {
		t.Fatalf("root should be the read error, got %v", perr.Root(err))
	}
	if _, ok := qualifier.AsParseError(err); !ok {
		t.Fatalf("AsParseError should see through the wrapper")
	}
}

func TestFromParseError_PassesOthersThrough(t *testing.T) {
	t.Parallel()

	other := errors.New("boom")
	if FromParseError(other) != other {
		t.Fatalf("foreign errors must be returned unchanged")
	}
}

func TestFatal(t *testing.T) {
	t.Parallel()

	if !Fatal(qualifier.ErrIO) || !Fatal(qualifier.ErrTooBig) {
		t.Fatalf("IO and TooBig end a run")
	}
	if Fatal(qualifier.ErrMissingTime) || Fatal(errors.New("x")) {
		t.Fatalf("line level and foreign errors are not fatal")
	}
}

func TestSummaryCount(t *testing.T) {
	t.Parallel()

	var s Summary
	s.Count("MissingTime")
	s.Count("MissingTime")
	s.Count("IO")
	if s.Failed != 3 || s.ByKind["MissingTime"] != 2 || s.ByKind["IO"] != 1 {
		t.Fatalf("unexpected %+v", s)
	}
}
