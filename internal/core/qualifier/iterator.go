package qualifier

import (
	"errors"
	"io"
	"iter"

	"qualifiers/internal/core/normalize"
)

// Option configures a Decoder or Qualifiers
type Option func(*options)

type options struct {
	casing    normalize.Casing
	firstLine uint32
}

func buildOptions(opts []Option) options {
	o := options{casing: normalize.Unicode, firstLine: 1}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// WithCasing selects how names are title cased (default normalize.Unicode)
func WithCasing(c normalize.Casing) Option {
	return func(o *options) { o.casing = c }
}

// WithFirstLine numbers the first pulled line n instead of 1, for inputs that continue
// an earlier file. Zero is ignored.
func WithFirstLine(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.firstLine = n
		}
	}
}

// Qualifiers is a lazy sequence of decode outcomes, one per input line
type Qualifiers struct {
	src       LineSource
	dec       *Decoder
	exhausted bool
}

// New builds a sequence over any LineSource
func New(src LineSource, opts ...Option) *Qualifiers {
	return &Qualifiers{src: src, dec: NewDecoder(opts...)}
}

// FromString decodes an in-memory listing without copying lines
func FromString(s string, opts ...Option) *Qualifiers {
	return New(NewStringLines(s), opts...)
}

// FromReader decodes a listing streamed from r
func FromReader(r io.Reader, opts ...Option) *Qualifiers {
	return New(NewStreamLines(r), opts...)
}

// Line is the number the next pulled line will carry
func (q *Qualifiers) Line() uint32 { return q.dec.Line() }

// Next pulls and decodes one line.
// It returns io.EOF once the source is drained, a *ParseError of KindIO when the read
// failed (the sequence stays usable), or the decode outcome of the line.
func (q *Qualifiers) Next() (Record, error) {
	if q.exhausted {
		return Record{}, io.EOF
	}
	if err := q.dec.Guard(); err != nil {
		return Record{}, err
	}
	line, err := q.src.NextLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			q.exhausted = true
		}
		return Record{}, err
	}
	return q.dec.Decode(line)
}

// All ranges over every outcome until end of input. It stops after yielding
// a KindTooBig error since no later pull can succeed. A KindIO error does not
// stop it: a reader that keeps failing keeps yielding errors, so a loop that
// continues on errors must break on KindIO itself.
func (q *Qualifiers) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := q.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) {
				return
			}
			if k, ok := KindOf(err); ok && k == KindTooBig {
				return
			}
		}
	}
}

// Collect drains the sequence, stopping at the first error
func Collect(s string, opts ...Option) ([]Record, error) {
	var out []Record
	for rec, err := range FromString(s, opts...).All() {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}

var (
	_ LineSource = (*StringLines)(nil)
	_ LineSource = (*StreamLines)(nil)
)
