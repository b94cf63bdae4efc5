package qualifier

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"qualifiers/internal/core/normalize"
)

// Decoder owns the line counter and turns one line into a Record
type Decoder struct {
	line   uint32
	casing normalize.Casing
}

// NewDecoder returns a decoder positioned at line 1
func NewDecoder(opts ...Option) *Decoder {
	o := buildOptions(opts)
	return &Decoder{line: o.firstLine, casing: o.casing}
}

// Line is the number the next decoded line will carry
func (d *Decoder) Line() uint32 { return d.line }

// Guard fails with KindTooBig once the counter is saturated. It never advances the counter.
func (d *Decoder) Guard() error {
	if d.line == math.MaxUint32 {
		return newParseError(KindTooBig, d.line)
	}
	return nil
}

// Decode decodes line under the current line number and advances the counter,
// on success and on failure alike
func (d *Decoder) Decode(line string) (Record, error) {
	if err := d.Guard(); err != nil {
		return Record{}, err
	}
	n := d.line
	d.line++
	return decode(line, n, d.casing)
}

// DecodeLine decodes a single line with Unicode name casing. lineno is only used for errors.
func DecodeLine(line string, lineno uint32) (Record, error) {
	return decode(line, lineno, normalize.Unicode)
}

// fields walks tab separated fields without allocating
type fields struct {
	rest string
	done bool
}

func (f *fields) next() (string, bool) {
	if f.done {
		return "", false
	}
	i := strings.IndexByte(f.rest, '\t')
	if i < 0 {
		f.done = true
		return f.rest, true
	}
	v := f.rest[:i]
	f.rest = f.rest[i+1:]
	return v, true
}

func decode(line string, lineno uint32, casing normalize.Casing) (Record, error) {
	f := fields{rest: strings.TrimSpace(line)}
	fail := func(k Kind) (Record, error) { return Record{}, newParseError(k, lineno) }

	surname, ok := f.next()
	if !ok {
		return fail(KindMissingSurname)
	}
	firstName, ok := f.next()
	if !ok {
		return fail(KindMissingFirstName)
	}

	// middle name or application id
	var middle *string
	id, ok := f.next()
	if !ok {
		return fail(KindMissingApplicationID)
	}
	if !MatchApplicationID(id) {
		if id != "" {
			m := normalize.TitleCase(id, casing)
			middle = &m
		}
		if id, ok = f.next(); !ok {
			return fail(KindMissingApplicationID)
		}
		if !MatchApplicationID(id) {
			return fail(KindInvalidApplicationID)
		}
	}

	seat, ok := f.next()
	if !ok {
		return fail(KindMissingSeatNumber)
	}
	if !MatchSeatNumber(seat) {
		return fail(KindInvalidSeatNumber)
	}

	tm, ok := f.next()
	if !ok {
		return fail(KindMissingTime)
	}

	room, ok := f.next()
	if !ok {
		return fail(KindMissingRoomAssignment)
	}
	if !MatchRoomAssignment(room) {
		return fail(KindInvalidRoomAssignment)
	}

	code, ok := f.next()
	if !ok {
		return fail(KindMissingTestCenterCode)
	}
	if !MatchTestCenterCode(code) {
		return fail(KindInvalidTestCenterCode)
	}

	centerName, ok := f.next()
	if !ok {
		return fail(KindMissingTestCenterName)
	}
	centerAddr, ok := f.next()
	if !ok {
		return fail(KindMissingTestCenterAddr)
	}

	return Record{
		ID:             mustParse(id, 64, lineno),
		Surname:        normalize.TitleCase(surname, casing),
		FirstName:      normalize.TitleCase(firstName, casing),
		MiddleName:     middle,
		SeatNumber:     uint32(mustParse(seat, 32, lineno)),
		Time:           tm,
		RoomAssignment: uint32(mustParse(room, 32, lineno)),
		TestCenterCode: uint32(mustParse(code, 32, lineno)),
		TestCenterName: centerName,
		TestCenterAddr: centerAddr,
	}, nil
}

// mustParse converts a field that already matched its digit pattern.
// Failure means a validator and its bit size disagree, which is a bug.
func mustParse(s string, bits int, lineno uint32) uint64 {
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		panic(fmt.Sprintf("qualifier: pattern matched %q but parse failed at line %d: %v", s, lineno, err))
	}
	return v
}
