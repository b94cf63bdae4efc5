// internal/core/qualifier/qualifier_test.go
package qualifier

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"qualifiers/internal/core/normalize"
	"qualifiers/internal/platform/testkit"
)

const (
	centerName = "University of the Philippines Diliman"
	centerAddr = "Kalaw Corner, Quirino Street, UP Diliman, Quezon City, Metro Manila"
)

func baseFields() []string {
	return []string{"Smith", "John", "0000001", "001", "7:30 AM", "1", "0001", centerName, centerAddr}
}

func join(f ...string) string { return strings.Join(f, "\t") }

func wantKind(t *testing.T, err error, k Kind, line uint32) {
	t.Helper()
	pe, ok := AsParseError(err)
	if !ok {
		t.Fatalf("want %s, got %v", k, err)
	}
	if pe.Kind != k {
		t.Fatalf("want kind %s, got %s (%v)", k, pe.Kind, err)
	}
	if pe.Line != line {
		t.Fatalf("want line %d, got %d", line, pe.Line)
	}
}

func TestDecodeLine_ScenarioNoMiddleName(t *testing.T) {
	t.Parallel()
	rec, err := DecodeLine(join(baseFields()...), 1)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.ID != 1 || rec.Surname != "Smith" || rec.FirstName != "John" {
		t.Fatalf("bad identity: %+v", rec)
	}
	if rec.MiddleName != nil || rec.HasMiddleName() {
		t.Fatalf("expected no middle name, got %q", *rec.MiddleName)
	}
	if rec.SeatNumber != 1 || rec.RoomAssignment != 1 || rec.TestCenterCode != 1 {
		t.Fatalf("bad numbers: %+v", rec)
	}
	if rec.Time != "7:30 AM" || rec.TestCenterName != centerName || rec.TestCenterAddr != centerAddr {
		t.Fatalf("bad verbatim fields: %+v", rec)
	}
}

func TestDecodeLine_ScenarioMiddleName(t *testing.T) {
	t.Parallel()
	f := baseFields()
	withMiddle := append([]string{f[0], f[1], "Cruz"}, f[2:]...)

	rec, err := DecodeLine(join(withMiddle...), 1)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.MiddleName == nil || *rec.MiddleName != "Cruz" {
		t.Fatalf("expected middle name Cruz, got %+v", rec.MiddleName)
	}
	plain, _ := DecodeLine(join(f...), 1)
	rec.MiddleName = nil
	if rec != plain {
		t.Fatalf("remaining fields differ:\n%+v\n%+v", rec, plain)
	}
}

func TestDecodeLine_EmptyMiddleColumn(t *testing.T) {
	t.Parallel()
	f := baseFields()
	line := join(append([]string{f[0], f[1], ""}, f[2:]...)...)
	rec, err := DecodeLine(line, 1)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.MiddleName != nil || rec.ID != 1 {
		t.Fatalf("empty column should mean no middle name: %+v", rec)
	}
}

func TestDecodeLine_TitleCasesNames(t *testing.T) {
	t.Parallel()
	f := baseFields()
	f[0], f[1] = "DELA CRUZ", "maria clara"
	line := join(append([]string{f[0], f[1], "SANTOS"}, f[2:]...)...)
	rec, err := DecodeLine(line, 1)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Surname != "Dela Cruz" || rec.FirstName != "Maria Clara" || *rec.MiddleName != "Santos" {
		t.Fatalf("casing: %+v", rec)
	}
}

func TestDecoder_ASCIICasing(t *testing.T) {
	t.Parallel()
	f := baseFields()
	f[0] = "PEÑA"
	d := NewDecoder(WithCasing(normalize.ASCII))
	rec, err := d.Decode(join(f...))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Surname != "PeÑa" {
		t.Fatalf("ascii casing should leave Ñ alone, got %q", rec.Surname)
	}
	rec, _ = DecodeLine(join(f...), 1)
	if rec.Surname != "Peña" {
		t.Fatalf("unicode casing, got %q", rec.Surname)
	}
}

func TestDecodeLine_MissingFields(t *testing.T) {
	t.Parallel()
	full := baseFields()
	want := []Kind{
		0: KindMissingFirstName, // empty line still has one (empty) field
		1: KindMissingFirstName,
		2: KindMissingApplicationID,
		3: KindMissingSeatNumber,
		4: KindMissingTime,
		5: KindMissingRoomAssignment,
		6: KindMissingTestCenterCode,
		7: KindMissingTestCenterName,
		8: KindMissingTestCenterAddr,
	}
	for n, k := range want {
		_, err := DecodeLine(join(full[:n]...), 7)
		wantKind(t, err, k, 7)
	}
}

func TestDecodeLine_MiddleNameWithoutID(t *testing.T) {
	t.Parallel()
	_, err := DecodeLine(join("Smith", "John", "Cruz"), 3)
	wantKind(t, err, KindMissingApplicationID, 3)
}

func TestDecodeLine_InvalidFields(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		pos  int
		val  string
		kind Kind
	}{
		{"id six digits then seat", 2, "123456", KindInvalidApplicationID},
		{"id eight digits", 2, "00000012", KindInvalidApplicationID},
		{"seat two digits", 3, "12", KindInvalidSeatNumber},
		{"seat four digits", 3, "1234", KindInvalidSeatNumber},
		{"seat non digit", 3, "12a", KindInvalidSeatNumber},
		{"room three digits", 5, "123", KindInvalidRoomAssignment},
		{"room empty", 5, "", KindInvalidRoomAssignment},
		{"room letter", 5, "A", KindInvalidRoomAssignment},
		{"code three digits", 6, "001", KindInvalidTestCenterCode},
		{"code five digits", 6, "00001", KindInvalidTestCenterCode},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := baseFields()
			f[c.pos] = c.val
			_, err := DecodeLine(join(f...), 4)
			wantKind(t, err, c.kind, 4)
		})
	}
}

func TestDecodeLine_MiddleNameThenBadID(t *testing.T) {
	t.Parallel()
	f := baseFields()
	line := join(append([]string{f[0], f[1], "Cruz", "12345"}, f[3:]...)...)
	_, err := DecodeLine(line, 2)
	wantKind(t, err, KindInvalidApplicationID, 2)
}

func TestDecodeLine_OuterWhitespaceAndExtraFields(t *testing.T) {
	t.Parallel()
	f := baseFields()
	rec, err := DecodeLine("  "+join(f...)+"\t\t ", 1)
	if err != nil {
		t.Fatalf("trailing tabs should be trimmed: %v", err)
	}
	if rec.TestCenterAddr != centerAddr {
		t.Fatalf("addr: %q", rec.TestCenterAddr)
	}
	rec, err = DecodeLine(join(append(f, "extra", "more")...), 1)
	if err != nil || rec.TestCenterAddr != centerAddr {
		t.Fatalf("extra fields should be ignored: %v %+v", err, rec)
	}
	// interior whitespace of fields is kept
	f[4] = " 7:30  AM "
	rec, err = DecodeLine(join(f...), 1)
	if err != nil || rec.Time != " 7:30  AM " {
		t.Fatalf("time should be verbatim: %v %q", err, rec.Time)
	}
}

func TestMustParse_PanicsOnMismatchedPair(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { mustParse("99999999999", 32, 1) })
	testkit.MustNotPanic(t, func() { mustParse("0009", 32, 1) })
}

func TestQualifiers_CountsLinesAcrossFailures(t *testing.T) {
	t.Parallel()
	good := join(baseFields()...)
	bad := join("Smith", "John")
	input := strings.Join([]string{good, bad, good, good, bad}, "\n")

	var failed []uint32
	var ok int
	for _, err := range FromString(input).All() {
		if err != nil {
			pe, isPE := AsParseError(err)
			if !isPE {
				t.Fatalf("unexpected error type %T", err)
			}
			failed = append(failed, pe.Line)
			continue
		}
		ok++
	}
	if ok != 3 {
		t.Fatalf("want 3 records, got %d", ok)
	}
	if len(failed) != 2 || failed[0] != 2 || failed[1] != 5 {
		t.Fatalf("failed lines = %v, want [2 5]", failed)
	}
}

func TestQualifiers_CRLFMatchesLF(t *testing.T) {
	t.Parallel()
	good := join(baseFields()...)

	lf, err := Collect(good + "\n" + good + "\n")
	if err != nil {
		t.Fatalf("lf: %v", err)
	}
	crlf, err := Collect(good + "\r\n" + good + "\r\n")
	if err != nil {
		t.Fatalf("crlf: %v", err)
	}
	if len(lf) != 2 || len(crlf) != 2 || lf[0] != crlf[0] || lf[1] != crlf[1] {
		t.Fatalf("records differ: %+v vs %+v", lf, crlf)
	}

	q := FromReader(strings.NewReader(good + "\r\n"))
	rec, err := q.Next()
	if err != nil || rec != lf[0] {
		t.Fatalf("stream crlf: %v %+v", err, rec)
	}
}

func TestQualifiers_StreamFinalLineWithoutNewline(t *testing.T) {
	t.Parallel()
	good := join(baseFields()...)

	collect := func(s string) []Record {
		var out []Record
		for rec, err := range FromReader(strings.NewReader(s)).All() {
			if err != nil {
				t.Fatalf("stream: %v", err)
			}
			out = append(out, rec)
		}
		return out
	}
	a, b := collect(good), collect(good+"\n")
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Fatalf("want one identical record each, got %d and %d", len(a), len(b))
	}
}

func TestQualifiers_ExhaustedStaysExhausted(t *testing.T) {
	t.Parallel()
	q := FromString(join(baseFields()...))
	if _, err := q.Next(); err != nil {
		t.Fatalf("first: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := q.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("want io.EOF, got %v", err)
		}
	}
	if q.Line() != 2 {
		t.Fatalf("line advanced past end: %d", q.Line())
	}
}

func TestDecoder_Saturation(t *testing.T) {
	t.Parallel()
	good := join(baseFields()...)
	d := NewDecoder(WithFirstLine(math.MaxUint32 - 1))

	if _, err := d.Decode(good); err != nil {
		t.Fatalf("last representable line should decode: %v", err)
	}
	for i := 0; i < 2; i++ {
		_, err := d.Decode(good)
		wantKind(t, err, KindTooBig, math.MaxUint32)
		if !errors.Is(err, ErrTooBig) {
			t.Fatalf("errors.Is TooBig failed")
		}
	}
	if d.Line() != math.MaxUint32 {
		t.Fatalf("counter wrapped: %d", d.Line())
	}
}

func TestQualifiers_SaturationStopsAll(t *testing.T) {
	t.Parallel()
	good := join(baseFields()...)
	q := FromString(strings.Repeat(good+"\n", 5), WithFirstLine(math.MaxUint32-2))

	var outcomes []error
	for _, err := range q.All() {
		outcomes = append(outcomes, err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("want 2 records and one TooBig, got %d outcomes", len(outcomes))
	}
	if outcomes[0] != nil || outcomes[1] != nil {
		t.Fatalf("unexpected early errors: %v", outcomes)
	}
	wantKind(t, outcomes[2], KindTooBig, math.MaxUint32)

	// the guard does not consume lines
	if _, err := q.Next(); !errors.Is(err, ErrTooBig) {
		t.Fatalf("want sticky TooBig, got %v", err)
	}
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestQualifiers_IOErrorCarriesCause(t *testing.T) {
	t.Parallel()
	boom := errors.New("disk on fire")
	good := join(baseFields()...)
	q := FromReader(&failingReader{data: []byte(good + "\n"), err: boom})

	if _, err := q.Next(); err != nil {
		t.Fatalf("first line: %v", err)
	}
	_, err := q.Next()
	pe, ok := AsParseError(err)
	if !ok || pe.Kind != KindIO {
		t.Fatalf("want IO parse error, got %v", err)
	}
	if _, known := pe.LineNumber(); known {
		t.Fatalf("IO errors carry no line")
	}
	if !errors.Is(err, boom) || !errors.Is(err, ErrIO) {
		t.Fatalf("cause chain broken: %v", err)
	}
	testkit.MustContain(t, err.Error(), "I/O error occurred: disk on fire")
	if q.Line() != 2 {
		t.Fatalf("IO failure must not advance the counter, line=%d", q.Line())
	}
}

func TestQualifiers_AllContinuesAfterIO(t *testing.T) {
	t.Parallel()

	second := baseFields()
	second[2] = "0000002"
	in := join(baseFields()...) + "\nbad \xff line\n" + join(second...) + "\n"

	var ids []uint64
	var ioErrs int
	for rec, err := range FromReader(strings.NewReader(in)).All() {
		if err != nil {
			testkit.MustErrorIs(t, err, ErrInvalidUTF8)
			ioErrs++
			continue
		}
		ids = append(ids, rec.ID)
	}
	if ioErrs != 1 || len(ids) != 2 || ids[1] != 2 {
		t.Fatalf("got ids %v and %d io errors", ids, ioErrs)
	}
}
