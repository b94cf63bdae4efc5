package qualifier

import (
	"errors"
	"fmt"
)

// Kind classifies why a line could not be decoded
type Kind uint8

const (
	// KindIO is a read failure from the underlying byte stream
	KindIO Kind = iota

	// KindTooBig means the line counter is saturated and decoding cannot continue
	KindTooBig

	KindMissingSurname
	KindMissingFirstName
	KindMissingApplicationID
	KindInvalidApplicationID
	KindMissingSeatNumber
	KindInvalidSeatNumber
	KindMissingRoomAssignment
	KindInvalidRoomAssignment
	KindMissingTime
	KindMissingTestCenterCode
	KindInvalidTestCenterCode
	KindMissingTestCenterName
	KindMissingTestCenterAddr
)

var kindMessages = [...]string{
	KindIO:                    "I/O error occurred",
	KindTooBig:                "data is too big to handle",
	KindMissingSurname:        "missing surname data",
	KindMissingFirstName:      "missing first name data",
	KindMissingApplicationID:  "missing application id",
	KindInvalidApplicationID:  "invalid application id",
	KindMissingSeatNumber:     "missing seat number",
	KindInvalidSeatNumber:     "invalid seat number",
	KindMissingRoomAssignment: "missing room assignment",
	KindInvalidRoomAssignment: "invalid room assignment",
	KindMissingTime:           "missing time",
	KindMissingTestCenterCode: "missing test center code",
	KindInvalidTestCenterCode: "invalid test center code",
	KindMissingTestCenterName: "missing test center name",
	KindMissingTestCenterAddr: "missing test center addr",
}

var kindFields = [...]string{
	KindIO:                    "",
	KindTooBig:                "",
	KindMissingSurname:        "surname",
	KindMissingFirstName:      "first_name",
	KindMissingApplicationID:  "application_id",
	KindInvalidApplicationID:  "application_id",
	KindMissingSeatNumber:     "seat_number",
	KindInvalidSeatNumber:     "seat_number",
	KindMissingRoomAssignment: "room_assignment",
	KindInvalidRoomAssignment: "room_assignment",
	KindMissingTime:           "time",
	KindMissingTestCenterCode: "test_center_code",
	KindInvalidTestCenterCode: "test_center_code",
	KindMissingTestCenterName: "test_center_name",
	KindMissingTestCenterAddr: "test_center_addr",
}

var kindNames = [...]string{
	KindIO:                    "IO",
	KindTooBig:                "TooBig",
	KindMissingSurname:        "MissingSurname",
	KindMissingFirstName:      "MissingFirstName",
	KindMissingApplicationID:  "MissingApplicationId",
	KindInvalidApplicationID:  "InvalidApplicationId",
	KindMissingSeatNumber:     "MissingSeatNumber",
	KindInvalidSeatNumber:     "InvalidSeatNumber",
	KindMissingRoomAssignment: "MissingRoomAssignment",
	KindInvalidRoomAssignment: "InvalidRoomAssignment",
	KindMissingTime:           "MissingTime",
	KindMissingTestCenterCode: "MissingTestCenterCode",
	KindInvalidTestCenterCode: "InvalidTestCenterCode",
	KindMissingTestCenterName: "MissingTestCenterName",
	KindMissingTestCenterAddr: "MissingTestCenterAddr",
}

// Kinds lists every kind in declaration order
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// String returns the stable identifier of the kind, e.g. "InvalidSeatNumber"
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Message returns the human readable description of the kind
func (k Kind) Message() string {
	if int(k) < len(kindMessages) {
		return kindMessages[k]
	}
	return "unknown parse error"
}

// Field names the input column the kind refers to, empty for IO and TooBig
func (k Kind) Field() string {
	if int(k) < len(kindFields) {
		return kindFields[k]
	}
	return ""
}

// ParseError is the single failure produced for a line.
// Line is 1-based; 0 means no line could be assigned (only for KindIO).
type ParseError struct {
	Kind Kind
	Line uint32
	Err  error
}

func newParseError(kind Kind, line uint32) *ParseError {
	return &ParseError{Kind: kind, Line: line}
}

// Error implements error
func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.Message()
	if e.Line != 0 {
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause, set for KindIO
func (e *ParseError) Unwrap() error { return e.Err }

// Is matches another *ParseError by kind; a target with a non-zero Line must match it too
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Line == 0 || t.Line == e.Line
}

// LineNumber returns the line and whether one is known
func (e *ParseError) LineNumber() (uint32, bool) { return e.Line, e.Line != 0 }

// Sentinels for errors.Is matching by kind
var (
	ErrIO                    = &ParseError{Kind: KindIO}
	ErrTooBig                = &ParseError{Kind: KindTooBig}
	ErrMissingSurname        = &ParseError{Kind: KindMissingSurname}
	ErrMissingFirstName      = &ParseError{Kind: KindMissingFirstName}
	ErrMissingApplicationID  = &ParseError{Kind: KindMissingApplicationID}
	ErrInvalidApplicationID  = &ParseError{Kind: KindInvalidApplicationID}
	ErrMissingSeatNumber     = &ParseError{Kind: KindMissingSeatNumber}
	ErrInvalidSeatNumber     = &ParseError{Kind: KindInvalidSeatNumber}
	ErrMissingRoomAssignment = &ParseError{Kind: KindMissingRoomAssignment}
	ErrInvalidRoomAssignment = &ParseError{Kind: KindInvalidRoomAssignment}
	ErrMissingTime           = &ParseError{Kind: KindMissingTime}
	ErrMissingTestCenterCode = &ParseError{Kind: KindMissingTestCenterCode}
	ErrInvalidTestCenterCode = &ParseError{Kind: KindInvalidTestCenterCode}
	ErrMissingTestCenterName = &ParseError{Kind: KindMissingTestCenterName}
	ErrMissingTestCenterAddr = &ParseError{Kind: KindMissingTestCenterAddr}
)

// AsParseError unwraps err to a *ParseError when it is one of ours
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// KindOf reports the kind of err if it wraps a *ParseError
func KindOf(err error) (Kind, bool) {
	if pe, ok := AsParseError(err); ok {
		return pe.Kind, true
	}
	return 0, false
}
