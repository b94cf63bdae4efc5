package service

import (
	"fmt"

	"qualifiers/internal/core/qualifier"
	"qualifiers/internal/platform/validate"
)

// the shared validator learns the NCE column formats before any service call
func init() {
	for _, r := range []struct {
		tag, msg string
		match    func(string) bool
	}{
		{"nce_application_id", "must be exactly 7 digits", qualifier.MatchApplicationID},
		{"nce_seat_number", "must be exactly 3 digits", qualifier.MatchSeatNumber},
		{"nce_room_assignment", "must be 1 or 2 digits", qualifier.MatchRoomAssignment},
		{"nce_test_center_code", "must be exactly 4 digits", qualifier.MatchTestCenterCode},
	} {
		if err := validate.Register(r.tag, r.msg, r.match); err != nil {
			panic(err)
		}
	}
}

// columns is the textual form of a record's numeric columns, as the source file spells them
type columns struct {
	ApplicationID  string `json:"application_id" validate:"nce_application_id"`
	SeatNumber     string `json:"seat_number" validate:"nce_seat_number"`
	RoomAssignment string `json:"room_assignment" validate:"nce_room_assignment"`
	TestCenterCode string `json:"test_center_code" validate:"nce_test_center_code"`
}

// checkRecord validates a record before it is stored
func checkRecord(rec qualifier.Record) error {
	if err := validate.Struct(rec); err != nil {
		return err
	}
	return validate.Struct(columns{
		ApplicationID:  fmt.Sprintf("%07d", rec.ID),
		SeatNumber:     fmt.Sprintf("%03d", rec.SeatNumber),
		RoomAssignment: fmt.Sprintf("%d", rec.RoomAssignment),
		TestCenterCode: fmt.Sprintf("%04d", rec.TestCenterCode),
	})
}

// checkApplicationID validates a lookup id the way the source file spells it
func checkApplicationID(id uint64) error {
	return validate.Var("id", fmt.Sprintf("%07d", id), "nce_application_id")
}

// checkTestCenterCode validates a lookup code the way the source file spells it
func checkTestCenterCode(code uint32) error {
	return validate.Var("code", fmt.Sprintf("%04d", code), "nce_test_center_code")
}
