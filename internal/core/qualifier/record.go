package qualifier

// Record is one decoded examinee entry. Text columns may be empty; only an absent
// column is a decode error. The validate tags bound the numeric columns by digit width.
type Record struct {
	ID             uint64  `json:"id" validate:"max=9999999"`
	Surname        string  `json:"surname"`
	FirstName      string  `json:"first_name"`
	MiddleName     *string `json:"middle_name,omitempty" validate:"omitempty,min=1"`
	SeatNumber     uint32  `json:"seat_number" validate:"max=999"`
	Time           string  `json:"time"`
	RoomAssignment uint32  `json:"room_assignment" validate:"max=99"`
	TestCenterCode uint32  `json:"test_center_code" validate:"max=9999"`
	TestCenterName string  `json:"test_center_name"`
	TestCenterAddr string  `json:"test_center_addr"`
}

// HasMiddleName reports whether the source line carried a middle name column
func (r Record) HasMiddleName() bool { return r.MiddleName != nil }
