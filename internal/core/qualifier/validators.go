package qualifier

import "regexp"

// compiled once; *regexp.Regexp is safe for concurrent use
var (
	applicationIDPattern  = regexp.MustCompile(`^[0-9]{7}$`)
	seatNumberPattern     = regexp.MustCompile(`^[0-9]{3}$`)
	roomAssignmentPattern = regexp.MustCompile(`^[0-9]{1,2}$`)
	testCenterCodePattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// MatchApplicationID reports whether s is exactly seven decimal digits
func MatchApplicationID(s string) bool { return applicationIDPattern.MatchString(s) }

// MatchSeatNumber reports whether s is exactly three decimal digits
func MatchSeatNumber(s string) bool { return seatNumberPattern.MatchString(s) }

// MatchRoomAssignment reports whether s is one or two decimal digits
func MatchRoomAssignment(s string) bool { return roomAssignmentPattern.MatchString(s) }

// MatchTestCenterCode reports whether s is exactly four decimal digits
func MatchTestCenterCode(s string) bool { return testCenterCodePattern.MatchString(s) }
