// Package domain holds DTOs and ports shared by the qualifiers repo, service and http layers
package domain

import (
	"time"

	"qualifiers/internal/core/qualifier"
)

// TestCenter is a test center as served by the lookup API
type TestCenter struct {
	Code      uint32 `json:"code" example:"1234"`
	Name      string `json:"name" example:"MANILA HIGH SCHOOL"`
	Address   string `json:"address" example:"TAFT AVENUE, MANILA"`
	Examinees int64  `json:"examinees,omitempty" example:"42"`
}

// Examinee is one stored qualifier joined to its test center
type Examinee struct {
	ID             uint64     `json:"id" example:"1234567"`
	Surname        string     `json:"surname" example:"Dela Cruz"`
	FirstName      string     `json:"first_name" example:"Juan"`
	MiddleName     *string    `json:"middle_name,omitempty" example:"Santos"`
	SeatNumber     uint32     `json:"seat_number" example:"123"`
	Time           string     `json:"time" example:"7:30 AM"`
	RoomAssignment uint32     `json:"room_assignment" example:"12"`
	TestCenter     TestCenter `json:"test_center"`
}

// ExamineeFromRecord maps a decoded record to the stored shape
func ExamineeFromRecord(r qualifier.Record) Examinee {
	return Examinee{
		ID:             r.ID,
		Surname:        r.Surname,
		FirstName:      r.FirstName,
		MiddleName:     r.MiddleName,
		SeatNumber:     r.SeatNumber,
		Time:           r.Time,
		RoomAssignment: r.RoomAssignment,
		TestCenter: TestCenter{
			Code:    r.TestCenterCode,
			Name:    r.TestCenterName,
			Address: r.TestCenterAddr,
		},
	}
}

// InsertResult reports which rows an insert actually created.
// Existing ids are left untouched and reported as not inserted.
type InsertResult struct {
	ExamineeInserted bool
	CenterInserted   bool
}

// Counts are table totals
type Counts struct {
	Examinees   int64 `json:"examinees"`
	TestCenters int64 `json:"test_centers"`
}

// MirrorRow is one analytics row appended per imported examinee
type MirrorRow struct {
	RunID          string
	ExamineeID     uint64
	TestCenterCode uint32
	RoomAssignment uint32
	SeatNumber     uint32
	ImportedAt     time.Time
}

// Summary is the outcome of one import run
type Summary struct {
	RunID        string         `json:"run_id"`
	Lines        int            `json:"lines"`
	Imported     int            `json:"imported"`
	Duplicates   int            `json:"duplicates"`
	CentersAdded int            `json:"centers_added"`
	Failed       int            `json:"failed"`
	ByKind       map[string]int `json:"by_kind,omitempty"`
	Mirrored     int            `json:"mirrored"`
	MirrorErrors int            `json:"mirror_errors"`
	DryRun       bool           `json:"dry_run"`
	Elapsed      time.Duration  `json:"elapsed"`
}

// Count records one failed line of kind
func (s *Summary) Count(kind string) {
	s.Failed++
	if s.ByKind == nil {
		s.ByKind = map[string]int{}
	}
	s.ByKind[kind]++
}

// ExamineePage is one page of a test center listing
type ExamineePage struct {
	Items    []Examinee
	Total    int64
	Page     int
	PageSize int
}
