package domain

import (
	"context"

	"qualifiers/internal/core/qualifier"
)

// StoragePort is the persistence contract for decoded qualifiers
type StoragePort interface {
	Prepare(ctx context.Context) error
	InsertQualifier(ctx context.Context, rec qualifier.Record) (InsertResult, error)
	GetExaminee(ctx context.Context, id uint64) (Examinee, error)
	ListByTestCenter(ctx context.Context, code uint32, limit, offset int) ([]Examinee, error)
	GetTestCenter(ctx context.Context, code uint32) (TestCenter, error)
	Counts(ctx context.Context) (Counts, error)
}

// MirrorPort receives imported rows for analytics; nil disables mirroring
type MirrorPort interface {
	Append(ctx context.Context, rows []MirrorRow) error
}

// ImporterPort runs one import over a decoded sequence
type ImporterPort interface {
	Run(ctx context.Context, src *qualifier.Qualifiers) (Summary, error)
}

// LookupPort serves the read side
type LookupPort interface {
	Examinee(ctx context.Context, id uint64) (Examinee, error)
	TestCenter(ctx context.Context, code uint32) (TestCenter, error)
	ExamineesByCenter(ctx context.Context, code uint32, page, pageSize int) (ExamineePage, error)
	Counts(ctx context.Context) (Counts, error)
}
