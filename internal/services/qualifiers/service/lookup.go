package service

import (
	"context"
	"strconv"

	"qualifiers/internal/modkit/repokit"
	"qualifiers/internal/platform/validate"
	"qualifiers/internal/services/qualifiers/domain"
	"qualifiers/internal/services/qualifiers/repo"
)

// MaxPageSize bounds test center listings
const MaxPageSize = 200

// Service defines the read contract for qualifiers
type Service interface{ domain.LookupPort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new lookup service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("qualifiers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("qualifiers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Examinee returns one examinee with its test center
func (s *Svc) Examinee(ctx context.Context, id uint64) (domain.Examinee, error) {
	if err := checkApplicationID(id); err != nil {
		return domain.Examinee{}, err
	}
	return s.Repo.GetExaminee(ctx, id)
}

// TestCenter returns a test center with its examinee count
func (s *Svc) TestCenter(ctx context.Context, code uint32) (domain.TestCenter, error) {
	if err := checkTestCenterCode(code); err != nil {
		return domain.TestCenter{}, err
	}
	return s.Repo.GetTestCenter(ctx, code)
}

// ExamineesByCenter pages through a test center's examinees by room and seat.
// The count and the page are read in one transaction so Total matches Items.
// An unknown center is not found rather than an empty page.
func (s *Svc) ExamineesByCenter(ctx context.Context, code uint32, page, pageSize int) (domain.ExamineePage, error) {
	out := domain.ExamineePage{Page: page, PageSize: pageSize}
	if err := validate.Var("page", page, "min=1"); err != nil {
		return out, err
	}
	if err := validate.Var("page_size", pageSize, "min=1,max="+strconv.Itoa(MaxPageSize)); err != nil {
		return out, err
	}
	if err := checkTestCenterCode(code); err != nil {
		return out, err
	}

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		c, err := r.GetTestCenter(ctx, code)
		if err != nil {
			return err
		}
		out.Total = c.Examinees

		offset := (page - 1) * pageSize
		if int64(offset) >= c.Examinees {
			out.Items = []domain.Examinee{}
			return nil
		}
		items, err := r.ListByTestCenter(ctx, code, pageSize, offset)
		if err != nil {
			return err
		}
		if items == nil {
			items = []domain.Examinee{}
		}
		out.Items = items
		return nil
	})
	return out, err
}

// Counts returns table totals
func (s *Svc) Counts(ctx context.Context) (domain.Counts, error) {
	return s.Repo.Counts(ctx)
}
