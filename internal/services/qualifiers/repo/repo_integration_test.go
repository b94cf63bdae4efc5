//go:build integration_pg

package repo_test

import (
	"context"
	"testing"

	"qualifiers/internal/core/qualifier"
	perr "qualifiers/internal/platform/errors"
	"qualifiers/internal/platform/store"
	"qualifiers/internal/platform/store/pg/pgtest"
	"qualifiers/internal/services/qualifiers/repo"
)

func TestPG_RoundTrip(t *testing.T) {
	dsn := pgtest.Start(t)
	ctx := context.Background()

	st, err := store.Open(ctx, store.Config{
		AppName: "qualifiers-test",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 4, SlowQueryMs: 200},
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(ctx) })

	r := repo.NewPG().Bind(st.PG)
	if err := r.Prepare(ctx); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	// twice is fine
	if err := r.Prepare(ctx); err != nil {
		t.Fatalf("Prepare again: %v", err)
	}

	rec := record()
	res, err := r.InsertQualifier(ctx, rec)
	if err != nil || !res.CenterInserted || !res.ExamineeInserted {
		t.Fatalf("first insert = %+v, %v", res, err)
	}

	// a second line with the same ids never overwrites
	changed := rec
	changed.Surname = "Other"
	changed.TestCenterName = "Renamed"
	res, err = r.InsertQualifier(ctx, changed)
	if err != nil || res.CenterInserted || res.ExamineeInserted {
		t.Fatalf("duplicate insert = %+v, %v", res, err)
	}

	e, err := r.GetExaminee(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetExaminee: %v", err)
	}
	if e.Surname != "Smith" || e.MiddleName == nil || *e.MiddleName != "Cruz" || e.TestCenter.Name != "Manila High School" {
		t.Fatalf("unexpected examinee %+v", e)
	}

	second := rec
	second.ID = 7654321
	second.MiddleName = nil
	second.RoomAssignment = 1
	if _, err := r.InsertQualifier(ctx, second); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	list, err := r.ListByTestCenter(ctx, rec.TestCenterCode, 10, 0)
	if err != nil || len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("list should order by room: %+v, %v", list, err)
	}

	c, err := r.GetTestCenter(ctx, rec.TestCenterCode)
	if err != nil || c.Examinees != 2 {
		t.Fatalf("GetTestCenter = %+v, %v", c, err)
	}
	counts, err := r.Counts(ctx)
	if err != nil || counts.Examinees != 2 || counts.TestCenters != 1 {
		t.Fatalf("Counts = %+v, %v", counts, err)
	}

	if _, err := r.GetExaminee(ctx, 1); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestPG_DecodedListingImports(t *testing.T) {
	dsn := pgtest.Start(t)
	ctx := context.Background()

	st, err := store.Open(ctx, store.Config{PG: store.PGConfig{Enabled: true, URL: dsn}})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(ctx) })

	r := repo.NewPG().Bind(st.PG)
	if err := r.Prepare(ctx); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	listing := "PEÑA\tMARIA\tSANTOS\t0000001\t001\t7:30 AM\t1\t0001\tCenter\tAddr\n"
	recs, err := qualifier.Collect(listing)
	if err != nil || len(recs) != 1 {
		t.Fatalf("Collect = %v, %v", recs, err)
	}
	if _, err := r.InsertQualifier(ctx, recs[0]); err != nil {
		t.Fatalf("insert: %v", err)
	}
	e, err := r.GetExaminee(ctx, 1)
	if err != nil || e.Surname != "Peña" || *e.MiddleName != "Santos" {
		t.Fatalf("GetExaminee = %+v, %v", e, err)
	}
}
