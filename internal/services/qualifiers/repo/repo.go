// Package repo provides postgres storage for qualifiers and the clickhouse import mirror
package repo

import (
	"context"

	"qualifiers/internal/core/qualifier"
	"qualifiers/internal/modkit/repokit"
	perr "qualifiers/internal/platform/errors"
	"qualifiers/internal/platform/store"
	"qualifiers/internal/services/qualifiers/domain"
)

// Repo defines the repository contract for qualifiers
type Repo interface{ domain.StoragePort }

// Schema is applied statement by statement by Prepare; every statement is idempotent
var Schema = []string{
	`create table if not exists test_centers (
	id integer primary key,
	name text not null,
	address text not null
)`,
	`create table if not exists examinees (
	id bigint primary key,
	surname text not null,
	first_name text not null,
	middle_name text null,
	seat_number integer not null,
	time text not null,
	room_assignment integer not null,
	test_center_code integer not null references test_centers(id)
)`,
	`create index if not exists examinees_test_center_code_idx on examinees (test_center_code, room_assignment, seat_number)`,
}

const (
	sqlInsertCenter = `
insert into test_centers (id, name, address)
values ($1, $2, $3)
on conflict (id) do nothing
`
	sqlInsertExaminee = `
insert into examinees (id, surname, first_name, middle_name, seat_number, time, room_assignment, test_center_code)
values ($1, $2, $3, $4, $5, $6, $7, $8)
on conflict (id) do nothing
`
	sqlSelectExaminee = `
select e.id, e.surname, e.first_name, e.middle_name, e.seat_number, e.time, e.room_assignment,
c.id, c.name, c.address
from examinees e
join test_centers c on c.id = e.test_center_code
`
	sqlGetExaminee = sqlSelectExaminee + `where e.id = $1
`
	sqlListByCenter = sqlSelectExaminee + `where e.test_center_code = $1
order by e.room_assignment, e.seat_number, e.id
limit $2 offset $3
`
	sqlGetCenter = `
select c.id, c.name, c.address,
(select count(*) from examinees e where e.test_center_code = c.id)
from test_centers c
where c.id = $1
`
	sqlCounts = `
select (select count(*) from examinees), (select count(*) from test_centers)
`
)

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Prepare(ctx context.Context) error {
	for _, stmt := range Schema {
		if _, err := r.q.Exec(ctx, stmt); err != nil {
			return perr.FromPostgres(err, "apply qualifiers schema")
		}
	}
	return nil
}

// InsertQualifier writes the test center first so the examinee foreign key holds
func (r *queries) InsertQualifier(ctx context.Context, rec qualifier.Record) (domain.InsertResult, error) {
	var res domain.InsertResult
	tag, err := r.q.Exec(ctx, sqlInsertCenter, int32(rec.TestCenterCode), rec.TestCenterName, rec.TestCenterAddr)
	if err != nil {
		return res, perr.FromPostgresWithField(err, "insert test center")
	}
	res.CenterInserted = tag.RowsAffected() == 1

	tag, err = r.q.Exec(ctx, sqlInsertExaminee,
		int64(rec.ID),
		rec.Surname,
		rec.FirstName,
		rec.MiddleName,
		int32(rec.SeatNumber),
		rec.Time,
		int32(rec.RoomAssignment),
		int32(rec.TestCenterCode),
	)
	if err != nil {
		return res, perr.FromPostgresWithField(err, "insert examinee")
	}
	res.ExamineeInserted = tag.RowsAffected() == 1
	return res, nil
}

func (r *queries) GetExaminee(ctx context.Context, id uint64) (domain.Examinee, error) {
	e, err := store.One(ctx, r.q, scanExaminee, sqlGetExaminee, int64(id))
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return e, perr.NotFoundf("examinee %07d not found", id)
		}
		return e, perr.FromPostgres(err, "get examinee")
	}
	return e, nil
}

func (r *queries) ListByTestCenter(ctx context.Context, code uint32, limit, offset int) ([]domain.Examinee, error) {
	out, err := store.Many(ctx, r.q, scanExaminee, sqlListByCenter, int32(code), limit, offset)
	if err != nil {
		return nil, perr.FromPostgres(err, "list examinees by test center")
	}
	return out, nil
}

func (r *queries) GetTestCenter(ctx context.Context, code uint32) (domain.TestCenter, error) {
	c, err := store.One(ctx, r.q, scanCenter, sqlGetCenter, int32(code))
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return c, perr.NotFoundf("test center %04d not found", code)
		}
		return c, perr.FromPostgres(err, "get test center")
	}
	return c, nil
}

func (r *queries) Counts(ctx context.Context) (domain.Counts, error) {
	var c domain.Counts
	if err := r.q.QueryRow(ctx, sqlCounts).Scan(&c.Examinees, &c.TestCenters); err != nil {
		return c, perr.FromPostgres(err, "count qualifiers")
	}
	return c, nil
}

func scanExaminee(row store.Row) (domain.Examinee, error) {
	var (
		e                  domain.Examinee
		id                 int64
		seat, room, center int32
	)
	if err := row.Scan(
		&id,
		&e.Surname,
		&e.FirstName,
		&e.MiddleName,
		&seat,
		&e.Time,
		&room,
		&center,
		&e.TestCenter.Name,
		&e.TestCenter.Address,
	); err != nil {
		return e, err
	}
	e.ID = uint64(id)
	e.SeatNumber = uint32(seat)
	e.RoomAssignment = uint32(room)
	e.TestCenter.Code = uint32(center)
	return e, nil
}

func scanCenter(row store.Row) (domain.TestCenter, error) {
	var (
		c    domain.TestCenter
		code int32
	)
	if err := row.Scan(&code, &c.Name, &c.Address, &c.Examinees); err != nil {
		return c, err
	}
	c.Code = uint32(code)
	return c, nil
}
