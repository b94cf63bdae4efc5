package repo

import (
	"context"

	perr "qualifiers/internal/platform/errors"
	"qualifiers/internal/platform/store"
	"qualifiers/internal/services/qualifiers/domain"
)

// MirrorTable receives one row per imported examinee
const MirrorTable = "qualifier_rows"

const sqlMirrorDDL = `
CREATE TABLE IF NOT EXISTS qualifier_rows (
	run_id String,
	examinee_id UInt64,
	test_center_code UInt32,
	room_assignment UInt32,
	seat_number UInt32,
	imported_at DateTime64(3, 'UTC')
)
ENGINE = MergeTree
ORDER BY (test_center_code, examinee_id, imported_at)
`

// Mirror appends import batches to clickhouse
type Mirror struct {
	ch store.Clickhouse
}

// NewMirror binds the mirror to a clickhouse seam
func NewMirror(ch store.Clickhouse) *Mirror {
	if ch == nil {
		panic("qualifiers.Mirror requires a non nil Clickhouse")
	}
	return &Mirror{ch: ch}
}

// Prepare creates the mirror table
func (m *Mirror) Prepare(ctx context.Context) error {
	if err := m.ch.Exec(ctx, sqlMirrorDDL); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "create clickhouse mirror table")
	}
	return nil
}

// Append implements domain.MirrorPort
func (m *Mirror) Append(ctx context.Context, rows []domain.MirrorRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([][]any, 0, len(rows))
	for _, r := range rows {
		batch = append(batch, []any{
			r.RunID,
			r.ExamineeID,
			r.TestCenterCode,
			r.RoomAssignment,
			r.SeatNumber,
			r.ImportedAt,
		})
	}
	if err := m.ch.AppendBatch(ctx, MirrorTable, batch); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "append %d rows to %s", len(rows), MirrorTable)
	}
	return nil
}
