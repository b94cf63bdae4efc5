package store

import (
	"context"
	"errors"
	"testing"

	"qualifiers/internal/platform/store/ch"
)

type fakeCHRows struct {
	n      int
	closed bool
}

func (r *fakeCHRows) Next() bool             { r.n++; return r.n == 1 }
func (r *fakeCHRows) Scan(dest ...any) error { *(dest[0].(*uint64)) = 42; return nil }
func (r *fakeCHRows) Err() error             { return nil }
func (r *fakeCHRows) Close() error           { r.closed = true; return errors.New("ignored") }
func (r *fakeCHRows) Columns() []string      { return []string{"count()"} }

type fakeCHConn struct {
	appended [][]any
	table    string
	pingErr  error
	rows     *fakeCHRows
}

func (f *fakeCHConn) Exec(context.Context, string, ...any) error { return nil }
func (f *fakeCHConn) AppendBatch(_ context.Context, table string, rows [][]any) error {
	f.table, f.appended = table, rows
	return nil
}
func (f *fakeCHConn) Query(context.Context, string, ...any) (ch.Rows, error) { return f.rows, nil }
func (f *fakeCHConn) Ping(context.Context) error                            { return f.pingErr }
func (f *fakeCHConn) Close() error                                          { return nil }

func TestClickhouseAdapter(t *testing.T) {
	t.Parallel()

	conn := &fakeCHConn{rows: &fakeCHRows{}, pingErr: errors.New("down")}
	a := newCHAdapter(conn)
	ctx := context.Background()

	if err := a.AppendBatch(ctx, "qualifier_rows", [][]any{{"run", uint64(1)}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if conn.table != "qualifier_rows" || len(conn.appended) != 1 {
		t.Fatalf("batch not forwarded: %s %v", conn.table, conn.appended)
	}

	rows, err := a.Query(ctx, "SELECT count() FROM qualifier_rows")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	var n uint64
	if !rows.Next() || rows.Scan(&n) != nil || n != 42 || rows.Columns()[0] != "count()" {
		t.Fatalf("rows not adapted")
	}
	rows.Close()
	if !conn.rows.closed {
		t.Fatalf("close not forwarded")
	}

	if err := a.Ping(ctx); err == nil {
		t.Fatalf("ping error should surface")
	}
	var nilAdapter *clickhouseAdapter
	if err := nilAdapter.Ping(ctx); err == nil {
		t.Fatalf("nil adapter ping should fail")
	}
}
