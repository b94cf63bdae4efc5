// Package storetest provides scripted in-memory fakes for the store seams
package storetest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"qualifiers/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

// Result is what a scripted statement returns
type Result struct {
	Cols     []string
	Rows     [][]any
	Affected int64
	Err      error
}

// Call records one statement
type Call struct {
	SQL  string
	Args []any
	InTx bool
}

type handler struct {
	fragment string
	fn       func(args []any) Result
}

// Querier is a scripted store.TxRunner. Statements are answered by the first handler
// whose fragment is contained in the SQL; unmatched statements return an empty Result.
type Querier struct {
	mu       sync.Mutex
	handlers []handler
	calls    []Call

	// BeginErr fails every Tx before fn runs
	BeginErr error

	Commits   int
	Rollbacks int
}

var _ store.TxRunner = (*Querier)(nil)

// On registers a handler for statements containing fragment
func (q *Querier) On(fragment string, fn func(args []any) Result) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler{fragment: fragment, fn: fn})
}

// Calls returns a copy of the recorded statements
func (q *Querier) Calls() []Call {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Call(nil), q.calls...)
}

// CallsMatching returns the recorded statements containing fragment
func (q *Querier) CallsMatching(fragment string) []Call {
	var out []Call
	for _, c := range q.Calls() {
		if strings.Contains(c.SQL, fragment) {
			out = append(out, c)
		}
	}
	return out
}

func (q *Querier) run(sql string, args []any, inTx bool) Result {
	q.mu.Lock()
	q.calls = append(q.calls, Call{SQL: sql, Args: args, InTx: inTx})
	var fn func([]any) Result
	for _, h := range q.handlers {
		if strings.Contains(sql, h.fragment) {
			fn = h.fn
			break
		}
	}
	q.mu.Unlock()
	if fn == nil {
		return Result{}
	}
	return fn(args)
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return exec(q.run(sql, args, false))
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return query(q.run(sql, args, false))
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	return queryRow(q.run(sql, args, false))
}

// Tx commits when fn returns nil and counts a rollback otherwise.
// Statements already applied by handlers are not undone.
func (q *Querier) Tx(ctx context.Context, fn func(store.RowQuerier) error) error {
	if q.BeginErr != nil {
		return q.BeginErr
	}
	err := fn(txView{q})
	q.mu.Lock()
	defer q.mu.Unlock()
	if err != nil {
		q.Rollbacks++
		return err
	}
	q.Commits++
	return nil
}

type txView struct{ q *Querier }

func (t txView) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return exec(t.q.run(sql, args, true))
}

func (t txView) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return query(t.q.run(sql, args, true))
}

func (t txView) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	return queryRow(t.q.run(sql, args, true))
}

func exec(r Result) (store.CommandTag, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return Tag{N: r.Affected}, nil
}

func query(r Result) (store.Rows, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return NewRows(r.Cols, r.Rows...), nil
}

func queryRow(r Result) store.Row {
	if r.Err != nil {
		return errRow{r.Err}
	}
	if len(r.Rows) == 0 {
		return errRow{pgx.ErrNoRows}
	}
	return valuesRow(r.Rows[0])
}

// Tag is a fixed CommandTag
type Tag struct{ N int64 }

func (t Tag) String() string      { return fmt.Sprintf("OK %d", t.N) }
func (t Tag) RowsAffected() int64 { return t.N }

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type valuesRow []any

func (r valuesRow) Scan(dest ...any) error { return Assign(dest, r) }

// Rows is an in-memory store.Rows
type Rows struct {
	cols   []string
	data   [][]any
	idx    int
	Closed bool
}

// NewRows builds a result set
func NewRows(cols []string, data ...[]any) *Rows {
	return &Rows{cols: cols, data: data, idx: -1}
}

func (r *Rows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *Rows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("storetest: scan out of range")
	}
	return Assign(dest, r.data[r.idx])
}

func (r *Rows) Err() error        { return nil }
func (r *Rows) Close()            { r.Closed = true }
func (r *Rows) Columns() []string { return r.cols }

// Assign copies vals into scan destinations the way a driver would:
// numeric conversion, nil into pointers and values into freshly allocated pointers
func Assign(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("storetest: %d destinations for %d values", len(dest), len(vals))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("storetest: destination %d is not a pointer", i)
		}
		if err := set(dv.Elem(), vals[i]); err != nil {
			return fmt.Errorf("storetest: column %d: %w", i, err)
		}
	}
	return nil
}

func set(dst reflect.Value, v any) error {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	sv := reflect.ValueOf(v)
	switch {
	case sv.Type().AssignableTo(dst.Type()):
		dst.Set(sv)
	case dst.Kind() == reflect.Pointer && sv.Type().ConvertibleTo(dst.Type().Elem()):
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(sv.Convert(dst.Type().Elem()))
		dst.Set(p)
	case sv.Type().ConvertibleTo(dst.Type()):
		dst.Set(sv.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot assign %T to %s", v, dst.Type())
	}
	return nil
}

// Clickhouse is an in-memory store.Clickhouse recording appended batches
type Clickhouse struct {
	mu      sync.Mutex
	Batches map[string][][]any
	Execs   []string

	// AppendErr fails every AppendBatch
	AppendErr error
	Closed    bool
}

var _ store.Clickhouse = (*Clickhouse)(nil)

func (c *Clickhouse) Exec(ctx context.Context, sql string, args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Execs = append(c.Execs, sql)
	return nil
}

func (c *Clickhouse) AppendBatch(ctx context.Context, table string, rows [][]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.AppendErr != nil {
		return c.AppendErr
	}
	if c.Batches == nil {
		c.Batches = map[string][][]any{}
	}
	c.Batches[table] = append(c.Batches[table], rows...)
	return nil
}

// Rows returns everything appended to table
func (c *Clickhouse) Rows(table string) [][]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]any(nil), c.Batches[table]...)
}

func (c *Clickhouse) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return NewRows(nil), nil
}

func (c *Clickhouse) Close() error { c.Closed = true; return nil }
