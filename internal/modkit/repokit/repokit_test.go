package repokit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"qualifiers/internal/modkit/repokit"
	"qualifiers/internal/platform/store/storetest"
	"qualifiers/internal/platform/testkit"
)

type centers struct{ q repokit.Queryer }

func TestMustBind(t *testing.T) {
	t.Parallel()

	b := repokit.BindFunc[centers](func(q repokit.Queryer) centers { return centers{q: q} })
	q := &storetest.Querier{}
	if got := repokit.MustBind[centers](b, q); got.q != q {
		t.Fatalf("not bound to q")
	}
	testkit.MustPanic(t, func() { repokit.MustBind[centers](b, nil) })
}

func TestWithBeginHooks_RunInsideTx(t *testing.T) {
	t.Parallel()

	q := &storetest.Querier{}
	tx := repokit.WithBeginHooks(q, repokit.StatementTimeout(2*time.Second))

	err := tx.Tx(context.Background(), func(in repokit.Queryer) error {
		_, err := in.Exec(context.Background(), "INSERT INTO examinees VALUES ($1)", 1)
		return err
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	calls := q.Calls()
	if len(calls) != 2 || calls[0].SQL != "SET LOCAL statement_timeout = 2000" || !calls[0].InTx || !calls[1].InTx {
		t.Fatalf("calls = %+v", calls)
	}
	if q.Commits != 1 {
		t.Fatalf("commits = %d", q.Commits)
	}
}

func TestWithBeginHooks_HookErrorRollsBack(t *testing.T) {
	t.Parallel()

	q := &storetest.Querier{}
	boom := errors.New("no timeout for you")
	tx := repokit.WithBeginHooks(q, func(context.Context, repokit.Queryer) error { return boom })

	ran := false
	err := tx.Tx(context.Background(), func(repokit.Queryer) error { ran = true; return nil })
	if !errors.Is(err, boom) || ran || q.Rollbacks != 1 {
		t.Fatalf("err=%v ran=%v rollbacks=%d", err, ran, q.Rollbacks)
	}

	if repokit.WithBeginHooks(q) != repokit.TxRunner(q) {
		t.Fatalf("no hooks should return inner unchanged")
	}
}

type guard struct{ err error }

func (g guard) Guard(context.Context) error { return g.err }

func TestMustGuard(t *testing.T) {
	t.Parallel()

	testkit.MustNotPanic(t, func() { repokit.MustGuard(context.Background(), guard{}) })
	testkit.MustPanic(t, func() { repokit.MustGuard(context.Background(), guard{err: errors.New("pg: refused")}) })
}
