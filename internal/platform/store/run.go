package store

import (
	"context"

	perr "qualifiers/internal/platform/errors"
)

// RunTx runs fn in a transaction labelled op. Transient failures (serialization,
// deadlock, lock timeout) are retried up to retries extra times; zero means one attempt.
func RunTx(ctx context.Context, tx TxRunner, op string, retries int, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithOp(ctx, op)
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		err = tx.Tx(ctx, func(q RowQuerier) error { return fn(ctx, q) })
		if err == nil || !perr.IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
