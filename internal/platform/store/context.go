package store

import "context"

type opKey struct{}

// WithOp labels the statements run under ctx (e.g. "examinees.insert") for the SQL tracer
func WithOp(ctx context.Context, op string) context.Context {
	if op == "" {
		return ctx
	}
	return context.WithValue(ctx, opKey{}, op)
}

// OpFrom returns the statement label set by WithOp
func OpFrom(ctx context.Context) string {
	s, _ := ctx.Value(opKey{}).(string)
	return s
}
