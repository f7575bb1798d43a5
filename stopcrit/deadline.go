package stopcrit

import (
	"context"
	"time"
)

// WithRuntimeBudget returns a context that is cancelled once d elapses from
// now, for callers that want MaxRuntime enforced as a context deadline
// rather than (or in addition to) polling a Criterion — e.g. so
// localsearch can check ctx.Err() between operator sweeps without the ILS
// driver needing to pass its Criterion down a layer. Returns parent
// unchanged, with a no-op cancel function, if d <= 0.
func WithRuntimeBudget(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, d)
}

// Exceeded reports whether ctx has been cancelled or its deadline has
// passed.
func Exceeded(ctx context.Context) bool {
	return ctx.Err() != nil
}
