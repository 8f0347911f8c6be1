package utils

import (
	"context"
	"time"
)

const DefaultDBTimeout = 5 * time.Second

// WithDBTimeout bounds a single query. A caller deadline that is already
// tighter is kept as is.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < DefaultDBTimeout {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, DefaultDBTimeout)
}
