package memory

import (
	"context"

	"kitchenpos/internal/domains/menus/ports"
)

var _ ports.Transactor = Transactor{}

// Transactor runs the unit of work inline. The in-memory adapters offer no
// rollback, so it is only suitable for local runs and tests.
type Transactor struct{}

func (Transactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
