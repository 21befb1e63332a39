package memory

import (
	"context"

	"kitchenpos/internal/domains/tables/ports"
)

var _ ports.Transactor = Transactor{}

// Transactor runs the unit of work inline, without rollback.
type Transactor struct{}

func (Transactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
