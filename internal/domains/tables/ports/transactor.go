package ports

import "context"

// Transactor runs fn as one atomic unit of work against the backing store.
// Table reads inside fn take row locks so concurrent occupancy transitions on
// the same table serialize instead of interleaving.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
