package ports

import "context"

// Transactor runs fn as one atomic unit of work. Every read and write issued
// through the context passed to fn commits together or not at all; any error
// from fn aborts the transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
