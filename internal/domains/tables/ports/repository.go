package ports

import (
	"context"
	"errors"

	"kitchenpos/internal/domains/tables/domain"
)

var ErrNotFound = errors.New("order table not found")

// OrderTableRepository persists dining tables.
type OrderTableRepository interface {
	Save(ctx context.Context, table *domain.OrderTable) (*domain.OrderTable, error)
	GetByID(ctx context.Context, id int64) (*domain.OrderTable, error)
	List(ctx context.Context) ([]domain.OrderTable, error)
}

// OrderRepository exposes the order slice the tables context reads for the
// activity guard. Save exists for the order-lifecycle collaborator and for
// test fixtures; this context never mutates orders.
type OrderRepository interface {
	ListByTable(ctx context.Context, tableID int64) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
}
