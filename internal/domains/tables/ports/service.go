package ports

import (
	"context"

	"kitchenpos/internal/domains/tables/domain"
)

// Service exposes the table occupancy use cases to adapters.
type Service interface {
	Create(ctx context.Context, numberOfGuests int, empty bool) (*domain.OrderTable, error)
	List(ctx context.Context) ([]domain.OrderTable, error)
	ChangeEmpty(ctx context.Context, tableID int64, empty bool) (*domain.OrderTable, error)
	ChangeNumberOfGuests(ctx context.Context, tableID int64, numberOfGuests int) (*domain.OrderTable, error)
}
