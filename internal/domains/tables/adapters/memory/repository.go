// Package memory provides in-memory tables adapters used when no database is
// configured and by transport-level tests.
package memory

import (
	"context"
	"sync"

	"kitchenpos/internal/domains/tables/domain"
	"kitchenpos/internal/domains/tables/ports"
)

var _ ports.OrderTableRepository = (*OrderTableRepository)(nil)

// OrderTableRepository keeps dining tables in a map.
type OrderTableRepository struct {
	mu     sync.RWMutex
	tables map[int64]domain.OrderTable
	nextID int64
}

func NewOrderTableRepository() *OrderTableRepository {
	return &OrderTableRepository{tables: map[int64]domain.OrderTable{}}
}

func (r *OrderTableRepository) Save(_ context.Context, table *domain.OrderTable) (*domain.OrderTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *table
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.tables[clone.ID] = clone
	return &clone, nil
}

func (r *OrderTableRepository) GetByID(_ context.Context, id int64) (*domain.OrderTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.tables[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := table
	return &clone, nil
}

func (r *OrderTableRepository) List(_ context.Context) ([]domain.OrderTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]domain.OrderTable, 0, len(r.tables))
	for _, table := range r.tables {
		all = append(all, table)
	}
	return all, nil
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository keeps the order slice the activity guard reads.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	nextID int64
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	}
	r.orders = append(r.orders, clone)
	return &clone, nil
}

func (r *OrderRepository) ListByTable(_ context.Context, tableID int64) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []domain.Order
	for _, order := range r.orders {
		if order.OrderTableID == tableID {
			found = append(found, order)
		}
	}
	return found, nil
}
