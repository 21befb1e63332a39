package application

import (
	"context"
	"errors"
	"fmt"

	"kitchenpos/internal/domains/tables/domain"
	"kitchenpos/internal/domains/tables/ports"
	"kitchenpos/internal/shared/invalid"
)

// Service applies guarded occupancy transitions to dining tables. Every
// mutation runs inside one transaction so a failed guard leaves no partial
// state.
type Service struct {
	tables ports.OrderTableRepository
	orders ports.OrderRepository
	tx     ports.Transactor
}

// NewService wires the tables service with its collaborators.
func NewService(tables ports.OrderTableRepository, orders ports.OrderRepository, tx ports.Transactor) *Service {
	return &Service{tables: tables, orders: orders, tx: tx}
}

// Create registers a new table with the given guest count and occupancy flag.
func (s *Service) Create(ctx context.Context, numberOfGuests int, empty bool) (*domain.OrderTable, error) {
	table, err := domain.NewOrderTable(numberOfGuests, empty)
	if err != nil {
		return nil, err
	}
	return s.tables.Save(ctx, table)
}

// List returns every registered table.
func (s *Service) List(ctx context.Context) ([]domain.OrderTable, error) {
	return s.tables.List(ctx)
}

// ChangeEmpty flips a table's empty/occupied flag, refusing while any order
// on the table is still in a non-terminal status.
func (s *Service) ChangeEmpty(ctx context.Context, tableID int64, empty bool) (*domain.OrderTable, error) {
	var updated *domain.OrderTable
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		table, err := s.resolveTable(ctx, tableID)
		if err != nil {
			return err
		}
		active, err := s.hasActiveOrder(ctx, table.ID)
		if err != nil {
			return err
		}
		if err := table.ChangeEmpty(empty, active); err != nil {
			return err
		}
		updated, err = s.tables.Save(ctx, table)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangeNumberOfGuests updates the seated guest count on an occupied table.
func (s *Service) ChangeNumberOfGuests(ctx context.Context, tableID int64, numberOfGuests int) (*domain.OrderTable, error) {
	if numberOfGuests < 0 {
		return nil, invalid.Newf(invalid.ReasonNegativeGuests, "number of guests must not be negative, got %d", numberOfGuests)
	}
	var updated *domain.OrderTable
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		table, err := s.resolveTable(ctx, tableID)
		if err != nil {
			return err
		}
		if err := table.ChangeNumberOfGuests(numberOfGuests); err != nil {
			return err
		}
		updated, err = s.tables.Save(ctx, table)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) resolveTable(ctx context.Context, tableID int64) (*domain.OrderTable, error) {
	if tableID <= 0 {
		return nil, invalid.New(invalid.ReasonMissingTable, "table id is required")
	}
	table, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, invalid.Newf(invalid.ReasonUnknownTable, "table %d does not exist", tableID)
		}
		return nil, fmt.Errorf("resolve table: %w", err)
	}
	return table, nil
}

// hasActiveOrder is the order-activity guard: true iff any order referencing
// the table has not reached a terminal status.
func (s *Service) hasActiveOrder(ctx context.Context, tableID int64) (bool, error) {
	orders, err := s.orders.ListByTable(ctx, tableID)
	if err != nil {
		return false, fmt.Errorf("list orders: %w", err)
	}
	return domain.HasActiveOrder(orders), nil
}

var _ ports.Service = (*Service)(nil)
