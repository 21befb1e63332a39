package domain

import "kitchenpos/internal/shared/invalid"

// OrderTable is a physical dining table tracked for occupancy and guest
// count. TableGroupID is set by the table-grouping collaborator and stays nil
// for standalone tables.
type OrderTable struct {
	ID             int64
	TableGroupID   *int64
	NumberOfGuests int
	Empty          bool
}

// NewOrderTable validates and builds a table. Fresh tables carry no group.
func NewOrderTable(numberOfGuests int, empty bool) (*OrderTable, error) {
	if numberOfGuests < 0 {
		return nil, invalid.Newf(invalid.ReasonNegativeGuests, "number of guests must not be negative, got %d", numberOfGuests)
	}
	return &OrderTable{NumberOfGuests: numberOfGuests, Empty: empty}, nil
}

// ChangeEmpty applies the empty/occupied flag. hasActiveOrder comes from the
// order-activity guard; a table with an unfinished order cannot flip the flag
// in either direction.
func (t *OrderTable) ChangeEmpty(empty bool, hasActiveOrder bool) error {
	if hasActiveOrder {
		return invalid.Newf(invalid.ReasonTableHasActiveOrder, "table %d has an order in progress", t.ID)
	}
	t.Empty = empty
	return nil
}

// ChangeNumberOfGuests updates the seated guest count. The empty-table check
// is independent of the active-order guard.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return invalid.Newf(invalid.ReasonNegativeGuests, "number of guests must not be negative, got %d", numberOfGuests)
	}
	if t.Empty {
		return invalid.Newf(invalid.ReasonTableEmpty, "table %d is empty", t.ID)
	}
	t.NumberOfGuests = numberOfGuests
	return nil
}
