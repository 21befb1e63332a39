package domain

import "time"

// OrderStatus is the lifecycle state of an order. The tables context only
// reads it to guard occupancy transitions; the order lifecycle itself belongs
// to another context.
type OrderStatus string

const (
	StatusCooking    OrderStatus = "COOKING"
	StatusMeal       OrderStatus = "MEAL"
	StatusCompletion OrderStatus = "COMPLETION"
)

// Terminal reports whether no further transition or guard interaction occurs
// for the status.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompletion
}

// Order is the slice of the order aggregate the tables context consumes:
// status and table association.
type Order struct {
	ID           int64
	OrderTableID int64
	Status       OrderStatus
	OrderedTime  time.Time
}

// HasActiveOrder reports whether any order in the set is still in a
// non-terminal status. A table with such an order cannot change its
// empty/occupied flag.
func HasActiveOrder(orders []Order) bool {
	for _, order := range orders {
		if !order.Status.Terminal() {
			return true
		}
	}
	return false
}
