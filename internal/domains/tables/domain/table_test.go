package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kitchenpos/internal/shared/invalid"
)

func TestHasActiveOrder(t *testing.T) {
	require.False(t, HasActiveOrder(nil))
	require.False(t, HasActiveOrder([]Order{{Status: StatusCompletion}}))
	require.True(t, HasActiveOrder([]Order{{Status: StatusCooking}}))
	require.True(t, HasActiveOrder([]Order{{Status: StatusCompletion}, {Status: StatusMeal}}))
}

func TestNewOrderTable(t *testing.T) {
	table, err := NewOrderTable(4, false)
	require.NoError(t, err)
	require.Equal(t, 4, table.NumberOfGuests)
	require.False(t, table.Empty)
	require.Nil(t, table.TableGroupID)
}

func TestNewOrderTable_NegativeGuests(t *testing.T) {
	_, err := NewOrderTable(-1, false)
	reason, _ := invalid.ReasonOf(err)
	require.Equal(t, invalid.ReasonNegativeGuests, reason)
}

func TestChangeEmpty(t *testing.T) {
	table := &OrderTable{ID: 1, NumberOfGuests: 4}
	require.NoError(t, table.ChangeEmpty(true, false))
	require.True(t, table.Empty)

	// Guarded in both directions while an order is in flight.
	err := table.ChangeEmpty(false, true)
	reason, _ := invalid.ReasonOf(err)
	require.Equal(t, invalid.ReasonTableHasActiveOrder, reason)
	require.True(t, table.Empty)
}

func TestChangeNumberOfGuests(t *testing.T) {
	table := &OrderTable{ID: 1, NumberOfGuests: 4}
	require.NoError(t, table.ChangeNumberOfGuests(6))
	require.Equal(t, 6, table.NumberOfGuests)
}

func TestChangeNumberOfGuests_Negative(t *testing.T) {
	table := &OrderTable{ID: 1, NumberOfGuests: 4}
	err := table.ChangeNumberOfGuests(-1)
	reason, _ := invalid.ReasonOf(err)
	require.Equal(t, invalid.ReasonNegativeGuests, reason)
	require.Equal(t, 4, table.NumberOfGuests)
}

func TestChangeNumberOfGuests_EmptyTable(t *testing.T) {
	table := &OrderTable{ID: 1, Empty: true}
	err := table.ChangeNumberOfGuests(6)
	reason, _ := invalid.ReasonOf(err)
	require.Equal(t, invalid.ReasonTableEmpty, reason)
}
