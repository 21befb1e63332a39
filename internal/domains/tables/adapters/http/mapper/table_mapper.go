// Package mapper converts between the HTTP transport shapes and the tables
// domain model.
package mapper

import "kitchenpos/internal/domains/tables/domain"

// TableCreateRequest is the table registration payload.
type TableCreateRequest struct {
	NumberOfGuests int  `json:"numberOfGuests"`
	Empty          bool `json:"empty"`
}

// ChangeEmptyRequest carries the target occupancy flag.
type ChangeEmptyRequest struct {
	Empty bool `json:"empty"`
}

// ChangeNumberOfGuestsRequest carries the target guest count.
type ChangeNumberOfGuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

// OrderTableResponse is the transport shape of a dining table.
type OrderTableResponse struct {
	ID             int64  `json:"id"`
	TableGroupID   *int64 `json:"tableGroupId"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Empty          bool   `json:"empty"`
}

// FromOrderTable converts a domain table to the transport representation.
func FromOrderTable(table *domain.OrderTable) OrderTableResponse {
	if table == nil {
		return OrderTableResponse{}
	}
	return OrderTableResponse{
		ID:             table.ID,
		TableGroupID:   table.TableGroupID,
		NumberOfGuests: table.NumberOfGuests,
		Empty:          table.Empty,
	}
}

// FromOrderTables converts a table slice.
func FromOrderTables(tables []domain.OrderTable) []OrderTableResponse {
	out := make([]OrderTableResponse, 0, len(tables))
	for i := range tables {
		out = append(out, FromOrderTable(&tables[i]))
	}
	return out
}
