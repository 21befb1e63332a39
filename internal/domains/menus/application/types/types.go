// Package types holds the transport-neutral inputs and views of the menus
// application service.
package types

import (
	"github.com/shopspring/decimal"

	"kitchenpos/internal/domains/menus/domain"
)

// ProductQuantity is one requested (product, quantity) pairing.
type ProductQuantity struct {
	ProductID int64
	Quantity  int64
}

// CreateMenuInput carries a menu creation request. Price is a pointer so an
// absent price is distinguishable from an explicit zero.
type CreateMenuInput struct {
	Name        string
	Price       *decimal.Decimal
	MenuGroupID int64
	Lines       []ProductQuantity
}

// ProductIDs returns the requested product ids in request order.
func (in CreateMenuInput) ProductIDs() []int64 {
	ids := make([]int64, 0, len(in.Lines))
	for _, line := range in.Lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}

// QuantityByProduct indexes the requested quantities by product id.
func (in CreateMenuInput) QuantityByProduct() map[int64]int64 {
	quantities := make(map[int64]int64, len(in.Lines))
	for _, line := range in.Lines {
		quantities[line.ProductID] = line.Quantity
	}
	return quantities
}

// MenuView pairs a menu with the resolved products backing its composition,
// ready for response assembly by the transport layer.
type MenuView struct {
	Menu     *domain.Menu
	Products []domain.Product
}

// CreateProductInput carries a catalog product creation request.
type CreateProductInput struct {
	Name  string
	Price *decimal.Decimal
}

// CreateMenuGroupInput carries a menu group creation request.
type CreateMenuGroupInput struct {
	Name string
}
