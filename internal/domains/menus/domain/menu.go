package domain

import (
	"github.com/shopspring/decimal"

	"kitchenpos/internal/shared/invalid"
)

// Menu is the aggregate root of a sellable composition: its own price plus an
// ordered set of product lines. The menu group is referenced, not owned.
type Menu struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	MenuGroupID int64
}

// MenuProduct is one (product, quantity) line of a menu's composition. Lines
// are exclusively owned by their menu and cannot outlive it.
type MenuProduct struct {
	ID        int64
	MenuID    int64
	ProductID int64
	Quantity  int64
}

// ValidateMenuPrice checks a requested menu price against the composed
// product total: 0 <= price <= sum(product price * quantity). All arithmetic
// is exact decimal; quantities are looked up by product id.
func ValidateMenuPrice(price *decimal.Decimal, products []Product, quantities map[int64]int64) error {
	if price == nil {
		return invalid.New(invalid.ReasonPriceMissing, "menu price is required")
	}
	sum := decimal.Zero
	for _, product := range products {
		quantity := quantities[product.ID]
		sum = sum.Add(product.Price.Mul(decimal.NewFromInt(quantity)))
	}
	if price.Sign() < 0 || price.GreaterThan(sum) {
		return invalid.Newf(invalid.ReasonPriceOutOfRange, "menu price %s must be between 0 and %s", price, sum)
	}
	return nil
}
