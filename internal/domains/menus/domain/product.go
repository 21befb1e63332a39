package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"kitchenpos/internal/shared/invalid"
)

// Product is a sellable item in the catalog. Menus reference products but
// never own them; a product's price is immutable once a menu line points at it.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// NewProduct validates and builds a catalog product. The price pointer
// distinguishes an absent price from an explicit zero.
func NewProduct(name string, price *decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid.New(invalid.ReasonMissingName, "product name is required")
	}
	if price == nil {
		return nil, invalid.New(invalid.ReasonPriceMissing, "product price is required")
	}
	if price.Sign() < 0 {
		return nil, invalid.Newf(invalid.ReasonPriceOutOfRange, "product price must not be negative, got %s", price)
	}
	return &Product{Name: name, Price: *price}, nil
}

// MenuGroup is a categorical tag for menus. It must exist before a menu can
// reference it.
type MenuGroup struct {
	ID   int64
	Name string
}

// NewMenuGroup validates and builds a menu group.
func NewMenuGroup(name string) (*MenuGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid.New(invalid.ReasonMissingName, "menu group name is required")
	}
	return &MenuGroup{Name: name}, nil
}
