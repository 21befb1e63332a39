// Package mapper converts between the HTTP transport shapes and the menus
// application types. Prices travel as quoted decimal strings so the exact
// values survive the wire.
package mapper

import (
	"github.com/shopspring/decimal"

	"kitchenpos/internal/domains/menus/application/types"
	"kitchenpos/internal/domains/menus/domain"
)

// ProductQuantityRequest is one requested menu line.
type ProductQuantityRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// MenuCreateRequest is the menu creation payload. A missing price stays nil
// so the core can distinguish absent from zero.
type MenuCreateRequest struct {
	Name         string                   `json:"name"`
	Price        *decimal.Decimal         `json:"price"`
	MenuGroupID  int64                    `json:"menuGroupId"`
	MenuProducts []ProductQuantityRequest `json:"menuProducts"`
}

// ToCreateMenuInput converts the transport payload into the application input.
func ToCreateMenuInput(req MenuCreateRequest) types.CreateMenuInput {
	lines := make([]types.ProductQuantity, 0, len(req.MenuProducts))
	for _, mp := range req.MenuProducts {
		lines = append(lines, types.ProductQuantity{ProductID: mp.ProductID, Quantity: mp.Quantity})
	}
	return types.CreateMenuInput{
		Name:        req.Name,
		Price:       req.Price,
		MenuGroupID: req.MenuGroupID,
		Lines:       lines,
	}
}

// ProductResponse is the transport shape of a catalog product.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// FromProduct converts a domain product to the transport representation.
func FromProduct(product *domain.Product) ProductResponse {
	if product == nil {
		return ProductResponse{}
	}
	return ProductResponse{ID: product.ID, Name: product.Name, Price: product.Price}
}

// FromProducts converts a product slice.
func FromProducts(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, FromProduct(&products[i]))
	}
	return out
}

// MenuResponse is the transport shape of a composed menu.
type MenuResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Price       decimal.Decimal   `json:"price"`
	MenuGroupID int64             `json:"menuGroupId"`
	Products    []ProductResponse `json:"products"`
}

// FromMenuView converts an application menu view to the transport shape.
func FromMenuView(view *types.MenuView) MenuResponse {
	if view == nil || view.Menu == nil {
		return MenuResponse{}
	}
	return MenuResponse{
		ID:          view.Menu.ID,
		Name:        view.Menu.Name,
		Price:       view.Menu.Price,
		MenuGroupID: view.Menu.MenuGroupID,
		Products:    FromProducts(view.Products),
	}
}

// FromMenuViews converts a view slice.
func FromMenuViews(views []types.MenuView) []MenuResponse {
	out := make([]MenuResponse, 0, len(views))
	for i := range views {
		out = append(out, FromMenuView(&views[i]))
	}
	return out
}

// ProductCreateRequest is the catalog product creation payload.
type ProductCreateRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// ToCreateProductInput converts the transport payload.
func ToCreateProductInput(req ProductCreateRequest) types.CreateProductInput {
	return types.CreateProductInput{Name: req.Name, Price: req.Price}
}

// MenuGroupCreateRequest is the menu group creation payload.
type MenuGroupCreateRequest struct {
	Name string `json:"name"`
}

// ToCreateMenuGroupInput converts the transport payload.
func ToCreateMenuGroupInput(req MenuGroupCreateRequest) types.CreateMenuGroupInput {
	return types.CreateMenuGroupInput{Name: req.Name}
}

// MenuGroupResponse is the transport shape of a menu group.
type MenuGroupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromMenuGroup converts a domain menu group.
func FromMenuGroup(group *domain.MenuGroup) MenuGroupResponse {
	if group == nil {
		return MenuGroupResponse{}
	}
	return MenuGroupResponse{ID: group.ID, Name: group.Name}
}

// FromMenuGroups converts a menu group slice.
func FromMenuGroups(groups []domain.MenuGroup) []MenuGroupResponse {
	out := make([]MenuGroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, FromMenuGroup(&groups[i]))
	}
	return out
}
