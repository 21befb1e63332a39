package ports

import (
	"context"

	"kitchenpos/internal/domains/menus/application/types"
	"kitchenpos/internal/domains/menus/domain"
)

// Service exposes the menus bounded context use cases to adapters.
type Service interface {
	CreateMenu(ctx context.Context, input types.CreateMenuInput) (*types.MenuView, error)
	ListMenus(ctx context.Context) ([]types.MenuView, error)
	CreateProduct(ctx context.Context, input types.CreateProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateMenuGroup(ctx context.Context, input types.CreateMenuGroupInput) (*domain.MenuGroup, error)
	ListMenuGroups(ctx context.Context) ([]domain.MenuGroup, error)
}
