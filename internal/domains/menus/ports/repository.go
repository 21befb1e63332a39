package ports

import (
	"context"
	"errors"

	"kitchenpos/internal/domains/menus/domain"
)

var ErrNotFound = errors.New("menu resource not found")

// ProductCatalog is the read-only product lookup the menu composer consumes.
type ProductCatalog interface {
	FindAllByID(ctx context.Context, ids []int64) ([]domain.Product, error)
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	ProductCatalog
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

// MenuGroupRegistry resolves a menu group by id, returning ErrNotFound when
// absent. Existence is a precondition for menu creation.
type MenuGroupRegistry interface {
	GetByID(ctx context.Context, id int64) (*domain.MenuGroup, error)
}

// MenuGroupRepository persists menu groups.
type MenuGroupRepository interface {
	MenuGroupRegistry
	Save(ctx context.Context, group *domain.MenuGroup) (*domain.MenuGroup, error)
	List(ctx context.Context) ([]domain.MenuGroup, error)
}

// MenuRepository persists menu aggregates.
type MenuRepository interface {
	Save(ctx context.Context, menu *domain.Menu) (*domain.Menu, error)
	List(ctx context.Context) ([]domain.Menu, error)
}

// MenuProductRepository persists menu composition lines.
type MenuProductRepository interface {
	Save(ctx context.Context, line *domain.MenuProduct) (*domain.MenuProduct, error)
	ListByMenu(ctx context.Context, menuID int64) ([]domain.MenuProduct, error)
}
