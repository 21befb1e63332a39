// Package memory provides in-memory menus adapters used when no database is
// configured and by transport-level tests.
package memory

import (
	"context"
	"sync"

	"kitchenpos/internal/domains/menus/domain"
	"kitchenpos/internal/domains/menus/ports"
)

var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository keeps catalog products in a map.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: map[int64]domain.Product{}}
}

func (r *ProductRepository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.products[clone.ID] = clone
	return &clone, nil
}

// FindAllByID resolves each distinct id at most once, mirroring the SQL IN
// semantics of the postgres adapter.
func (r *ProductRepository) FindAllByID(_ context.Context, ids []int64) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[int64]bool, len(ids))
	var found []domain.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, ok := r.products[id]; ok {
			found = append(found, product)
		}
	}
	return found, nil
}

func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		all = append(all, product)
	}
	return all, nil
}

var _ ports.MenuGroupRepository = (*MenuGroupRepository)(nil)

// MenuGroupRepository keeps menu groups in a map.
type MenuGroupRepository struct {
	mu     sync.RWMutex
	groups map[int64]domain.MenuGroup
	nextID int64
}

func NewMenuGroupRepository() *MenuGroupRepository {
	return &MenuGroupRepository{groups: map[int64]domain.MenuGroup{}}
}

func (r *MenuGroupRepository) Save(_ context.Context, group *domain.MenuGroup) (*domain.MenuGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *group
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.groups[clone.ID] = clone
	return &clone, nil
}

func (r *MenuGroupRepository) GetByID(_ context.Context, id int64) (*domain.MenuGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	group, ok := r.groups[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := group
	return &clone, nil
}

func (r *MenuGroupRepository) List(_ context.Context) ([]domain.MenuGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]domain.MenuGroup, 0, len(r.groups))
	for _, group := range r.groups {
		all = append(all, group)
	}
	return all, nil
}

var _ ports.MenuRepository = (*MenuRepository)(nil)

// MenuRepository keeps menu aggregates in a map.
type MenuRepository struct {
	mu     sync.RWMutex
	menus  map[int64]domain.Menu
	nextID int64
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{menus: map[int64]domain.Menu{}}
}

func (r *MenuRepository) Save(_ context.Context, menu *domain.Menu) (*domain.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *menu
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.menus[clone.ID] = clone
	return &clone, nil
}

func (r *MenuRepository) List(_ context.Context) ([]domain.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]domain.Menu, 0, len(r.menus))
	for _, menu := range r.menus {
		all = append(all, menu)
	}
	return all, nil
}

var _ ports.MenuProductRepository = (*MenuProductRepository)(nil)

// MenuProductRepository keeps composition lines in insertion order.
type MenuProductRepository struct {
	mu     sync.RWMutex
	lines  []domain.MenuProduct
	nextID int64
}

func NewMenuProductRepository() *MenuProductRepository {
	return &MenuProductRepository{}
}

func (r *MenuProductRepository) Save(_ context.Context, line *domain.MenuProduct) (*domain.MenuProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *line
	r.nextID++
	clone.ID = r.nextID
	r.lines = append(r.lines, clone)
	return &clone, nil
}

func (r *MenuProductRepository) ListByMenu(_ context.Context, menuID int64) ([]domain.MenuProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []domain.MenuProduct
	for _, line := range r.lines {
		if line.MenuID == menuID {
			found = append(found, line)
		}
	}
	return found, nil
}
