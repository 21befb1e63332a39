package application

import (
	"context"
	"errors"
	"fmt"

	"kitchenpos/internal/domains/menus/application/types"
	"kitchenpos/internal/domains/menus/domain"
	"kitchenpos/internal/domains/menus/ports"
	"kitchenpos/internal/shared/invalid"
)

// Service orchestrates the menus bounded context use cases: menu composition
// plus catalog management for products and menu groups.
type Service struct {
	menus      ports.MenuRepository
	menuLines  ports.MenuProductRepository
	products   ports.ProductRepository
	menuGroups ports.MenuGroupRepository
	tx         ports.Transactor
}

// NewService wires the menus service with its collaborators.
func NewService(
	menus ports.MenuRepository,
	menuLines ports.MenuProductRepository,
	products ports.ProductRepository,
	menuGroups ports.MenuGroupRepository,
	tx ports.Transactor,
) *Service {
	return &Service{
		menus:      menus,
		menuLines:  menuLines,
		products:   products,
		menuGroups: menuGroups,
		tx:         tx,
	}
}

// CreateMenu resolves the requested composition, validates pricing, and
// persists the menu aggregate with its lines in one transaction. Either the
// full menu is stored or none of it.
func (s *Service) CreateMenu(ctx context.Context, input types.CreateMenuInput) (*types.MenuView, error) {
	var view *types.MenuView
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		ids := input.ProductIDs()
		products, err := s.products.FindAllByID(ctx, ids)
		if err != nil {
			return fmt.Errorf("resolve products: %w", err)
		}
		// Existence is checked by cardinality, matching the requested id set
		// against the resolved set. Duplicate requested ids can mask a missing
		// one, so callers are expected to dedupe before building the request.
		if len(products) != len(ids) {
			return invalid.Newf(invalid.ReasonUnknownProduct, "requested %d products, resolved %d", len(ids), len(products))
		}
		group, err := s.menuGroups.GetByID(ctx, input.MenuGroupID)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return invalid.Newf(invalid.ReasonUnknownMenuGroup, "menu group %d does not exist", input.MenuGroupID)
			}
			return fmt.Errorf("resolve menu group: %w", err)
		}
		if err := domain.ValidateMenuPrice(input.Price, products, input.QuantityByProduct()); err != nil {
			return err
		}
		menu, err := s.menus.Save(ctx, &domain.Menu{
			Name:        input.Name,
			Price:       *input.Price,
			MenuGroupID: group.ID,
		})
		if err != nil {
			return fmt.Errorf("save menu: %w", err)
		}
		if err := s.attachLines(ctx, menu, input.Lines); err != nil {
			return err
		}
		view = &types.MenuView{Menu: menu, Products: products}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// attachLines persists the (product, quantity) lines owned by a freshly saved
// menu. The guards run before any line is written.
func (s *Service) attachLines(ctx context.Context, menu *domain.Menu, lines []types.ProductQuantity) error {
	if menu == nil {
		return invalid.New(invalid.ReasonMissingMenu, "menu reference is required")
	}
	if len(lines) == 0 {
		return invalid.New(invalid.ReasonEmptyComposition, "menu requires at least one product line")
	}
	for _, line := range lines {
		if _, err := s.menuLines.Save(ctx, &domain.MenuProduct{
			MenuID:    menu.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}); err != nil {
			return fmt.Errorf("save menu line: %w", err)
		}
	}
	return nil
}

// ListMenus returns every menu with its resolved product views. No validation
// runs on the read path.
func (s *Service) ListMenus(ctx context.Context) ([]types.MenuView, error) {
	menus, err := s.menus.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]types.MenuView, 0, len(menus))
	for i := range menus {
		products, err := s.productsByMenu(ctx, menus[i].ID)
		if err != nil {
			return nil, err
		}
		views = append(views, types.MenuView{Menu: &menus[i], Products: products})
	}
	return views, nil
}

func (s *Service) productsByMenu(ctx context.Context, menuID int64) ([]domain.Product, error) {
	lines, err := s.menuLines.ListByMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	return s.products.FindAllByID(ctx, ids)
}

// CreateProduct adds a product to the catalog.
func (s *Service) CreateProduct(ctx context.Context, input types.CreateProductInput) (*domain.Product, error) {
	product, err := domain.NewProduct(input.Name, input.Price)
	if err != nil {
		return nil, err
	}
	return s.products.Save(ctx, product)
}

// ListProducts returns the whole catalog.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// CreateMenuGroup adds a menu group.
func (s *Service) CreateMenuGroup(ctx context.Context, input types.CreateMenuGroupInput) (*domain.MenuGroup, error) {
	group, err := domain.NewMenuGroup(input.Name)
	if err != nil {
		return nil, err
	}
	return s.menuGroups.Save(ctx, group)
}

// ListMenuGroups returns every menu group.
func (s *Service) ListMenuGroups(ctx context.Context) ([]domain.MenuGroup, error) {
	return s.menuGroups.List(ctx)
}

var _ ports.Service = (*Service)(nil)
