package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"kitchenpos/internal/domains/menus/domain"
	"kitchenpos/internal/domains/menus/ports"
	platformpostgres "kitchenpos/internal/platform/postgres"
)

var _ ports.MenuProductRepository = (*MenuProductRepository)(nil)

// MenuProductRepository persists menu composition lines.
type MenuProductRepository struct {
	db *gorm.DB
}

// NewMenuProductRepository wires a PostgreSQL-backed menu line repository.
func NewMenuProductRepository(db *gorm.DB) *MenuProductRepository {
	repo := &MenuProductRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&menuProductRecord{})
	}
	return repo
}

type menuProductRecord struct {
	ID        int64     `gorm:"primaryKey;column:seq;autoIncrement"`
	MenuID    int64     `gorm:"column:menu_id;index"`
	ProductID int64     `gorm:"column:product_id"`
	Quantity  int64     `gorm:"column:quantity"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (menuProductRecord) TableName() string { return "menu_products" }

// Save appends a composition line. Lines are write-once: they live and die
// with their menu.
func (r *MenuProductRepository) Save(ctx context.Context, line *domain.MenuProduct) (*domain.MenuProduct, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if line == nil {
		return nil, errors.New("menu product is nil")
	}
	record := menuProductRecord{MenuID: line.MenuID, ProductID: line.ProductID, Quantity: line.Quantity}
	if err := platformpostgres.DB(ctx, r.db).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// ListByMenu returns the lines of one menu in insertion order.
func (r *MenuProductRepository) ListByMenu(ctx context.Context, menuID int64) ([]domain.MenuProduct, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []menuProductRecord
	if err := platformpostgres.DB(ctx, r.db).Order("seq").Find(&records, "menu_id = ?", menuID).Error; err != nil {
		return nil, err
	}
	lines := make([]domain.MenuProduct, 0, len(records))
	for i := range records {
		lines = append(lines, *records[i].toDomain())
	}
	return lines, nil
}

func (r *MenuProductRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres menu product repository not configured")
	}
	return nil
}

func (rec menuProductRecord) toDomain() *domain.MenuProduct {
	return &domain.MenuProduct{ID: rec.ID, MenuID: rec.MenuID, ProductID: rec.ProductID, Quantity: rec.Quantity}
}
