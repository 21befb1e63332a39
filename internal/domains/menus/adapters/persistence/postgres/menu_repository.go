package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchenpos/internal/domains/menus/domain"
	"kitchenpos/internal/domains/menus/ports"
	platformpostgres "kitchenpos/internal/platform/postgres"
)

var _ ports.MenuRepository = (*MenuRepository)(nil)

// MenuRepository persists menu aggregates.
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository wires a PostgreSQL-backed menu repository.
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	repo := &MenuRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&menuRecord{})
	}
	return repo
}

type menuRecord struct {
	ID          int64           `gorm:"primaryKey;column:id;autoIncrement"`
	Name        string          `gorm:"column:name"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(19,2)"`
	MenuGroupID int64           `gorm:"column:menu_group_id;index"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (menuRecord) TableName() string { return "menus" }

// Save inserts or updates a menu.
func (r *MenuRepository) Save(ctx context.Context, menu *domain.Menu) (*domain.Menu, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, errors.New("menu is nil")
	}
	record := menuRecord{ID: menu.ID, Name: menu.Name, Price: menu.Price, MenuGroupID: menu.MenuGroupID}
	db := platformpostgres.DB(ctx, r.db)
	if record.ID == 0 {
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
	} else if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":          record.Name,
			"price":         record.Price,
			"menu_group_id": record.MenuGroupID,
			"updated_at":    gorm.Expr("NOW()"),
		}),
	}).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns every menu.
func (r *MenuRepository) List(ctx context.Context) ([]domain.Menu, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []menuRecord
	if err := platformpostgres.DB(ctx, r.db).Find(&records).Error; err != nil {
		return nil, err
	}
	menus := make([]domain.Menu, 0, len(records))
	for i := range records {
		menus = append(menus, *records[i].toDomain())
	}
	return menus, nil
}

func (r *MenuRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres menu repository not configured")
	}
	return nil
}

func (rec menuRecord) toDomain() *domain.Menu {
	return &domain.Menu{ID: rec.ID, Name: rec.Name, Price: rec.Price, MenuGroupID: rec.MenuGroupID}
}
