// Package postgres persists the menus bounded context in PostgreSQL using
// GORM. All monetary columns are exact decimals.
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

var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository persists catalog products.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository wires a PostgreSQL-backed product repository. Caller
// manages DB lifecycle.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	repo := &ProductRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&productRecord{})
	}
	return repo
}

type productRecord struct {
	ID        int64           `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string          `gorm:"column:name"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(19,2)"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Save inserts or updates a product.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := productRecord{ID: product.ID, Name: product.Name, Price: product.Price}
	db := platformpostgres.DB(ctx, r.db)
	if record.ID == 0 {
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
	} else if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       record.Name,
			"price":      record.Price,
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// FindAllByID resolves each distinct id at most once via SQL IN.
func (r *ProductRepository) FindAllByID(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var records []productRecord
	if err := platformpostgres.DB(ctx, r.db).Find(&records, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return toProducts(records), nil
}

// List returns the whole catalog.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := platformpostgres.DB(ctx, r.db).Find(&records).Error; err != nil {
		return nil, err
	}
	return toProducts(records), nil
}

func (r *ProductRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func (rec productRecord) toDomain() *domain.Product {
	return &domain.Product{ID: rec.ID, Name: rec.Name, Price: rec.Price}
}

func toProducts(records []productRecord) []domain.Product {
	products := make([]domain.Product, 0, len(records))
	for i := range records {
		products = append(products, *records[i].toDomain())
	}
	return products
}
