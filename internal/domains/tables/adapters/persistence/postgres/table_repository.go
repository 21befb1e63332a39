// Package postgres persists the tables bounded context in PostgreSQL using
// GORM. Table reads inside a transaction take a row lock so concurrent
// occupancy transitions on the same table serialize.
package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchenpos/internal/domains/tables/domain"
	"kitchenpos/internal/domains/tables/ports"
	platformpostgres "kitchenpos/internal/platform/postgres"
)

var _ ports.OrderTableRepository = (*OrderTableRepository)(nil)

// OrderTableRepository persists dining tables.
type OrderTableRepository struct {
	db *gorm.DB
}

// NewOrderTableRepository wires a PostgreSQL-backed table repository. Caller
// manages DB lifecycle.
func NewOrderTableRepository(db *gorm.DB) *OrderTableRepository {
	repo := &OrderTableRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderTableRecord{})
	}
	return repo
}

type orderTableRecord struct {
	ID             int64     `gorm:"primaryKey;column:id;autoIncrement"`
	TableGroupID   *int64    `gorm:"column:table_group_id;index"`
	NumberOfGuests int       `gorm:"column:number_of_guests"`
	Empty          bool      `gorm:"column:empty"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (orderTableRecord) TableName() string { return "order_tables" }

// Save inserts or updates a table.
func (r *OrderTableRepository) Save(ctx context.Context, table *domain.OrderTable) (*domain.OrderTable, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, errors.New("order table is nil")
	}
	record := orderTableRecord{
		ID:             table.ID,
		TableGroupID:   table.TableGroupID,
		NumberOfGuests: table.NumberOfGuests,
		Empty:          table.Empty,
	}
	db := platformpostgres.DB(ctx, r.db)
	if record.ID == 0 {
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
	} else if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"table_group_id":   record.TableGroupID,
			"number_of_guests": record.NumberOfGuests,
			"empty":            record.Empty,
			"updated_at":       gorm.Expr("NOW()"),
		}),
	}).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByID fetches a table. Inside a transaction the row is read FOR UPDATE,
// holding the lock until commit.
func (r *OrderTableRepository) GetByID(ctx context.Context, id int64) (*domain.OrderTable, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	db := platformpostgres.DB(ctx, r.db)
	if platformpostgres.InTx(ctx) {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var record orderTableRecord
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns every table.
func (r *OrderTableRepository) List(ctx context.Context) ([]domain.OrderTable, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderTableRecord
	if err := platformpostgres.DB(ctx, r.db).Find(&records).Error; err != nil {
		return nil, err
	}
	tables := make([]domain.OrderTable, 0, len(records))
	for i := range records {
		tables = append(tables, *records[i].toDomain())
	}
	return tables, nil
}

func (r *OrderTableRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order table repository not configured")
	}
	return nil
}

func (rec orderTableRecord) toDomain() *domain.OrderTable {
	return &domain.OrderTable{
		ID:             rec.ID,
		TableGroupID:   rec.TableGroupID,
		NumberOfGuests: rec.NumberOfGuests,
		Empty:          rec.Empty,
	}
}
