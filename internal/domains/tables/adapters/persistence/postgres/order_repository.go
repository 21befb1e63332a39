package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"kitchenpos/internal/domains/tables/domain"
	"kitchenpos/internal/domains/tables/ports"
	platformpostgres "kitchenpos/internal/platform/postgres"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository reads the order slice consumed by the activity guard.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository wires a PostgreSQL-backed order repository.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	repo := &OrderRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

type orderRecord struct {
	ID           int64     `gorm:"primaryKey;column:id;autoIncrement"`
	OrderTableID int64     `gorm:"column:order_table_id;index"`
	Status       string    `gorm:"column:order_status;type:varchar(32)"`
	OrderedTime  time.Time `gorm:"column:ordered_time"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// ListByTable returns every order referencing the table.
func (r *OrderRepository) ListByTable(ctx context.Context, tableID int64) ([]domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := platformpostgres.DB(ctx, r.db).Find(&records, "order_table_id = ?", tableID).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, *records[i].toDomain())
	}
	return orders, nil
}

// Save stores an order on behalf of the order-lifecycle collaborator.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := orderRecord{
		ID:           order.ID,
		OrderTableID: order.OrderTableID,
		Status:       string(order.Status),
		OrderedTime:  order.OrderedTime,
	}
	if err := platformpostgres.DB(ctx, r.db).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *OrderRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func (rec orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:           rec.ID,
		OrderTableID: rec.OrderTableID,
		Status:       domain.OrderStatus(rec.Status),
		OrderedTime:  rec.OrderedTime,
	}
}
