package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for both bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&menuGroupRecord{},
		&menuRecord{},
		&menuProductRecord{},
		&orderTableRecord{},
		&orderRecord{},
	)
}

// Product schema mirrors the menus Postgres adapter.
type productRecord struct {
	ID        int64           `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string          `gorm:"column:name"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(19,2)"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

type menuGroupRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (menuGroupRecord) TableName() string { return "menu_groups" }

type menuRecord struct {
	ID          int64           `gorm:"primaryKey;column:id;autoIncrement"`
	Name        string          `gorm:"column:name"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(19,2)"`
	MenuGroupID int64           `gorm:"column:menu_group_id;index"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (menuRecord) TableName() string { return "menus" }

type menuProductRecord struct {
	ID        int64     `gorm:"primaryKey;column:seq;autoIncrement"`
	MenuID    int64     `gorm:"column:menu_id;index"`
	ProductID int64     `gorm:"column:product_id"`
	Quantity  int64     `gorm:"column:quantity"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (menuProductRecord) TableName() string { return "menu_products" }

// Table schema mirrors the tables Postgres adapter.
type orderTableRecord struct {
	ID             int64     `gorm:"primaryKey;column:id;autoIncrement"`
	TableGroupID   *int64    `gorm:"column:table_group_id;index"`
	NumberOfGuests int       `gorm:"column:number_of_guests"`
	Empty          bool      `gorm:"column:empty"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (orderTableRecord) TableName() string { return "order_tables" }

type orderRecord struct {
	ID           int64     `gorm:"primaryKey;column:id;autoIncrement"`
	OrderTableID int64     `gorm:"column:order_table_id;index"`
	Status       string    `gorm:"column:order_status;type:varchar(32)"`
	OrderedTime  time.Time `gorm:"column:ordered_time"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }
