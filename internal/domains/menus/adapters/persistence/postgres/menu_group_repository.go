package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitchenpos/internal/domains/menus/domain"
	"kitchenpos/internal/domains/menus/ports"
	platformpostgres "kitchenpos/internal/platform/postgres"
)

var _ ports.MenuGroupRepository = (*MenuGroupRepository)(nil)

// MenuGroupRepository persists menu groups.
type MenuGroupRepository struct {
	db *gorm.DB
}

// NewMenuGroupRepository wires a PostgreSQL-backed menu group repository.
func NewMenuGroupRepository(db *gorm.DB) *MenuGroupRepository {
	repo := &MenuGroupRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&menuGroupRecord{})
	}
	return repo
}

type menuGroupRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (menuGroupRecord) TableName() string { return "menu_groups" }

// Save inserts or updates a menu group.
func (r *MenuGroupRepository) Save(ctx context.Context, group *domain.MenuGroup) (*domain.MenuGroup, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if group == nil {
		return nil, errors.New("menu group is nil")
	}
	record := menuGroupRecord{ID: group.ID, Name: group.Name}
	db := platformpostgres.DB(ctx, r.db)
	if record.ID == 0 {
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
	} else if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       record.Name,
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&record).Error; err != nil {
		return nil, err
	}
	return &domain.MenuGroup{ID: record.ID, Name: record.Name}, nil
}

// GetByID fetches a menu group, translating a miss to ports.ErrNotFound.
func (r *MenuGroupRepository) GetByID(ctx context.Context, id int64) (*domain.MenuGroup, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record menuGroupRecord
	if err := platformpostgres.DB(ctx, r.db).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &domain.MenuGroup{ID: record.ID, Name: record.Name}, nil
}

// List returns every menu group.
func (r *MenuGroupRepository) List(ctx context.Context) ([]domain.MenuGroup, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []menuGroupRecord
	if err := platformpostgres.DB(ctx, r.db).Find(&records).Error; err != nil {
		return nil, err
	}
	groups := make([]domain.MenuGroup, 0, len(records))
	for _, record := range records {
		groups = append(groups, domain.MenuGroup{ID: record.ID, Name: record.Name})
	}
	return groups, nil
}

func (r *MenuGroupRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres menu group repository not configured")
	}
	return nil
}
