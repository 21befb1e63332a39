//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kitchenpos/internal/domains/tables/domain"
	"kitchenpos/internal/domains/tables/ports"
	"kitchenpos/internal/platform/migrations"
)

func setupTablesPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("kitchenpos_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestOrderTableRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTablesPostgresContainer(t)
	defer cleanup()

	repo := NewOrderTableRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.OrderTable{NumberOfGuests: 4})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	assert.Equal(t, 4, saved.NumberOfGuests)
	assert.False(t, saved.Empty)
	assert.Nil(t, saved.TableGroupID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, fetched.ID)
	assert.Equal(t, 4, fetched.NumberOfGuests)
}

func TestOrderTableRepository_GetByIDNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTablesPostgresContainer(t)
	defer cleanup()

	repo := NewOrderTableRepository(db)
	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestOrderTableRepository_UpdateFlags(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTablesPostgresContainer(t)
	defer cleanup()

	repo := NewOrderTableRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.OrderTable{NumberOfGuests: 4})
	require.NoError(t, err)

	saved.Empty = true
	saved.NumberOfGuests = 0
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.True(t, updated.Empty)
	assert.Equal(t, 0, updated.NumberOfGuests)
}

func TestOrderRepository_ListByTable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTablesPostgresContainer(t)
	defer cleanup()

	tables := NewOrderTableRepository(db)
	orders := NewOrderRepository(db)
	ctx := context.Background()

	table, err := tables.Save(ctx, &domain.OrderTable{NumberOfGuests: 4})
	require.NoError(t, err)

	_, err = orders.Save(ctx, &domain.Order{
		OrderTableID: table.ID,
		Status:       domain.StatusCooking,
		OrderedTime:  time.Now(),
	})
	require.NoError(t, err)

	found, err := orders.ListByTable(ctx, table.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.StatusCooking, found[0].Status)
	assert.True(t, domain.HasActiveOrder(found))

	none, err := orders.ListByTable(ctx, table.ID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}
