//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kitchenpos/internal/domains/menus/domain"
	"kitchenpos/internal/domains/menus/ports"
	"kitchenpos/internal/platform/migrations"
	platformpostgres "kitchenpos/internal/platform/postgres"
)

func setupMenusPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func TestProductRepository_RoundTripsExactDecimals(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenusPostgresContainer(t)
	defer cleanup()

	repo := NewProductRepository(db)
	ctx := context.Background()

	price := decimal.RequireFromString("15000.00")
	saved, err := repo.Save(ctx, &domain.Product{Name: "fried chicken", Price: price})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	found, err := repo.FindAllByID(ctx, []int64{saved.ID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.True(t, found[0].Price.Equal(price), "expected %s, got %s", price, found[0].Price)
}

func TestProductRepository_FindAllByIDDistinct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenusPostgresContainer(t)
	defer cleanup()

	repo := NewProductRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Product{Name: "cola", Price: decimal.RequireFromString("1000.00")})
	require.NoError(t, err)

	// SQL IN resolves each id once, so duplicates collapse.
	found, err := repo.FindAllByID(ctx, []int64{saved.ID, saved.ID, saved.ID + 1})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestMenuGroupRepository_GetByIDNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenusPostgresContainer(t)
	defer cleanup()

	repo := NewMenuGroupRepository(db)
	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestMenuComposition_RollsBackOnFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenusPostgresContainer(t)
	defer cleanup()

	menus := NewMenuRepository(db)
	lines := NewMenuProductRepository(db)
	tx := platformpostgres.NewTxManager(db)
	ctx := context.Background()

	boom := assert.AnError
	err := tx.InTx(ctx, func(ctx context.Context) error {
		menu, err := menus.Save(ctx, &domain.Menu{Name: "doomed", Price: decimal.Zero, MenuGroupID: 1})
		require.NoError(t, err)
		_, err = lines.Save(ctx, &domain.MenuProduct{MenuID: menu.ID, ProductID: 1, Quantity: 1})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := menus.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored, "aborted composition must leave no menu behind")
}

func TestMenuRepository_SaveAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenusPostgresContainer(t)
	defer cleanup()

	groups := NewMenuGroupRepository(db)
	menus := NewMenuRepository(db)
	lines := NewMenuProductRepository(db)
	ctx := context.Background()

	group, err := groups.Save(ctx, &domain.MenuGroup{Name: "recommended"})
	require.NoError(t, err)

	menu, err := menus.Save(ctx, &domain.Menu{
		Name:        "one chicken",
		Price:       decimal.RequireFromString("15000.00"),
		MenuGroupID: group.ID,
	})
	require.NoError(t, err)

	_, err = lines.Save(ctx, &domain.MenuProduct{MenuID: menu.ID, ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	all, err := menus.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	attached, err := lines.ListByMenu(ctx, menu.ID)
	require.NoError(t, err)
	require.Len(t, attached, 1)
	assert.EqualValues(t, 1, attached[0].Quantity)
}
