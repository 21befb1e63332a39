package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kitchenpos/internal/domains/tables/domain"
	"kitchenpos/internal/domains/tables/ports"
	"kitchenpos/internal/shared/invalid"
)

type fakeTableRepo struct {
	tables map[int64]domain.OrderTable
	nextID int64
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: map[int64]domain.OrderTable{}}
}

func (f *fakeTableRepo) Save(_ context.Context, table *domain.OrderTable) (*domain.OrderTable, error) {
	clone := *table
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.tables[clone.ID] = clone
	return &clone, nil
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.OrderTable, error) {
	if table, ok := f.tables[id]; ok {
		clone := table
		return &clone, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeTableRepo) List(_ context.Context) ([]domain.OrderTable, error) {
	var all []domain.OrderTable
	for _, table := range f.tables {
		all = append(all, table)
	}
	return all, nil
}

type fakeOrderRepo struct {
	orders []domain.Order
	nextID int64
}

func (f *fakeOrderRepo) ListByTable(_ context.Context, tableID int64) ([]domain.Order, error) {
	var found []domain.Order
	for _, order := range f.orders {
		if order.OrderTableID == tableID {
			found = append(found, order)
		}
	}
	return found, nil
}

func (f *fakeOrderRepo) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	clone := *order
	f.nextID++
	clone.ID = f.nextID
	f.orders = append(f.orders, clone)
	return &clone, nil
}

type inlineTx struct{}

func (inlineTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type tablesFixture struct {
	svc    *Service
	tables *fakeTableRepo
	orders *fakeOrderRepo
}

func newTablesFixture(t *testing.T) *tablesFixture {
	t.Helper()
	f := &tablesFixture{tables: newFakeTableRepo(), orders: &fakeOrderRepo{}}
	f.svc = NewService(f.tables, f.orders, inlineTx{})
	return f
}

func (f *tablesFixture) seedTable(t *testing.T, guests int, empty bool) *domain.OrderTable {
	t.Helper()
	table, err := f.svc.Create(context.Background(), guests, empty)
	require.NoError(t, err)
	return table
}

func (f *tablesFixture) seedOrder(t *testing.T, tableID int64, status domain.OrderStatus) {
	t.Helper()
	_, err := f.orders.Save(context.Background(), &domain.Order{
		OrderTableID: tableID,
		Status:       status,
		OrderedTime:  time.Now(),
	})
	require.NoError(t, err)
}

func requireReason(t *testing.T, err error, reason invalid.Reason) {
	t.Helper()
	require.ErrorIs(t, err, invalid.ErrArgument)
	got, ok := invalid.ReasonOf(err)
	require.True(t, ok)
	require.Equal(t, reason, got)
}

func TestCreate(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 4, false)
	require.Equal(t, 4, table.NumberOfGuests)
	require.False(t, table.Empty)
	require.Nil(t, table.TableGroupID)
}

func TestCreate_NegativeGuests(t *testing.T) {
	f := newTablesFixture(t)
	_, err := f.svc.Create(context.Background(), -1, false)
	requireReason(t, err, invalid.ReasonNegativeGuests)
}

func TestList(t *testing.T) {
	f := newTablesFixture(t)
	first := f.seedTable(t, 4, false)
	second := f.seedTable(t, 2, true)

	all, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	ids := []int64{all[0].ID, all[1].ID}
	require.ElementsMatch(t, []int64{first.ID, second.ID}, ids)
}

func TestChangeEmpty(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 4, false)

	updated, err := f.svc.ChangeEmpty(context.Background(), table.ID, true)
	require.NoError(t, err)
	require.True(t, updated.Empty)
}

func TestChangeEmpty_Idempotent(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 4, false)

	_, err := f.svc.ChangeEmpty(context.Background(), table.ID, true)
	require.NoError(t, err)
	updated, err := f.svc.ChangeEmpty(context.Background(), table.ID, true)
	require.NoError(t, err)
	require.True(t, updated.Empty)
}

func TestChangeEmpty_MissingTableID(t *testing.T) {
	f := newTablesFixture(t)
	_, err := f.svc.ChangeEmpty(context.Background(), 0, true)
	requireReason(t, err, invalid.ReasonMissingTable)
}

func TestChangeEmpty_UnknownTable(t *testing.T) {
	f := newTablesFixture(t)
	_, err := f.svc.ChangeEmpty(context.Background(), 99, true)
	requireReason(t, err, invalid.ReasonUnknownTable)
}

func TestChangeEmpty_ActiveOrder(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 4, false)
	f.seedOrder(t, table.ID, domain.StatusCooking)

	_, err := f.svc.ChangeEmpty(context.Background(), table.ID, true)
	requireReason(t, err, invalid.ReasonTableHasActiveOrder)

	stored, getErr := f.tables.GetByID(context.Background(), table.ID)
	require.NoError(t, getErr)
	require.False(t, stored.Empty)
}

func TestChangeEmpty_MealOrderStillGuards(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 4, false)
	f.seedOrder(t, table.ID, domain.StatusMeal)

	_, err := f.svc.ChangeEmpty(context.Background(), table.ID, true)
	requireReason(t, err, invalid.ReasonTableHasActiveOrder)
}

func TestChangeEmpty_CompletedOrderDoesNotGuard(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 4, false)
	f.seedOrder(t, table.ID, domain.StatusCompletion)

	updated, err := f.svc.ChangeEmpty(context.Background(), table.ID, true)
	require.NoError(t, err)
	require.True(t, updated.Empty)
}

func TestChangeNumberOfGuests(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 4, false)

	updated, err := f.svc.ChangeNumberOfGuests(context.Background(), table.ID, 6)
	require.NoError(t, err)
	require.Equal(t, 6, updated.NumberOfGuests)

	stored, err := f.tables.GetByID(context.Background(), table.ID)
	require.NoError(t, err)
	require.Equal(t, 6, stored.NumberOfGuests)
}

func TestChangeNumberOfGuests_NegativeCheckedFirst(t *testing.T) {
	f := newTablesFixture(t)
	// The count check precedes the table lookup: a negative count fails the
	// same way whether the table exists or not.
	_, err := f.svc.ChangeNumberOfGuests(context.Background(), 99, -1)
	requireReason(t, err, invalid.ReasonNegativeGuests)
}

func TestChangeNumberOfGuests_UnknownTable(t *testing.T) {
	f := newTablesFixture(t)
	_, err := f.svc.ChangeNumberOfGuests(context.Background(), 99, 6)
	requireReason(t, err, invalid.ReasonUnknownTable)
}

func TestChangeNumberOfGuests_EmptyTable(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 0, true)

	_, err := f.svc.ChangeNumberOfGuests(context.Background(), table.ID, 6)
	requireReason(t, err, invalid.ReasonTableEmpty)
}

func TestEmptiedTableRejectsGuestChange(t *testing.T) {
	f := newTablesFixture(t)
	table := f.seedTable(t, 4, false)

	_, err := f.svc.ChangeEmpty(context.Background(), table.ID, true)
	require.NoError(t, err)

	_, err = f.svc.ChangeNumberOfGuests(context.Background(), table.ID, 6)
	requireReason(t, err, invalid.ReasonTableEmpty)
}
