package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/postgres"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/repo"
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/trm"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	// одно соединение, иначе у каждого будет своя in-memory база
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))
	return db
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC)
}

func seedOrders(t *testing.T, r interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveProducts(ctx context.Context, orderID string, products []entities.Product) error
}) {
	t.Helper()
	ctx := context.Background()
	delivered := day(4)

	orders := []entities.Order{
		{
			ID: "B", Status: entities.OrderStatusDelivered, DriverID: "drv-1", CustomerName: "Bob",
			TotalAmount: 900, CreatedAt: day(3), DeliveredAt: &delivered,
		},
		{
			ID: "A", Status: entities.OrderStatusPending, DriverID: "drv-1", CustomerName: "Alice",
			TotalAmount: 500, CreatedAt: day(1),
			ShippingInfo: entities.ShippingInfo{
				City: "Khartoum", Address: "Street 1", GoogleMapsLink: "https://maps.example/a", Phone: "+249000",
			},
			Products: []entities.Product{
				{Name: "Pizza", Quantity: 2, UnitCost: 200},
				{Name: "Cola", Quantity: 1, UnitCost: 100},
			},
		},
		{ID: "C", Status: entities.OrderStatusCancelled, DriverID: "drv-1", CreatedAt: day(2)},
		{ID: "X", Status: entities.OrderStatusPending, DriverID: "drv-2", CreatedAt: day(1)},
	}
	for _, o := range orders {
		require.NoError(t, r.SaveOrder(ctx, o))
		require.NoError(t, r.SaveProducts(ctx, o.ID, o.Products))
	}
}

func TestSQLRepo_QueryOrders(t *testing.T) {
	db := openDB(t)
	r := repo.NewSQLRepo(db)
	seedOrders(t, r)
	// повторное сохранение ничего не дублирует
	seedOrders(t, r)

	testCases := []struct {
		name    string
		filters []entities.Filter
		wantIDs []string
		wantErr error
	}{
		{
			name:    "by driver in store order",
			filters: entities.DriverFilter("drv-1"),
			wantIDs: []string{"A", "C", "B"},
		},
		{
			name: "status in list",
			filters: []entities.Filter{
				{Field: "driverId", Op: entities.OpEq, Value: "drv-1"},
				{Field: "status", Op: entities.OpIn, Value: []string{"Pending", "Cancelled"}},
			},
			wantIDs: []string{"A", "C"},
		},
		{
			name:    "not equal",
			filters: []entities.Filter{{Field: "status", Op: entities.OpNotEq, Value: entities.OrderStatusPending}},
			wantIDs: []string{"C", "B"},
		},
		{
			name:    "unknown driver",
			filters: entities.DriverFilter("nobody"),
			wantIDs: []string{},
		},
		{
			name:    "unsupported field",
			filters: []entities.Filter{{Field: "totalAmount", Op: entities.OpEq, Value: 1}},
			wantErr: entities.ErrUnsupportedFilter,
		},
		{
			name:    "unsupported operator",
			filters: []entities.Filter{{Field: "status", Op: ">", Value: "x"}},
			wantErr: entities.ErrUnsupportedFilter,
		},
		{
			name:    "in without list",
			filters: []entities.Filter{{Field: "status", Op: entities.OpIn, Value: "Pending"}},
			wantErr: entities.ErrUnsupportedFilter,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, err := r.QueryOrders(context.Background(), tc.filters)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			got := make([]string, 0, len(orders))
			for _, o := range orders {
				got = append(got, o.ID)
			}
			assert.Equal(t, tc.wantIDs, got)
		})
	}
}

func TestSQLRepo_GetOrderByID(t *testing.T) {
	db := openDB(t)
	r := repo.NewSQLRepo(db)
	seedOrders(t, r)

	order, err := r.GetOrderByID(context.Background(), "A")
	require.NoError(t, err)

	assert.Equal(t, entities.OrderStatusPending, order.Status)
	assert.Equal(t, "Alice", order.CustomerName)
	assert.Equal(t, int64(500), order.TotalAmount)
	assert.Equal(t, order.TotalAmount, order.ProductsTotal())
	assert.True(t, day(1).Equal(order.CreatedAt))
	assert.Nil(t, order.DeliveredAt)
	assert.Equal(t, "https://maps.example/a", order.ShippingInfo.GoogleMapsLink)
	assert.Equal(t, []entities.Product{
		{Name: "Pizza", Quantity: 2, UnitCost: 200},
		{Name: "Cola", Quantity: 1, UnitCost: 100},
	}, order.Products)

	delivered, err := r.GetOrderByID(context.Background(), "B")
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)
	assert.True(t, day(4).Equal(*delivered.DeliveredAt))

	_, err = r.GetOrderByID(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestSQLRepo_UpdateOrder(t *testing.T) {
	db := openDB(t)
	r := repo.NewSQLRepo(db)
	seedOrders(t, r)
	ctx := context.Background()

	status := entities.OrderStatusDelivered
	at := day(5)

	require.NoError(t, r.UpdateOrder(ctx, "A", entities.OrderPatch{Status: &status, DeliveredAt: &at}))

	order, err := r.GetOrderByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusDelivered, order.Status)
	require.NotNil(t, order.DeliveredAt)
	assert.True(t, at.Equal(*order.DeliveredAt))
	assert.Equal(t, "Alice", order.CustomerName, "fields outside the patch are kept")

	assert.NoError(t, r.UpdateOrder(ctx, "A", entities.OrderPatch{}))
	assert.ErrorIs(t, r.UpdateOrder(ctx, "missing", entities.OrderPatch{Status: &status}), entities.ErrOrderNotFound)
}

func TestSQLRepo_UpdateOrderOnlyActive(t *testing.T) {
	db := openDB(t)
	r := repo.NewSQLRepo(db)
	seedOrders(t, r)
	ctx := context.Background()

	status := entities.OrderStatusDelivered
	first, second := day(5), day(6)

	require.NoError(t, r.UpdateOrder(ctx, "A", entities.OrderPatch{Status: &status, DeliveredAt: &first, OnlyActive: true}))

	// второе подтверждение из другого представления
	err := r.UpdateOrder(ctx, "A", entities.OrderPatch{Status: &status, DeliveredAt: &second, OnlyActive: true})
	assert.ErrorIs(t, err, entities.ErrOrderClosed)

	order, err := r.GetOrderByID(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, order.DeliveredAt)
	assert.True(t, first.Equal(*order.DeliveredAt), "delivery time is not overwritten")

	err = r.UpdateOrder(ctx, "missing", entities.OrderPatch{Status: &status, OnlyActive: true})
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestSQLRepo_UpdateOrderRollback(t *testing.T) {
	db := openDB(t)
	r := repo.NewSQLRepo(db)
	seedOrders(t, r)
	ctx := context.Background()

	errAbort := errors.New("abort")
	status := entities.OrderStatusDelivered

	err := trm.NewManager(db).Do(ctx, func(ctx context.Context) error {
		if err := r.UpdateOrder(ctx, "A", entities.OrderPatch{Status: &status}); err != nil {
			return err
		}
		order, err := r.GetOrderByID(ctx, "A")
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusDelivered, order.Status)
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	order, err := r.GetOrderByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, order.Status)
}

func TestSQLRepo_GetDriverByIdentity(t *testing.T) {
	db := openDB(t)
	r := repo.NewSQLRepo(db)

	_, err := db.Exec(
		`INSERT INTO drivers (id, name, email, phone, vehicle_id, status, registered_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"drv-1", "Omar Ali", "omar@example.com", "+249111", "TRK-7", "On Standby", day(1),
	)
	require.NoError(t, err)

	driver, err := r.GetDriverByIdentity(context.Background(), "Omar@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "drv-1", driver.ID)
	assert.Equal(t, "TRK-7", driver.VehicleID)
	assert.Equal(t, "On Standby", driver.Status)
	assert.True(t, day(1).Equal(driver.RegisteredAt))

	_, err = r.GetDriverByIdentity(context.Background(), "stranger@example.com")
	assert.ErrorIs(t, err, entities.ErrDriverNotFound)
}
