package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ecomforge/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, st.CreateSchema(context.Background()))
	return st
}

// testDataset has known aggregates:
//
//	product 1 revenue = 2*10.00 + 1*10.00 = 30.00 across orders 1 and 2
//	product 2 revenue = 1*5.50 + 4*5.50 = 27.50 across orders 1 and 3
//	user 1 spent 47.50 over 2 orders, user 2 spent 10.00 over 1 order
//	product 1 avg rating 4.5 (2 reviews), product 2 avg rating 3 (1 review)
func testDataset() *model.Dataset {
	return &model.Dataset{
		Users: []model.User{
			{UserID: 1, Name: "Alice Reyes", Email: "alice@example.com", Location: "Seattle, USA", SignupDate: "2023-01-01T00:00:00Z"},
			{UserID: 2, Name: "Bob Silva", Email: "bob@example.com", Location: "Paris, France", SignupDate: "2023-06-01T00:00:00Z"},
		},
		Products: []model.Product{
			{ProductID: 1, Name: "Pro Widget", Category: "Electronics", Price: 10.00, Stock: 50},
			{ProductID: 2, Name: "Eco Gadget", Category: "Home", Price: 5.50, Stock: 80},
		},
		Orders: []model.Order{
			{OrderID: 1, UserID: 1, OrderDate: "2025-01-01T00:00:00Z", Status: "delivered", TotalAmount: 25.50},
			{OrderID: 2, UserID: 2, OrderDate: "2025-01-02T00:00:00Z", Status: "shipped", TotalAmount: 10.00},
			{OrderID: 3, UserID: 1, OrderDate: "2025-01-03T00:00:00Z", Status: "pending", TotalAmount: 22.00},
		},
		OrderItems: []model.OrderItem{
			{ItemID: 1, OrderID: 1, ProductID: 1, Quantity: 2, Price: 10.00},
			{ItemID: 2, OrderID: 1, ProductID: 2, Quantity: 1, Price: 5.50},
			{ItemID: 3, OrderID: 2, ProductID: 1, Quantity: 1, Price: 10.00},
			{ItemID: 4, OrderID: 3, ProductID: 2, Quantity: 4, Price: 5.50},
		},
		Reviews: []model.Review{
			{ReviewID: 1, UserID: 1, ProductID: 1, Rating: 5, Comment: "Exceeded expectations"},
			{ReviewID: 2, UserID: 2, ProductID: 1, Rating: 4, Comment: "Solid purchase overall"},
			{ReviewID: 3, UserID: 1, ProductID: 2, Rating: 3, Comment: "Product was okay, could be better"},
		},
	}
}

func TestInsertDatasetAndCounts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.InsertDataset(ctx, testDataset())
	require.NoError(t, err)
	require.NotEmpty(t, run.RunID)
	require.Equal(t, 2, run.Users)
	require.Equal(t, 4, run.OrderItems)

	counts, err := st.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), counts["users"])
	require.Equal(t, int64(2), counts["products"])
	require.Equal(t, int64(3), counts["orders"])
	require.Equal(t, int64(4), counts["order_items"])
	require.Equal(t, int64(3), counts["reviews"])
}

func TestReingestReplacesData(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.InsertDataset(ctx, testDataset())
	require.NoError(t, err)

	// Recreate schema and reingest; data must be replaced, not appended.
	require.NoError(t, st.CreateSchema(ctx))
	_, err = st.InsertDataset(ctx, testDataset())
	require.NoError(t, err)

	counts, err := st.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), counts["users"])

	// The audit table survives schema recreation.
	run, err := st.LastIngestRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)
}

func TestInsertDatasetForeignKeyViolation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	ds := testDataset()
	ds.OrderItems = append(ds.OrderItems, model.OrderItem{
		ItemID: 99, OrderID: 1, ProductID: 404, Quantity: 1, Price: 1.00,
	})

	_, err := st.InsertDataset(ctx, ds)
	require.Error(t, err)

	// Rollback: nothing from the failed run is visible.
	counts, err := st.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), counts["users"])
}

func TestInsertDatasetDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	ds := testDataset()
	ds.Users = append(ds.Users, model.User{
		UserID: 3, Name: "Alice Clone", Email: "alice@example.com", Location: "London, UK", SignupDate: "2024-01-01T00:00:00Z",
	})

	_, err := st.InsertDataset(ctx, ds)
	require.Error(t, err)
}

func TestProductRevenueReport(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.InsertDataset(ctx, testDataset())
	require.NoError(t, err)

	rows, err := st.ProductRevenueReport(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, int64(1), rows[0].ProductID)
	require.InDelta(t, 30.00, rows[0].TotalRevenue, 0.001)
	require.Equal(t, int64(2), rows[0].OrdersInvolved)

	require.Equal(t, int64(2), rows[1].ProductID)
	require.InDelta(t, 27.50, rows[1].TotalRevenue, 0.001)
	require.Equal(t, int64(2), rows[1].OrdersInvolved)
}

func TestTopCustomersReport(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.InsertDataset(ctx, testDataset())
	require.NoError(t, err)

	rows, err := st.TopCustomersReport(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, int64(1), rows[0].UserID)
	require.InDelta(t, 47.50, rows[0].TotalSpent, 0.001)
	require.Equal(t, int64(2), rows[0].OrdersPlaced)
	require.Equal(t, int64(2), rows[1].UserID)
	require.InDelta(t, 10.00, rows[1].TotalSpent, 0.001)

	// LIMIT applies.
	rows, err = st.TopCustomersReport(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(1), rows[0].UserID)
}

func TestProductRatingsReport(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.InsertDataset(ctx, testDataset())
	require.NoError(t, err)

	rows, err := st.ProductRatingsReport(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, int64(1), rows[0].ProductID)
	require.InDelta(t, 4.5, rows[0].AvgRating, 0.001)
	require.Equal(t, int64(2), rows[0].ReviewCount)

	require.Equal(t, int64(2), rows[1].ProductID)
	require.InDelta(t, 3.0, rows[1].AvgRating, 0.001)
	require.Equal(t, int64(1), rows[1].ReviewCount)
}

func TestQueryAdHoc(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.InsertDataset(ctx, testDataset())
	require.NoError(t, err)

	cols, rows, err := st.Query(ctx, "SELECT name, price FROM products ORDER BY price DESC")
	require.NoError(t, err)
	require.Equal(t, []string{"name", "price"}, cols)
	require.Len(t, rows, 2)
	require.Equal(t, "Pro Widget", rows[0][0])

	_, _, err = st.Query(ctx, "SELECT * FROM no_such_table")
	require.Error(t, err)
}

func TestOpenExistingMissing(t *testing.T) {
	_, err := OpenExisting(filepath.Join(t.TempDir(), "nope.db"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "database not found")
}

func TestLastIngestRunEmpty(t *testing.T) {
	st := newTestStore(t)

	run, err := st.LastIngestRun(context.Background())
	require.NoError(t, err)
	require.Nil(t, run)
}
