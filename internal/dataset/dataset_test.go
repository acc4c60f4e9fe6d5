package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"ecomforge/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sampleDataset() *model.Dataset {
	return &model.Dataset{
		Users: []model.User{
			{UserID: 1, Name: "Avery Smith", Email: "avery.smith1@example.com", Location: "Seattle, USA", SignupDate: "2023-01-15T10:00:00Z"},
			{UserID: 2, Name: "Kai Patel", Email: "kai.patel2@example.com", Location: "Berlin, Germany", SignupDate: "2024-03-02T08:30:00Z"},
		},
		Products: []model.Product{
			{ProductID: 1, Name: "Wireless Speaker", Category: "Electronics", Price: 99.99, Stock: 120},
			{ProductID: 2, Name: "Eco Lamp", Category: "Home", Price: 35.5, Stock: 340},
		},
		Orders: []model.Order{
			{OrderID: 1, UserID: 1, OrderDate: "2025-02-10T14:00:00Z", Status: model.StatusShipped, TotalAmount: 235.48},
		},
		OrderItems: []model.OrderItem{
			{ItemID: 1, OrderID: 1, ProductID: 1, Quantity: 2, Price: 99.99},
			{ItemID: 2, OrderID: 1, ProductID: 2, Quantity: 1, Price: 35.5},
		},
		Reviews: []model.Review{
			{ReviewID: 1, UserID: 2, ProductID: 1, Rating: 4, Comment: "Exceeded expectations"},
		},
	}
}

func TestWriteReadJSON(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()

	require.NoError(t, Write(context.Background(), dir, ds, FormatJSON))

	for _, table := range model.TableNames {
		path := filepath.Join(dir, table+".json")
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
	}

	got, err := Read(dir, FormatJSON)
	require.NoError(t, err)
	if diff := cmp.Diff(ds, got); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteReadCSV(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()

	require.NoError(t, Write(context.Background(), dir, ds, FormatCSV))

	got, err := Read(dir, FormatCSV)
	require.NoError(t, err)
	if diff := cmp.Diff(ds, got); diff != "" {
		t.Errorf("CSV round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(dir, FormatJSON)
	require.Error(t, err)
	require.Contains(t, err.Error(), "users.json")
}

func TestReadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()
	require.NoError(t, Write(context.Background(), dir, ds, FormatJSON))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte("{not json"), 0644))

	_, err := Read(dir, FormatJSON)
	require.Error(t, err)
	require.Contains(t, err.Error(), "orders.json")
}

func TestReadCSVBadColumn(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()
	require.NoError(t, Write(context.Background(), dir, ds, FormatCSV))

	bad := "product_id,name,category,price,stock\nabc,Widget,Home,10.00,5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.csv"), []byte(bad), 0644))

	_, err := Read(dir, FormatCSV)
	require.Error(t, err)
	require.Contains(t, err.Error(), "product_id")
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"json", "csv"} {
		got, err := ParseFormat(valid)
		require.NoError(t, err)
		require.Equal(t, Format(valid), got)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
}
