package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"ecomforge/internal/store"
)

// money formats a float with two decimals for display.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ProductRevenue renders the revenue-per-product report.
func ProductRevenue(ctx context.Context, w io.Writer, st *store.Store) error {
	rows, err := st.ProductRevenueReport(ctx)
	if err != nil {
		return err
	}

	t := Table{
		Title:   "Total revenue per product",
		Headers: []string{"product_id", "product_name", "category", "total_revenue", "orders_involved"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(r.ProductID, 10), r.ProductName, r.Category,
			money(r.TotalRevenue), strconv.FormatInt(r.OrdersInvolved, 10),
		})
	}
	return t.Render(w)
}

// TopCustomers renders the top-customers-by-spending report.
func TopCustomers(ctx context.Context, w io.Writer, st *store.Store, limit int) error {
	rows, err := st.TopCustomersReport(ctx, limit)
	if err != nil {
		return err
	}

	t := Table{
		Title:   fmt.Sprintf("Top %d customers by spending", limit),
		Headers: []string{"user_id", "name", "email", "total_spent", "orders_placed"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(r.UserID, 10), r.Name, r.Email,
			money(r.TotalSpent), strconv.FormatInt(r.OrdersPlaced, 10),
		})
	}
	return t.Render(w)
}

// ProductRatings renders the average-rating-per-product report.
func ProductRatings(ctx context.Context, w io.Writer, st *store.Store) error {
	rows, err := st.ProductRatingsReport(ctx)
	if err != nil {
		return err
	}

	t := Table{
		Title:   "Average rating per product",
		Headers: []string{"product_id", "product_name", "avg_rating", "review_count"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(r.ProductID, 10), r.ProductName,
			money(r.AvgRating), strconv.FormatInt(r.ReviewCount, 10),
		})
	}
	return t.Render(w)
}

// All runs every predefined report in order.
func All(ctx context.Context, w io.Writer, st *store.Store, topCustomers int) error {
	if err := ProductRevenue(ctx, w, st); err != nil {
		return err
	}
	if err := TopCustomers(ctx, w, st, topCustomers); err != nil {
		return err
	}
	return ProductRatings(ctx, w, st)
}
