package store

import (
	"context"
	"fmt"
)

// ProductRevenue is one row of the revenue-per-product report.
type ProductRevenue struct {
	ProductID      int64
	ProductName    string
	Category       string
	TotalRevenue   float64
	OrdersInvolved int64
}

// CustomerSpending is one row of the top-customers report.
type CustomerSpending struct {
	UserID       int64
	Name         string
	Email        string
	TotalSpent   float64
	OrdersPlaced int64
}

// ProductRating is one row of the average-rating report.
type ProductRating struct {
	ProductID   int64
	ProductName string
	AvgRating   float64
	ReviewCount int64
}

// ProductRevenueReport computes total revenue and order reach per product,
// highest revenue first. Products with no sold items are omitted by the
// inner join.
func (s *Store) ProductRevenueReport(ctx context.Context) ([]ProductRevenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT
		    p.product_id,
		    p.name AS product_name,
		    p.category,
		    SUM(oi.quantity * oi.price) AS total_revenue,
		    COUNT(DISTINCT oi.order_id) AS orders_involved
		FROM products AS p
		JOIN order_items AS oi ON oi.product_id = p.product_id
		JOIN orders AS o ON o.order_id = oi.order_id
		GROUP BY p.product_id, p.name, p.category
		ORDER BY total_revenue DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query product revenue: %w", err)
	}
	defer rows.Close()

	var report []ProductRevenue
	for rows.Next() {
		var r ProductRevenue
		if err := rows.Scan(&r.ProductID, &r.ProductName, &r.Category, &r.TotalRevenue, &r.OrdersInvolved); err != nil {
			return nil, fmt.Errorf("failed to scan product revenue row: %w", err)
		}
		report = append(report, r)
	}
	return report, rows.Err()
}

// TopCustomersReport computes per-customer spending, biggest spender first,
// limited to the given number of rows.
func (s *Store) TopCustomersReport(ctx context.Context, limit int) ([]CustomerSpending, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT
		    u.user_id,
		    u.name,
		    u.email,
		    SUM(oi.quantity * oi.price) AS total_spent,
		    COUNT(DISTINCT o.order_id) AS orders_placed
		FROM users AS u
		JOIN orders AS o ON o.user_id = u.user_id
		JOIN order_items AS oi ON oi.order_id = o.order_id
		GROUP BY u.user_id, u.name, u.email
		ORDER BY total_spent DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer rows.Close()

	var report []CustomerSpending
	for rows.Next() {
		var r CustomerSpending
		if err := rows.Scan(&r.UserID, &r.Name, &r.Email, &r.TotalSpent, &r.OrdersPlaced); err != nil {
			return nil, fmt.Errorf("failed to scan customer spending row: %w", err)
		}
		report = append(report, r)
	}
	return report, rows.Err()
}

// ProductRatingsReport computes the average rating per reviewed product,
// best rated first, ties broken by review count.
func (s *Store) ProductRatingsReport(ctx context.Context) ([]ProductRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT
		    p.product_id,
		    p.name AS product_name,
		    AVG(r.rating) AS avg_rating,
		    COUNT(r.review_id) AS review_count
		FROM products AS p
		JOIN reviews AS r ON r.product_id = p.product_id
		GROUP BY p.product_id, p.name
		HAVING review_count > 0
		ORDER BY avg_rating DESC, review_count DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query product ratings: %w", err)
	}
	defer rows.Close()

	var report []ProductRating
	for rows.Next() {
		var r ProductRating
		if err := rows.Scan(&r.ProductID, &r.ProductName, &r.AvgRating, &r.ReviewCount); err != nil {
			return nil, fmt.Errorf("failed to scan product rating row: %w", err)
		}
		report = append(report, r)
	}
	return report, rows.Err()
}
