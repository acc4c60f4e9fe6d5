package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ecomforge/internal/model"
)

// IngestRun records one completed ingest.
type IngestRun struct {
	RunID      string
	StartedAt  time.Time
	Duration   time.Duration
	Users      int
	Products   int
	Orders     int
	OrderItems int
	Reviews    int
}

// InsertDataset loads the dataset inside a single transaction, parents
// before children, and records the run in ingest_runs. On any failure the
// transaction rolls back and the tables keep their previous contents.
func (s *Store) InsertDataset(ctx context.Context, ds *model.Dataset) (*IngestRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertUsers(ctx, tx, ds.Users); err != nil {
		return nil, err
	}
	if err := insertProducts(ctx, tx, ds.Products); err != nil {
		return nil, err
	}
	if err := insertOrders(ctx, tx, ds.Orders); err != nil {
		return nil, err
	}
	if err := insertOrderItems(ctx, tx, ds.OrderItems); err != nil {
		return nil, err
	}
	if err := insertReviews(ctx, tx, ds.Reviews); err != nil {
		return nil, err
	}

	run := &IngestRun{
		RunID:      uuid.NewString(),
		StartedAt:  started,
		Duration:   time.Since(started),
		Users:      len(ds.Users),
		Products:   len(ds.Products),
		Orders:     len(ds.Orders),
		OrderItems: len(ds.OrderItems),
		Reviews:    len(ds.Reviews),
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ingest_runs(run_id, started_at, duration_ms, users, products, orders, order_items, reviews)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.StartedAt.Format(time.RFC3339), run.Duration.Milliseconds(),
		run.Users, run.Products, run.Orders, run.OrderItems, run.Reviews,
	); err != nil {
		return nil, fmt.Errorf("failed to record ingest run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ingest: %w", err)
	}
	return run, nil
}

// LastIngestRun returns the most recent ingest run, or nil if the database
// has never been ingested into.
func (s *Store) LastIngestRun(ctx context.Context) (*IngestRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT run_id, started_at, duration_ms, users, products, orders, order_items, reviews
		 FROM ingest_runs ORDER BY started_at DESC LIMIT 1`)

	var run IngestRun
	var startedAt string
	var durationMS int64
	err := row.Scan(&run.RunID, &startedAt, &durationMS,
		&run.Users, &run.Products, &run.Orders, &run.OrderItems, &run.Reviews)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ingest runs: %w", err)
	}

	run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ingest run timestamp: %w", err)
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return &run, nil
}

func insertUsers(ctx context.Context, tx *sql.Tx, users []model.User) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO users(user_id, name, email, location, signup_date) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare users insert: %w", err)
	}
	defer stmt.Close()

	for _, u := range users {
		if _, err := stmt.ExecContext(ctx, u.UserID, u.Name, u.Email, u.Location, u.SignupDate); err != nil {
			return fmt.Errorf("failed to insert user %d: %w", u.UserID, err)
		}
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []model.Product) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO products(product_id, name, category, price, stock) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare products insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.ProductID, p.Name, p.Category, p.Price, p.Stock); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ProductID, err)
		}
	}
	return nil
}

func insertOrders(ctx context.Context, tx *sql.Tx, orders []model.Order) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO orders(order_id, user_id, order_date, status, total_amount) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare orders insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		status := o.Status
		if status == "" {
			status = model.StatusPending
		}
		if _, err := stmt.ExecContext(ctx, o.OrderID, o.UserID, o.OrderDate, status, o.TotalAmount); err != nil {
			return fmt.Errorf("failed to insert order %d: %w", o.OrderID, err)
		}
	}
	return nil
}

func insertOrderItems(ctx context.Context, tx *sql.Tx, items []model.OrderItem) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO order_items(item_id, order_id, product_id, quantity, price) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare order_items insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.ExecContext(ctx, it.ItemID, it.OrderID, it.ProductID, it.Quantity, it.Price); err != nil {
			return fmt.Errorf("failed to insert order item %d: %w", it.ItemID, err)
		}
	}
	return nil
}

func insertReviews(ctx context.Context, tx *sql.Tx, reviews []model.Review) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO reviews(review_id, user_id, product_id, rating, comment) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare reviews insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range reviews {
		if _, err := stmt.ExecContext(ctx, r.ReviewID, r.UserID, r.ProductID, r.Rating, r.Comment); err != nil {
			return fmt.Errorf("failed to insert review %d: %w", r.ReviewID, err)
		}
	}
	return nil
}
