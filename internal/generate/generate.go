// Package generate produces seeded synthetic e-commerce datasets. The same
// seed and counts always produce the same dataset, so generated files are
// reproducible across runs and machines.
package generate

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"ecomforge/internal/model"
)

// DefaultSeed keeps repeat runs reproducible unless the caller asks otherwise.
const DefaultSeed = 2025

// defaultAnchor is the fixed end of the random date ranges. Anchoring to a
// constant instead of the wall clock keeps date draws, and every draw after
// them, identical for a given seed no matter when the generator runs.
var defaultAnchor = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

// Vocabularies for synthetic records.
var (
	firstNames = []string{
		"Avery", "Brooke", "Cameron", "Dakota", "Elliot",
		"Finley", "Harper", "Jordan", "Kai", "Logan",
	}

	lastNames = []string{
		"Smith", "Johnson", "Reyes", "Hughes", "Patel",
		"Garcia", "Matsumoto", "Nakamura", "Silva", "Romero",
	}

	cities = []struct {
		City    string
		Country string
	}{
		{"Seattle", "USA"},
		{"Vancouver", "Canada"},
		{"London", "UK"},
		{"Sydney", "Australia"},
		{"Berlin", "Germany"},
		{"Paris", "France"},
	}

	categories = []string{"Electronics", "Home", "Outdoors", "Books", "Beauty", "Toys"}

	productDescriptors = []string{"Wireless", "Eco", "Pro", "Compact", "Ultra", "Smart"}
	productNouns       = []string{"Speaker", "Lamp", "Tent", "Cookbook", "Serum", "Drone", "Backpack"}

	reviewComments = []string{
		"Great quality and fast shipping",
		"Product was okay, could be better",
		"Exceeded expectations",
		"Not worth the price",
		"Solid purchase overall",
		"Impressed with the durability",
	}
)

// Config controls dataset sizes and determinism.
type Config struct {
	Seed       int64
	Users      int
	Products   int
	Orders     int
	OrderItems int
	Reviews    int

	// Now anchors the end of the random date ranges. Zero means the fixed
	// default anchor, keeping unconfigured runs reproducible.
	Now time.Time
}

// DefaultConfig returns the standard dataset sizes.
func DefaultConfig() Config {
	return Config{
		Seed:       DefaultSeed,
		Users:      50,
		Products:   40,
		Orders:     100,
		OrderItems: 200,
		Reviews:    80,
	}
}

// Validate rejects configurations that cannot produce a coherent dataset.
func (c Config) Validate() error {
	if c.Users <= 0 || c.Products <= 0 {
		return fmt.Errorf("invalid generator config: users=%d products=%d (both must be positive)", c.Users, c.Products)
	}
	if c.Orders < 0 || c.OrderItems < 0 || c.Reviews < 0 {
		return fmt.Errorf("invalid generator config: negative counts")
	}
	if c.OrderItems > 0 && c.Orders == 0 {
		return fmt.Errorf("invalid generator config: order items require at least one order")
	}
	return nil
}

// Generator produces datasets from a seeded source.
type Generator struct {
	cfg Config
	rng *rand.Rand
	now time.Time
}

// New creates a generator for the given config.
func New(cfg Config) *Generator {
	now := cfg.Now
	if now.IsZero() {
		now = defaultAnchor
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		now: now,
	}
}

// Generate builds a complete dataset. Every foreign key in the result
// resolves to a generated parent record, and order totals equal the rounded
// sum of their line items.
func (g *Generator) Generate() (*model.Dataset, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	users := g.users(g.cfg.Users)
	products := g.products(g.cfg.Products)
	orders := g.orders(g.cfg.Orders, users)
	items := g.orderItems(g.cfg.OrderItems, orders, products)
	applyOrderTotals(orders, items)
	reviews := g.reviews(g.cfg.Reviews, users, products)

	return &model.Dataset{
		Users:      users,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Reviews:    reviews,
	}, nil
}

// randomDate picks a timestamp uniformly between start and end.
func (g *Generator) randomDate(start, end time.Time) time.Time {
	delta := int64(end.Sub(start) / time.Second)
	if delta <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rng.Int63n(delta+1)) * time.Second)
}

func (g *Generator) users(count int) []model.User {
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	users := make([]model.User, 0, count)
	for uid := int64(1); uid <= int64(count); uid++ {
		first := firstNames[g.rng.Intn(len(firstNames))]
		last := lastNames[g.rng.Intn(len(lastNames))]
		place := cities[g.rng.Intn(len(cities))]
		users = append(users, model.User{
			UserID:     uid,
			Name:       fmt.Sprintf("%s %s", first, last),
			Email:      fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), uid),
			Location:   fmt.Sprintf("%s, %s", place.City, place.Country),
			SignupDate: g.randomDate(start, g.now).Format(time.RFC3339),
		})
	}
	return users
}

func (g *Generator) products(count int) []model.Product {
	products := make([]model.Product, 0, count)
	for pid := int64(1); pid <= int64(count); pid++ {
		products = append(products, model.Product{
			ProductID: pid,
			Name: fmt.Sprintf("%s %s",
				productDescriptors[g.rng.Intn(len(productDescriptors))],
				productNouns[g.rng.Intn(len(productNouns))]),
			Category: categories[g.rng.Intn(len(categories))],
			Price:    roundCents(10.0 + g.rng.Float64()*590.0),
			Stock:    int64(10 + g.rng.Intn(491)),
		})
	}
	return products
}

func (g *Generator) orders(count int, users []model.User) []model.Order {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := make([]model.Order, 0, count)
	for oid := int64(1); oid <= int64(count); oid++ {
		user := users[g.rng.Intn(len(users))]
		orders = append(orders, model.Order{
			OrderID:   oid,
			UserID:    user.UserID,
			OrderDate: g.randomDate(start, g.now).Format(time.RFC3339),
			Status:    model.Statuses[g.rng.Intn(len(model.Statuses))],
		})
	}
	return orders
}

func (g *Generator) orderItems(count int, orders []model.Order, products []model.Product) []model.OrderItem {
	items := make([]model.OrderItem, 0, count)
	for iid := int64(1); iid <= int64(count); iid++ {
		order := orders[g.rng.Intn(len(orders))]
		product := products[g.rng.Intn(len(products))]
		items = append(items, model.OrderItem{
			ItemID:    iid,
			OrderID:   order.OrderID,
			ProductID: product.ProductID,
			Quantity:  int64(1 + g.rng.Intn(5)),
			Price:     product.Price,
		})
	}
	return items
}

func (g *Generator) reviews(count int, users []model.User, products []model.Product) []model.Review {
	reviews := make([]model.Review, 0, count)
	for rid := int64(1); rid <= int64(count); rid++ {
		reviews = append(reviews, model.Review{
			ReviewID:  rid,
			UserID:    users[g.rng.Intn(len(users))].UserID,
			ProductID: products[g.rng.Intn(len(products))].ProductID,
			Rating:    int64(1 + g.rng.Intn(5)),
			Comment:   reviewComments[g.rng.Intn(len(reviewComments))],
		})
	}
	return reviews
}

// applyOrderTotals aggregates line items into each order's total.
func applyOrderTotals(orders []model.Order, items []model.OrderItem) {
	totals := make(map[int64]float64, len(orders))
	for _, item := range items {
		totals[item.OrderID] += float64(item.Quantity) * item.Price
	}
	for i := range orders {
		orders[i].TotalAmount = roundCents(totals[orders[i].OrderID])
	}
}

// roundCents rounds to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
