// Package model defines the dataset records shared by the generator, the
// file codecs, and the SQLite store. Field names and JSON tags follow the
// on-disk dataset format, so a file written by `ecomforge generate` can be
// re-read by `ecomforge ingest` without translation.
package model

// Order lifecycle statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Statuses lists every valid order status.
var Statuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// User is a registered customer.
type User struct {
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	SignupDate string `json:"signup_date"` // ISO 8601
}

// Product is a catalog entry.
type Product struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Stock     int64   `json:"stock"`
}

// Order is a purchase placed by a user. TotalAmount is the rounded sum of
// its line items; an order with no items totals zero.
type Order struct {
	OrderID     int64   `json:"order_id"`
	UserID      int64   `json:"user_id"`
	OrderDate   string  `json:"order_date"` // ISO 8601
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}

// OrderItem is a single line of an order. Price is the unit price of the
// product at generation time.
type OrderItem struct {
	ItemID    int64   `json:"item_id"`
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// Review is a user's rating of a product. Rating is 1..5.
type Review struct {
	ReviewID  int64  `json:"review_id"`
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
}

// Dataset bundles the five generated tables.
type Dataset struct {
	Users      []User
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}

// TableNames lists the dataset tables in parent-before-child order, which is
// also the required insert order under foreign key enforcement.
var TableNames = []string{"users", "products", "orders", "order_items", "reviews"}
