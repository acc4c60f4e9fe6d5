package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"ecomforge/internal/model"
)

// CSV column headers per table.
var csvHeaders = map[string][]string{
	"users":       {"user_id", "name", "email", "location", "signup_date"},
	"products":    {"product_id", "name", "category", "price", "stock"},
	"orders":      {"order_id", "user_id", "order_date", "status", "total_amount"},
	"order_items": {"item_id", "order_id", "product_id", "quantity", "price"},
	"reviews":     {"review_id", "user_id", "product_id", "rating", "comment"},
}

func writeCSVFile(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func readCSVFile(path string, wantHeaders []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	if len(records[0]) != len(wantHeaders) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(wantHeaders), len(records[0]))
	}
	return records[1:], nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeCSVTable(path, table string, ds *model.Dataset) error {
	var rows [][]string
	switch table {
	case "users":
		for _, u := range ds.Users {
			rows = append(rows, []string{
				strconv.FormatInt(u.UserID, 10), u.Name, u.Email, u.Location, u.SignupDate,
			})
		}
	case "products":
		for _, p := range ds.Products {
			rows = append(rows, []string{
				strconv.FormatInt(p.ProductID, 10), p.Name, p.Category,
				formatMoney(p.Price), strconv.FormatInt(p.Stock, 10),
			})
		}
	case "orders":
		for _, o := range ds.Orders {
			rows = append(rows, []string{
				strconv.FormatInt(o.OrderID, 10), strconv.FormatInt(o.UserID, 10),
				o.OrderDate, o.Status, formatMoney(o.TotalAmount),
			})
		}
	case "order_items":
		for _, it := range ds.OrderItems {
			rows = append(rows, []string{
				strconv.FormatInt(it.ItemID, 10), strconv.FormatInt(it.OrderID, 10),
				strconv.FormatInt(it.ProductID, 10), strconv.FormatInt(it.Quantity, 10),
				formatMoney(it.Price),
			})
		}
	case "reviews":
		for _, r := range ds.Reviews {
			rows = append(rows, []string{
				strconv.FormatInt(r.ReviewID, 10), strconv.FormatInt(r.UserID, 10),
				strconv.FormatInt(r.ProductID, 10), strconv.FormatInt(r.Rating, 10),
				r.Comment,
			})
		}
	default:
		return fmt.Errorf("unknown table %q", table)
	}
	return writeCSVFile(path, csvHeaders[table], rows)
}

func readCSVTable(path, table string, ds *model.Dataset) error {
	records, err := readCSVFile(path, csvHeaders[table])
	if err != nil {
		return err
	}

	parseInt := func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
	parseFloat := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

	for i, rec := range records {
		switch table {
		case "users":
			id, err := parseInt(rec[0])
			if err != nil {
				return fmt.Errorf("row %d: bad user_id %q: %w", i+1, rec[0], err)
			}
			ds.Users = append(ds.Users, model.User{
				UserID: id, Name: rec[1], Email: rec[2], Location: rec[3], SignupDate: rec[4],
			})
		case "products":
			id, err := parseInt(rec[0])
			if err != nil {
				return fmt.Errorf("row %d: bad product_id %q: %w", i+1, rec[0], err)
			}
			price, err := parseFloat(rec[3])
			if err != nil {
				return fmt.Errorf("row %d: bad price %q: %w", i+1, rec[3], err)
			}
			stock, err := parseInt(rec[4])
			if err != nil {
				return fmt.Errorf("row %d: bad stock %q: %w", i+1, rec[4], err)
			}
			ds.Products = append(ds.Products, model.Product{
				ProductID: id, Name: rec[1], Category: rec[2], Price: price, Stock: stock,
			})
		case "orders":
			id, err := parseInt(rec[0])
			if err != nil {
				return fmt.Errorf("row %d: bad order_id %q: %w", i+1, rec[0], err)
			}
			userID, err := parseInt(rec[1])
			if err != nil {
				return fmt.Errorf("row %d: bad user_id %q: %w", i+1, rec[1], err)
			}
			total, err := parseFloat(rec[4])
			if err != nil {
				return fmt.Errorf("row %d: bad total_amount %q: %w", i+1, rec[4], err)
			}
			ds.Orders = append(ds.Orders, model.Order{
				OrderID: id, UserID: userID, OrderDate: rec[2], Status: rec[3], TotalAmount: total,
			})
		case "order_items":
			ids := make([]int64, 4)
			for j, col := range rec[:4] {
				v, err := parseInt(col)
				if err != nil {
					return fmt.Errorf("row %d: bad %s %q: %w", i+1, csvHeaders[table][j], col, err)
				}
				ids[j] = v
			}
			price, err := parseFloat(rec[4])
			if err != nil {
				return fmt.Errorf("row %d: bad price %q: %w", i+1, rec[4], err)
			}
			ds.OrderItems = append(ds.OrderItems, model.OrderItem{
				ItemID: ids[0], OrderID: ids[1], ProductID: ids[2], Quantity: ids[3], Price: price,
			})
		case "reviews":
			ids := make([]int64, 4)
			for j, col := range rec[:4] {
				v, err := parseInt(col)
				if err != nil {
					return fmt.Errorf("row %d: bad %s %q: %w", i+1, csvHeaders[table][j], col, err)
				}
				ids[j] = v
			}
			ds.Reviews = append(ds.Reviews, model.Review{
				ReviewID: ids[0], UserID: ids[1], ProductID: ids[2], Rating: ids[3], Comment: rec[4],
			})
		default:
			return fmt.Errorf("unknown table %q", table)
		}
	}
	return nil
}
