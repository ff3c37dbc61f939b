package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ayurshop/m/domain"
)

// CustomerFields carries the customer details entered at the counter.
type CustomerFields struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
}

// SaleResult is the outcome of a processed sale: the created records and the
// item with its decremented shop stock.
type SaleResult struct {
	Sale     domain.Sale     `json:"sale"`
	Customer domain.Customer `json:"customer"`
	Item     domain.Item     `json:"item"`
}

// ProcessSale runs the compound sale transaction: it records the customer,
// decrements the item's shop stock and creates the sale row with the selling
// price snapshotted at this moment. All writes commit together or not at
// all. A fresh customer row is created on every call; repeat customers are
// not deduplicated.
func (s *Store) ProcessSale(itemID, quantity, salespersonID int64, customer CustomerFields, saleDate string) (*SaleResult, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if strings.TrimSpace(customer.Name) == "" {
		return nil, &ValidationError{Field: "customer.name", Reason: "must not be empty"}
	}
	if saleDate == "" {
		saleDate = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", saleDate); err != nil {
		return nil, &ValidationError{Field: "sale_date", Reason: "must be in YYYY-MM-DD format"}
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("begin sale: %w", err)
	}
	defer tx.Rollback()

	var item domain.Item
	err = tx.Get(&item, `SELECT item_id, name, COALESCE(description, '') AS description, purchase_price, selling_price, stock_shop, stock_warehouse FROM items WHERE item_id = ?`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load item %d: %w", itemID, err)
	}

	var salesperson domain.Employee
	err = tx.Get(&salesperson, `SELECT employee_id, name, COALESCE(designation, '') AS designation, salary, commission_rate FROM employees WHERE employee_id = ?`, salespersonID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load employee %d: %w", salespersonID, err)
	}

	// Guarded decrement: the stock check and the write are one statement,
	// so a concurrent sale on the same item cannot oversell it.
	res, err := tx.Exec(`UPDATE items SET stock_shop = stock_shop - ? WHERE item_id = ? AND stock_shop >= ?`, quantity, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	if affected == 0 {
		return nil, ErrInsufficientStock
	}

	res, err = tx.Exec(`INSERT INTO customers (name, email, contact_number) VALUES (?, ?, ?)`,
		strings.TrimSpace(customer.Name), customer.Email, customer.ContactNumber)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	customerID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("customer id: %w", err)
	}

	totalSaleAmount := item.SellingPrice * float64(quantity)
	commissionEarned := salesperson.Commission(totalSaleAmount)

	res, err = tx.Exec(`INSERT INTO sales (sale_date, customer_id, salesperson_id, item_id, quantity_sold, sales_price, total_sale_amount, commission_earned) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		saleDate, customerID, salespersonID, itemID, quantity, item.SellingPrice, totalSaleAmount, commissionEarned)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}
	saleID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sale id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sale: %w", err)
	}

	item.StockShop -= quantity
	return &SaleResult{
		Sale: domain.Sale{
			ID:               saleID,
			SaleDate:         saleDate,
			CustomerID:       customerID,
			SalespersonID:    salespersonID,
			ItemID:           itemID,
			QuantitySold:     quantity,
			SalesPrice:       item.SellingPrice,
			TotalSaleAmount:  totalSaleAmount,
			CommissionEarned: commissionEarned,
		},
		Customer: domain.Customer{
			ID:            customerID,
			Name:          strings.TrimSpace(customer.Name),
			Email:         customer.Email,
			ContactNumber: customer.ContactNumber,
		},
		Item: item,
	}, nil
}

// GetSale loads a sale by id.
func (s *Store) GetSale(id int64) (*domain.Sale, error) {
	var sale domain.Sale
	err := s.db.Get(&sale, `SELECT sale_id, sale_date, customer_id, salesperson_id, item_id, quantity_sold, sales_price, total_sale_amount, commission_earned FROM sales WHERE sale_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load sale %d: %w", id, err)
	}
	return &sale, nil
}
