package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ayurshop/m/domain"
)

// AddItemParams carries the user-entered fields for a new product item.
type AddItemParams struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	PurchasePrice  float64 `json:"purchase_price"`
	SellingPrice   float64 `json:"selling_price"`
	StockShop      int64   `json:"stock_shop"`
	StockWarehouse int64   `json:"stock_warehouse"`
}

func (p AddItemParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.PurchasePrice < 0 {
		return &ValidationError{Field: "purchase_price", Reason: "must not be negative"}
	}
	if p.SellingPrice < 0 {
		return &ValidationError{Field: "selling_price", Reason: "must not be negative"}
	}
	if p.StockShop < 0 {
		return &ValidationError{Field: "stock_shop", Reason: "must not be negative"}
	}
	if p.StockWarehouse < 0 {
		return &ValidationError{Field: "stock_warehouse", Reason: "must not be negative"}
	}
	return nil
}

// AddItem validates the fields and creates a new product item.
func (s *Store) AddItem(p AddItemParams) (*domain.Item, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(p.Name)
	res, err := s.db.Exec(`INSERT INTO items (name, description, purchase_price, selling_price, stock_shop, stock_warehouse) VALUES (?, ?, ?, ?, ?, ?)`,
		name, p.Description, p.PurchasePrice, p.SellingPrice, p.StockShop, p.StockWarehouse)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("item id: %w", err)
	}
	return &domain.Item{
		ID:             id,
		Name:           name,
		Description:    p.Description,
		PurchasePrice:  p.PurchasePrice,
		SellingPrice:   p.SellingPrice,
		StockShop:      p.StockShop,
		StockWarehouse: p.StockWarehouse,
	}, nil
}

// GetItem loads an item by id.
func (s *Store) GetItem(id int64) (*domain.Item, error) {
	var item domain.Item
	err := s.db.Get(&item, `SELECT item_id, name, COALESCE(description, '') AS description, purchase_price, selling_price, stock_shop, stock_warehouse FROM items WHERE item_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load item %d: %w", id, err)
	}
	return &item, nil
}

// GetItemByName loads an item by its exact name.
func (s *Store) GetItemByName(name string) (*domain.Item, error) {
	var item domain.Item
	err := s.db.Get(&item, `SELECT item_id, name, COALESCE(description, '') AS description, purchase_price, selling_price, stock_shop, stock_warehouse FROM items WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load item %q: %w", name, err)
	}
	return &item, nil
}

// ListItems returns every item, ordered by id.
func (s *Store) ListItems() ([]domain.Item, error) {
	items := []domain.Item{}
	err := s.db.Select(&items, `SELECT item_id, name, COALESCE(description, '') AS description, purchase_price, selling_price, stock_shop, stock_warehouse FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Issue removes quantity units from the item's shop stock, e.g. for the
// daily start count. The decrement is guarded so a concurrent mutation on
// the same item cannot drive the stock negative.
func (s *Store) Issue(itemID, quantity int64) (*domain.Item, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	res, err := s.db.Exec(`UPDATE items SET stock_shop = stock_shop - ? WHERE item_id = ? AND stock_shop >= ?`, quantity, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("issue stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("issue stock: %w", err)
	}
	if affected == 0 {
		return nil, ErrInsufficientStock
	}
	item.StockShop -= quantity
	return item, nil
}

// Receive transfers quantity units from the warehouse into the shop. Both
// sides move in one statement so the counts cannot drift apart.
func (s *Store) Receive(itemID, quantity int64) (*domain.Item, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	res, err := s.db.Exec(`UPDATE items SET stock_warehouse = stock_warehouse - ?, stock_shop = stock_shop + ? WHERE item_id = ? AND stock_warehouse >= ?`,
		quantity, quantity, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("receive stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("receive stock: %w", err)
	}
	if affected == 0 {
		return nil, ErrInsufficientStock
	}
	item.StockWarehouse -= quantity
	item.StockShop += quantity
	return item, nil
}

// Reconcile overwrites the shop stock with a freshly observed end-of-day
// count, regardless of the recorded value.
func (s *Store) Reconcile(itemID, observedQuantity int64) (*domain.Item, error) {
	if observedQuantity < 0 {
		return nil, ErrInvalidQuantity
	}
	res, err := s.db.Exec(`UPDATE items SET stock_shop = ? WHERE item_id = ?`, observedQuantity, itemID)
	if err != nil {
		return nil, fmt.Errorf("reconcile stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reconcile stock: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.GetItem(itemID)
}
