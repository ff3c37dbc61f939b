package domain

type Item struct {
	ID             int64   `db:"item_id" json:"item_id"`
	Name           string  `db:"name" json:"name"`
	Description    string  `db:"description" json:"description,omitempty"`
	PurchasePrice  float64 `db:"purchase_price" json:"purchase_price"`
	SellingPrice   float64 `db:"selling_price" json:"selling_price"`
	StockShop      int64   `db:"stock_shop" json:"stock_shop"`
	StockWarehouse int64   `db:"stock_warehouse" json:"stock_warehouse"`
}

// Margin is the per-unit profit at the current prices.
func (i Item) Margin() float64 {
	return i.SellingPrice - i.PurchasePrice
}
