package domain

type Sale struct {
	ID               int64   `db:"sale_id" json:"sale_id"`
	SaleDate         string  `db:"sale_date" json:"sale_date"`
	CustomerID       int64   `db:"customer_id" json:"customer_id"`
	SalespersonID    int64   `db:"salesperson_id" json:"salesperson_id"`
	ItemID           int64   `db:"item_id" json:"item_id"`
	QuantitySold     int64   `db:"quantity_sold" json:"quantity_sold"`
	SalesPrice       float64 `db:"sales_price" json:"sales_price"`
	TotalSaleAmount  float64 `db:"total_sale_amount" json:"total_sale_amount"`
	CommissionEarned float64 `db:"commission_earned" json:"commission_earned"`
}
