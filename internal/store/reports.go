package store

import (
	"fmt"

	"ayurshop/m/domain"
)

// SalesReportRow is one sale joined with its customer and item names.
type SalesReportRow struct {
	SaleID          int64   `db:"sale_id" json:"sale_id"`
	SaleDate        string  `db:"sale_date" json:"sale_date"`
	CustomerName    string  `db:"customer_name" json:"customer_name"`
	ItemName        string  `db:"item_name" json:"item_name"`
	QuantitySold    int64   `db:"quantity_sold" json:"quantity_sold"`
	TotalSaleAmount float64 `db:"total_sale_amount" json:"total_sale_amount"`
}

// SalesSummary lists every sale with its running total.
type SalesSummary struct {
	Rows             []SalesReportRow `json:"rows"`
	TotalSalesAmount float64          `json:"total_sales_amount"`
}

// SalesReport returns one row per sale with customer and item names joined
// in, plus the sum of all sale amounts. An empty report is not an error.
func (s *Store) SalesReport() (*SalesSummary, error) {
	rows := []SalesReportRow{}
	err := s.db.Select(&rows, `SELECT s.sale_id, s.sale_date, c.name AS customer_name, i.name AS item_name, s.quantity_sold, s.total_sale_amount
        FROM sales s
        JOIN customers c ON c.customer_id = s.customer_id
        JOIN items i ON i.item_id = s.item_id
        ORDER BY s.sale_id`)
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	report := &SalesSummary{Rows: rows}
	for _, row := range rows {
		report.TotalSalesAmount += row.TotalSaleAmount
	}
	return report, nil
}

// InventoryReport returns one row per item with all item fields.
func (s *Store) InventoryReport() ([]domain.Item, error) {
	return s.ListItems()
}

// ProfitLossRow is one sale with its profit over the item's purchase price.
type ProfitLossRow struct {
	SaleID          int64   `db:"sale_id" json:"sale_id"`
	SaleDate        string  `db:"sale_date" json:"sale_date"`
	ItemName        string  `db:"item_name" json:"item_name"`
	QuantitySold    int64   `db:"quantity_sold" json:"quantity_sold"`
	TotalSaleAmount float64 `db:"total_sale_amount" json:"total_sale_amount"`
	Profit          float64 `db:"profit" json:"profit"`
}

// ProfitLossSummary lists per-sale profit with running totals.
type ProfitLossSummary struct {
	Rows        []ProfitLossRow `json:"rows"`
	TotalSales  float64         `json:"total_sales"`
	TotalProfit float64         `json:"total_profit"`
}

// ProfitLossReport computes per-sale profit as the spread between the
// snapshotted sales price and the item's purchase price, times the quantity.
func (s *Store) ProfitLossReport() (*ProfitLossSummary, error) {
	rows := []ProfitLossRow{}
	err := s.db.Select(&rows, `SELECT s.sale_id, s.sale_date, i.name AS item_name, s.quantity_sold, s.total_sale_amount,
            (s.sales_price - i.purchase_price) * s.quantity_sold AS profit
        FROM sales s
        JOIN items i ON i.item_id = s.item_id
        ORDER BY s.sale_id`)
	if err != nil {
		return nil, fmt.Errorf("profit loss report: %w", err)
	}
	report := &ProfitLossSummary{Rows: rows}
	for _, row := range rows {
		report.TotalSales += row.TotalSaleAmount
		report.TotalProfit += row.Profit
	}
	return report, nil
}

// EmployeePerformanceRow sums one employee's sales and commissions.
type EmployeePerformanceRow struct {
	EmployeeID            int64   `db:"employee_id" json:"employee_id"`
	EmployeeName          string  `db:"employee_name" json:"employee_name"`
	TotalSalesAmount      float64 `db:"total_sales_amount" json:"total_sales_amount"`
	TotalCommissionEarned float64 `db:"total_commission_earned" json:"total_commission_earned"`
}

// EmployeePerformanceReport returns one row per employee with their summed
// sale amounts and commissions, zero for employees with no sales.
func (s *Store) EmployeePerformanceReport() ([]EmployeePerformanceRow, error) {
	rows := []EmployeePerformanceRow{}
	err := s.db.Select(&rows, `SELECT e.employee_id, e.name AS employee_name,
            COALESCE(SUM(s.total_sale_amount), 0) AS total_sales_amount,
            COALESCE(SUM(s.commission_earned), 0) AS total_commission_earned
        FROM employees e
        LEFT JOIN sales s ON s.salesperson_id = e.employee_id
        GROUP BY e.employee_id, e.name
        ORDER BY e.employee_id`)
	if err != nil {
		return nil, fmt.Errorf("employee performance report: %w", err)
	}
	return rows, nil
}

// LowStockReport returns the items whose shop stock is at or below the
// threshold, lowest stock first.
func (s *Store) LowStockReport(threshold int64) ([]domain.Item, error) {
	items := []domain.Item{}
	err := s.db.Select(&items, `SELECT item_id, name, COALESCE(description, '') AS description, purchase_price, selling_price, stock_shop, stock_warehouse
        FROM items WHERE stock_shop <= ? ORDER BY stock_shop, item_id`, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock report: %w", err)
	}
	return items, nil
}
