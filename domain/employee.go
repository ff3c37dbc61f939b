package domain

type Employee struct {
	ID             int64   `db:"employee_id" json:"employee_id"`
	Name           string  `db:"name" json:"name"`
	Designation    string  `db:"designation" json:"designation,omitempty"`
	Salary         float64 `db:"salary" json:"salary"`
	CommissionRate float64 `db:"commission_rate" json:"commission_rate"`
}

// Commission returns the commission earned on a sale of the given total
// amount, at this employee's percentage rate.
func (e Employee) Commission(totalSaleAmount float64) float64 {
	return (e.CommissionRate / 100) * totalSaleAmount
}
