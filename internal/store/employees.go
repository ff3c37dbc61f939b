package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ayurshop/m/domain"
)

// AddEmployeeParams carries the user-entered fields for a new employee.
type AddEmployeeParams struct {
	Name           string  `json:"name"`
	Designation    string  `json:"designation"`
	Salary         float64 `json:"salary"`
	CommissionRate float64 `json:"commission_rate"`
}

func (p AddEmployeeParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Salary < 0 {
		return &ValidationError{Field: "salary", Reason: "must not be negative"}
	}
	if p.CommissionRate < 0 || p.CommissionRate > 100 {
		return &ValidationError{Field: "commission_rate", Reason: "must be between 0 and 100"}
	}
	return nil
}

// AddEmployee validates the fields and creates a new employee.
func (s *Store) AddEmployee(p AddEmployeeParams) (*domain.Employee, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(p.Name)
	res, err := s.db.Exec(`INSERT INTO employees (name, designation, salary, commission_rate) VALUES (?, ?, ?, ?)`,
		name, p.Designation, p.Salary, p.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("employee id: %w", err)
	}
	return &domain.Employee{
		ID:             id,
		Name:           name,
		Designation:    p.Designation,
		Salary:         p.Salary,
		CommissionRate: p.CommissionRate,
	}, nil
}

// GetEmployee loads an employee by id.
func (s *Store) GetEmployee(id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := s.db.Get(&emp, `SELECT employee_id, name, COALESCE(designation, '') AS designation, salary, commission_rate FROM employees WHERE employee_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load employee %d: %w", id, err)
	}
	return &emp, nil
}

// GetEmployeeByName loads the first employee with the given name.
func (s *Store) GetEmployeeByName(name string) (*domain.Employee, error) {
	var emp domain.Employee
	err := s.db.Get(&emp, `SELECT employee_id, name, COALESCE(designation, '') AS designation, salary, commission_rate FROM employees WHERE name = ? ORDER BY employee_id LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load employee %q: %w", name, err)
	}
	return &emp, nil
}

// ListEmployees returns every employee, ordered by id.
func (s *Store) ListEmployees() ([]domain.Employee, error) {
	emps := []domain.Employee{}
	err := s.db.Select(&emps, `SELECT employee_id, name, COALESCE(designation, '') AS designation, salary, commission_rate FROM employees ORDER BY employee_id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return emps, nil
}
