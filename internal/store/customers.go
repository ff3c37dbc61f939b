package store

import (
	"database/sql"
	"errors"
	"fmt"

	"ayurshop/m/domain"
)

// GetCustomer loads a customer by id.
func (s *Store) GetCustomer(id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := s.db.Get(&c, `SELECT customer_id, name, COALESCE(email, '') AS email, COALESCE(contact_number, '') AS contact_number FROM customers WHERE customer_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load customer %d: %w", id, err)
	}
	return &c, nil
}

// ListCustomers returns every customer, ordered by id.
func (s *Store) ListCustomers() ([]domain.Customer, error) {
	customers := []domain.Customer{}
	err := s.db.Select(&customers, `SELECT customer_id, name, COALESCE(email, '') AS email, COALESCE(contact_number, '') AS contact_number FROM customers ORDER BY customer_id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}
