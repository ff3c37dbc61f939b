package migrations

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// Run creates the database schema required for the shop backend.
func Run(db *sqlx.DB) {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            username TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS items (
            item_id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL UNIQUE,
            description TEXT,
            purchase_price REAL NOT NULL DEFAULT 0 CHECK (purchase_price >= 0),
            selling_price REAL NOT NULL DEFAULT 0 CHECK (selling_price >= 0),
            stock_shop INTEGER NOT NULL DEFAULT 0 CHECK (stock_shop >= 0),
            stock_warehouse INTEGER NOT NULL DEFAULT 0 CHECK (stock_warehouse >= 0)
        );`,
		`CREATE TABLE IF NOT EXISTS customers (
            customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            email TEXT,
            contact_number TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS employees (
            employee_id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            designation TEXT,
            salary REAL NOT NULL DEFAULT 0 CHECK (salary >= 0),
            commission_rate REAL NOT NULL DEFAULT 0 CHECK (commission_rate >= 0 AND commission_rate <= 100)
        );`,
		`CREATE TABLE IF NOT EXISTS sales (
            sale_id INTEGER PRIMARY KEY AUTOINCREMENT,
            sale_date TEXT NOT NULL,
            customer_id INTEGER NOT NULL,
            salesperson_id INTEGER NOT NULL,
            item_id INTEGER NOT NULL,
            quantity_sold INTEGER NOT NULL CHECK (quantity_sold > 0),
            sales_price REAL NOT NULL,
            total_sale_amount REAL NOT NULL,
            commission_earned REAL NOT NULL,
            FOREIGN KEY(customer_id) REFERENCES customers(customer_id),
            FOREIGN KEY(salesperson_id) REFERENCES employees(employee_id),
            FOREIGN KEY(item_id) REFERENCES items(item_id)
        );`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}
}
