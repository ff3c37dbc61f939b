package seed

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// LoadItems ingests the CSV catalog into the items table, ignoring rows whose
// name already exists. Expected columns:
// name,description,purchase_price,selling_price,stock_shop,stock_warehouse
func LoadItems(db *sqlx.DB, csvPath string) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load item catalog %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read item header: %v", err)
		return
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Printf("unable to start item transaction: %v", err)
		return
	}
	stmt, err := tx.Preparex(`INSERT OR IGNORE INTO items (name, description, purchase_price, selling_price, stock_shop, stock_warehouse) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		log.Printf("unable to prepare item insert: %v", err)
		_ = tx.Rollback()
		return
	}
	defer stmt.Close()

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read item row: %v", err)
			continue
		}
		if len(record) < 6 {
			continue
		}
		name := strings.TrimSpace(record[0])
		description := strings.TrimSpace(record[1])
		if name == "" {
			continue
		}
		purchase, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || purchase < 0 {
			continue
		}
		selling, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil || selling < 0 {
			continue
		}
		stockShop, err := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
		if err != nil || stockShop < 0 {
			continue
		}
		stockWarehouse, err := strconv.ParseInt(strings.TrimSpace(record[5]), 10, 64)
		if err != nil || stockWarehouse < 0 {
			continue
		}

		if _, err := stmt.Exec(name, description, purchase, selling, stockShop, stockWarehouse); err != nil {
			log.Printf("unable to insert item %s: %v", name, err)
		} else {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("unable to commit item seed: %v", err)
	} else {
		log.Printf("seeded item catalog with %d rows", rows)
	}
}
