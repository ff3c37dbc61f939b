package seed

import (
	"os"
	"path/filepath"
	"testing"

	"ayurshop/m/internal/database"
	"ayurshop/m/internal/migrations"
)

func TestLoadItems(t *testing.T) {
	db := database.Connect("file::memory:?_pragma=foreign_keys(1)")
	t.Cleanup(func() { _ = db.Close() })
	migrations.Run(db)

	csvPath := filepath.Join(t.TempDir(), "items.csv")
	content := `name,description,purchase_price,selling_price,stock_shop,stock_warehouse
Ashwagandha Churna,root powder,60,100,50,200
Triphala Churna,digestive powder,40,75,30,150
,missing name,10,20,1,1
Bad Price,not numeric,abc,75,30,150
Negative Stock,negative,40,75,-5,150
Ashwagandha Churna,duplicate name,60,100,50,200
`
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	LoadItems(db, csvPath)

	var n int64
	if err := db.Get(&n, `SELECT COUNT(*) FROM items`); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if n != 2 {
		t.Errorf("items rows = %d, want 2 (malformed and duplicate rows skipped)", n)
	}

	var stock int64
	if err := db.Get(&stock, `SELECT stock_warehouse FROM items WHERE name = ?`, "Ashwagandha Churna"); err != nil {
		t.Fatalf("load seeded item: %v", err)
	}
	if stock != 200 {
		t.Errorf("stock_warehouse = %d, want 200", stock)
	}
}

func TestLoadItemsMissingFile(t *testing.T) {
	db := database.Connect("file::memory:?_pragma=foreign_keys(1)")
	t.Cleanup(func() { _ = db.Close() })
	migrations.Run(db)

	// Must not panic or write anything.
	LoadItems(db, filepath.Join(t.TempDir(), "absent.csv"))

	var n int64
	if err := db.Get(&n, `SELECT COUNT(*) FROM items`); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if n != 0 {
		t.Errorf("items rows = %d, want 0", n)
	}
}
