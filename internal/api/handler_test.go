package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"ayurshop/m/internal/database"
	"ayurshop/m/internal/migrations"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := database.Connect("file::memory:?_pragma=foreign_keys(1)")
	t.Cleanup(func() { _ = db.Close() })
	migrations.Run(db)
	ts := httptest.NewServer(New(db, "test_secret").Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func registerUser(t *testing.T, ts *httptest.Server, role string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]any{
		"username": role + "_user",
		"email":    role + "@shop.test",
		"password": "secret123",
		"role":     role,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %v", role, resp.StatusCode, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register %s: missing token in %v", role, body)
	}
	return token
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/health", "", nil)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("health: status %d, body %v", resp.StatusCode, body)
	}
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	t.Run("register and login", func(t *testing.T) {
		registerUser(t, ts, "manager")
		resp, body := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]any{
			"email":    "manager@shop.test",
			"password": "secret123",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("login: status %d, body %v", resp.StatusCode, body)
		}
		if body["token"] == "" {
			t.Fatalf("login: missing token in %v", body)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]any{
			"username": "again",
			"email":    "manager@shop.test",
			"password": "secret123",
			"role":     "manager",
		})
		if resp.StatusCode != http.StatusConflict {
			t.Fatalf("duplicate register: status %d, want 409", resp.StatusCode)
		}
	})

	t.Run("bad credentials rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]any{
			"email":    "manager@shop.test",
			"password": "wrong",
		})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("bad login: status %d, want 401", resp.StatusCode)
		}
	})

	t.Run("protected routes need a token", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, ts.URL+"/items", "", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("no token: status %d, want 401", resp.StatusCode)
		}
	})
}

func TestSaleFlow(t *testing.T) {
	ts := newTestServer(t)
	manager := registerUser(t, ts, "manager")

	resp, item := doJSON(t, http.MethodPost, ts.URL+"/items", manager, map[string]any{
		"name":           "Ashwagandha",
		"purchase_price": 60,
		"selling_price":  100,
		"stock_shop":     50,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add item: status %d, body %v", resp.StatusCode, item)
	}
	itemID := item["item_id"].(float64)

	resp, emp := doJSON(t, http.MethodPost, ts.URL+"/employees", manager, map[string]any{
		"name":            "Ravi",
		"designation":     "salesperson",
		"salary":          15000,
		"commission_rate": 10,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add employee: status %d, body %v", resp.StatusCode, emp)
	}
	empID := emp["employee_id"].(float64)

	resp, sale := doJSON(t, http.MethodPost, ts.URL+"/sales", manager, map[string]any{
		"item_id":        itemID,
		"quantity":       5,
		"salesperson_id": empID,
		"sale_date":      "2026-08-29",
		"customer":       map[string]any{"name": "A"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create sale: status %d, body %v", resp.StatusCode, sale)
	}
	saleBody := sale["sale"].(map[string]any)
	if got := saleBody["total_sale_amount"].(float64); got != 500 {
		t.Errorf("total_sale_amount = %v, want 500", got)
	}
	if got := saleBody["commission_earned"].(float64); got != 50 {
		t.Errorf("commission_earned = %v, want 50", got)
	}
	itemBody := sale["item"].(map[string]any)
	if got := itemBody["stock_shop"].(float64); got != 45 {
		t.Errorf("stock_shop = %v, want 45", got)
	}

	t.Run("insufficient stock rejected", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, ts.URL+"/sales", manager, map[string]any{
			"item_id":        itemID,
			"quantity":       1000,
			"salesperson_id": empID,
			"customer":       map[string]any{"name": "B"},
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("oversell: status %d, body %v", resp.StatusCode, body)
		}
	})

	t.Run("sales report", func(t *testing.T) {
		resp, report := doJSON(t, http.MethodGet, ts.URL+"/reports/sales", manager, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("sales report: status %d, body %v", resp.StatusCode, report)
		}
		if got := report["total_sales_amount"].(float64); got != 500 {
			t.Errorf("report total = %v, want 500", got)
		}
		rows := report["rows"].([]any)
		if len(rows) != 1 {
			t.Fatalf("report rows = %d, want 1", len(rows))
		}
	})

	t.Run("low stock report", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, ts.URL+"/reports/low-stock?threshold=50", manager, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("manager low stock report: status %d, want 200", resp.StatusCode)
		}
	})

	t.Run("customers", func(t *testing.T) {
		customerID := sale["customer"].(map[string]any)["customer_id"].(float64)
		resp, customer := doJSON(t, http.MethodGet, ts.URL+"/customers/"+strconv.FormatInt(int64(customerID), 10), manager, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get customer: status %d, body %v", resp.StatusCode, customer)
		}
		if customer["name"] != "A" {
			t.Errorf("customer name = %v, want A", customer["name"])
		}

		resp, _ = doJSON(t, http.MethodGet, ts.URL+"/customers/9999", manager, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("missing customer: status %d, want 404", resp.StatusCode)
		}

		resp, _ = doJSON(t, http.MethodGet, ts.URL+"/customers", manager, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list customers: status %d, want 200", resp.StatusCode)
		}
	})
}

func TestStockEndpoints(t *testing.T) {
	ts := newTestServer(t)
	clerk := registerUser(t, ts, "clerk")

	_, item := doJSON(t, http.MethodPost, ts.URL+"/items", clerk, map[string]any{
		"name":            "Neem Capsules",
		"selling_price":   95,
		"stock_shop":      10,
		"stock_warehouse": 30,
	})
	itemID := int64(item["item_id"].(float64))
	url := ts.URL + "/items/" + strconv.FormatInt(itemID, 10)

	t.Run("issue beyond stock fails", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, url+"/issue", clerk, map[string]any{"quantity": 15})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("issue 15: status %d, want 400", resp.StatusCode)
		}
	})

	t.Run("issue", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, url+"/issue", clerk, map[string]any{"quantity": 4})
		if resp.StatusCode != http.StatusOK || body["stock_shop"].(float64) != 6 {
			t.Fatalf("issue 4: status %d, body %v", resp.StatusCode, body)
		}
	})

	t.Run("receive", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, url+"/receive", clerk, map[string]any{"quantity": 5})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("receive: status %d, body %v", resp.StatusCode, body)
		}
		if body["stock_shop"].(float64) != 11 || body["stock_warehouse"].(float64) != 25 {
			t.Errorf("receive body = %v", body)
		}
	})

	t.Run("reconcile", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, url+"/reconcile", clerk, map[string]any{"observed_quantity": 7})
		if resp.StatusCode != http.StatusOK || body["stock_shop"].(float64) != 7 {
			t.Fatalf("reconcile: status %d, body %v", resp.StatusCode, body)
		}
	})

	t.Run("reports are manager only", func(t *testing.T) {
		paths := []string{
			"/reports/sales",
			"/reports/inventory",
			"/reports/profit-loss",
			"/reports/employee-performance",
			"/reports/low-stock",
		}
		for _, path := range paths {
			resp, _ := doJSON(t, http.MethodGet, ts.URL+path, clerk, nil)
			if resp.StatusCode != http.StatusForbidden {
				t.Errorf("clerk %s: status %d, want 403", path, resp.StatusCode)
			}
		}
	})
}
