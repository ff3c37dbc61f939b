package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"ayurshop/m/internal/api"
	"ayurshop/m/internal/config"
	"ayurshop/m/internal/database"
	"ayurshop/m/internal/migrations"
	"ayurshop/m/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)
	seed.LoadItems(db, "assets/items.csv")

	handler := api.New(db, cfg.Secret)

	log.Printf("shop POS server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
