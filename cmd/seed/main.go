package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/brinepantry/inventory/internal/adapter/persistence"
	"github.com/brinepantry/inventory/internal/config"
	"github.com/brinepantry/inventory/internal/domain"
)

// Sample catalog for local development
var sampleProducts = []struct {
	name  string
	stock int
}{
	{"Dill Pickle Spears 32oz", 48},
	{"Bread & Butter Chips 16oz", 36},
	{"Spicy Garlic Dills 32oz", 24},
	{"Pickled Red Onions 12oz", 18},
	{"Fermented Sauerkraut 24oz", 30},
	{"Seasonal Watermelon Rind Pickles 16oz", 0},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	repo := persistence.NewPostgresStockRepository(db)

	for _, p := range sampleProducts {
		product := domain.NewProduct(p.name, p.stock)
		if err := repo.CreateProduct(ctx, product); err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.name, err)
		}
		fmt.Printf("Seeded product: %s (stock=%d, id=%s)\n", product.Name, product.Stock, product.ID)
	}

	fmt.Println("Database seeding completed")
}
