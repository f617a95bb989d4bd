package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/brinepantry/inventory/internal/adapter/auth"
	"github.com/brinepantry/inventory/internal/adapter/persistence"
	"github.com/brinepantry/inventory/internal/config"
	"github.com/brinepantry/inventory/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	email := "admin@brinepantry.com"
	password := "admin123"
	role := "admin"

	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.GetDatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	passwordService := auth.NewBcryptPasswordService(cfg.Security.BcryptCost)
	hashedPassword, err := passwordService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	adminUser := &domain.AdminUser{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	adminRepo := persistence.NewPostgresAdminRepository(db)
	if err := adminRepo.Create(ctx, adminUser); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	fmt.Printf("Admin user created successfully\n")
	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Role: %s\n", role)
	fmt.Printf("ID: %s\n", adminUser.ID)
}
