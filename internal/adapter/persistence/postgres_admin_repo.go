package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/ports"
)

// PostgresAdminRepository implements AdminRepository using PostgreSQL
type PostgresAdminRepository struct {
	db *sql.DB
}

// NewPostgresAdminRepository creates a new PostgreSQL admin repository
func NewPostgresAdminRepository(db *sql.DB) ports.AdminRepository {
	return &PostgresAdminRepository{db: db}
}

// FindByEmail retrieves an admin user by email
func (r *PostgresAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	query := `
		SELECT id, email, password, role, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`

	var user domain.AdminUser
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}

	return &user, nil
}

// Create saves a new admin user
func (r *PostgresAdminRepository) Create(ctx context.Context, user *domain.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Password,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
