package ports

import "github.com/brinepantry/inventory/internal/domain"

// TokenService issues and validates access tokens for actors
type TokenService interface {
	// GenerateAccessToken creates a signed token carrying the actor's identity
	GenerateAccessToken(actor domain.Actor) (string, error)

	// ValidateAccessToken verifies a token and resolves the actor
	ValidateAccessToken(token string) (*domain.Actor, error)
}

// PasswordService handles password hashing and verification
type PasswordService interface {
	// HashPassword hashes a plaintext password
	HashPassword(password string) (string, error)

	// ComparePassword verifies a plaintext password against a hash
	ComparePassword(hashedPassword, password string) error
}
