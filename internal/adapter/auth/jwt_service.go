package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/ports"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// JWTService implements TokenService using HS256-signed JWTs
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT token service
func NewJWTService(secret string, ttl time.Duration) ports.TokenService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateAccessToken creates a signed token carrying the actor's identity
func (s *JWTService) GenerateAccessToken(actor domain.Actor) (string, error) {
	claims := jwt.MapClaims{
		"user_id": actor.ID,
		"role":    actor.Role,
		"exp":     time.Now().Add(s.ttl).Unix(),
		"iat":     time.Now().Unix(),
		"type":    "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken verifies a token and resolves the actor
func (s *JWTService) ValidateAccessToken(tokenString string) (*domain.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "access" {
		return nil, ErrInvalidToken
	}

	return &domain.Actor{ID: userID, Role: role}, nil
}
