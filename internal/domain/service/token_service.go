package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID   uuid.UUID `json:"uid"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken issues a signed access token for the given identity.
	GenerateToken(userID uuid.UUID, username, email string) (string, error)

	// ValidateToken verifies signature and expiry and returns the token's claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns how long issued tokens stay valid.
	TokenTTL() time.Duration
}
