package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the identity provider.
// Issuing is exposed for tooling and tests; login flows live elsewhere.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}
