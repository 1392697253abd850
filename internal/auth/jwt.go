package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The dashboard has a single shared password and a single role. Claims carry
// the role anyway so the token shape does not need to change if per-user
// accounts ever land.
type JWTCustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const RoleAdmin = "admin"

func GenerateToken(secret string) (string, error) {
	claims := &JWTCustomClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
