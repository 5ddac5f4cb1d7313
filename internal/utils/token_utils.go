package utils

import (
	"fmt"
	"time"

	"github.com/SscSPs/cashmap/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues an HS256 token the API accepts for ownerID. A non-empty
// organisationID makes the bearer an adviser of that organisation.
func GenerateJWT(ownerID, organisationID, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	if ownerID == "" {
		return "", fmt.Errorf("owner ID is required")
	}
	now := time.Now()
	claims := middleware.Claims{
		Organisation: organisationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   ownerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
