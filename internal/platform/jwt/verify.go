package jwtmw

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// VerifyToken parses and verifies a signed token against the JWT_SECRET
// environment variable and returns the user ID claim.
func VerifyToken(tokenStr string) (uint, error) {
	secret := os.Getenv(EnvKeyJWTSecret)
	if secret == "" {
		return 0, errors.New("JWT_SECRET is not configured")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, errors.New("missing sub claim")
	}
	return uint(sub), nil
}
