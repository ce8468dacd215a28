package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminSubject = "admin"

// GenerateAdminToken creates a signed session token for the admin
// console after a successful passcode login.
func GenerateAdminToken(secret string, ttl time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   adminSubject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAdminToken validates the token and confirms it carries the
// admin subject.
func ParseAdminToken(secret, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}

	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid && claims.Subject == adminSubject {
		return nil
	}
	return jwt.ErrTokenInvalidClaims
}
