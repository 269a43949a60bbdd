// Package token issues and validates the HS256 JWTs used by the HTTP
// API. Tokens carry the user's identity and owning tenant; the tenant
// claim is matched against the tenant addressed by each request.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"bookable/pkg/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

type Claims struct {
	UserID   string
	TenantID string
	Email    string
	Name     string
}

// Generate signs a token for the user with the given lifetime.
func Generate(user model.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"tenant_id": user.TenantID,
		"email":     user.Email,
		"name":      user.Name,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Parse validates the signature and expiry and extracts the claims.
func Parse(tokenString string, secret []byte) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		UserID:   stringClaim(mapClaims, "sub"),
		TenantID: stringClaim(mapClaims, "tenant_id"),
		Email:    stringClaim(mapClaims, "email"),
		Name:     stringClaim(mapClaims, "name"),
	}
	if claims.UserID == "" || claims.TenantID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
