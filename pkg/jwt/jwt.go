package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the standard JWT claims with the application's own fields.
// Role lets the RBAC middleware decide without hitting the database.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	OutletID string `json:"outlet_id"`
	Role     string `json:"role"` // "admin" | "kasir" | "gudang"
}

// Generate produces a signed JWT carrying userID, outletID and role.
func Generate(secret, userID, outletID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		OutletID: outletID,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns userID, outletID and role.
// Returns an error for invalid, expired or badly signed tokens.
func Parse(secret, tokenString string) (userID, outletID, role string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("invalid claims")
	}
	return claims.UserID, claims.OutletID, claims.Role, nil
}
