package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccountClaims incluye los claims estándar JWT más la foto de la cuenta al momento del login.
// El verificador confía en estos datos sin releer la DB: ediciones posteriores del
// perfil no se reflejan hasta que el usuario vuelva a iniciar sesión.
type AccountClaims struct {
	jwt.RegisteredClaims
	AccountID   int    `json:"account_id"`
	FirstName   string `json:"account_firstname"`
	LastName    string `json:"account_lastname"`
	Email       string `json:"account_email"`
	AccountType string `json:"account_type"` // "Client" | "Employee" | "Admin"
}

// Issue genera un token JWT firmado (HS256) con los datos de la cuenta y el TTL indicado.
func Issue(secret, issuer string, claims AccountClaims, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Issuer:    issuer,
		Subject:   strconv.Itoa(claims.AccountID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims de la cuenta.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*AccountClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &AccountClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*AccountClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
