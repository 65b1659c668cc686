package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalido covers every verification failure: bad signature, wrong
// issuer or expired token. Callers map it to a 401.
var ErrTokenInvalido = errors.New("token inválido o expirado")

// Claims carried inside every issued token.
type Claims struct {
	ClienteID int    `json:"clienteId"`
	Nombre    string `json:"nombre"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the bearer tokens used by the API.
// There is no server-side session state; the token is the whole credential.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// GenerateToken creates a signed HS256 token for an authenticated customer.
func (tm *TokenManager) GenerateToken(clienteID int, nombre string) (string, error) {
	now := time.Now()
	claims := Claims{
		ClienteID: clienteID,
		Nombre:    nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// VerifyToken validates signature, issuer and expiry, and returns the cliente
// id embedded in the token. It does not check that the customer still exists.
func (tm *TokenManager) VerifyToken(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return tm.secret, nil
		},
		jwt.WithIssuer(tm.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenInvalido, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalido
	}
	return claims.ClienteID, nil
}
