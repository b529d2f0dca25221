// Package auth implements the token service: issuing and verifying the
// signed, time-limited identity tokens that gate the protected endpoints.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is the fixed validity window of an issued token. There is no
// revocation list, so a compromised token stays usable for the remainder of
// this window.
const TokenLifetime = time.Hour

// Claims is the claim set embedded in every issued token.
type Claims struct {
	UserId int    `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// CreateToken generates a JWT for the given user identity and role.
// The token is signed with HS256 using the process-wide secret and expires
// after TokenLifetime.
//
// Returns:
// - string: The signed token string.
// - error: An error if signing fails.
func CreateToken(secret []byte, userId int, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserId: userId,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken checks the signature integrity and expiry of a token string and
// returns its claims. A bad signature, an expired token and a malformed token
// all collapse into a single error; callers never see a partial claim set.
func VerifyToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
