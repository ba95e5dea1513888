// Package auth resolves the identity a request acts on behalf of.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
	ErrInvalidToken      = errors.New("invalid token")
)

// IdentityProvider extracts the user id of a request
type IdentityProvider interface {
	UserID(r *http.Request) (string, error)
}

// QueryIdentity reads the userId query parameter and falls back to a
// fixed placeholder user.
type QueryIdentity struct {
	Param   string
	Default string
}

func NewQueryIdentity(defaultUserID string) QueryIdentity {
	return QueryIdentity{Param: "userId", Default: defaultUserID}
}

func (q QueryIdentity) UserID(r *http.Request) (string, error) {
	if id := strings.TrimSpace(r.URL.Query().Get(q.Param)); id != "" {
		return id, nil
	}
	return q.Default, nil
}

// Claims are the token claims the service understands
type Claims struct {
	jwt.RegisteredClaims
}

// JWTIdentity takes the user id from the subject of an HS256 bearer token.
// Requests without an Authorization header are resolved by Fallback.
type JWTIdentity struct {
	secret   []byte
	Fallback IdentityProvider
}

func NewJWTIdentity(secret string, fallback IdentityProvider) *JWTIdentity {
	return &JWTIdentity{secret: []byte(secret), Fallback: fallback}
}

func (j *JWTIdentity) UserID(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		if j.Fallback == nil {
			return "", ErrInvalidAuthHeader
		}
		return j.Fallback.UserID(r)
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}

	claims, err := j.ValidateToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ValidateToken parses and verifies a token, requiring a subject.
func (j *JWTIdentity) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateToken issues a token for userID valid for ttl.
func (j *JWTIdentity) GenerateToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}
