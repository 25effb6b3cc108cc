package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// TokenIssuer signs and validates the session cookie token. The token's
// subject is the session ID; nothing else about the visitor is in it.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer returns an issuer for secret. An empty secret is replaced by
// a random one, which invalidates every cookie on restart.
func NewTokenIssuer(secret string) *TokenIssuer {
	if secret == "" {
		secret = uuid.NewString()
	}
	return &TokenIssuer{secret: []byte(secret)}
}

// GenerateToken creates a signed JWT for sessionID expiring after duration.
func (t *TokenIssuer) GenerateToken(sessionID string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func (t *TokenIssuer) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
}

// ExtractIDFromToken returns the session ID carried by a valid token.
func (t *TokenIssuer) ExtractIDFromToken(tokenString string) (string, error) {
	token, err := t.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}
