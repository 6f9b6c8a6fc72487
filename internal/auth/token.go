// Package auth implements bearer-token issuance and verification.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"mosaic/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "mosaic-api"
	audience = "mosaic-client"

	// TokenTTL is the fixed lifetime of an issued token. There is no
	// server-side revocation; a token stays valid until it expires.
	TokenTTL = time.Hour
)

// TokenService signs and verifies stateless HS256 bearer tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService returns a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token embedding the user ID with a one-hour expiry.
func (t *TokenService) Issue(userID uint) (string, error) {
	if len(t.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": issuer,
		"aud": audience,
		"exp": now.Add(TokenTTL).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the token's signature, expiry, issuer, and audience, and
// returns the embedded user ID. Every failure yields the same opaque error so
// callers cannot tell which check rejected the token.
func (t *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
	)
	if err != nil || !token.Valid {
		return 0, errInvalidToken()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errInvalidToken()
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errInvalidToken()
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, errInvalidToken()
	}

	return uint(userID), nil
}

func errInvalidToken() error {
	return models.NewUnauthorizedError("Invalid or expired token")
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
