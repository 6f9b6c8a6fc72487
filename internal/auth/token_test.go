package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	ts := NewTokenService("test_secret")

	token, err := ts.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ts.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestIssueClaims(t *testing.T) {
	ts := NewTokenService("test_secret")

	tokenString, err := ts.Issue(7)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "7", claims["sub"])
	assert.Equal(t, "mosaic-api", claims["iss"])
	assert.Equal(t, "mosaic-client", claims["aud"])
	assert.NotEmpty(t, claims["jti"])

	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(TokenTTL.Seconds()), exp-iat)
}

func TestVerifyRejections(t *testing.T) {
	ts := NewTokenService("test_secret")

	makeToken := func(claims jwt.MapClaims, secret string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return signed
	}

	now := time.Now()
	baseClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": "1",
			"iss": "mosaic-api",
			"aud": "mosaic-client",
			"exp": now.Add(time.Hour).Unix(),
			"iat": now.Unix(),
			"nbf": now.Unix(),
		}
	}

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not-a-token"},
		{"Empty", ""},
		{
			"Wrong secret",
			makeToken(baseClaims(), "other_secret"),
		},
		{
			"Expired",
			func() string {
				claims := baseClaims()
				claims["exp"] = now.Add(-time.Minute).Unix()
				return makeToken(claims, "test_secret")
			}(),
		},
		{
			"Wrong issuer",
			func() string {
				claims := baseClaims()
				claims["iss"] = "someone-else"
				return makeToken(claims, "test_secret")
			}(),
		},
		{
			"Wrong audience",
			func() string {
				claims := baseClaims()
				claims["aud"] = "someone-else"
				return makeToken(claims, "test_secret")
			}(),
		},
		{
			"Non-numeric subject",
			func() string {
				claims := baseClaims()
				claims["sub"] = "abc"
				return makeToken(claims, "test_secret")
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := ts.Verify(tt.token)
			assert.Zero(t, userID)
			require.Error(t, err)
			// Every rejection produces the same opaque message.
			assert.Equal(t, "Invalid or expired token", err.Error())
		})
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	ts := NewTokenService("test_secret")

	claims := jwt.MapClaims{
		"sub": "1",
		"iss": "mosaic-api",
		"aud": "mosaic-client",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(unsigned)
	assert.Error(t, err)
}

func TestTokenValidUntilExpiry(t *testing.T) {
	ts := NewTokenService("test_secret")

	// Verification is pure; repeated checks of the same token keep passing.
	token, err := ts.Issue(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		userID, err := ts.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, uint(3), userID)
	}
}

func TestJTIUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		jti := generateJTI()
		assert.False(t, seen[jti], "duplicate jti %s", jti)
		seen[jti] = true
	}
}
