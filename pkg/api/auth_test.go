package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-0123456789")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestTokenFromRequest(t *testing.T) {
	t.Run("subprotocol carrier", func(t *testing.T) {
		auth := NewAuthenticator(testSecret, false, 0)
		req := httptest.NewRequest("GET", "/missions/m-1/ws", nil)
		req.Header.Set("Sec-WebSocket-Protocol", "jwt, abc.def.ghi")

		token, viaSubprotocol := auth.TokenFromRequest(req)
		assert.Equal(t, "abc.def.ghi", token)
		assert.True(t, viaSubprotocol)
	})

	t.Run("jwt entry without a following token yields nothing", func(t *testing.T) {
		auth := NewAuthenticator(testSecret, false, 0)
		req := httptest.NewRequest("GET", "/missions/m-1/ws", nil)
		req.Header.Set("Sec-WebSocket-Protocol", "jwt")

		token, _ := auth.TokenFromRequest(req)
		assert.Empty(t, token)
	})

	t.Run("query fallback honoured only when enabled", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/missions/m-1/ws?token=abc.def.ghi", nil)

		token, viaSubprotocol := NewAuthenticator(testSecret, true, 0).TokenFromRequest(req)
		assert.Equal(t, "abc.def.ghi", token)
		assert.False(t, viaSubprotocol)

		token, _ = NewAuthenticator(testSecret, false, 0).TokenFromRequest(req)
		assert.Empty(t, token)
	})

	t.Run("subprotocol wins over query parameter", func(t *testing.T) {
		auth := NewAuthenticator(testSecret, true, 0)
		req := httptest.NewRequest("GET", "/missions/m-1/ws?token=from-query", nil)
		req.Header.Set("Sec-WebSocket-Protocol", "jwt, from-header")

		token, viaSubprotocol := auth.TokenFromRequest(req)
		assert.Equal(t, "from-header", token)
		assert.True(t, viaSubprotocol)
	})
}

func TestVerify(t *testing.T) {
	auth := NewAuthenticator(testSecret, false, 0)

	t.Run("valid token round-trips the subject", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		identity, err := auth.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", identity.UserID)
		assert.Equal(t, RoleCustomer, identity.Role)
		assert.True(t, identity.Active)
		assert.False(t, identity.IsAdmin())
	})

	t.Run("admin role claim", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":  "admin-1",
			"role": "admin",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		identity, err := auth.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, identity.Role)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("unknown role maps to customer", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":  "user-1",
			"role": "superuser",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		identity, err := auth.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, RoleCustomer, identity.Role)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := auth.Verify("")
		assert.ErrorIs(t, err, ErrNoCredential)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := auth.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, []byte("other-secret"), jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := auth.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := auth.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("max age enforced against iat", func(t *testing.T) {
		bounded := NewAuthenticator(testSecret, false, time.Hour)

		fresh := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-42",
			"iat": time.Now().Add(-time.Minute).Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		_, err := bounded.Verify(fresh)
		assert.NoError(t, err)

		stale := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-42",
			"iat": time.Now().Add(-2 * time.Hour).Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		_, err = bounded.Verify(stale)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})
}

func TestAuthenticate(t *testing.T) {
	auth := NewAuthenticator(testSecret, false, 0)

	t.Run("no credential", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/missions/m-1/ws", nil)

		_, _, err := auth.Authenticate(req)
		assert.ErrorIs(t, err, ErrNoCredential)
	})

	t.Run("inactive user rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":    "user-42",
			"active": false,
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/missions/m-1/ws", nil)
		req.Header.Set("Sec-WebSocket-Protocol", "jwt, "+token)

		_, _, err := auth.Authenticate(req)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("valid handshake", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/missions/m-1/ws", nil)
		req.Header.Set("Sec-WebSocket-Protocol", "jwt, "+token)

		identity, viaSubprotocol, err := auth.Authenticate(req)
		require.NoError(t, err)
		assert.True(t, viaSubprotocol)
		assert.Equal(t, "user-42", identity.UserID)
	})
}
