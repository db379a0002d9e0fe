package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role of an authenticated caller.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// WebSocket close codes used by the handshake and relay loops.
const (
	CloseUnauthorized = 4401 // missing/invalid/expired credential
	CloseForbidden    = 4403 // authenticated but role not permitted
	CloseNotFound     = 4004 // referenced entity not found
)

// Identity is the resolved caller of a WebSocket connection.
type Identity struct {
	UserID string
	Role   Role
	Active bool
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool { return i.Role == RoleAdmin }

var (
	ErrNoCredential      = errors.New("no credential presented")
	ErrInvalidCredential = errors.New("invalid credential")
)

// Authenticator verifies WebSocket handshake credentials. Token issuance is
// external; only HMAC verification and claim extraction happen here.
type Authenticator struct {
	secret []byte

	// allowQueryToken permits the ?token= fallback. Production deployments
	// must keep this off: query strings leak into access logs.
	allowQueryToken bool

	// maxAge bounds accepted token age beyond the exp claim. Zero disables
	// the check.
	maxAge time.Duration
}

// NewAuthenticator creates an authenticator over a shared HMAC secret.
func NewAuthenticator(secret []byte, allowQueryToken bool, maxAge time.Duration) *Authenticator {
	return &Authenticator{
		secret:          secret,
		allowQueryToken: allowQueryToken,
		maxAge:          maxAge,
	}
}

// TokenFromRequest extracts the handshake credential. The expected carrier is
// the Sec-WebSocket-Protocol header with the list ["jwt", "<token>"]; the
// token query parameter is honoured only when the fallback is enabled.
// The second return reports whether the jwt subprotocol was offered, so the
// accept path can negotiate it back.
func (a *Authenticator) TokenFromRequest(r *http.Request) (token string, viaSubprotocol bool) {
	protocols := splitProtocols(r.Header.Get("Sec-WebSocket-Protocol"))
	for i, p := range protocols {
		if p == "jwt" && i+1 < len(protocols) {
			return protocols[i+1], true
		}
	}

	if a.allowQueryToken {
		if t := r.URL.Query().Get("token"); t != "" {
			return t, false
		}
	}
	return "", false
}

// Verify decodes and validates a token, returning the caller's identity.
func (a *Authenticator) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrNoCredential
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing subject claim", ErrInvalidCredential)
	}

	if a.maxAge > 0 {
		iat, err := claims.GetIssuedAt()
		if err != nil || iat == nil {
			return nil, fmt.Errorf("%w: missing iat claim", ErrInvalidCredential)
		}
		if time.Since(iat.Time) > a.maxAge {
			return nil, fmt.Errorf("%w: token too old", ErrInvalidCredential)
		}
	}

	role := RoleCustomer
	if r, _ := claims["role"].(string); r == string(RoleAdmin) {
		role = RoleAdmin
	}

	active := true
	if v, ok := claims["active"].(bool); ok {
		active = v
	}

	return &Identity{UserID: sub, Role: role, Active: active}, nil
}

// Authenticate resolves the request's credential to an identity.
func (a *Authenticator) Authenticate(r *http.Request) (*Identity, bool, error) {
	token, viaSubprotocol := a.TokenFromRequest(r)
	if token == "" {
		return nil, viaSubprotocol, ErrNoCredential
	}
	identity, err := a.Verify(token)
	if err != nil {
		return nil, viaSubprotocol, err
	}
	if !identity.Active {
		return nil, viaSubprotocol, fmt.Errorf("%w: user inactive", ErrInvalidCredential)
	}
	return identity, viaSubprotocol, nil
}

func splitProtocols(header string) []string {
	if header == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
