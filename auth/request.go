package auth

import (
	"context"
	"net/http"
	"strings"

	"notification-hub/errors"
)

type contextKey string

const identityKey contextKey = "identity"

// TokenFromRequest reads "Authorization: Bearer <token>" and falls back to
// the "token" query parameter, since browsers cannot set headers on a
// websocket handshake.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return r.URL.Query().Get("token")
}

// Authenticate returns the identity carried by the request.
// A request without a token yields (nil, nil); an invalid token is an error.
func (m *TokenManager) Authenticate(r *http.Request) (*Identity, error) {
	tokenStr := TokenFromRequest(r)
	if tokenStr == "" {
		return nil, nil
	}
	claims, err := m.ValidateToken(tokenStr)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	identity := claims.Identity()
	return &identity, nil
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
