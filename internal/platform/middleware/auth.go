package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// TokenVerifier validates a bearer token and returns the user id it was
// issued for.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

type contextKeyUserID struct{}

// ContextKeyUserID is exported for use in tests.
var ContextKeyUserID = contextKeyUserID{}

// GetUserID retrieves the authenticated user id from the context. Empty when
// the request did not pass the auth gate.
func GetUserID(ctx context.Context) string {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	if !ok {
		return ""
	}
	return userID
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

func authenticate(r *http.Request, verifier TokenVerifier) (context.Context, error) {
	authHeader := r.Header.Get("Authorization")
	const bearerPrefix = "Bearer "
	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || token == "" {
		return nil, errors.New("missing bearer token")
	}
	userID, err := verifier.Verify(token)
	if err != nil {
		return nil, err
	}
	return WithUserID(r.Context(), userID), nil
}
