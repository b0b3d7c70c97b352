package utils

import (
	"context"
)

type contextKey string

const (
	EmailKey     contextKey = "email"
	TokenIDKey   contextKey = "token_id"
	RequestIDKey contextKey = "request_id"
)

// GetEmailFromContext returns the identity attached by the auth gate.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}

func SetIdentityContext(ctx context.Context, email, tokenID string) context.Context {
	ctx = context.WithValue(ctx, EmailKey, email)
	ctx = context.WithValue(ctx, TokenIDKey, tokenID)
	return ctx
}

func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	idVal := ctx.Value(TokenIDKey)
	if idVal == nil {
		return "", false
	}

	id, ok := idVal.(string)
	return id, ok
}

func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
