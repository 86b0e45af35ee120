package siteapi

import (
	"context"
	"errors"
	"os"
	"strings"
)

// TokenSource supplies the bearer token for API requests. An empty token
// means the request is sent without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// FileToken reads the token from a file on every call. A missing file is
// treated as "not signed in" and yields an empty token.
type FileToken string

func (f FileToken) Token(context.Context) (string, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", errors.Join(ErrToken, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

type tokenKey struct{}

// WithToken returns a context carrying the caller's token. ContextToken reads
// it back, which lets a server forward each user's credential to the API.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by WithToken, or "".
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// ContextToken takes the token from the request context. A context without
// one yields ErrNoToken, so nothing is sent anonymously.
type ContextToken struct{}

func (ContextToken) Token(ctx context.Context) (string, error) {
	if token := TokenFromContext(ctx); token != "" {
		return token, nil
	}
	return "", ErrNoToken
}
