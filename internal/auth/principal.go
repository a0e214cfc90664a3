package auth

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Admin  bool
}

type principalCtxKey struct{}

func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(Principal)
	return p, ok
}

// ResolveOwner returns the user whose data the principal may read.
// An empty requested user means the principal itself; only admins may act on behalf of others.
func ResolveOwner(p Principal, requested string) (string, error) {
	if p.UserID == "" {
		return "", ErrUnauthorized
	}
	if requested == "" || requested == p.UserID {
		return p.UserID, nil
	}
	if !p.Admin {
		return "", ErrForbidden
	}
	return requested, nil
}
