package tenant

import (
	"context"

	"go-assettrack/internal/shared/apperror"
)

// Principal identifies the authenticated caller. Every field comes from
// verified token claims; nothing here is ever taken from a request body or
// path parameter.
type Principal struct {
	UserID     uint
	EmployeeID uint
	CompanyID  uint
	Role       Role
	Username   string
	Email      string
}

type contextKey string

const principalKey contextKey = "tenant_principal"

// WithPrincipal menempelkan principal hasil verifikasi token ke context
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the authenticated principal, or ErrUnauthorized when
// the request never passed the auth middleware.
func FromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok {
		return Principal{}, apperror.ErrUnauthorized
	}
	return p, nil
}
