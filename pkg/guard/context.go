// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"

	"github.com/hi5tech/access-service/internal/types"
)

// AuthContext is the resolved authorization context a protected handler
// runs under. It is attached to the request context only on Allow.
type AuthContext struct {
	Tenant     *types.Tenant
	Membership *types.Membership
	Scopes     types.ScopeSet
}

type contextKey struct{}

var authContextKey = contextKey{}

// WithAuthContext returns a context carrying the authorization context.
func WithAuthContext(ctx context.Context, ac *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, ac)
}

// AuthContextFrom retrieves the authorization context attached by Protect.
func AuthContextFrom(ctx context.Context) (*AuthContext, bool) {
	ac, ok := ctx.Value(authContextKey).(*AuthContext)
	return ac, ok
}
