// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"context"

	"github.com/hi5tech/access-service/internal/hostname"
	"github.com/hi5tech/access-service/internal/types"
)

type EngineInterface interface {
	Authorize(ctx context.Context, host, userID string, req Requirement) (Decision, error)
}

// HostResolverInterface resolves a raw host header into a tenant host key.
type HostResolverInterface interface {
	Resolve(hostHeader string) hostname.HostKey
}

// StoreInterface is the read surface the engine needs from the backing
// store. All four lookups fail closed: a store error is never a Deny.
type StoreInterface interface {
	FindTenantByHost(ctx context.Context, key hostname.HostKey) (*types.Tenant, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	HasModuleAssignment(ctx context.Context, membershipID string, module types.Module) (bool, error)
	EffectiveScopesAcrossTenant(ctx context.Context, membershipID, tenantID string, module types.Module) (types.ScopeSet, error)
}
