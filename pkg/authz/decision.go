// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"github.com/hi5tech/access-service/internal/types"
)

// DenyReason is the typed cause of a denied decision. Reasons are safe to
// log server side but must be collapsed to a generic message before they
// reach a client.
type DenyReason int

const (
	DenyReasonNone DenyReason = iota
	DenyNoTenant
	DenyNoMembership
	DenyInsufficientRole
	DenyModuleNotAssigned
	DenyMissingScopes
)

func (r DenyReason) String() string {
	switch r {
	case DenyNoTenant:
		return "no_tenant"
	case DenyNoMembership:
		return "no_membership"
	case DenyInsufficientRole:
		return "insufficient_role"
	case DenyModuleNotAssigned:
		return "module_not_assigned"
	case DenyMissingScopes:
		return "missing_scopes"
	default:
		return "none"
	}
}

// Decision is the outcome of an authorization check. Denials are values,
// not errors: a caller cannot forget one by relying on error propagation.
// An Allow carries the resolved tenant, membership and scope set so the
// caller does not need to resolve them again.
type Decision struct {
	Allowed bool
	Reason  DenyReason

	Tenant     *types.Tenant
	Membership *types.Membership
	Scopes     types.ScopeSet
}

func Allow(tenant *types.Tenant, membership *types.Membership, scopes types.ScopeSet) Decision {
	return Decision{
		Allowed:    true,
		Tenant:     tenant,
		Membership: membership,
		Scopes:     scopes,
	}
}

func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}
