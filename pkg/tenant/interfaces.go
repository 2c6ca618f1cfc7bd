// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/hi5tech/access-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name, subdomain string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id string, patch TenantPatch) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, active bool) error

	AddMember(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error
	RemoveMember(ctx context.Context, tenantID, userID string) error
	ListMembers(ctx context.Context, tenantID string) ([]*types.Membership, error)
	ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)

	AssignModule(ctx context.Context, tenantID, userID string, module types.Module) error
	RevokeModule(ctx context.Context, tenantID, userID string, module types.Module) error
	ListMemberModules(ctx context.Context, tenantID, userID string) ([]types.Module, error)

	InviteMember(ctx context.Context, tenantID, email string, role types.Role) (*types.Invite, error)
	AcceptInvite(ctx context.Context, token, userID string) (*types.Membership, error)
}

// StorageInterface is the slice of the storage contract this service
// needs. The concrete *storage.Storage satisfies it.
type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) error
	SetTenantStatus(ctx context.Context, id string, active bool) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)

	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	AddMember(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error
	RemoveMember(ctx context.Context, tenantID, userID string) error
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)

	AssignModule(ctx context.Context, membershipID string, module types.Module) error
	RevokeModule(ctx context.Context, membershipID string, module types.Module) error
	ListModulesForMembership(ctx context.Context, membershipID string) ([]types.Module, error)

	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
	ListInvitesByTenant(ctx context.Context, tenantID string) ([]*types.Invite, error)
	DeleteInvite(ctx context.Context, id string) error
}
