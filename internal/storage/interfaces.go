// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/hi5tech/access-service/internal/hostname"
	"github.com/hi5tech/access-service/internal/types"
)

// TenantDirectoryInterface is the read side of tenant resolution.
// Inactive tenants are indistinguishable from missing ones.
type TenantDirectoryInterface interface {
	FindTenantByHost(ctx context.Context, key hostname.HostKey) (*types.Tenant, error)
}

type TenantStoreInterface interface {
	TenantDirectoryInterface
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) error
	SetTenantStatus(ctx context.Context, id string, active bool) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
}

type MembershipStoreInterface interface {
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	AddMember(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error
	RemoveMember(ctx context.Context, tenantID, userID string) error
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
}

type TeamStoreInterface interface {
	CreateTeam(ctx context.Context, team *types.Team) (*types.Team, error)
	GetTeamByID(ctx context.Context, id string) (*types.Team, error)
	ListTeamsForModule(ctx context.Context, tenantID string, module types.Module) ([]*types.Team, error)
	ClearDefaultTriage(ctx context.Context, tenantID string, module types.Module, exceptTeamID string) error
	CreateTeamRole(ctx context.Context, role *types.TeamRole) (*types.TeamRole, error)
	ListTeamRoles(ctx context.Context, teamID string) ([]*types.TeamRole, error)
	UpdateTeamRoleScopes(ctx context.Context, teamRoleID string, scopes types.ScopeSet) error
	UpsertTeamMembership(ctx context.Context, teamID, teamRoleID, membershipID string) error
	RemoveTeamMembership(ctx context.Context, teamID, membershipID string) error
	EffectiveScopes(ctx context.Context, membershipID, teamID string) (types.ScopeSet, error)
	EffectiveScopesAcrossTenant(ctx context.Context, membershipID, tenantID string, module types.Module) (types.ScopeSet, error)
}

type ModuleStoreInterface interface {
	HasModuleAssignment(ctx context.Context, membershipID string, module types.Module) (bool, error)
	AssignModule(ctx context.Context, membershipID string, module types.Module) error
	RevokeModule(ctx context.Context, membershipID string, module types.Module) error
	ListModulesForMembership(ctx context.Context, membershipID string) ([]types.Module, error)
}

type InviteStoreInterface interface {
	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
	ListInvitesByTenant(ctx context.Context, tenantID string) ([]*types.Invite, error)
	DeleteInvite(ctx context.Context, id string) error
}

type StorageInterface interface {
	TenantStoreInterface
	MembershipStoreInterface
	TeamStoreInterface
	ModuleStoreInterface
	InviteStoreInterface
}
