// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"

	"github.com/hi5tech/access-service/internal/types"
)

type ServiceInterface interface {
	CreateTeam(ctx context.Context, tenantID, key, name string, modules []types.Module, defaultTriage bool) (*types.Team, error)
	GetTeam(ctx context.Context, tenantID, teamID string) (*types.Team, error)
	ListTeams(ctx context.Context, tenantID string, module types.Module) ([]*types.Team, error)
	ListTeamRoles(ctx context.Context, tenantID, teamID string) ([]*types.TeamRole, error)
	UpdateRoleScopes(ctx context.Context, tenantID, teamID string, key types.TeamRoleKey, scopes types.ScopeSet) error
	AssignTeamRole(ctx context.Context, tenantID, teamID, membershipID string, key types.TeamRoleKey) error
	UnassignTeamRole(ctx context.Context, tenantID, teamID, membershipID string) error
	MemberScopes(ctx context.Context, tenantID, membershipID string, module types.Module) (types.ScopeSet, error)
	TeamMemberScopes(ctx context.Context, tenantID, teamID, membershipID string) (types.ScopeSet, error)
}

type StorageInterface interface {
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
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
}

// TxManagerInterface runs a function inside one database transaction.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
