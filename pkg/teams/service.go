// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package teams manages tenant scoped teams, their role bundles and the
// scope grants memberships derive from them.
//
// Team scopes and the coarse membership role are independent axes: a
// membership downgraded to viewer keeps whatever team roles it holds.
// Revoking those on role change is a product decision that has
// deliberately not been baked in here.
package teams

import (
	"context"
	"errors"
	"fmt"

	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/storage"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
)

var (
	// ErrTenantMismatch is returned when a team or membership is addressed
	// through a tenant that does not own it.
	ErrTenantMismatch = errors.New("resource does not belong to tenant")
	// ErrUnknownScope is returned when a scope edit references a key
	// outside the closed vocabulary.
	ErrUnknownScope = errors.New("unknown scope key")
)

type Service struct {
	storage StorageInterface
	tx      TxManagerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxManagerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateTeam creates the team and provisions all four role bundles from
// the default scope table in a single transaction. When defaultTriage is
// set, the flag is cleared from sibling teams of the same modules so at
// most one team per tenant and module carries it.
func (s *Service) CreateTeam(ctx context.Context, tenantID, key, name string, modules []types.Module, defaultTriage bool) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.CreateTeam")
	defer span.End()

	if len(modules) == 0 {
		return nil, fmt.Errorf("a team needs at least one module")
	}
	for _, m := range modules {
		if _, err := types.ParseModule(string(m)); err != nil {
			return nil, err
		}
	}

	var created *types.Team
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		team, err := s.storage.CreateTeam(txCtx, &types.Team{
			TenantID:        tenantID,
			Key:             key,
			Name:            name,
			Modules:         modules,
			IsDefaultTriage: defaultTriage,
		})
		if err != nil {
			return err
		}

		if defaultTriage {
			for _, m := range modules {
				if err := s.storage.ClearDefaultTriage(txCtx, tenantID, m, team.ID); err != nil {
					return err
				}
			}
		}

		for _, roleKey := range types.TeamRoleKeys() {
			_, err := s.storage.CreateTeamRole(txCtx, &types.TeamRole{
				TeamID: team.ID,
				Key:    roleKey,
				Name:   defaultRoleNames[roleKey],
				Scopes: DefaultScopes(roleKey),
			})
			if err != nil {
				return err
			}
		}

		created = team
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to provision team: %w", err)
	}

	return created, nil
}

func (s *Service) GetTeam(ctx context.Context, tenantID, teamID string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.GetTeam")
	defer span.End()

	return s.teamInTenant(ctx, tenantID, teamID)
}

func (s *Service) ListTeams(ctx context.Context, tenantID string, module types.Module) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.ListTeams")
	defer span.End()

	return s.storage.ListTeamsForModule(ctx, tenantID, module)
}

func (s *Service) ListTeamRoles(ctx context.Context, tenantID, teamID string) ([]*types.TeamRole, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.ListTeamRoles")
	defer span.End()

	if _, err := s.teamInTenant(ctx, tenantID, teamID); err != nil {
		return nil, err
	}

	return s.storage.ListTeamRoles(ctx, teamID)
}

// UpdateRoleScopes replaces a role bundle's scope set. Edits are validated
// against the closed vocabulary; the default table is not consulted.
func (s *Service) UpdateRoleScopes(ctx context.Context, tenantID, teamID string, key types.TeamRoleKey, scopes types.ScopeSet) error {
	ctx, span := s.tracer.Start(ctx, "teams.Service.UpdateRoleScopes")
	defer span.End()

	for scope := range scopes {
		if !knownScopes.Has(scope) {
			return fmt.Errorf("%w: %s", ErrUnknownScope, scope)
		}
	}

	role, err := s.roleInTeam(ctx, tenantID, teamID, key)
	if err != nil {
		return err
	}

	return s.storage.UpdateTeamRoleScopes(ctx, role.ID, scopes)
}

// AssignTeamRole gives the membership the named role on the team,
// replacing any role it already holds there.
func (s *Service) AssignTeamRole(ctx context.Context, tenantID, teamID, membershipID string, key types.TeamRoleKey) error {
	ctx, span := s.tracer.Start(ctx, "teams.Service.AssignTeamRole")
	defer span.End()

	membership, err := s.storage.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return err
	}
	if membership.TenantID != tenantID {
		return ErrTenantMismatch
	}

	role, err := s.roleInTeam(ctx, tenantID, teamID, key)
	if err != nil {
		return err
	}

	return s.storage.UpsertTeamMembership(ctx, teamID, role.ID, membershipID)
}

func (s *Service) UnassignTeamRole(ctx context.Context, tenantID, teamID, membershipID string) error {
	ctx, span := s.tracer.Start(ctx, "teams.Service.UnassignTeamRole")
	defer span.End()

	if _, err := s.teamInTenant(ctx, tenantID, teamID); err != nil {
		return err
	}

	return s.storage.RemoveTeamMembership(ctx, teamID, membershipID)
}

// MemberScopes returns the union of the membership's team role scopes for
// the module across the whole tenant.
func (s *Service) MemberScopes(ctx context.Context, tenantID, membershipID string, module types.Module) (types.ScopeSet, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.MemberScopes")
	defer span.End()

	membership, err := s.storage.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if membership.TenantID != tenantID {
		return nil, ErrTenantMismatch
	}

	return s.storage.EffectiveScopesAcrossTenant(ctx, membershipID, tenantID, module)
}

// TeamMemberScopes returns the scopes granted by the role the membership
// holds on this one team, without unioning across the tenant.
func (s *Service) TeamMemberScopes(ctx context.Context, tenantID, teamID, membershipID string) (types.ScopeSet, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.TeamMemberScopes")
	defer span.End()

	if _, err := s.teamInTenant(ctx, tenantID, teamID); err != nil {
		return nil, err
	}

	return s.storage.EffectiveScopes(ctx, membershipID, teamID)
}

func (s *Service) teamInTenant(ctx context.Context, tenantID, teamID string) (*types.Team, error) {
	team, err := s.storage.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.TenantID != tenantID {
		// addressed through the wrong tenant: indistinguishable from missing
		return nil, storage.ErrNotFound
	}
	return team, nil
}

func (s *Service) roleInTeam(ctx context.Context, tenantID, teamID string, key types.TeamRoleKey) (*types.TeamRole, error) {
	if _, err := s.teamInTenant(ctx, tenantID, teamID); err != nil {
		return nil, err
	}

	roles, err := s.storage.ListTeamRoles(ctx, teamID)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		if role.Key == key {
			return role, nil
		}
	}

	// teams are expected to carry all four roles, but absence is treated
	// as missing, not as corruption
	return nil, storage.ErrNotFound
}
