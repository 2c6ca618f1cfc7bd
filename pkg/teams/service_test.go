// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"
	"errors"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/storage"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
)

func setupTest(t *testing.T) (*MockStorageInterface, *MockTxManagerInterface, *Service) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxManagerInterface(ctrl)
	service := NewService(
		mockStorage,
		mockTx,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return mockStorage, mockTx, service
}

func passthroughTx(mockTx *MockTxManagerInterface) {
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestCreateTeamProvisionsDefaultRoles(t *testing.T) {
	mockStorage, mockTx, service := setupTest(t)
	ctx := context.Background()

	passthroughTx(mockTx)
	mockStorage.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, team *types.Team) (*types.Team, error) {
			if team.TenantID != "tenant-1" || team.Key != "service-desk" {
				t.Fatalf("unexpected team %+v", team)
			}
			created := *team
			created.ID = "team-1"
			return &created, nil
		},
	)

	provisioned := make(map[types.TeamRoleKey]types.ScopeSet)
	mockStorage.EXPECT().CreateTeamRole(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, role *types.TeamRole) (*types.TeamRole, error) {
			if role.TeamID != "team-1" {
				t.Fatalf("role created for wrong team: %s", role.TeamID)
			}
			provisioned[role.Key] = role.Scopes
			return role, nil
		},
	).Times(4)

	team, err := service.CreateTeam(ctx, "tenant-1", "service-desk", "Service Desk", []types.Module{types.ModuleITSM}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.ID != "team-1" {
		t.Fatalf("expected created team, got %+v", team)
	}

	for _, key := range types.TeamRoleKeys() {
		scopes, ok := provisioned[key]
		if !ok {
			t.Fatalf("role %s was not provisioned", key)
		}
		if !scopes.ContainsAll(DefaultScopes(key)) || !DefaultScopes(key).ContainsAll(scopes) {
			t.Errorf("role %s scopes differ from the default table: %v", key, scopes.Slice())
		}
	}
}

func TestCreateTeamDefaultTriageClearsSiblings(t *testing.T) {
	mockStorage, mockTx, service := setupTest(t)
	ctx := context.Background()

	passthroughTx(mockTx)
	mockStorage.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, team *types.Team) (*types.Team, error) {
			if !team.IsDefaultTriage {
				t.Fatal("expected default triage flag on the new team")
			}
			created := *team
			created.ID = "team-2"
			return &created, nil
		},
	)
	mockStorage.EXPECT().ClearDefaultTriage(gomock.Any(), "tenant-1", types.ModuleITSM, "team-2").Return(nil)
	mockStorage.EXPECT().ClearDefaultTriage(gomock.Any(), "tenant-1", types.ModuleControl, "team-2").Return(nil)
	mockStorage.EXPECT().CreateTeamRole(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, role *types.TeamRole) (*types.TeamRole, error) {
			return role, nil
		},
	).Times(4)

	_, err := service.CreateTeam(ctx, "tenant-1", "triage", "Triage", []types.Module{types.ModuleITSM, types.ModuleControl}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateTeamRollsBackOnRoleFailure(t *testing.T) {
	mockStorage, mockTx, service := setupTest(t)
	ctx := context.Background()

	boom := errors.New("insert failed")
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			if err := fn(ctx); err != nil {
				// the real manager rolls back here
				return err
			}
			return nil
		},
	)
	mockStorage.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, team *types.Team) (*types.Team, error) {
			created := *team
			created.ID = "team-3"
			return &created, nil
		},
	)
	mockStorage.EXPECT().CreateTeamRole(gomock.Any(), gomock.Any()).Return(nil, boom)

	team, err := service.CreateTeam(ctx, "tenant-1", "ops", "Ops", []types.Module{types.ModuleITSM}, false)
	if team != nil {
		t.Fatalf("expected no team on failure, got %+v", team)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestCreateTeamValidation(t *testing.T) {
	_, _, service := setupTest(t)
	ctx := context.Background()

	if _, err := service.CreateTeam(ctx, "tenant-1", "empty", "Empty", nil, false); err == nil {
		t.Error("expected error for a team with no modules")
	}
	if _, err := service.CreateTeam(ctx, "tenant-1", "bad", "Bad", []types.Module{"billing"}, false); err == nil {
		t.Error("expected error for an unknown module")
	}
}

func TestGetTeamWrongTenant(t *testing.T) {
	mockStorage, _, service := setupTest(t)
	ctx := context.Background()

	mockStorage.EXPECT().GetTeamByID(gomock.Any(), "team-1").Return(
		&types.Team{ID: "team-1", TenantID: "tenant-other"}, nil,
	)

	_, err := service.GetTeam(ctx, "tenant-1", "team-1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected %v for cross tenant access, got %v", storage.ErrNotFound, err)
	}
}

func TestUpdateRoleScopes(t *testing.T) {
	mockStorage, _, service := setupTest(t)
	ctx := context.Background()

	mockStorage.EXPECT().GetTeamByID(gomock.Any(), "team-1").Return(
		&types.Team{ID: "team-1", TenantID: "tenant-1"}, nil,
	)
	mockStorage.EXPECT().ListTeamRoles(gomock.Any(), "team-1").Return(
		[]*types.TeamRole{
			{ID: "role-viewer", TeamID: "team-1", Key: types.TeamRoleViewer},
			{ID: "role-agent", TeamID: "team-1", Key: types.TeamRoleAgent},
		}, nil,
	)
	scopes := types.NewScopeSet(ScopeIncidentsView, ScopeIncidentsClose)
	mockStorage.EXPECT().UpdateTeamRoleScopes(gomock.Any(), "role-viewer", scopes).Return(nil)

	if err := service.UpdateRoleScopes(ctx, "tenant-1", "team-1", types.TeamRoleViewer, scopes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateRoleScopesUnknownScope(t *testing.T) {
	_, _, service := setupTest(t)
	ctx := context.Background()

	err := service.UpdateRoleScopes(ctx, "tenant-1", "team-1", types.TeamRoleViewer,
		types.NewScopeSet(ScopeIncidentsView, "incidents.escalate"))
	if !errors.Is(err, ErrUnknownScope) {
		t.Fatalf("expected %v, got %v", ErrUnknownScope, err)
	}
}

func TestAssignTeamRole(t *testing.T) {
	mockStorage, _, service := setupTest(t)
	ctx := context.Background()

	mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "member-1").Return(
		&types.Membership{ID: "member-1", TenantID: "tenant-1", Role: types.RoleUser}, nil,
	)
	mockStorage.EXPECT().GetTeamByID(gomock.Any(), "team-1").Return(
		&types.Team{ID: "team-1", TenantID: "tenant-1"}, nil,
	)
	mockStorage.EXPECT().ListTeamRoles(gomock.Any(), "team-1").Return(
		[]*types.TeamRole{
			{ID: "role-agent", TeamID: "team-1", Key: types.TeamRoleAgent},
		}, nil,
	)
	mockStorage.EXPECT().UpsertTeamMembership(gomock.Any(), "team-1", "role-agent", "member-1").Return(nil)

	if err := service.AssignTeamRole(ctx, "tenant-1", "team-1", "member-1", types.TeamRoleAgent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssignTeamRoleTenantMismatch(t *testing.T) {
	mockStorage, _, service := setupTest(t)
	ctx := context.Background()

	mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "member-1").Return(
		&types.Membership{ID: "member-1", TenantID: "tenant-other"}, nil,
	)

	err := service.AssignTeamRole(ctx, "tenant-1", "team-1", "member-1", types.TeamRoleAgent)
	if !errors.Is(err, ErrTenantMismatch) {
		t.Fatalf("expected %v, got %v", ErrTenantMismatch, err)
	}
}

func TestMemberScopes(t *testing.T) {
	mockStorage, _, service := setupTest(t)
	ctx := context.Background()

	mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "member-1").Return(
		&types.Membership{ID: "member-1", TenantID: "tenant-1"}, nil,
	)
	mockStorage.EXPECT().EffectiveScopesAcrossTenant(gomock.Any(), "member-1", "tenant-1", types.ModuleITSM).Return(
		types.NewScopeSet(ScopeIncidentsView, ScopeIncidentsClose), nil,
	)

	scopes, err := service.MemberScopes(ctx, "tenant-1", "member-1", types.ModuleITSM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scopes.ContainsAll(types.NewScopeSet(ScopeIncidentsView, ScopeIncidentsClose)) {
		t.Fatalf("unexpected scopes: %v", scopes.Slice())
	}
}

func TestTeamMemberScopes(t *testing.T) {
	mockStorage, _, service := setupTest(t)
	ctx := context.Background()

	mockStorage.EXPECT().GetTeamByID(gomock.Any(), "team-1").Return(
		&types.Team{ID: "team-1", TenantID: "tenant-1"}, nil,
	)
	mockStorage.EXPECT().EffectiveScopes(gomock.Any(), "member-1", "team-1").Return(
		types.NewScopeSet(ScopeIncidentsView), nil,
	)

	scopes, err := service.TeamMemberScopes(ctx, "tenant-1", "team-1", "member-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scopes.Has(ScopeIncidentsView) {
		t.Fatalf("unexpected scopes: %v", scopes.Slice())
	}
}

func TestTeamMemberScopesWrongTenant(t *testing.T) {
	mockStorage, _, service := setupTest(t)
	ctx := context.Background()

	mockStorage.EXPECT().GetTeamByID(gomock.Any(), "team-1").Return(
		&types.Team{ID: "team-1", TenantID: "other-tenant"}, nil,
	)

	_, err := service.TeamMemberScopes(ctx, "tenant-1", "team-1", "member-1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected storage.ErrNotFound, got %v", err)
	}
}
