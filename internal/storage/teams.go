// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hi5tech/access-service/internal/types"
)

func splitModules(csv string) []types.Module {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	modules := make([]types.Module, 0, len(parts))
	for _, p := range parts {
		modules = append(modules, types.Module(p))
	}
	return modules
}

// CreateTeam inserts the team and its module tags. Role provisioning is the
// caller's concern so the whole thing can run under one transaction.
func (s *Storage) CreateTeam(ctx context.Context, team *types.Team) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeam")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate team ID: %w", err)
	}

	var key interface{}
	if team.Key != "" {
		key = team.Key
	}

	var created types.Team
	var teamKey sql.NullString
	err = s.db.Statement(ctx).
		Insert("teams").
		Columns("id", "tenant_id", "key", "name", "is_default_triage").
		Values(id.String(), team.TenantID, key, team.Name, team.IsDefaultTriage).
		Suffix("RETURNING id, tenant_id, key, name, is_default_triage, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &teamKey, &created.Name, &created.IsDefaultTriage, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "team key already exists for tenant")
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert team: %w", err)
	}
	created.Key = teamKey.String

	for _, module := range team.Modules {
		_, err := s.db.Statement(ctx).
			Insert("team_modules").
			Columns("team_id", "module").
			Values(created.ID, string(module)).
			Suffix("ON CONFLICT (team_id, module) DO NOTHING").
			ExecContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to tag team module: %w", err)
		}
	}
	created.Modules = team.Modules

	return &created, nil
}

func (s *Storage) GetTeamByID(ctx context.Context, id string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamByID")
	defer span.End()

	var t types.Team
	var key sql.NullString
	var modules string
	err := s.db.Statement(ctx).
		Select(
			"t.id", "t.tenant_id", "t.key", "t.name", "t.is_default_triage", "t.created_at",
			"COALESCE(array_to_string(array_agg(tm.module ORDER BY tm.module), ','), '')",
		).
		From("teams t").
		LeftJoin("team_modules tm ON tm.team_id = t.id").
		Where(sq.Eq{"t.id": id}).
		GroupBy("t.id", "t.tenant_id", "t.key", "t.name", "t.is_default_triage", "t.created_at").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.TenantID, &key, &t.Name, &t.IsDefaultTriage, &t.CreatedAt, &modules)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	t.Key = key.String
	t.Modules = splitModules(modules)

	return &t, nil
}

func (s *Storage) ListTeamsForModule(ctx context.Context, tenantID string, module types.Module) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeamsForModule")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(
			"t.id", "t.tenant_id", "t.key", "t.name", "t.is_default_triage", "t.created_at",
			"COALESCE(array_to_string(array_agg(tm_all.module ORDER BY tm_all.module), ','), '')",
		).
		From("teams t").
		Join("team_modules tm ON tm.team_id = t.id").
		LeftJoin("team_modules tm_all ON tm_all.team_id = t.id").
		Where(sq.Eq{"t.tenant_id": tenantID, "tm.module": string(module)}).
		GroupBy("t.id", "t.tenant_id", "t.key", "t.name", "t.is_default_triage", "t.created_at").
		OrderBy("t.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*types.Team
	for rows.Next() {
		var t types.Team
		var key sql.NullString
		var modules string
		if err := rows.Scan(&t.ID, &t.TenantID, &key, &t.Name, &t.IsDefaultTriage, &t.CreatedAt, &modules); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		t.Key = key.String
		t.Modules = splitModules(modules)
		teams = append(teams, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return teams, nil
}

// ClearDefaultTriage drops the default triage flag from every other team of
// the tenant tagged with the module, so at most one team carries it.
func (s *Storage) ClearDefaultTriage(ctx context.Context, tenantID string, module types.Module, exceptTeamID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearDefaultTriage")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("teams").
		Set("is_default_triage", false).
		Where("id IN (SELECT team_id FROM team_modules WHERE module = ?)", string(module)).
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.NotEq{"id": exceptTeamID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear default triage flag: %w", err)
	}

	return nil
}

func (s *Storage) CreateTeamRole(ctx context.Context, role *types.TeamRole) (*types.TeamRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeamRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate team role ID: %w", err)
	}

	var created types.TeamRole
	err = s.db.Statement(ctx).
		Insert("team_roles").
		Columns("id", "team_id", "key", "name").
		Values(id.String(), role.TeamID, string(role.Key), role.Name).
		Suffix("RETURNING id, team_id, key, name").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TeamID, &created.Key, &created.Name)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "team role key already provisioned")
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert team role: %w", err)
	}

	for scope := range role.Scopes {
		_, err := s.db.Statement(ctx).
			Insert("team_role_scopes").
			Columns("team_role_id", "scope").
			Values(created.ID, scope).
			Suffix("ON CONFLICT (team_role_id, scope) DO NOTHING").
			ExecContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to insert team role scope: %w", err)
		}
	}
	created.Scopes = role.Scopes

	return &created, nil
}

func (s *Storage) ListTeamRoles(ctx context.Context, teamID string) ([]*types.TeamRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeamRoles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(
			"tr.id", "tr.team_id", "tr.key", "tr.name",
			"COALESCE(array_to_string(array_agg(trs.scope ORDER BY trs.scope), ','), '')",
		).
		From("team_roles tr").
		LeftJoin("team_role_scopes trs ON trs.team_role_id = tr.id").
		Where(sq.Eq{"tr.team_id": teamID}).
		GroupBy("tr.id", "tr.team_id", "tr.key", "tr.name").
		OrderBy("tr.key").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.TeamRole
	for rows.Next() {
		var r types.TeamRole
		var scopes string
		if err := rows.Scan(&r.ID, &r.TeamID, &r.Key, &r.Name, &scopes); err != nil {
			return nil, fmt.Errorf("failed to scan team role: %w", err)
		}
		if scopes == "" {
			r.Scopes = types.NewScopeSet()
		} else {
			r.Scopes = types.NewScopeSet(strings.Split(scopes, ",")...)
		}
		roles = append(roles, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// UpdateTeamRoleScopes replaces the persisted scope set of a team role.
// Once persisted, these scopes are authoritative; the default table is
// consulted only at provisioning time.
func (s *Storage) UpdateTeamRoleScopes(ctx context.Context, teamRoleID string, scopes types.ScopeSet) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTeamRoleScopes")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("team_role_scopes").
		Where(sq.Eq{"team_role_id": teamRoleID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear team role scopes: %w", err)
	}

	for _, scope := range scopes.Slice() {
		_, err := s.db.Statement(ctx).
			Insert("team_role_scopes").
			Columns("team_role_id", "scope").
			Values(teamRoleID, scope).
			ExecContext(ctx)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to insert team role scope: %w", err)
		}
	}

	return nil
}

// UpsertTeamMembership assigns a team role to a membership, replacing any
// previous role held on the same team. The (team_id, membership_id) unique
// constraint owns the at-most-one-role-per-team invariant; the upsert makes
// reassignment explicit rather than an ignored duplicate-key error.
func (s *Storage) UpsertTeamMembership(ctx context.Context, teamID, teamRoleID, membershipID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertTeamMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate team membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("team_memberships").
		Columns("id", "team_id", "team_role_id", "membership_id").
		Values(id.String(), teamID, teamRoleID, membershipID).
		Suffix("ON CONFLICT (team_id, membership_id) DO UPDATE SET team_role_id = EXCLUDED.team_role_id").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert team membership: %w", err)
	}

	return nil
}

func (s *Storage) RemoveTeamMembership(ctx context.Context, teamID, membershipID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveTeamMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("team_memberships").
		Where(sq.Eq{"team_id": teamID, "membership_id": membershipID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove team membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// EffectiveScopes returns the scope set of the team role the membership
// holds on the team, or the empty set when it holds none.
func (s *Storage) EffectiveScopes(ctx context.Context, membershipID, teamID string) (types.ScopeSet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EffectiveScopes")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT trs.scope").
		From("team_memberships tmem").
		Join("team_roles tr ON tr.id = tmem.team_role_id").
		Join("team_role_scopes trs ON trs.team_role_id = tr.id").
		Where(sq.Eq{"tmem.membership_id": membershipID, "tmem.team_id": teamID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query effective scopes: %w", err)
	}
	defer rows.Close()

	return scanScopes(rows)
}

// EffectiveScopesAcrossTenant unions the scope sets of every team role the
// membership holds on teams of the tenant tagged with the module. Broadest
// grant wins; there is no most-restrictive-wins semantics.
func (s *Storage) EffectiveScopesAcrossTenant(ctx context.Context, membershipID, tenantID string, module types.Module) (types.ScopeSet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EffectiveScopesAcrossTenant")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT trs.scope").
		From("team_memberships tmem").
		Join("teams t ON t.id = tmem.team_id").
		Join("team_modules tm ON tm.team_id = t.id").
		Join("team_roles tr ON tr.id = tmem.team_role_id").
		Join("team_role_scopes trs ON trs.team_role_id = tr.id").
		Where(sq.Eq{
			"tmem.membership_id": membershipID,
			"t.tenant_id":        tenantID,
			"tm.module":          string(module),
		}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query effective scopes: %w", err)
	}
	defer rows.Close()

	return scanScopes(rows)
}

func scanScopes(rows *sql.Rows) (types.ScopeSet, error) {
	scopes := types.NewScopeSet()
	for rows.Next() {
		var scope string
		if err := rows.Scan(&scope); err != nil {
			return nil, fmt.Errorf("failed to scan scope: %w", err)
		}
		scopes[scope] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return scopes, nil
}
