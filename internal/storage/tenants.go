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

	"github.com/hi5tech/access-service/internal/hostname"
	"github.com/hi5tech/access-service/internal/types"
)

const tenantColumns = "id, root_domain, subdomain, custom_domain, name, active, created_at"

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var t types.Tenant
	var customDomain sql.NullString
	err := row.Scan(&t.ID, &t.RootDomain, &t.Subdomain, &customDomain, &t.Name, &t.Active, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.CustomDomain = customDomain.String
	return &t, nil
}

// FindTenantByHost resolves a host key to an active tenant. Inactive rows
// are filtered in the query so they surface as ErrNotFound, exactly like a
// tenant that never existed.
func (s *Storage) FindTenantByHost(ctx context.Context, key hostname.HostKey) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindTenantByHost")
	defer span.End()

	var match sq.Eq
	switch key.Kind {
	case hostname.KindSubdomain:
		match = sq.Eq{"root_domain": key.RootDomain, "subdomain": key.Subdomain}
	case hostname.KindCustomDomain:
		match = sq.Eq{"custom_domain": key.CustomDomain}
	default:
		return nil, ErrNotFound
	}

	row := s.db.Statement(ctx).
		Select(strings.Split(tenantColumns, ", ")...).
		From("tenants").
		Where(match).
		Where(sq.Eq{"active": true}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var customDomain interface{}
	if t.CustomDomain != "" {
		customDomain = t.CustomDomain
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "root_domain", "subdomain", "custom_domain", "name", "active").
		Values(id.String(), t.RootDomain, strings.ToLower(t.Subdomain), customDomain, t.Name, t.Active).
		Suffix("RETURNING " + tenantColumns).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "tenant subdomain already taken")
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(strings.Split(tenantColumns, ", ")...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// UpdateTenant updates the fields named in paths, PATCH style.
func (s *Storage) UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = t.Name
		case "custom_domain":
			if t.CustomDomain == "" {
				updateMap["custom_domain"] = nil
			} else {
				updateMap["custom_domain"] = strings.ToLower(t.CustomDomain)
			}
		case "active":
			updateMap["active"] = t.Active
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": t.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return nil
}

// SetTenantStatus soft deletes or restores a tenant. Memberships and teams
// are retained; every downstream lookup fails closed while active is false.
func (s *Storage) SetTenantStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("active", active).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set tenant status: %w", err)
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

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(strings.Split(tenantColumns, ", ")...).
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}
