// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/hi5tech/access-service/internal/types"
)

// HasModuleAssignment answers whether the membership may open the module at
// all. Deliberately independent of the membership role: owners get no
// implicit module access.
func (s *Storage) HasModuleAssignment(ctx context.Context, membershipID string, module types.Module) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasModuleAssignment")
	defer span.End()

	var one int
	err := s.db.Statement(ctx).
		Select("1").
		From("module_assignments").
		Where(sq.Eq{"membership_id": membershipID, "module": string(module)}).
		QueryRowContext(ctx).
		Scan(&one)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check module assignment: %w", err)
	}

	return true, nil
}

// AssignModule is idempotent; granting an already granted module is a no-op.
func (s *Storage) AssignModule(ctx context.Context, membershipID string, module types.Module) error {
	ctx, span := s.tracer.Start(ctx, "storage.AssignModule")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("module_assignments").
		Columns("membership_id", "module").
		Values(membershipID, string(module)).
		Suffix("ON CONFLICT (membership_id, module) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to assign module: %w", err)
	}

	return nil
}

func (s *Storage) RevokeModule(ctx context.Context, membershipID string, module types.Module) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeModule")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("module_assignments").
		Where(sq.Eq{"membership_id": membershipID, "module": string(module)}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke module: %w", err)
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

func (s *Storage) ListModulesForMembership(ctx context.Context, membershipID string) ([]types.Module, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListModulesForMembership")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("module").
		From("module_assignments").
		Where(sq.Eq{"membership_id": membershipID}).
		OrderBy("module").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list module assignments: %w", err)
	}
	defer rows.Close()

	var modules []types.Module
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, types.Module(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return modules, nil
}
