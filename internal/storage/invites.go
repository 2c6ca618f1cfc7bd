// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hi5tech/access-service/internal/types"
)

func (s *Storage) CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	var created types.Invite
	err = s.db.Statement(ctx).
		Insert("invites").
		Columns("id", "token", "tenant_id", "email", "role", "expires_at").
		Values(id.String(), invite.Token, invite.TenantID, invite.Email, string(invite.Role), invite.ExpiresAt).
		Suffix("RETURNING id, token, tenant_id, email, role, expires_at, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Token, &created.TenantID, &created.Email, &created.Role, &created.ExpiresAt, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetInviteByToken(ctx context.Context, token string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByToken")
	defer span.End()

	var i types.Invite
	err := s.db.Statement(ctx).
		Select("id", "token", "tenant_id", "email", "role", "expires_at", "created_at").
		From("invites").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.Token, &i.TenantID, &i.Email, &i.Role, &i.ExpiresAt, &i.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &i, nil
}

func (s *Storage) DeleteInvite(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvite")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}

	return nil
}

func (s *Storage) ListInvitesByTenant(ctx context.Context, tenantID string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesByTenant")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "token", "tenant_id", "email", "role", "expires_at", "created_at").
		From("invites").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.Invite
	for rows.Next() {
		var i types.Invite
		if err := rows.Scan(&i.ID, &i.Token, &i.TenantID, &i.Email, &i.Role, &i.ExpiresAt, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, &i)
	}

	return invites, rows.Err()
}
