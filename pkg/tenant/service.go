// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenant provides the provisioning and administration surface for
// tenants and their memberships. Resolution and authorization read paths
// live elsewhere; everything here mutates under an operator's privilege.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/storage"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
)

var (
	ErrInvalidSubdomain = errors.New("invalid subdomain")
	ErrInviteExpired    = errors.New("invite has expired")
)

// subdomains are stored lower-case and must survive the host round-trip
var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// TenantPatch carries optional field updates. Nil means leave unchanged.
type TenantPatch struct {
	Name         *string
	CustomDomain *string
	Active       *bool
}

type Service struct {
	storage    StorageInterface
	rootDomain string
	reserved   map[string]struct{}

	inviteLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	rootDomain string,
	reservedSubdomains []string,
	inviteLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	reserved := make(map[string]struct{}, len(reservedSubdomains))
	for _, s := range reservedSubdomains {
		reserved[strings.ToLower(s)] = struct{}{}
	}

	return &Service{
		storage:        storage,
		rootDomain:     strings.ToLower(rootDomain),
		reserved:       reserved,
		inviteLifetime: inviteLifetime,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

func (s *Service) CreateTenant(ctx context.Context, name, subdomain string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	subdomain = strings.ToLower(subdomain)
	if !subdomainPattern.MatchString(subdomain) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubdomain, subdomain)
	}
	if _, reserved := s.reserved[subdomain]; reserved {
		return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidSubdomain, subdomain)
	}

	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{
		RootDomain: s.rootDomain,
		Subdomain:  subdomain,
		Name:       name,
		Active:     true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("provisioned tenant %s (%s.%s)", tenant.ID, tenant.Subdomain, tenant.RootDomain)
	return tenant, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) UpdateTenant(ctx context.Context, id string, patch TenantPatch) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var paths []string
	if patch.Name != nil {
		tenant.Name = *patch.Name
		paths = append(paths, "name")
	}
	if patch.CustomDomain != nil {
		tenant.CustomDomain = strings.ToLower(*patch.CustomDomain)
		paths = append(paths, "custom_domain")
	}
	if patch.Active != nil {
		tenant.Active = *patch.Active
		paths = append(paths, "active")
	}

	if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
		return nil, err
	}

	return tenant, nil
}

// SetTenantStatus soft deletes or revives a tenant. Memberships and teams
// are retained either way.
func (s *Service) SetTenantStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTenantStatus")
	defer span.End()

	if err := s.storage.SetTenantStatus(ctx, id, active); err != nil {
		return err
	}

	if !active {
		s.logger.Infof("deactivated tenant %s", id)
	}
	return nil
}

func (s *Service) AddMember(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddMember")
	defer span.End()

	if _, err := types.ParseRole(string(role)); err != nil {
		return nil, err
	}

	return s.storage.AddMember(ctx, tenantID, userID, role)
}

func (s *Service) UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateMemberRole")
	defer span.End()

	if _, err := types.ParseRole(string(role)); err != nil {
		return err
	}

	return s.storage.UpdateMemberRole(ctx, tenantID, userID, role)
}

// RemoveMember deletes the membership. Team role memberships and module
// assignments for it are cascaded by the schema.
func (s *Service) RemoveMember(ctx context.Context, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveMember")
	defer span.End()

	return s.storage.RemoveMember(ctx, tenantID, userID)
}

func (s *Service) ListMembers(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembersByTenantID(ctx, tenantID)
}

// ListTenantUsers returns the tenant's people view: established members
// first, then invites still waiting to be accepted.
func (s *Service) ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenantUsers")
	defer span.End()

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	invites, err := s.storage.ListInvitesByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	users := make([]*types.TenantUser, 0, len(members)+len(invites))
	for _, m := range members {
		users = append(users, &types.TenantUser{UserID: m.UserID, Role: m.Role})
	}
	now := time.Now()
	for _, i := range invites {
		if i.ExpiresAt.Before(now) {
			continue
		}
		users = append(users, &types.TenantUser{Email: i.Email, Role: i.Role, Pending: true})
	}

	return users, nil
}

func (s *Service) AssignModule(ctx context.Context, tenantID, userID string, module types.Module) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AssignModule")
	defer span.End()

	if _, err := types.ParseModule(string(module)); err != nil {
		return err
	}

	membership, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		return err
	}

	return s.storage.AssignModule(ctx, membership.ID, module)
}

func (s *Service) RevokeModule(ctx context.Context, tenantID, userID string, module types.Module) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RevokeModule")
	defer span.End()

	membership, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		return err
	}

	return s.storage.RevokeModule(ctx, membership.ID, module)
}

func (s *Service) ListMemberModules(ctx context.Context, tenantID, userID string) ([]types.Module, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMemberModules")
	defer span.End()

	membership, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	return s.storage.ListModulesForMembership(ctx, membership.ID)
}

func (s *Service) InviteMember(ctx context.Context, tenantID, email string, role types.Role) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.InviteMember")
	defer span.End()

	if _, err := types.ParseRole(string(role)); err != nil {
		return nil, err
	}

	invite, err := s.storage.CreateInvite(ctx, &types.Invite{
		Token:     uuid.NewString(),
		TenantID:  tenantID,
		Email:     strings.ToLower(email),
		Role:      role,
		ExpiresAt: time.Now().Add(s.inviteLifetime),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("invited %s to tenant %s as %s", invite.Email, tenantID, role)
	return invite, nil
}

// AcceptInvite converts an invite into a membership. Accepting twice, or
// accepting when a membership already exists, yields the existing
// membership rather than an error.
func (s *Service) AcceptInvite(ctx context.Context, token, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AcceptInvite")
	defer span.End()

	invite, err := s.storage.GetInviteByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if time.Now().After(invite.ExpiresAt) {
		if err := s.storage.DeleteInvite(ctx, invite.ID); err != nil {
			s.logger.Warnf("failed to clean up expired invite %s: %v", invite.ID, err)
		}
		return nil, ErrInviteExpired
	}

	membership, err := s.storage.AddMember(ctx, invite.TenantID, userID, invite.Role)
	if err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return nil, err
		}
		membership, err = s.storage.GetMembership(ctx, invite.TenantID, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.storage.DeleteInvite(ctx, invite.ID); err != nil {
		s.logger.Warnf("failed to delete accepted invite %s: %v", invite.ID, err)
	}

	return membership, nil
}
