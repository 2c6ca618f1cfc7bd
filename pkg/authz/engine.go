// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authz implements the tenant resolution and authorization
// decision procedure. The engine is stateless and safe for unbounded
// concurrent use; every lookup is bounded by a timeout and every failure
// short circuits closed.
package authz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hi5tech/access-service/internal/hostname"
	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/storage"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
)

type Engine struct {
	resolver HostResolverInterface
	store    StoreInterface

	lookupTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewEngine(
	resolver HostResolverInterface,
	store StoreInterface,
	lookupTimeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Engine {
	return &Engine{
		resolver:      resolver,
		store:         store,
		lookupTimeout: lookupTimeout,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// Authorize runs the decision procedure for one request. Denials are
// returned as Decision values; a non-nil error means a backing store
// failure and the caller must fail closed without treating it as a
// legitimate deny.
func (e *Engine) Authorize(ctx context.Context, host, userID string, req Requirement) (Decision, error) {
	ctx, span := e.tracer.Start(ctx, "authz.Engine.Authorize")
	defer span.End()

	// no tenant context, no identity checks: an unresolved host learns
	// nothing about which users or tenants exist
	key := e.resolver.Resolve(host)
	if key.Kind == hostname.KindUnresolved {
		return Deny(DenyNoTenant), nil
	}

	tenant, err := e.findTenant(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Deny(DenyNoTenant), nil
		}
		return Decision{}, fmt.Errorf("tenant lookup failed: %w", err)
	}

	membership, err := e.findMembership(ctx, tenant.ID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			e.logger.Security().AuthzFailure(userID, "tenant_access")
			return Deny(DenyNoMembership), nil
		}
		return Decision{}, fmt.Errorf("membership lookup failed: %w", err)
	}

	if min := req.MinRole(); min != "" && !membership.Role.AtLeast(min) {
		e.logger.Security().AuthzFailure(userID, "role_requirement")
		return Deny(DenyInsufficientRole), nil
	}

	if req.Module() == "" {
		return Allow(tenant, membership, nil), nil
	}

	// module entitlement and scope resolution only depend on the
	// membership, so they run concurrently
	var hasModule bool
	var scopes types.ScopeSet

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hasModule, err = e.hasModuleAssignment(gctx, membership.ID, req.Module())
		if err != nil {
			return fmt.Errorf("module entitlement lookup failed: %w", err)
		}
		return nil
	})
	if len(req.Scopes()) > 0 {
		g.Go(func() error {
			var err error
			scopes, err = e.effectiveScopes(gctx, membership.ID, tenant.ID, req.Module())
			if err != nil {
				return fmt.Errorf("scope resolution failed: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Decision{}, err
	}

	if !hasModule {
		e.logger.Security().AuthzFailure(userID, "module_entitlement")
		return Deny(DenyModuleNotAssigned), nil
	}

	if required := req.Scopes(); len(required) > 0 && !scopes.ContainsAll(required) {
		e.logger.Security().AuthzFailure(userID, "scope_requirement")
		return Deny(DenyMissingScopes), nil
	}

	return Allow(tenant, membership, scopes), nil
}

func (e *Engine) findTenant(ctx context.Context, key hostname.HostKey) (*types.Tenant, error) {
	ctx, cancel := e.boundLookup(ctx)
	defer cancel()
	return e.store.FindTenantByHost(ctx, key)
}

func (e *Engine) findMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, cancel := e.boundLookup(ctx)
	defer cancel()
	return e.store.GetMembership(ctx, tenantID, userID)
}

func (e *Engine) hasModuleAssignment(ctx context.Context, membershipID string, module types.Module) (bool, error) {
	ctx, cancel := e.boundLookup(ctx)
	defer cancel()
	return e.store.HasModuleAssignment(ctx, membershipID, module)
}

func (e *Engine) effectiveScopes(ctx context.Context, membershipID, tenantID string, module types.Module) (types.ScopeSet, error) {
	ctx, cancel := e.boundLookup(ctx)
	defer cancel()
	return e.store.EffectiveScopesAcrossTenant(ctx, membershipID, tenantID, module)
}

// boundLookup derives the per-lookup deadline. A timed out lookup surfaces
// as a store error, never as a deny.
func (e *Engine) boundLookup(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.lookupTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.lookupTimeout)
}
