// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/hi5tech/access-service/internal/hostname"
	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/storage"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authz -destination ./mock_authz.go -source=./interfaces.go

const (
	acmeHost = "acme.hi5tech.co.uk"
	userU    = "user-u"
)

var (
	acmeTenant = &types.Tenant{
		ID:         "tenant-acme",
		RootDomain: "hi5tech.co.uk",
		Subdomain:  "acme",
		Name:       "Acme Corp",
		Active:     true,
	}
	acmeKey = hostname.HostKey{
		Kind:       hostname.KindSubdomain,
		RootDomain: "hi5tech.co.uk",
		Subdomain:  "acme",
	}
	adminMembership = &types.Membership{
		ID:       "membership-1",
		TenantID: acmeTenant.ID,
		UserID:   userU,
		Role:     types.RoleAdmin,
	}
)

func newTestEngine(t *testing.T, store StoreInterface) *Engine {
	t.Helper()
	resolver := hostname.NewResolver("hi5tech.co.uk", []string{"www", "app"})
	return NewEngine(
		resolver,
		store,
		time.Second,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestAuthorize(t *testing.T) {
	storeErr := errors.New("connection refused")

	testCases := []struct {
		name       string
		host       string
		userID     string
		req        Requirement
		setupMocks func(*MockStoreInterface)
		wantAllow  bool
		wantReason DenyReason
		wantErr    error
	}{
		{
			name:       "reserved host short circuits before any lookup",
			host:       "www.hi5tech.co.uk",
			userID:     userU,
			req:        MustRequirement(),
			setupMocks: func(m *MockStoreInterface) {},
			wantReason: DenyNoTenant,
		},
		{
			name:       "apex host has no tenant context",
			host:       "hi5tech.co.uk",
			userID:     userU,
			req:        MustRequirement(),
			setupMocks: func(m *MockStoreInterface) {},
			wantReason: DenyNoTenant,
		},
		{
			name:   "unknown tenant",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(nil, storage.ErrNotFound)
			},
			wantReason: DenyNoTenant,
		},
		{
			name:   "no membership is the default deny",
			host:   acmeHost,
			userID: "stranger",
			req:    MustRequirement(),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, "stranger").Return(nil, storage.ErrNotFound)
			},
			wantReason: DenyNoMembership,
		},
		{
			name:   "plain membership check allows",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil)
			},
			wantAllow: true,
		},
		{
			name:   "admin satisfies admin minimum",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(WithMinRole(types.RoleAdmin)),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil)
			},
			wantAllow: true,
		},
		{
			name:   "admin does not satisfy owner minimum",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(WithMinRole(types.RoleOwner)),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil)
			},
			wantReason: DenyInsufficientRole,
		},
		{
			name:   "viewer does not satisfy admin minimum",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(WithMinRole(types.RoleAdmin)),
			setupMocks: func(m *MockStoreInterface) {
				viewer := &types.Membership{ID: "membership-2", TenantID: acmeTenant.ID, UserID: userU, Role: types.RoleViewer}
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(viewer, nil)
			},
			wantReason: DenyInsufficientRole,
		},
		{
			name:   "module assigned allows regardless of team scopes",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(WithModule(types.ModuleITSM)),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil)
				m.EXPECT().HasModuleAssignment(gomock.Any(), adminMembership.ID, types.ModuleITSM).Return(true, nil)
			},
			wantAllow: true,
		},
		{
			name:   "owner role grants no implicit module access",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(WithModule(types.ModuleControl)),
			setupMocks: func(m *MockStoreInterface) {
				owner := &types.Membership{ID: "membership-3", TenantID: acmeTenant.ID, UserID: userU, Role: types.RoleOwner}
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(owner, nil)
				m.EXPECT().HasModuleAssignment(gomock.Any(), "membership-3", types.ModuleControl).Return(false, nil)
			},
			wantReason: DenyModuleNotAssigned,
		},
		{
			name:   "required scopes present in union",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(WithModule(types.ModuleITSM), WithScopes("incidents.assign", "incidents.close")),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil)
				m.EXPECT().HasModuleAssignment(gomock.Any(), adminMembership.ID, types.ModuleITSM).Return(true, nil)
				m.EXPECT().EffectiveScopesAcrossTenant(gomock.Any(), adminMembership.ID, acmeTenant.ID, types.ModuleITSM).
					Return(types.NewScopeSet("incidents.assign", "incidents.close", "incidents.view"), nil)
			},
			wantAllow: true,
		},
		{
			name:   "missing scope denies even with module access",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(WithModule(types.ModuleITSM), WithScopes("incidents.assign")),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil)
				m.EXPECT().HasModuleAssignment(gomock.Any(), adminMembership.ID, types.ModuleITSM).Return(true, nil)
				m.EXPECT().EffectiveScopesAcrossTenant(gomock.Any(), adminMembership.ID, acmeTenant.ID, types.ModuleITSM).
					Return(types.NewScopeSet(), nil)
			},
			wantReason: DenyMissingScopes,
		},
		{
			name:   "tenant lookup failure is an error not a deny",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(nil, storeErr)
			},
			wantErr: storeErr,
		},
		{
			name:   "membership lookup failure is an error not a deny",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(nil, storeErr)
			},
			wantErr: storeErr,
		},
		{
			name:   "scope lookup failure is an error not a deny",
			host:   acmeHost,
			userID: userU,
			req:    MustRequirement(WithModule(types.ModuleITSM), WithScopes("incidents.assign")),
			setupMocks: func(m *MockStoreInterface) {
				m.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil)
				m.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil)
				m.EXPECT().HasModuleAssignment(gomock.Any(), adminMembership.ID, types.ModuleITSM).Return(true, nil).AnyTimes()
				m.EXPECT().EffectiveScopesAcrossTenant(gomock.Any(), adminMembership.ID, acmeTenant.ID, types.ModuleITSM).
					Return(nil, storeErr)
			},
			wantErr: storeErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStoreInterface(ctrl)
			tc.setupMocks(mockStore)

			e := newTestEngine(t, mockStore)
			decision, err := e.Authorize(context.Background(), tc.host, tc.userID, tc.req)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				if decision.Allowed {
					t.Error("store failure must never produce an Allow")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.Allowed != tc.wantAllow {
				t.Errorf("Allowed = %v, want %v", decision.Allowed, tc.wantAllow)
			}
			if !tc.wantAllow && decision.Reason != tc.wantReason {
				t.Errorf("Reason = %s, want %s", decision.Reason, tc.wantReason)
			}
			if tc.wantAllow && decision.Tenant == nil {
				t.Error("Allow must carry the resolved tenant")
			}
			if tc.wantAllow && decision.Membership == nil {
				t.Error("Allow must carry the resolved membership")
			}
		})
	}
}

// A membership in one tenant must never authorize against another
// tenant's host, whatever the requirement.
func TestAuthorizeTenantIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	globexKey := hostname.HostKey{Kind: hostname.KindSubdomain, RootDomain: "hi5tech.co.uk", Subdomain: "globex"}
	globexTenant := &types.Tenant{ID: "tenant-globex", RootDomain: "hi5tech.co.uk", Subdomain: "globex", Active: true}

	mockStore := NewMockStoreInterface(ctrl)
	mockStore.EXPECT().FindTenantByHost(gomock.Any(), globexKey).Return(globexTenant, nil)
	// userU holds a membership in acme only
	mockStore.EXPECT().GetMembership(gomock.Any(), globexTenant.ID, userU).Return(nil, storage.ErrNotFound)

	e := newTestEngine(t, mockStore)
	decision, err := e.Authorize(context.Background(), "globex.hi5tech.co.uk", userU, MustRequirement())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Allowed {
		t.Fatal("cross-tenant request must not be allowed")
	}
	if decision.Reason != DenyNoMembership {
		t.Errorf("Reason = %s, want %s", decision.Reason, DenyNoMembership)
	}
}

// A deactivated tenant resolves exactly like one that never existed.
func TestAuthorizeInactiveTenantIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStoreInterface(ctrl)
	// the directory filters inactive rows, so both cases surface as ErrNotFound
	mockStore.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(nil, storage.ErrNotFound).Times(2)

	e := newTestEngine(t, mockStore)

	deactivated, err := e.Authorize(context.Background(), acmeHost, userU, MustRequirement())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	missing, err := e.Authorize(context.Background(), acmeHost, userU, MustRequirement())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(deactivated, missing) {
		t.Errorf("decisions differ: %+v vs %+v", deactivated, missing)
	}
	if deactivated.Reason != DenyNoTenant {
		t.Errorf("Reason = %s, want %s", deactivated.Reason, DenyNoTenant)
	}
}

// Repeated calls with unchanged backing state return identical decisions.
func TestAuthorizeIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStoreInterface(ctrl)
	mockStore.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil).Times(3)
	mockStore.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil).Times(3)
	mockStore.EXPECT().HasModuleAssignment(gomock.Any(), adminMembership.ID, types.ModuleITSM).Return(true, nil).Times(3)

	e := newTestEngine(t, mockStore)
	req := MustRequirement(WithModule(types.ModuleITSM))

	first, err := e.Authorize(context.Background(), acmeHost, userU, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		next, err := e.Authorize(context.Background(), acmeHost, userU, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Allowed != first.Allowed || next.Reason != first.Reason {
			t.Errorf("decision changed between identical calls: %+v vs %+v", first, next)
		}
	}
}

// The concrete scenario from the product: admin membership, itsm assigned,
// no team memberships.
func TestAuthorizeScenarioAcme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStoreInterface(ctrl)
	mockStore.EXPECT().FindTenantByHost(gomock.Any(), acmeKey).Return(acmeTenant, nil).Times(2)
	mockStore.EXPECT().GetMembership(gomock.Any(), acmeTenant.ID, userU).Return(adminMembership, nil).Times(2)
	mockStore.EXPECT().HasModuleAssignment(gomock.Any(), adminMembership.ID, types.ModuleITSM).Return(true, nil).Times(2)
	mockStore.EXPECT().EffectiveScopesAcrossTenant(gomock.Any(), adminMembership.ID, acmeTenant.ID, types.ModuleITSM).
		Return(types.NewScopeSet(), nil)

	e := newTestEngine(t, mockStore)

	decision, err := e.Authorize(context.Background(), acmeHost, userU, MustRequirement(WithModule(types.ModuleITSM)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Errorf("expected Allow, got %s", decision.Reason)
	}

	decision, err = e.Authorize(context.Background(), acmeHost, userU,
		MustRequirement(WithModule(types.ModuleITSM), WithScopes("incidents.assign")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Allowed || decision.Reason != DenyMissingScopes {
		t.Errorf("expected Deny(missing_scopes), got %+v", decision)
	}
}
