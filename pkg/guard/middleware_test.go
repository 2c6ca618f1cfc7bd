// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
	"github.com/hi5tech/access-service/pkg/authentication"
	"github.com/hi5tech/access-service/pkg/authz"
)

const landingPath = "/portal"

func newMiddleware(engine authz.EngineInterface) *Middleware {
	return NewMiddleware(
		engine,
		landingPath,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestProtect(t *testing.T) {
	requirement := authz.MustRequirement(
		authz.WithModule(types.ModuleITSM),
		authz.WithScopes("incidents.view"),
	)

	tenant := &types.Tenant{ID: "tenant-1", Subdomain: "acme"}
	membership := &types.Membership{ID: "member-1", TenantID: "tenant-1", UserID: "user-1", Role: types.RoleAgent}

	tests := []struct {
		name             string
		method           string
		accept           string
		decision         authz.Decision
		engineErr        error
		expectedCode     int
		expectedLocation string
		expectNextCalled bool
	}{
		{
			name:             "allow passes through with auth context",
			method:           http.MethodGet,
			decision:         authz.Allow(tenant, membership, types.NewScopeSet("incidents.view")),
			expectedCode:     http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:         "unresolvable tenant looks like a missing page",
			method:       http.MethodGet,
			decision:     authz.Deny(authz.DenyNoTenant),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "no membership denied as forbidden for API clients",
			method:       http.MethodGet,
			decision:     authz.Deny(authz.DenyNoMembership),
			expectedCode: http.StatusForbidden,
		},
		{
			name:             "browser navigation redirected to landing page",
			method:           http.MethodGet,
			accept:           "text/html,application/xhtml+xml",
			decision:         authz.Deny(authz.DenyModuleNotAssigned),
			expectedCode:     http.StatusSeeOther,
			expectedLocation: landingPath,
		},
		{
			name:         "browser POST still gets forbidden, not a redirect",
			method:       http.MethodPost,
			accept:       "text/html",
			decision:     authz.Deny(authz.DenyMissingScopes),
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "store failure is unavailable, never an allow",
			method:       http.MethodGet,
			engineErr:    errors.New("connection refused"),
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockEngine := authz.NewMockEngineInterface(ctrl)
			mockEngine.EXPECT().
				Authorize(gomock.Any(), "acme.hi5tech.co.uk", "user-1", requirement).
				Return(tt.decision, tt.engineErr)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				ac, ok := AuthContextFrom(r.Context())
				if !ok {
					t.Error("expected auth context on allowed request")
				} else if ac.Tenant.ID != "tenant-1" || ac.Membership.ID != "member-1" {
					t.Errorf("unexpected auth context: %+v", ac)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "http://acme.hi5tech.co.uk/itsm/incidents", nil)
			req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rr := httptest.NewRecorder()

			newMiddleware(mockEngine).Protect(requirement)(next).ServeHTTP(rr, req)

			if rr.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, rr.Code)
			}
			if nextCalled != tt.expectNextCalled {
				t.Errorf("next handler called = %v, want %v", nextCalled, tt.expectNextCalled)
			}
			if tt.expectedLocation != "" && rr.Header().Get("Location") != tt.expectedLocation {
				t.Errorf("expected redirect to %s, got %s", tt.expectedLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestAuthContextFromMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := AuthContextFrom(req.Context()); ok {
		t.Error("expected no auth context on a bare request")
	}
}
