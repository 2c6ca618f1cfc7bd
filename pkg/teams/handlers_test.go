// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
	"github.com/hi5tech/access-service/pkg/guard"
)

func setupAPITest(t *testing.T) (*MockServiceInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)
	mockService := NewMockServiceInterface(ctrl)

	api := NewAPI(
		mockService,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	mux.Route("/api/v0/tenant", func(r chi.Router) {
		api.RegisterTenantEndpoints(r)
	})
	return mockService, mux
}

func tenantRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ac := &guard.AuthContext{
		Tenant:     &types.Tenant{ID: "tenant-1", Subdomain: "acme"},
		Membership: &types.Membership{ID: "member-1", TenantID: "tenant-1", Role: types.RoleAdmin},
	}
	return req.WithContext(guard.WithAuthContext(req.Context(), ac))
}

func TestCreateTeamEndpoint(t *testing.T) {
	mockService, mux := setupAPITest(t)

	mockService.EXPECT().CreateTeam(
		gomock.Any(), "tenant-1", "service-desk", "Service Desk",
		[]types.Module{types.ModuleITSM}, true,
	).Return(&types.Team{ID: "team-1", TenantID: "tenant-1", Key: "service-desk"}, nil)

	body := `{"key": "service-desk", "name": "Service Desk", "modules": ["itsm"], "default_triage": true}`
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodPost, "/api/v0/tenant/teams", body))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestCreateTeamEndpointValidation(t *testing.T) {
	_, mux := setupAPITest(t)

	// modules list must be non-empty
	body := `{"key": "service-desk", "name": "Service Desk", "modules": []}`
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodPost, "/api/v0/tenant/teams", body))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestListTeamsEndpointRequiresModule(t *testing.T) {
	_, mux := setupAPITest(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodGet, "/api/v0/tenant/teams", ""))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d for missing module filter, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestUpdateRoleScopesEndpoint(t *testing.T) {
	mockService, mux := setupAPITest(t)

	mockService.EXPECT().UpdateRoleScopes(
		gomock.Any(), "tenant-1", "team-1", types.TeamRoleViewer,
		types.NewScopeSet("incidents.view", "kb.view"),
	).Return(nil)

	body := `{"scopes": ["incidents.view", "kb.view"]}`
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodPut, "/api/v0/tenant/teams/team-1/roles/viewer/scopes", body))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestUpdateRoleScopesEndpointUnknownKey(t *testing.T) {
	_, mux := setupAPITest(t)

	body := `{"scopes": ["incidents.view"]}`
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodPut, "/api/v0/tenant/teams/team-1/roles/boss/scopes", body))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d for unknown role key, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAssignTeamRoleEndpoint(t *testing.T) {
	mockService, mux := setupAPITest(t)

	mockService.EXPECT().AssignTeamRole(
		gomock.Any(), "tenant-1", "team-1", "member-2", types.TeamRoleAgent,
	).Return(nil)

	body := `{"role_key": "agent"}`
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodPut, "/api/v0/tenant/teams/team-1/members/member-2", body))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestMemberScopesEndpoint(t *testing.T) {
	mockService, mux := setupAPITest(t)

	mockService.EXPECT().MemberScopes(
		gomock.Any(), "tenant-1", "member-2", types.ModuleITSM,
	).Return(types.NewScopeSet(ScopeIncidentsView), nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodGet, "/api/v0/tenant/memberships/member-2/scopes?module=itsm", ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), ScopeIncidentsView) {
		t.Fatalf("expected scope %q in body: %s", ScopeIncidentsView, rr.Body.String())
	}
}

func TestMemberScopesEndpointRequiresModule(t *testing.T) {
	_, mux := setupAPITest(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodGet, "/api/v0/tenant/memberships/member-2/scopes", ""))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestTeamEndpointsWithoutGuardContext(t *testing.T) {
	_, mux := setupAPITest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenant/teams?module=itsm", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}
