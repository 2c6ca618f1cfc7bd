// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/storage"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
	"github.com/hi5tech/access-service/pkg/authentication"
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
	api.RegisterEndpoints(mux)
	mux.Route("/api/v0/tenant", func(r chi.Router) {
		api.RegisterTenantEndpoints(r)
	})
	return mockService, mux
}

func TestCreateTenantEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "valid request",
			body: `{"name": "Acme Corp", "subdomain": "acme"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateTenant(gomock.Any(), "Acme Corp", "acme").Return(
					&types.Tenant{ID: "tenant-1", Subdomain: "acme", Name: "Acme Corp", Active: true}, nil,
				)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing subdomain",
			body:         `{"name": "Acme Corp"}`,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			body:         `{"name":`,
			setupMocks:   func(m *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "duplicate subdomain",
			body: `{"name": "Acme Corp", "subdomain": "acme"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateTenant(gomock.Any(), "Acme Corp", "acme").Return(nil, storage.ErrDuplicateKey)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, mux := setupAPITest(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAcceptInviteRequiresAuthentication(t *testing.T) {
	_, mux := setupAPITest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/invites/accept", strings.NewReader(`{"token": "tok"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAcceptInviteEndpoint(t *testing.T) {
	mockService, mux := setupAPITest(t)

	mockService.EXPECT().AcceptInvite(gomock.Any(), "tok", "user-1").Return(
		&types.Membership{ID: "member-1", TenantID: "tenant-1", UserID: "user-1", Role: types.RoleUser}, nil,
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/invites/accept", strings.NewReader(`{"token": "tok"}`))
	req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "member-1") {
		t.Errorf("expected membership in response, got %s", rr.Body.String())
	}
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

func TestListMembersEndpoint(t *testing.T) {
	mockService, mux := setupAPITest(t)

	mockService.EXPECT().ListMembers(gomock.Any(), "tenant-1").Return(
		[]*types.Membership{
			{ID: "member-1", TenantID: "tenant-1", UserID: "user-1", Role: types.RoleOwner},
			{ID: "member-2", TenantID: "tenant-1", UserID: "user-2", Role: types.RoleViewer},
		}, nil,
	)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodGet, "/api/v0/tenant/members", ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "user-2") {
		t.Fatalf("expected member user ids in body: %s", rr.Body.String())
	}
}

func TestListTenantUsersEndpoint(t *testing.T) {
	mockService, mux := setupAPITest(t)

	mockService.EXPECT().ListTenantUsers(gomock.Any(), "tenant-1").Return(
		[]*types.TenantUser{
			{UserID: "user-1", Role: types.RoleOwner},
			{Email: "invited@example.com", Role: types.RoleUser, Pending: true},
		}, nil,
	)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, tenantRequest(http.MethodGet, "/api/v0/tenant/users", ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "invited@example.com") {
		t.Fatalf("expected pending invite in body: %s", rr.Body.String())
	}
}

func TestTenantScopedRoutesRequireGuardContext(t *testing.T) {
	_, mux := setupAPITest(t)

	// mounted without guard.Protect there is no tenant in the context
	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenant/members", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}
