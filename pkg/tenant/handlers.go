// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/storage"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
	"github.com/hi5tech/access-service/pkg/authentication"
	"github.com/hi5tech/access-service/pkg/guard"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints registers the platform level tenant API. These routes
// carry no tenant context of their own and are expected to sit behind
// bearer token authentication.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/api/v0/tenants", a.createTenant)
	r.Get("/api/v0/tenants", a.listTenants)
	r.Get("/api/v0/tenants/{id}", a.getTenant)
	r.Patch("/api/v0/tenants/{id}", a.updateTenant)
	r.Put("/api/v0/tenants/{id}/status", a.setTenantStatus)
	r.Post("/api/v0/invites/accept", a.acceptInvite)
}

// RegisterSelfEndpoints registers the member facing routes. The mounting
// router wraps them with guard.Protect using a membership-only
// requirement.
func (a *API) RegisterSelfEndpoints(r chi.Router) {
	r.Get("/", a.me)
}

// RegisterTenantEndpoints registers the tenant scoped administration API.
// The router mounting these is expected to wrap them with guard.Protect,
// which is where the tenant in the request context comes from.
func (a *API) RegisterTenantEndpoints(r chi.Router) {
	r.Get("/members", a.listMembers)
	r.Get("/users", a.listTenantUsers)
	r.Post("/members", a.addMember)
	r.Put("/members/{userID}/role", a.updateMemberRole)
	r.Delete("/members/{userID}", a.removeMember)
	r.Get("/members/{userID}/modules", a.listMemberModules)
	r.Post("/members/{userID}/modules", a.assignModule)
	r.Delete("/members/{userID}/modules/{module}", a.revokeModule)
	r.Post("/invites", a.inviteMember)
}

type createTenantRequest struct {
	Name      string `json:"name" validate:"required"`
	Subdomain string `json:"subdomain" validate:"required,hostname_rfc1123"`
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.createTenant")
	defer span.End()

	var req createTenantRequest
	if !a.decode(w, r, &req) {
		return
	}

	tenant, err := a.service.CreateTenant(ctx, req.Name, req.Subdomain)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, tenant)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenants")
	defer span.End()

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, tenants)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenant")
	defer span.End()

	tenant, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, tenant)
}

type updateTenantRequest struct {
	Name         *string `json:"name"`
	CustomDomain *string `json:"custom_domain" validate:"omitempty,fqdn"`
	Active       *bool   `json:"active"`
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateTenant")
	defer span.End()

	var req updateTenantRequest
	if !a.decode(w, r, &req) {
		return
	}

	tenant, err := a.service.UpdateTenant(ctx, chi.URLParam(r, "id"), TenantPatch{
		Name:         req.Name,
		CustomDomain: req.CustomDomain,
		Active:       req.Active,
	})
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, tenant)
}

type setTenantStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

func (a *API) setTenantStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setTenantStatus")
	defer span.End()

	var req setTenantStatusRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.SetTenantStatus(ctx, chi.URLParam(r, "id"), *req.Active); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type acceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}

func (a *API) acceptInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.acceptInvite")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req acceptInviteRequest
	if !a.decode(w, r, &req) {
		return
	}

	membership, err := a.service.AcceptInvite(ctx, req.Token, userID)
	if err != nil {
		if errors.Is(err, ErrInviteExpired) {
			a.writeError(w, http.StatusGone, "invite has expired")
			return
		}
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, membership)
}

// me returns the caller's own standing within the resolved tenant.
func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.me")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	modules, err := a.service.ListMemberModules(ctx, ac.Tenant.ID, ac.Membership.UserID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"tenant":     ac.Tenant,
		"membership": ac.Membership,
		"modules":    modules,
	})
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMembers")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	members, err := a.service.ListMembers(ctx, ac.Tenant.ID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, members)
}

// listTenantUsers is the directory view: established memberships merged
// with invites that have not been accepted yet.
func (a *API) listTenantUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenantUsers")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	users, err := a.service.ListTenantUsers(ctx, ac.Tenant.ID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, users)
}

type addMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.addMember")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req addMemberRequest
	if !a.decode(w, r, &req) {
		return
	}

	membership, err := a.service.AddMember(ctx, ac.Tenant.ID, req.UserID, types.Role(req.Role))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, membership)
}

type updateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (a *API) updateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateMemberRole")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req updateMemberRoleRequest
	if !a.decode(w, r, &req) {
		return
	}

	err := a.service.UpdateMemberRole(ctx, ac.Tenant.ID, chi.URLParam(r, "userID"), types.Role(req.Role))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.removeMember")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := a.service.RemoveMember(ctx, ac.Tenant.ID, chi.URLParam(r, "userID")); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listMemberModules(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMemberModules")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	modules, err := a.service.ListMemberModules(ctx, ac.Tenant.ID, chi.URLParam(r, "userID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, modules)
}

type assignModuleRequest struct {
	Module string `json:"module" validate:"required"`
}

func (a *API) assignModule(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.assignModule")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req assignModuleRequest
	if !a.decode(w, r, &req) {
		return
	}

	err := a.service.AssignModule(ctx, ac.Tenant.ID, chi.URLParam(r, "userID"), types.Module(req.Module))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) revokeModule(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.revokeModule")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	err := a.service.RevokeModule(ctx, ac.Tenant.ID, chi.URLParam(r, "userID"), types.Module(chi.URLParam(r, "module")))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type inviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

func (a *API) inviteMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.inviteMember")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req inviteMemberRequest
	if !a.decode(w, r, &req) {
		return
	}

	invite, err := a.service.InviteMember(ctx, ac.Tenant.ID, req.Email, types.Role(req.Role))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, invite)
}

// decode unmarshals and validates a JSON request body, answering the
// request itself when either step fails.
func (a *API) decode(w http.ResponseWriter, r *http.Request, into interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := a.validate.Struct(into); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, ErrInvalidSubdomain):
		a.writeError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("request failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, code int, message string) {
	a.writeJSON(w, code, map[string]interface{}{
		"status":  code,
		"message": message,
	})
}
