// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

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

// RegisterTenantEndpoints registers the team administration API. The
// mounting router wraps these with guard.Protect, which supplies the
// tenant in the request context.
func (a *API) RegisterTenantEndpoints(r chi.Router) {
	r.Get("/teams", a.listTeams)
	r.Post("/teams", a.createTeam)
	r.Get("/teams/{teamID}", a.getTeam)
	r.Get("/teams/{teamID}/roles", a.listTeamRoles)
	r.Put("/teams/{teamID}/roles/{key}/scopes", a.updateRoleScopes)
	r.Put("/teams/{teamID}/members/{membershipID}", a.assignTeamRole)
	r.Delete("/teams/{teamID}/members/{membershipID}", a.unassignTeamRole)
	r.Get("/teams/{teamID}/members/{membershipID}/scopes", a.teamMemberScopes)
	r.Get("/memberships/{membershipID}/scopes", a.memberScopes)
}

func (a *API) listTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.listTeams")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	module, err := types.ParseModule(r.URL.Query().Get("module"))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	teams, err := a.service.ListTeams(ctx, ac.Tenant.ID, module)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, teams)
}

type createTeamRequest struct {
	Key           string   `json:"key" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Modules       []string `json:"modules" validate:"required,min=1"`
	DefaultTriage bool     `json:"default_triage"`
}

func (a *API) createTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.createTeam")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req createTeamRequest
	if !a.decode(w, r, &req) {
		return
	}

	modules := make([]types.Module, len(req.Modules))
	for i, m := range req.Modules {
		modules[i] = types.Module(m)
	}

	team, err := a.service.CreateTeam(ctx, ac.Tenant.ID, req.Key, req.Name, modules, req.DefaultTriage)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, team)
}

func (a *API) getTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.getTeam")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	team, err := a.service.GetTeam(ctx, ac.Tenant.ID, chi.URLParam(r, "teamID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, team)
}

func (a *API) listTeamRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.listTeamRoles")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	roles, err := a.service.ListTeamRoles(ctx, ac.Tenant.ID, chi.URLParam(r, "teamID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, roles)
}

type updateRoleScopesRequest struct {
	Scopes []string `json:"scopes" validate:"required"`
}

func (a *API) updateRoleScopes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.updateRoleScopes")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	key, err := types.ParseTeamRoleKey(chi.URLParam(r, "key"))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateRoleScopesRequest
	if !a.decode(w, r, &req) {
		return
	}

	err = a.service.UpdateRoleScopes(ctx, ac.Tenant.ID, chi.URLParam(r, "teamID"), key, types.NewScopeSet(req.Scopes...))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type assignTeamRoleRequest struct {
	RoleKey string `json:"role_key" validate:"required"`
}

func (a *API) assignTeamRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.assignTeamRole")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req assignTeamRoleRequest
	if !a.decode(w, r, &req) {
		return
	}

	key, err := types.ParseTeamRoleKey(req.RoleKey)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = a.service.AssignTeamRole(ctx, ac.Tenant.ID, chi.URLParam(r, "teamID"), chi.URLParam(r, "membershipID"), key)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) unassignTeamRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.unassignTeamRole")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	err := a.service.UnassignTeamRole(ctx, ac.Tenant.ID, chi.URLParam(r, "teamID"), chi.URLParam(r, "membershipID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) teamMemberScopes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.teamMemberScopes")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	scopes, err := a.service.TeamMemberScopes(ctx, ac.Tenant.ID, chi.URLParam(r, "teamID"), chi.URLParam(r, "membershipID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{"scopes": scopes})
}

// memberScopes unions the membership's team role scopes for the module
// across every team of the tenant.
func (a *API) memberScopes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "teams.API.memberScopes")
	defer span.End()

	ac, ok := guard.AuthContextFrom(ctx)
	if !ok {
		a.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	module, err := types.ParseModule(r.URL.Query().Get("module"))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scopes, err := a.service.MemberScopes(ctx, ac.Tenant.ID, chi.URLParam(r, "membershipID"), module)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{"scopes": scopes})
}

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
	case errors.Is(err, ErrTenantMismatch):
		a.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrUnknownScope):
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
