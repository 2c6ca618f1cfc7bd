// Copyright 2026 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package guard turns authorization decisions into HTTP semantics. A
// route wrapped by Protect either runs with a populated AuthContext or
// is answered here, without the handler ever seeing the request.
package guard

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/pkg/authentication"
	"github.com/hi5tech/access-service/pkg/authz"
)

type Middleware struct {
	engine      authz.EngineInterface
	landingPath string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	engine authz.EngineInterface,
	landingPath string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		engine:      engine,
		landingPath: landingPath,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// Protect authorizes every request against the requirement before it
// reaches the next handler. An unresolvable tenant is reported as 404 so
// probing hosts cannot tell a denied tenant from a missing one; other
// denials become 403 for API clients or a redirect to the landing page
// for browser navigations. Store failures are 503, never a silent allow.
func (m *Middleware) Protect(req authz.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "guard.Middleware.Protect")
			defer span.End()

			userID, _ := authentication.GetUserID(ctx)

			decision, err := m.engine.Authorize(ctx, r.Host, userID, req)
			if err != nil {
				m.logger.Errorf("authorization check failed for host %s: %v", r.Host, err)
				m.jsonError(w, http.StatusServiceUnavailable, "service unavailable")
				return
			}

			if !decision.Allowed {
				m.deny(w, r, userID, decision)
				return
			}

			ctx = WithAuthContext(ctx, &AuthContext{
				Tenant:     decision.Tenant,
				Membership: decision.Membership,
				Scopes:     decision.Scopes,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) deny(w http.ResponseWriter, r *http.Request, userID string, decision authz.Decision) {
	m.logger.Debugf("denied %s %s: %s", r.Method, r.URL.Path, decision.Reason)
	m.logger.Security().AuthzFailure(userID, r.Method+" "+r.URL.Path)

	if decision.Reason == authz.DenyNoTenant {
		// deny reason is never surfaced to the client
		m.jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if isBrowserNavigation(r) {
		http.Redirect(w, r, m.landingPath, http.StatusSeeOther)
		return
	}

	m.jsonError(w, http.StatusForbidden, "forbidden")
}

func (m *Middleware) jsonError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  code,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

// isBrowserNavigation distinguishes a person following a link from an API
// client, so denials can land on the tenant picker instead of raw JSON.
func isBrowserNavigation(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
