// Copyright 2025 Hi5Tech Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hi5tech/access-service/internal/db"
	"github.com/hi5tech/access-service/internal/logging"
	"github.com/hi5tech/access-service/internal/monitoring"
	"github.com/hi5tech/access-service/internal/tracing"
	"github.com/hi5tech/access-service/internal/types"
	"github.com/hi5tech/access-service/pkg/authz"
	"github.com/hi5tech/access-service/pkg/guard"
	"github.com/hi5tech/access-service/pkg/metrics"
	"github.com/hi5tech/access-service/pkg/status"
	"github.com/hi5tech/access-service/pkg/teams"
	"github.com/hi5tech/access-service/pkg/tenant"
)

func NewRouter(
	engine authz.EngineInterface,
	tenantService tenant.ServiceInterface,
	teamService teams.ServiceInterface,
	dbClient db.DBClientInterface,
	authenticate func(http.Handler) http.Handler,
	landingPath string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	tenantAPI := tenant.NewAPI(tenantService, tracer, monitor, logger)
	teamsAPI := teams.NewAPI(teamService, tracer, monitor, logger)
	guards := guard.NewMiddleware(engine, landingPath, tracer, monitor, logger)

	// tenant administration needs a privileged membership on the
	// resolved tenant host; reading your own standing needs any
	// membership at all
	adminRequired := authz.MustRequirement(authz.WithMinRole(types.RoleAdmin))
	memberRequired := authz.MustRequirement()

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(db.TransactionMiddleware(dbClient, logger))

		tenantAPI.RegisterEndpoints(r)

		r.Route("/api/v0/tenant", func(r chi.Router) {
			r.Use(guards.Protect(adminRequired))
			tenantAPI.RegisterTenantEndpoints(r)
			teamsAPI.RegisterTenantEndpoints(r)
		})

		r.Route("/api/v0/me", func(r chi.Router) {
			r.Use(guards.Protect(memberRequired))
			tenantAPI.RegisterSelfEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
