// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kanbanly/workspace-service/internal/authorization"
	"github.com/kanbanly/workspace-service/internal/db"
	"github.com/kanbanly/workspace-service/internal/identity"
	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/mail"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/storage"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/pkg/activities"
	"github.com/kanbanly/workspace-service/pkg/board"
	"github.com/kanbanly/workspace-service/pkg/invitation"
	"github.com/kanbanly/workspace-service/pkg/metrics"
	"github.com/kanbanly/workspace-service/pkg/status"
	"github.com/kanbanly/workspace-service/pkg/workspace"
)

type RouterConfig struct {
	InvitationLifetime time.Duration
	CORSAllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	mailer mail.MailerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)

	router.Use(middlewares...)

	checker := authorization.NewChecker(s, tracer, monitor, logger)
	activitiesSvc := activities.NewService(s, checker, tracer, monitor, logger)
	workspaceSvc := workspace.NewService(s, checker, activitiesSvc, dbClient, tracer, monitor, logger)
	invitationSvc := invitation.NewService(s, checker, activitiesSvc, dbClient, mailer, cfg.InvitationLifetime, tracer, monitor, logger)
	boardSvc := board.NewService(s, checker, activitiesSvc, dbClient, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	workspace.NewAPI(workspaceSvc, tracer, logger).RegisterEndpoints(router)
	invitation.NewAPI(invitationSvc, tracer, logger).RegisterEndpoints(router)
	board.NewAPI(boardSvc, tracer, logger).RegisterEndpoints(router)
	activities.NewAPI(activitiesSvc, tracer, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{
				"Accept",
				"Content-Type",
				identity.UserIDHeader,
				identity.EmailHeader,
				identity.UsernameHeader,
			},
			MaxAge: 300,
		},
	)
}
