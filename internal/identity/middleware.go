// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
)

// Authentication happens upstream; the gateway forwards the verified
// principal through these headers.
const (
	UserIDHeader   = "X-Authenticated-User-Id"
	EmailHeader    = "X-Authenticated-User-Email"
	UsernameHeader = "X-Authenticated-Username"
)

type principalContextKey struct{}

// PrincipalFromContext returns the authenticated user, or nil when the
// request carried no principal headers.
func PrincipalFromContext(ctx context.Context) *types.User {
	u, _ := ctx.Value(principalContextKey{}).(*types.User)
	return u
}

// ContextWithPrincipal attaches the authenticated user to the context.
// Exposed for handler tests.
func ContextWithPrincipal(ctx context.Context, u *types.User) context.Context {
	return context.WithValue(ctx, principalContextKey{}, u)
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(UserIDHeader)
		if userID != "" {
			ctx = ContextWithPrincipal(ctx, &types.User{
				ID:       userID,
				Email:    r.Header.Get(EmailHeader),
				Username: r.Header.Get(UsernameHeader),
			})
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
