// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kanbanly/workspace-service/internal/authorization"
	httpTypes "github.com/kanbanly/workspace-service/internal/http/types"
	"github.com/kanbanly/workspace-service/internal/identity"
	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/workspaces/{id}/activities", a.list)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "activities.API.list")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	entries, err := a.service.ListByWorkspace(ctx, chi.URLParam(r, "id"), user.ID, page, size)
	if err != nil {
		switch {
		case errors.Is(err, authorization.ErrNotMember):
			httpTypes.WriteError(w, http.StatusNotFound, err.Error())
		default:
			a.logger.Errorf("activity request failed: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   entries,
		Status: http.StatusOK,
	})
}
