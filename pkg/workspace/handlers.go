// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/kanbanly/workspace-service/internal/authorization"
	httpTypes "github.com/kanbanly/workspace-service/internal/http/types"
	"github.com/kanbanly/workspace-service/internal/identity"
	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/storage"
	"github.com/kanbanly/workspace-service/internal/tracing"
)

type CreateWorkspaceRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateWorkspaceRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type API struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())
	a.tracer = tracer
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/workspaces", a.create)
	mux.Get("/api/v1/workspaces", a.list)
	mux.Get("/api/v1/workspaces/{id}", a.get)
	mux.Patch("/api/v1/workspaces/{id}", a.update)
	mux.Delete("/api/v1/workspaces/{id}", a.delete)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.create")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := a.service.Create(ctx, user, req.Name, req.Description)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, httpTypes.Response{
		Data:   created,
		Status: http.StatusCreated,
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.list")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	summaries, err := a.service.List(ctx, user.ID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   summaries,
		Status: http.StatusOK,
	})
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.get")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	detail, err := a.service.Get(ctx, chi.URLParam(r, "id"), user.ID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   detail,
		Status: http.StatusOK,
	})
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.update")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := a.service.Update(ctx, user, chi.URLParam(r, "id"), UpdateRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   updated,
		Status: http.StatusOK,
	})
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.delete")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := a.service.Delete(ctx, user, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Message: "workspace deleted",
		Status:  http.StatusOK,
	})
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrWorkspaceLimit):
		httpTypes.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrDuplicateName):
		httpTypes.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, authorization.ErrNotMember), errors.Is(err, ErrNotFound), errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteError(w, http.StatusNotFound, "workspace not found")
	case errors.Is(err, authorization.ErrInsufficientRole):
		httpTypes.WriteError(w, http.StatusForbidden, err.Error())
	default:
		a.logger.Errorf("workspace request failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
