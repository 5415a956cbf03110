// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package board

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
	"github.com/kanbanly/workspace-service/internal/tracing"
	"github.com/kanbanly/workspace-service/internal/types"
)

type CreateBoardRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	Visibility  string `json:"visibility" validate:"omitempty,oneof=PUBLIC WORKSPACE PRIVATE"`
}

type UpdateBoardRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Visibility  *string `json:"visibility" validate:"omitempty,oneof=PUBLIC WORKSPACE PRIVATE"`
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
	mux.Post("/api/v1/workspaces/{id}/boards", a.create)
	mux.Get("/api/v1/workspaces/{id}/boards", a.list)
	mux.Get("/api/v1/boards/{id}", a.get)
	mux.Patch("/api/v1/boards/{id}", a.update)
	mux.Delete("/api/v1/boards/{id}", a.delete)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "board.API.create")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := a.service.Create(ctx, user, chi.URLParam(r, "id"), CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Visibility:  types.BoardVisibility(req.Visibility),
	})
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
	ctx, span := a.tracer.Start(r.Context(), "board.API.list")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	boards, err := a.service.ListInWorkspace(ctx, user.ID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   boards,
		Status: http.StatusOK,
	})
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "board.API.get")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	board, err := a.service.Get(ctx, user.ID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   board,
		Status: http.StatusOK,
	})
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "board.API.update")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := UpdateRequest{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if req.Visibility != nil {
		v := types.BoardVisibility(*req.Visibility)
		update.Visibility = &v
	}

	updated, err := a.service.Update(ctx, user, chi.URLParam(r, "id"), update)
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
	ctx, span := a.tracer.Start(r.Context(), "board.API.delete")
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
		Message: "board deleted",
		Status:  http.StatusOK,
	})
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrBoardNotFound), errors.Is(err, authorization.ErrNotMember):
		httpTypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, authorization.ErrAccessDenied), errors.Is(err, authorization.ErrInsufficientRole), errors.Is(err, ErrBoardLimit):
		httpTypes.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidVisibility):
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("board request failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
