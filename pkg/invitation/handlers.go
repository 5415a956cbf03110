// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

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
)

type IssueBatchRequest struct {
	Invitations []BatchEntry `json:"invitations" validate:"required,min=1,max=50,dive"`
}

type AcceptRequest struct {
	Token string `json:"token" validate:"required,len=64,hexadecimal"`
}

// ConflictResponse enumerates every conflicting email in a rejected
// batch so the caller can fix the whole request in one round trip.
type ConflictResponse struct {
	Status         int      `json:"status"`
	Message        string   `json:"message"`
	AlreadyMember  []string `json:"alreadyMember,omitempty"`
	AlreadyInvited []string `json:"alreadyInvited,omitempty"`
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
	mux.Post("/api/v1/workspaces/{id}/invitations", a.issueBatch)
	mux.Get("/api/v1/workspaces/{id}/invitations", a.list)
	mux.Delete("/api/v1/workspaces/{id}/invitations", a.cancelOrRemove)
	mux.Post("/api/v1/invitations/accept", a.accept)
	mux.Get("/api/v1/invitations/validate", a.validateToken)
}

func (a *API) issueBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.issueBatch")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req IssueBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.IssueBatch(ctx, user, chi.URLParam(r, "id"), req.Invitations)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, httpTypes.Response{
		Data:   result,
		Status: http.StatusCreated,
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.list")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	sortBy := ParseSort(r.URL.Query().Get("sort"))

	entries, err := a.service.ListAll(ctx, user, chi.URLParam(r, "id"), sortBy)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   entries,
		Status: http.StatusOK,
	})
}

func (a *API) cancelOrRemove(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.cancelOrRemove")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		httpTypes.WriteError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	if err := a.service.CancelOrRemove(ctx, user, chi.URLParam(r, "id"), email); err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Message: "invitation canceled or member removed",
		Status:  http.StatusOK,
	})
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.accept")
	defer span.End()

	user := identity.PrincipalFromContext(ctx)
	if user == nil {
		httpTypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := a.service.Accept(ctx, user, req.Token)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   member,
		Status: http.StatusOK,
	})
}

// validateToken is the one unauthenticated endpoint: invitees inspect
// their invitation before signing in.
func (a *API) validateToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.validateToken")
	defer span.End()

	token := r.URL.Query().Get("token")
	if token == "" {
		httpTypes.WriteError(w, http.StatusBadRequest, "token query parameter is required")
		return
	}

	info, err := a.service.ValidateToken(ctx, token)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, httpTypes.Response{
		Data:   info,
		Status: http.StatusOK,
	})
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		httpTypes.WriteJSON(w, http.StatusConflict, ConflictResponse{
			Status:         http.StatusConflict,
			Message:        conflict.Error(),
			AlreadyMember:  conflict.AlreadyMember,
			AlreadyInvited: conflict.AlreadyInvited,
		})
		return
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoTarget), errors.Is(err, authorization.ErrNotMember):
		httpTypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrExpired):
		httpTypes.WriteError(w, http.StatusGone, err.Error())
	case errors.Is(err, ErrAlreadyUsed), errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrSelfRemoval), errors.Is(err, ErrOwnerRole):
		httpTypes.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrEmailMismatch), errors.Is(err, authorization.ErrInsufficientRole):
		httpTypes.WriteError(w, http.StatusForbidden, err.Error())
	default:
		a.logger.Errorf("invitation request failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
