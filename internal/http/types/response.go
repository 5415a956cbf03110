// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types holds the JSON envelope shared by every HTTP endpoint.
package types

import (
	"encoding/json"
	"net/http"
)

// Response is the standard success envelope.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{
		Status:  status,
		Message: message,
	})
}
