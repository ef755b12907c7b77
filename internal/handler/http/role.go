// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) assignRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, "assigned")
}

func (h *Handler) revokeRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, "revoked")
}

// changeRole is the shared body of the role assign/revoke endpoints. Both
// decode the same payload and require a superuser actor; only the service
// call differs.
func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request, action string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.RoleChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	var err error
	switch action {
	case "assigned":
		err = h.services.RoleService.Assign(ctx, actor, req)
	case "revoked":
		err = h.services.RoleService.Revoke(ctx, actor, req)
	}

	if err != nil {
		log.Err(err).Str("action", action).Str("role", req.RoleName).Str("user", req.UserLogin).Msg("role change rejected")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Info().Str("action", action).Str("role", req.RoleName).Str("user", req.UserLogin).Msg("role changed")

	utils.WriteJSON(w, models.MessageResponse{Msg: "role " + req.RoleName + " " + action + " for " + req.UserLogin}, http.StatusOK)
}
