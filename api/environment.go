// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"net/http"

	"github.com/stacklok/coverity-env/connection"
	"github.com/stacklok/coverity-env/contributor"
	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/tool"
)

// EnvironmentResponse is the preview of a build's contributed variables.
type EnvironmentResponse struct {
	Variables env.Vars `json:"variables"`
}

// HandleEnvironment previews the variables a build would receive.
//
// Query parameters: tool (required), instance, node, os and repeated label.
// The password variable is masked.
func (h *Handler) HandleEnvironment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sel, err := contributor.NewToolSelection(q.Get("tool"))
	if err != nil {
		writeError(w, WithCode(err, http.StatusBadRequest))
		return
	}
	binding, err := contributor.NewBinding(q.Get("instance"))
	if err != nil {
		writeError(w, WithCode(err, http.StatusBadRequest))
		return
	}
	node, err := tool.NewNode(q.Get("node"), q.Get("os"), q["label"]...)
	if err != nil {
		writeError(w, WithCode(err, http.StatusBadRequest))
		return
	}

	vars, err := h.contributor.Compute(r.Context(), sel, binding, node, h.baseEnv)
	if err != nil {
		writeError(w, WithCode(err, computeStatus(err)))
		return
	}

	if password, ok := vars.Lookup(binding.PasswordVariable()); ok {
		vars.Set(binding.PasswordVariable(), connection.Secret(password).String())
	}
	writeJSON(w, http.StatusOK, EnvironmentResponse{Variables: vars})
}

func computeStatus(err error) int {
	switch {
	case errors.Is(err, contributor.ErrToolNotFound):
		return http.StatusNotFound
	case errors.Is(err, contributor.ErrTranslation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
