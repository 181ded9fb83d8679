// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"net/http"

	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// Health handles health check requests
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK")) // Ignore write errors for health checks
}

// Ready handles readiness check requests. The instance is ready when the
// database answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logger.GetLogger(r.Context()).Warn("readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Unavailable")) // Ignore write errors for health checks
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Ready")) // Ignore write errors for health checks
}
