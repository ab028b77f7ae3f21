// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stacklok/coverity-env/connection"
	"github.com/stacklok/coverity-env/contributor"
	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/tool"
)

// Item is one entry of a selection list.
type Item struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ItemList is the response of the list endpoints.
type ItemList struct {
	Items []Item `json:"items"`
}

// ToolResponse describes one tool installation.
type ToolResponse struct {
	Name      string          `json:"name"`
	Home      string          `json:"home"`
	Locations []tool.Location `json:"locations,omitempty"`
}

// Handler serves read-only views of the tool and connection registries.
type Handler struct {
	tools       tool.Registry
	profiles    connection.Registry
	logger      *slog.Logger
	contributor *contributor.Contributor
	baseEnv     env.Vars
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithContributor enables GET /api/v1/environment, computed by c against
// baseEnv.
func WithContributor(c *contributor.Contributor, baseEnv env.Vars) HandlerOption {
	return func(h *Handler) {
		h.contributor = c
		h.baseEnv = baseEnv.Clone()
	}
}

// NewHandler returns a Handler. profiles may be nil.
func NewHandler(tools tool.Registry, profiles connection.Registry, logger *slog.Logger, opts ...HandlerOption) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{tools: tools, profiles: profiles, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewRouter wires the handler's routes. When gatherer is non-nil its
// metrics are served on /metrics.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware(h.logger))
	router.Use(recoveryMiddleware(h.logger))

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/tools", h.HandleListTools).Methods(http.MethodGet)
	v1.HandleFunc("/tools/{name}", h.HandleGetTool).Methods(http.MethodGet)
	v1.HandleFunc("/connections", h.HandleListConnections).Methods(http.MethodGet)
	v1.HandleFunc("/connections/{name}", h.HandleGetConnection).Methods(http.MethodGet)
	if h.contributor != nil {
		v1.HandleFunc("/environment", h.HandleEnvironment).Methods(http.MethodGet)
	}

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	if gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return router
}

func itemsOf(names []string) ItemList {
	items := make([]Item, 0, len(names))
	for _, n := range names {
		items = append(items, Item{Name: n, Value: n})
	}
	return ItemList{Items: items}
}

// HandleListTools lists tool installation names.
func (h *Handler) HandleListTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, itemsOf(tool.Names(h.tools.Installations())))
}

// HandleGetTool describes one installation, matched ignoring case.
func (h *Handler) HandleGetTool(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	inst, ok := tool.Find(h.tools.Installations(), name)
	if !ok {
		writeError(w, NotFound(fmt.Sprintf("tool installation %q not found", name)))
		return
	}
	writeJSON(w, http.StatusOK, ToolResponse{Name: inst.Name, Home: inst.Home, Locations: inst.Locations})
}

// HandleListConnections lists connection profile names.
func (h *Handler) HandleListConnections(w http.ResponseWriter, _ *http.Request) {
	if h.profiles == nil {
		writeJSON(w, http.StatusOK, itemsOf(nil))
		return
	}
	writeJSON(w, http.StatusOK, itemsOf(connection.Names(h.profiles.Profiles())))
}

// HandleGetConnection describes one profile. The password is masked.
func (h *Handler) HandleGetConnection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if h.profiles == nil {
		writeError(w, NotFound("no connections configured"))
		return
	}
	profile, ok := h.profiles.Lookup(name)
	if !ok {
		writeError(w, NotFound(fmt.Sprintf("connection %q not found", name)))
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Serve runs the router on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving selection api", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	}
}
