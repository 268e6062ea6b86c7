package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/interfaces"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
	"github.com/Kassiosky/ZabbixMonitor/pkg/utils/async"
)

// Server represents the dashboard HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	dashboard *Dashboard
	graphs    interfaces.GraphResolver
	sharer    interfaces.Sink
}

// NewServer creates the dashboard HTTP server. sharer receives graph
// images pushed through the share endpoint and may be nil.
func NewServer(
	ctx context.Context,
	addr string,
	dashboard *Dashboard,
	graphs interfaces.GraphResolver,
	sharer interfaces.Sink,
) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		dashboard: dashboard,
		graphs:    graphs,
		sharer:    sharer,
	}

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/problems", server.handleProblems)
		r.Get("/status", server.handleStatus)
		r.Get("/graph", server.handleGraph)
		r.Post("/graph/share", server.handleGraphShare)
	})

	router.Get("/", server.handleHome)

	return server
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "zabbixmonitor",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleProblems returns the most recent snapshot of active problems
func (s *Server) handleProblems(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.dashboard.Snapshot()
	if !ok {
		snapshot = model.NewSnapshot(nil, types.ChangeUnchanged, time.Time{})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode problems response", "error", err)
	}
}

type statusResponse struct {
	State       string  `json:"state"`
	ActiveCount int     `json:"active_count"`
	LastNotice  *Notice `json:"last_notice,omitempty"`
}

// handleStatus returns the badge count and the last notification
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{State: "ok"}
	if count, ok := s.dashboard.Badge(); ok {
		resp.ActiveCount = count
		if count > 0 {
			resp.State = "alert"
		}
	}
	if notice, ok := s.dashboard.LastNotice(); ok {
		resp.LastNotice = &notice
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode status response", "error", err)
	}
}

// handleGraph resolves a problem name to its trigger graph image
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, goerr.New("name query parameter is required"), http.StatusBadRequest)
		return
	}

	image, err := s.graphs.Resolve(r.Context(), name)
	if err != nil {
		if goerr.HasTag(err, model.ErrTagGraphUnavailable) {
			writeError(w, err, http.StatusNotFound)
		} else {
			writeError(w, err, http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(image); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write graph image", "error", err)
	}
}

// handleGraphShare resolves a graph and pushes it to the share sink
// asynchronously. The response only confirms the share was accepted.
func (s *Server) handleGraphShare(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, goerr.New("name query parameter is required"), http.StatusBadRequest)
		return
	}
	if s.sharer == nil {
		writeError(w, goerr.New("no share destination is configured"), http.StatusConflict)
		return
	}

	image, err := s.graphs.Resolve(r.Context(), name)
	if err != nil {
		if goerr.HasTag(err, model.ErrTagGraphUnavailable) {
			writeError(w, err, http.StatusNotFound)
		} else {
			writeError(w, err, http.StatusBadGateway)
		}
		return
	}

	async.Dispatch(r.Context(), func(ctx context.Context) error {
		s.sharer.ShowImage(ctx, name, image)
		return nil
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "accepted",
		"name":   name,
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode share response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}
