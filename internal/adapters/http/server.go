// Package http exposes the training engine over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	salescoach "github.com/nsfeld/salescoach"
	"github.com/nsfeld/salescoach/pkg/domain"
)

// Server routes API requests to the engine.
type Server struct {
	engine *salescoach.Engine
	logger *slog.Logger
}

// NewHandler builds the API router: per-module session operations, module
// discovery, health and Prometheus metrics.
func NewHandler(engine *salescoach.Engine, logger *slog.Logger) http.Handler {
	s := &Server{engine: engine, logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/modules", s.listModules)
		r.Route("/{module}", func(r chi.Router) {
			r.Post("/start/{key}", s.start)
			r.Post("/turn/{key}", s.turn)
			r.Get("/result/{key}", s.result)
			r.Get("/snapshot/{key}", s.snapshot)
			r.Post("/abandon/{key}", s.abandon)
		})
	})
	return r
}

type startRequest struct {
	Params map[string]string `json:"params,omitempty"`
}

type turnRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listModules(w http.ResponseWriter, _ *http.Request) {
	type moduleInfo struct {
		ID     string   `json:"id"`
		Title  string   `json:"title"`
		Stages []string `json:"stages"`
	}
	out := make([]moduleInfo, 0)
	for _, id := range s.engine.Modules() {
		mod, err := s.engine.Module(id)
		if err != nil {
			continue
		}
		stages := make([]string, 0, len(mod.Graph.Stages()))
		for _, st := range mod.Graph.Stages() {
			stages = append(stages, st.Name)
		}
		out = append(out, moduleInfo{ID: mod.ID, Title: mod.Title, Stages: stages})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) start(w http.ResponseWriter, r *http.Request) {
	var body startRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}
	res, err := s.engine.Start(r.Context(), chi.URLParam(r, "key"), chi.URLParam(r, "module"), body.Params)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) turn(w http.ResponseWriter, r *http.Request) {
	var body turnRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	res, err := s.engine.Turn(r.Context(), chi.URLParam(r, "key"), body.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) result(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Result(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.engine.Snapshot(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) abandon(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Abandon(r.Context(), chi.URLParam(r, "key")); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.StatusAbandoned)})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrUnknownModule):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrSessionCompleted):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("response encode failed", "err", err)
	}
}
