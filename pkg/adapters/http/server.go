package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/internal/presentation/graph"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// SimulateRequest is the body of POST /simulate.
type SimulateRequest struct {
	Operation string `json:"operation"`
	X         uint32 `json:"x"`
	Y         uint32 `json:"y"`
	Trace     bool   `json:"trace"`
}

// RunRequest is the body of POST /run.
type RunRequest struct {
	Operation string `json:"operation"`
	Tape      string `json:"tape"`
	Trace     bool   `json:"trace"`
}

// Server exposes a Simulator over HTTP.
type Server struct {
	Simulator ports.Simulator
	Logger    *slog.Logger
}

// HandlerOption customizes the router built by NewHandler.
type HandlerOption func(chi.Router)

// WithMetrics mounts a metrics handler on GET /metrics.
func WithMetrics(h http.Handler) HandlerOption {
	return func(r chi.Router) {
		r.Method(http.MethodGet, "/metrics", h)
	}
}

// NewHandler creates a new HTTP handler for the simulator.
func NewHandler(sim ports.Simulator, logger *slog.Logger, opts ...HandlerOption) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	server := &Server{Simulator: sim, Logger: logger}

	r := chi.NewRouter()
	r.Post("/simulate", server.Simulate)
	r.Post("/run", server.Run)
	r.Get("/graph/{operation}", server.GetGraph)
	r.Get("/records", server.ListRecords)
	r.Get("/records/{id}", server.GetRecord)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	for _, opt := range opts {
		opt(r)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Simulate handles the POST /simulate request.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var body SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Simulate: Invalid request body", "error", err)
		return
	}

	op, err := domain.ParseOperation(body.Operation)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := s.Simulator.Run(r.Context(), op, body.X, body.Y, body.Trace)
	if err != nil {
		s.fail(w, "Simulate", err)
		return
	}
	writeJSON(w, rec)
}

// Run handles the POST /run request, simulating on a caller supplied tape.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Run: Invalid request body", "error", err)
		return
	}

	op, err := domain.ParseOperation(body.Operation)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := s.Simulator.RunTape(r.Context(), op, body.Tape, body.Trace)
	if err != nil {
		s.fail(w, "Run", err)
		return
	}
	writeJSON(w, rec)
}

// GetGraph handles GET /graph/{operation}. The Mermaid diagram is returned
// unless format=json asks for the raw state table.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	op, err := domain.ParseOperation(chi.URLParam(r, "operation"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	states, err := s.Simulator.States(op)
	if err != nil {
		s.fail(w, "GetGraph", err)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, states)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(states, nil))
}

// ListRecords handles GET /records.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	store := s.Simulator.Store()
	if store == nil {
		http.Error(w, "No record store configured", http.StatusNotFound)
		return
	}
	ids, err := store.List(r.Context())
	if err != nil {
		s.fail(w, "ListRecords", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, ids)
}

// GetRecord handles GET /records/{id}. format=text returns the trace file body.
func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	store := s.Simulator.Store()
	if store == nil {
		http.Error(w, "No record store configured", http.StatusNotFound)
		return
	}
	rec, err := store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, "GetRecord", err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, rec.Trace)
		return
	}
	writeJSON(w, rec)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	ops := make([]string, len(domain.Operations))
	for i, op := range domain.Operations {
		ops[i] = string(op)
	}
	writeJSON(w, map[string]any{
		"version":    strings.TrimSpace(tmsim.Version),
		"operations": ops,
	})
}

func (s *Server) fail(w http.ResponseWriter, handler string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownOperation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrMalformedTape), errors.Is(err, domain.ErrLimitExceeded):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.Logger.Error(handler+" failed", "error", err)
	}
	http.Error(w, fmt.Sprintf("%s error: %v", handler, err), status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
