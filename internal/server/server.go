package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/offerwise/offeropt/internal/engine"
)

// Server represents the HTTP server
type Server struct {
	engine   *engine.Engine
	validate *validator.Validate
	addr     string
	server   *http.Server
}

// NewServer creates a new HTTP server around an optimization engine
func NewServer(addr string, eng *engine.Engine) *Server {
	return &Server{
		engine:   eng,
		validate: validator.New(),
		addr:     addr,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Register API routes
	mux.HandleFunc("/api/v1/optimize", s.handleOptimize)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	// Wrap with middleware
	handler := s.loggingMiddleware(s.corsMiddleware(mux))

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: handler,
	}

	slog.Info("Starting HTTP server", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down HTTP server")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleOptimize handles POST /api/v1/optimize
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.New().String()
	start := time.Now()

	var req engine.OptimizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		OptimizationsTotal.WithLabelValues("invalid_request").Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err))
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		OptimizationsTotal.WithLabelValues("invalid_request").Inc()
		slog.Debug("Request validation failed", "request_id", requestID, "error", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	candidates := 0
	for _, m := range req.Models {
		candidates += len(m.Offers)
	}
	CandidatesEvaluatedTotal.Add(float64(candidates))

	slog.Info("Optimization request",
		"request_id", requestID,
		"customer_id", req.CustomerID,
		"models", len(req.Models),
		"candidates", candidates,
	)

	result, err := s.engine.Optimize(&req)
	OptimizationDuration.Observe(time.Since(start).Seconds())

	var nso *engine.NoSuitableOfferError
	switch {
	case errors.As(err, &nso):
		OptimizationsTotal.WithLabelValues("no_suitable_offer").Inc()
		writeError(w, http.StatusUnprocessableEntity, nso.Error())
		return
	case err != nil:
		OptimizationsTotal.WithLabelValues("error").Inc()
		slog.Error("Optimization failed", "request_id", requestID, "customer_id", req.CustomerID, "error", err)
		writeError(w, http.StatusInternalServerError, "Optimization failed")
		return
	}

	OptimizationsTotal.WithLabelValues("success").Inc()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleHealth handles GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// writeError sends a JSON error body with the given status
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// corsMiddleware adds CORS headers
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
