package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"civicletter/internal/config"
	"civicletter/internal/letter"
	"civicletter/internal/types"
)

// Generator is the letter generation pipeline behind the endpoint.
type Generator interface {
	Generate(ctx context.Context, form types.SimpleFormData) (types.LetterResponse, error)
}

// Server is stateless: each request stands alone, and nothing is written to
// any store.
type Server struct {
	router    *chi.Mux
	generator Generator
	cfg       config.Config
	log       *slog.Logger
}

func NewServer(cfg config.Config, gen Generator, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))
	s := &Server{router: r, generator: gen, cfg: cfg, log: log}
	r.Use(s.requestLogger)
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/generate-letter", s.handleGenerateLetter)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleGenerateLetter(w http.ResponseWriter, r *http.Request) {
	var req types.LetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !requiredFieldsPresent(req.FormData) {
		s.writeError(w, http.StatusBadRequest, "Please fill out all required fields")
		return
	}

	result, err := s.generator.Generate(r.Context(), *req.FormData)
	if err != nil {
		s.log.Error("letter generation failed", "error", err)
		var rate *letter.RateLimitError
		if errors.As(err, &rate) {
			s.writeError(w, http.StatusTooManyRequests, rate.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// requiredFieldsPresent mirrors the client-side pre-check: the first three
// fields must be non-empty after trimming; custom instructions are exempt.
func requiredFieldsPresent(f *types.SimpleFormData) bool {
	if f == nil {
		return false
	}
	return strings.TrimSpace(f.UserInfo) != "" &&
		strings.TrimSpace(f.RepresentativeInfo) != "" &&
		strings.TrimSpace(f.IssueDetails) != ""
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := types.APIError{Message: msg}
	// Validation failures carry only the message.
	if code != http.StatusBadRequest {
		resp.StatusCode = code
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
