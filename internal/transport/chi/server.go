// Package chi exposes the overlap analysis API over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lexmatch-io/lexmatch/internal/domain"
	"github.com/lexmatch-io/lexmatch/internal/domain/overlap"
	"github.com/lexmatch-io/lexmatch/internal/render"
	healthuc "github.com/lexmatch-io/lexmatch/internal/usecase/health"
)

// Error codes returned in JSON error responses.
const (
	codeBadRequest             = "bad_request"
	codeInvalidInput           = "invalid_input"
	codeAnnotatorProviderError = "annotator_provider_error"
	codeInternalError          = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// analyzer runs an overlap analysis between two texts.
type analyzer interface {
	Analyze(ctx context.Context, reference, target string) (overlap.Report, error)
}

// annotator produces an annotated document for a single text.
type annotator interface {
	Annotate(ctx context.Context, text string) (domain.AnnotatedDocument, error)
}

// Server is the HTTP API server.
type Server struct {
	analysis      analyzer
	annotator     annotator
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	analysis analyzer,
	ann annotator,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		analysis:  analysis,
		annotator: ann,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeInvalidInput),
		sentinelHandler(domain.ErrAnnotatorProviderError, http.StatusBadGateway, codeAnnotatorProviderError),
	}
	return s
}

// Routes mounts all API handlers on the router.
func (s *Server) Routes(r chirouter.Router) {
	r.Post("/v1/analyses", s.CreateAnalysis)
	r.Post("/v1/annotate", s.Annotate)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

type createAnalysisRequest struct {
	Reference string `json:"reference"`
	Target    string `json:"target"`
}

// CreateAnalysis handles POST /v1/analyses. The report is returned as JSON
// by default, or as a CSV attachment when requested via the Accept header or
// a format=csv query parameter.
func (s *Server) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req createAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	report, err := s.analysis.Analyze(r.Context(), req.Reference, req.Target)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if wantsCSV(r) {
		s.writeCSVReport(w, report)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

type annotateRequest struct {
	Text string `json:"text"`
}

// Annotate handles POST /v1/annotate.
func (s *Server) Annotate(w http.ResponseWriter, r *http.Request) {
	var req annotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doc, err := s.annotator.Annotate(r.Context(), req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func wantsCSV(r *http.Request) bool {
	if r.URL.Query().Get("format") == "csv" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/csv")
}

func (s *Server) writeCSVReport(w http.ResponseWriter, report overlap.Report) {
	filename := fmt.Sprintf("text_overlap_analysis_%s.csv", report.CreatedAt.Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := render.WriteCSV(w, report); err != nil {
		s.logger.Error("write csv report", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-facing error message without exposing internals.
func safeDomainMessage(err error) string {
	var tooLarge *domain.InputTooLargeError
	if errors.As(err, &tooLarge) {
		return tooLarge.Error()
	}

	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrAnnotatorProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
