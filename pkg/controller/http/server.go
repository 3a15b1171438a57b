package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
	"github.com/scanlight-hq/scanlight/pkg/usecase"
	"github.com/scanlight-hq/scanlight/pkg/utils/apperr"
)

// defaultRange is the analytics range applied when the caller omits one
const defaultRange = 30 * 24 * time.Hour

// Server represents the HTTP server
type Server struct {
	*http.Server
	router       chi.Router
	ingestUC     usecase.IngestUseCase
	analyticsUC  usecase.AnalyticsUseCase
	complianceUC usecase.ComplianceUseCase
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	ingestUC usecase.IngestUseCase,
	analyticsUC usecase.AnalyticsUseCase,
	complianceUC usecase.ComplianceUseCase,
) (*Server, error) {
	if ingestUC == nil || analyticsUC == nil || complianceUC == nil {
		return nil, goerr.New("all use cases are required")
	}

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
		router:       router,
		ingestUC:     ingestUC,
		analyticsUC:  analyticsUC,
		complianceUC: complianceUC,
	}

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Post("/scans", server.handleIngest)
		r.Post("/scans/batch", server.handleIngestBatch)
		r.Get("/analytics", server.handleAnalytics)
		r.Get("/compliance/{templateID}", server.handleCompliance)
		r.Get("/templates", server.handleTemplates)
		r.Post("/portfolio/risk", server.handlePortfolioRisk)
	})

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "scanlight",
	})
}

// handleIngest accepts one raw scan payload
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var raw model.RawScanPayload
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, goerr.Wrap(err, "invalid scan payload"))
		return
	}

	scan, err := s.ingestUC.Ingest(r.Context(), &raw)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, scan)
}

// handleIngestBatch accepts a list of raw scan payloads; bad records are
// skipped, not fatal
func (s *Server) handleIngestBatch(w http.ResponseWriter, r *http.Request) {
	var raws []*model.RawScanPayload
	if err := json.NewDecoder(r.Body).Decode(&raws); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, goerr.Wrap(err, "invalid scan batch"))
		return
	}

	scans, err := s.ingestUC.IngestBatch(r.Context(), raws)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, map[string]any{
		"stored":  len(scans),
		"skipped": len(raws) - len(scans),
	})
}

// handleAnalytics assembles the analytics payload for a site and range
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	siteID := types.SiteID(r.URL.Query().Get("site"))
	if siteID == "" {
		writeError(r.Context(), w, http.StatusBadRequest, goerr.New("site query parameter is required"))
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	templateID := types.TemplateID(r.URL.Query().Get("template"))
	groups := parseGroups(r.URL.Query().Get("groups"))

	report, err := s.analyticsUC.BuildReport(r.Context(), siteID, from, to, templateID, groups)
	if err != nil {
		writeError(r.Context(), w, statusForError(err), err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, report)
}

// handleCompliance returns a standalone compliance result
func (s *Server) handleCompliance(w http.ResponseWriter, r *http.Request) {
	templateID := types.TemplateID(chi.URLParam(r, "templateID"))
	siteID := types.SiteID(r.URL.Query().Get("site"))
	if siteID == "" {
		writeError(r.Context(), w, http.StatusBadRequest, goerr.New("site query parameter is required"))
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	result, err := s.complianceUC.Score(r.Context(), siteID, from, to, templateID)
	if err != nil {
		writeError(r.Context(), w, statusForError(err), err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, result)
}

// handleTemplates lists registered compliance templates
func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.complianceUC.Templates(r.Context()))
}

// handlePortfolioRisk scores account health flags
func (s *Server) handlePortfolioRisk(w http.ResponseWriter, r *http.Request) {
	var accounts []model.AccountFlags
	if err := json.NewDecoder(r.Body).Decode(&accounts); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, goerr.Wrap(err, "invalid account flags"))
		return
	}

	risk, err := s.analyticsUC.AssessPortfolio(r.Context(), accounts)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, risk)
}

// parseRange reads from/to query parameters (RFC 3339 or ISO date).
// Omitted bounds default to the trailing 30 days.
func parseRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from, to := now.Add(-defaultRange), now

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := parseTime(v)
		if err != nil {
			return time.Time{}, time.Time{}, goerr.Wrap(err, "invalid from parameter", goerr.V("from", v))
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := parseTime(v)
		if err != nil {
			return time.Time{}, time.Time{}, goerr.Wrap(err, "invalid to parameter", goerr.V("to", v))
		}
		to = parsed
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, goerr.New("to must be after from",
			goerr.V("from", from), goerr.V("to", to))
	}

	return from, to, nil
}

func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

// parseGroups splits the comma-separated groups parameter; unknown names
// are ignored so presentation layers can request forward-compatibly
func parseGroups(v string) []model.MetricGroup {
	if v == "" {
		return nil
	}

	known := make(map[model.MetricGroup]bool)
	for _, g := range model.AllMetricGroups() {
		known[g] = true
	}

	var groups []model.MetricGroup
	for _, name := range strings.Split(v, ",") {
		g := model.MetricGroup(strings.TrimSpace(name))
		if known[g] {
			groups = append(groups, g)
		}
	}
	return groups
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidTemplate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	apperr.Handle(ctx, err)
	writeJSON(ctx, w, status, map[string]string{"error": err.Error()})
}
