package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"webdev-cost/core/catalog"
	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
	"webdev-cost/core/types"
	"webdev-cost/core/ui"
	"webdev-cost/internal/errors"
)

// handleEstimate handles POST /estimate. Inputs that cannot be priced
// still produce a body: the placeholder estimate plus the error.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if !s.decode(w, r, &req) {
		return
	}

	kind, err := discount.ParseKind(req.Discount)
	if err != nil {
		s.writeError(w, string(errors.TypeOf(err)), err.Error(), statusFor(err))
		return
	}

	client := types.ParseClientType(req.ClientType)
	est, err := s.estimates.BuildOrPlaceholder(types.SiteType(req.SiteType), req.Inputs(), client)
	s.metrics.ObserveEstimate(siteLabel(req.SiteType), client.String(), err)

	resp := EstimateResponse{
		RequestID: middleware.GetReqID(r.Context()),
		Estimate:  est,
		Chart:     est.Chart(),
		Headline:  est.Headline(),
		Error:     errorBody(err),
	}
	if err != nil {
		resp.Placeholder = ui.PlaceholderText
		s.writeJSON(w, resp, statusFor(err))
		return
	}

	if kind != discount.None {
		result := s.discounts.Apply(est.DisplayTotal(), kind)
		s.metrics.ObserveDiscount(result.Applied.String())
		resp.Discount = &result
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleDiscount handles POST /discount
func (s *Server) handleDiscount(w http.ResponseWriter, r *http.Request) {
	var req DiscountRequest
	if !s.decode(w, r, &req) {
		return
	}

	kind := req.Flags.Selection()
	if req.Discount != "" {
		parsed, err := discount.ParseKind(req.Discount)
		if err != nil {
			s.writeError(w, string(errors.TypeOf(err)), err.Error(), statusFor(err))
			return
		}
		kind = parsed
	}

	result := s.discounts.Apply(req.BasePrice, kind)
	s.metrics.ObserveDiscount(result.Applied.String())

	resp := DiscountResponse{
		RequestID: middleware.GetReqID(r.Context()),
		Result:    result,
		Headline:  result.Headline(),
		Error:     errorBody(result.Err),
	}
	status := http.StatusOK
	if result.Err != nil {
		status = statusFor(result.Err)
	}
	s.writeJSON(w, resp, status)
}

// handleReport handles POST /report and returns the PDF document
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		s.writeError(w, "NOT_CONFIGURED", "report rendering is not configured", http.StatusServiceUnavailable)
		return
	}

	var req EstimateRequest
	if !s.decode(w, r, &req) {
		return
	}

	capture := func() (*estimate.Estimate, error) {
		return s.estimates.Build(types.SiteType(req.SiteType), req.Inputs(), types.ParseClientType(req.ClientType))
	}

	var buf bytes.Buffer
	rep, err := s.exporter.Export(r.Context(), capture, &buf)
	s.metrics.ObserveReport(err)
	if err != nil {
		s.logger.Warn("report export failed", zap.Error(err))
		body := errorBody(err)
		s.writeError(w, body.Code, body.Message, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+s.filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Report-Id", rep.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("write report", zap.Error(err))
	}
}

// handleCatalog handles GET /catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"currency": types.CurrencyPHP,
		"tables":   s.catalog.Summarize(),
	}, http.StatusOK)
}

// handleCatalogTable handles GET /catalog/{siteType}
func (s *Server) handleCatalogTable(w http.ResponseWriter, r *http.Request) {
	siteType := types.SiteType(chi.URLParam(r, "siteType"))
	rules, err := s.catalog.Rules(siteType)
	if err != nil {
		s.writeError(w, string(errors.TypeOf(err)), err.Error(), http.StatusNotFound)
		return
	}
	s.writeJSON(w, catalog.SummarizeTable(siteType, rules), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"uptime":  time.Since(s.started).Round(time.Second).String(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "webdev-cost",
		"api_version": "v1",
	}, http.StatusOK)
}

// siteLabel bounds metric label values to known site types
func siteLabel(s string) string {
	if t := types.SiteType(s); t.IsValid() {
		return s
	}
	return "unknown"
}
