// Package api exposes the estimator over HTTP. Handlers only decode,
// delegate to the core engines, and encode; no pricing happens here.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"webdev-cost/core/catalog"
	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
	"webdev-cost/core/report"
	"webdev-cost/core/ui"
	"webdev-cost/internal/errors"
	"webdev-cost/internal/logging"
)

const maxBodyBytes = 1 << 20

// Options configures a Server
type Options struct {
	Version string

	// Report brands exported PDFs
	Report report.Options

	// ReportFilename is the attachment name sent with POST /report
	ReportFilename string

	// Renderer lays out POST /report documents
	Renderer ui.Renderer

	// Catalog defaults to the builtin catalog
	Catalog *catalog.Catalog

	Logger *zap.Logger
}

// Server is the API server
type Server struct {
	router    chi.Router
	version   string
	filename  string
	catalog   *catalog.Catalog
	estimates *estimate.Engine
	discounts *discount.Engine
	exporter  *ui.Exporter
	registry  *prometheus.Registry
	metrics   *Metrics
	logger    *zap.Logger
	started   time.Time
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	logger := logging.OrNop(opts.Logger).Named("api")
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.ReportFilename == "" {
		opts.ReportFilename = "Website_Estimate.pdf"
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		router:    chi.NewRouter(),
		version:   opts.Version,
		filename:  opts.ReportFilename,
		catalog:   opts.Catalog,
		estimates: estimate.NewEngine(opts.Catalog, logger),
		discounts: discount.NewEngine(logger),
		registry:  registry,
		metrics:   NewMetrics(registry),
		logger:    logger,
		started:   time.Now(),
	}
	if opts.Renderer != nil {
		s.exporter = ui.NewExporter(opts.Renderer, opts.Report, logger)
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	r := s.router
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.metrics.Middleware)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Post("/estimate", s.handleEstimate)
	r.Post("/discount", s.handleDiscount)
	r.Post("/report", s.handleReport)
	r.Get("/catalog", s.handleCatalog)
	r.Get("/catalog/{siteType}", s.handleCatalogTable)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr), zap.String("version", s.version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestID honours an incoming X-Request-Id or assigns a uuid
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(middleware.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": ErrorBody{Code: code, Message: message},
	}, status)
}

func errorBody(err error) *ErrorBody {
	if err == nil {
		return nil
	}
	return &ErrorBody{Code: string(errors.TypeOf(err)), Message: err.Error()}
}

// statusFor maps a domain error onto an HTTP status
func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeInvalidInput, errors.TypeUnknownSiteType, errors.TypeInvalidPrice:
		return http.StatusUnprocessableEntity
	case errors.TypeParsing:
		return http.StatusBadRequest
	case errors.TypeExportBusy:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
