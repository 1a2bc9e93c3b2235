// Package api exposes the HTTP surface: pipeline control, direct prediction,
// failsafe status, alert review, and persisted-result queries.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ohsono/sentiwatch/pkg/database"
	"github.com/ohsono/sentiwatch/pkg/failsafe"
	"github.com/ohsono/sentiwatch/pkg/metrics"
	"github.com/ohsono/sentiwatch/pkg/pipeline"
	"github.com/ohsono/sentiwatch/pkg/store"
)

// Server wires the service layer to echo handlers.
type Server struct {
	dbClient        *database.Client
	dispatcher      *failsafe.Dispatcher
	orchestrator    *pipeline.Orchestrator
	classifications *store.ClassificationService
	alertStore      *store.AlertService
	metrics         *metrics.Metrics

	echo      *echo.Echo
	httpSrv   *http.Server
	startedAt time.Time
}

// NewServer creates the API server. dbClient and metrics may be nil; the
// health and metrics endpoints then degrade accordingly.
func NewServer(
	dbClient *database.Client,
	dispatcher *failsafe.Dispatcher,
	orchestrator *pipeline.Orchestrator,
	classifications *store.ClassificationService,
	alertStore *store.AlertService,
	m *metrics.Metrics,
) *Server {
	s := &Server{
		dbClient:        dbClient,
		dispatcher:      dispatcher,
		orchestrator:    orchestrator,
		classifications: classifications,
		alertStore:      alertStore,
		metrics:         m,
		startedAt:       time.Now().UTC(),
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger())

	e.GET("/health", s.healthHandler)

	e.POST("/pipeline/run", s.runPipelineHandler)
	e.GET("/pipeline/run", s.pipelineInfoHandler)
	e.GET("/pipeline/active", s.activePipelinesHandler)
	e.GET("/pipeline/history", s.pipelineHistoryHandler)
	e.GET("/pipeline/:id/status", s.pipelineStatusHandler)
	e.DELETE("/pipeline/:id", s.cancelPipelineHandler)

	e.POST("/predict", s.predictHandler)
	e.GET("/failsafe/status", s.failsafeStatusHandler)

	e.GET("/alerts", s.listAlertsHandler)
	e.POST("/alerts/:id/status", s.updateAlertStatusHandler)

	e.GET("/results", s.listClassificationsHandler)
	e.GET("/summary", s.summaryHandler)

	if s.metrics != nil {
		promHandler := promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})
		e.GET("/metrics", func(c *echo.Context) error {
			promHandler.ServeHTTP(c.Response(), c.Request())
			return nil
		})
	}

	return e
}

// ServeHTTP makes the server usable as a plain http.Handler in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start runs the HTTP server; it blocks until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
