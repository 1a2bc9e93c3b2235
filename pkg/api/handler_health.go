package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/ohsono/sentiwatch/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. Only the process's own components are
// checked; the model service is deliberately excluded so an upstream outage
// never makes this instance report unhealthy (the failsafe covers it).
func (s *Server) healthHandler(c *echo.Context) error {
	resp := &HealthResponse{
		Status:        healthStatusHealthy,
		Version:       version.GitCommit,
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
	}
	if s.dispatcher != nil {
		resp.CircuitPhase = s.dispatcher.Phase()
	}
	if s.orchestrator != nil {
		resp.ActivePipelines = s.orchestrator.ActiveCount()
	}

	httpStatus := http.StatusOK
	if s.dbClient != nil {
		reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := s.dbClient.Health(reqCtx)
		resp.Database = dbHealth
		if err != nil {
			resp.Status = healthStatusUnhealthy
			httpStatus = http.StatusServiceUnavailable
		}
	}
	return c.JSON(httpStatus, resp)
}
