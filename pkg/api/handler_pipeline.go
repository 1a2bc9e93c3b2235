package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// runPipelineHandler handles POST /pipeline/run. Submission is asynchronous;
// the pipeline id is returned immediately and progress is polled via the
// status endpoint.
func (s *Server) runPipelineHandler(c *echo.Context) error {
	var req models.PipelineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := s.orchestrator.Submit(req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &RunAcceptedResponse{
		PipelineID: task.ID,
		Status:     string(task.State),
	})
}

// pipelineInfoHandler handles GET /pipeline/run. GETs do not trigger work;
// the response documents how to submit.
func (s *Server) pipelineInfoHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &PipelineInfoResponse{
		Method:        http.MethodPost,
		DefaultStages: models.DefaultStages,
		Example: models.PipelineRequest{
			SourceParams: models.SourceParams{
				Subreddit: "ucla",
				PostLimit: 25,
				Sort:      models.SortNew,
			},
			EnableAlerts: true,
		},
	})
}

// pipelineStatusHandler handles GET /pipeline/:id/status.
func (s *Server) pipelineStatusHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pipeline id is required")
	}

	snapshot, ok := s.orchestrator.Snapshot(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "pipeline not found")
	}
	return c.JSON(http.StatusOK, snapshot)
}

// cancelPipelineHandler handles DELETE /pipeline/:id. Cancellation is
// idempotent: cancelling an already-cancelled pipeline reports true, while
// an unknown or already-finished pipeline reports false.
func (s *Server) cancelPipelineHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pipeline id is required")
	}

	if _, ok := s.orchestrator.Snapshot(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "pipeline not found")
	}
	return c.JSON(http.StatusOK, &CancelResponse{Cancelled: s.orchestrator.Cancel(id)})
}

// activePipelinesHandler handles GET /pipeline/active.
func (s *Server) activePipelinesHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.orchestrator.Active())
}

// pipelineHistoryHandler handles GET /pipeline/history?since=RFC3339.
func (s *Server) pipelineHistoryHandler(c *echo.Context) error {
	var since time.Time
	if v := c.QueryParam("since"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since: must be RFC3339")
		}
		since = parsed
	}
	return c.JSON(http.StatusOK, s.orchestrator.History(since))
}
