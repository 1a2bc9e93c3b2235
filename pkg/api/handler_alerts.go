package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/ohsono/sentiwatch/pkg/models"
	"github.com/ohsono/sentiwatch/pkg/store"
)

// listAlertsHandler handles GET /alerts with status/kind/severity filters and
// limit/offset pagination.
func (s *Server) listAlertsHandler(c *echo.Context) error {
	filters := store.AlertFilters{
		Status:   c.QueryParam("status"),
		Kind:     c.QueryParam("kind"),
		Severity: c.QueryParam("severity"),
	}

	var err error
	if filters.Limit, err = intQueryParam(c, "limit", 20); err != nil {
		return err
	}
	if filters.Offset, err = intQueryParam(c, "offset", 0); err != nil {
		return err
	}
	if v := c.QueryParam("since"); v != "" {
		since, parseErr := time.Parse(time.RFC3339, v)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since: must be RFC3339")
		}
		filters.Since = &since
	}

	result, err := s.alertStore.ListAlerts(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// updateAlertStatusHandler handles POST /alerts/:id/status. Status is the
// only mutable alert field.
func (s *Server) updateAlertStatusHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "alert id is required")
	}

	var req UpdateAlertStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := s.alertStore.UpdateAlertStatus(c.Request().Context(), id, models.AlertStatus(req.Status), req.Note)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &OKResponse{OK: true})
}

// intQueryParam parses an optional non-negative integer query parameter.
func intQueryParam(c *echo.Context, name string, defaultValue int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+": must be a non-negative integer")
	}
	return value, nil
}
