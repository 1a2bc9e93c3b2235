package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/ohsono/sentiwatch/pkg/store"
)

// listClassificationsHandler handles GET /results with subreddit/label
// filters and limit/offset pagination.
func (s *Server) listClassificationsHandler(c *echo.Context) error {
	filters := store.ClassificationFilters{
		Subreddit: c.QueryParam("subreddit"),
		Label:     c.QueryParam("label"),
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

	result, err := s.classifications.ListClassifications(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// summaryHandler handles GET /summary?window=24h. The window accepts any Go
// duration string; the default covers the trailing day.
func (s *Server) summaryHandler(c *echo.Context) error {
	window := 24 * time.Hour
	if v := c.QueryParam("window"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid window: must be a positive duration like 6h or 30m")
		}
		window = parsed
	}

	summary, err := s.classifications.Summarize(c.Request().Context(), window)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
