package api

import (
	"encoding/json"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// predictHandler handles POST /predict. The dispatcher never errors; a
// degraded model service shows up only as source="fallback" in the verdict.
// Unknown body fields are rejected rather than silently dropped.
func (s *Server) predictHandler(c *echo.Context) error {
	var req PredictRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	verdict := s.dispatcher.Predict(c.Request().Context(), req.Text, req.Model)
	return c.JSON(http.StatusOK, verdict)
}

// failsafeStatusHandler handles GET /failsafe/status. Reads atomics only;
// never blocks on the dispatcher mutex.
func (s *Server) failsafeStatusHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.dispatcher.Status())
}
