package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/failsafe"
)

func TestHealthWithoutDatabase(t *testing.T) {
	s := newPredictServer(&scriptedInferrer{})

	rec := doJSON(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.Equal(t, failsafe.PhaseClosed, resp.CircuitPhase)
	assert.Zero(t, resp.ActivePipelines)
	assert.Nil(t, resp.Database)
}
