package api

import (
	"github.com/ohsono/sentiwatch/pkg/database"
	"github.com/ohsono/sentiwatch/pkg/failsafe"
	"github.com/ohsono/sentiwatch/pkg/models"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status          string                 `json:"status"`
	Version         string                 `json:"version"`
	UptimeSeconds   int64                  `json:"uptime_s"`
	CircuitPhase    failsafe.Phase         `json:"circuit_phase"`
	ActivePipelines int                    `json:"active_pipelines"`
	Database        *database.HealthStatus `json:"database,omitempty"`
}

// RunAcceptedResponse is returned by POST /pipeline/run.
type RunAcceptedResponse struct {
	PipelineID string `json:"pipeline_id"`
	Status     string `json:"status"`
}

// PipelineInfoResponse is returned by GET /pipeline/run. The endpoint is
// informational only; submission requires POST.
type PipelineInfoResponse struct {
	Method        string            `json:"method"`
	DefaultStages []models.TaskType `json:"default_stages"`
	Example       any               `json:"example"`
}

// CancelResponse is returned by DELETE /pipeline/:id.
type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

// OKResponse is returned by POST /alerts/:id/status.
type OKResponse struct {
	OK bool `json:"ok"`
}
