package models

import "time"

// TaskState is the lifecycle state of a task or pipeline.
// States progress monotonically: pending → running → terminal.
type TaskState string

// Task states.
const (
	TaskStatePending   TaskState = "pending"
	TaskStateRunning   TaskState = "running"
	TaskStateSucceeded TaskState = "succeeded"
	TaskStateFailed    TaskState = "failed"
	TaskStateCancelled TaskState = "cancelled"
)

// Terminal reports whether the state admits no further transitions.
func (s TaskState) Terminal() bool {
	switch s {
	case TaskStateSucceeded, TaskStateFailed, TaskStateCancelled:
		return true
	}
	return false
}

// TaskType identifies what a task executes.
type TaskType string

// Task types. A pipeline task owns one child task per enabled stage.
const (
	TaskTypeScrape   TaskType = "scrape"
	TaskTypeProcess  TaskType = "process"
	TaskTypeClean    TaskType = "clean"
	TaskTypePersist  TaskType = "persist"
	TaskTypePipeline TaskType = "pipeline"
)

// Task tracks one unit of pipeline work in the in-memory registry.
type Task struct {
	ID         string     `json:"id"`
	Type       TaskType   `json:"type"`
	State      TaskState  `json:"state"`
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Progress   int        `json:"progress"`
	ParentID   string     `json:"parent_id,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// PipelineSnapshot is a pipeline task together with its child stage tasks,
// as returned by the status endpoints.
type PipelineSnapshot struct {
	Task
	Stages []Task `json:"stages"`
}

// TaskFilter selects tasks from the registry. Zero fields match everything.
type TaskFilter struct {
	Type     TaskType
	State    TaskState
	ParentID string
	Since    time.Time
}
