package models

// SortOrder selects the listing order for a source fetch.
type SortOrder string

// Source sort orders.
const (
	SortHot    SortOrder = "hot"
	SortNew    SortOrder = "new"
	SortTop    SortOrder = "top"
	SortRising SortOrder = "rising"
)

// TimeWindow bounds a top/search fetch.
type TimeWindow string

// Time windows.
const (
	WindowDay   TimeWindow = "day"
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
	WindowYear  TimeWindow = "year"
	WindowAll   TimeWindow = "all"
)

// SourceParams parameterizes one content-source fetch.
type SourceParams struct {
	Subreddit           string     `json:"subreddit"`
	PostLimit           int        `json:"post_limit"`
	CommentLimitPerPost int        `json:"comment_limit_per_post"`
	Sort                SortOrder  `json:"sort"`
	TimeWindow          TimeWindow `json:"time_window,omitempty"`
	Query               string     `json:"query,omitempty"`
}

// PipelineRequest describes one pipeline submission: which subreddit to pull
// from, which stages to run, and whether persisted classifications are fed to
// the alert evaluator.
type PipelineRequest struct {
	SourceParams SourceParams `json:"source_params"`
	Stages       []TaskType   `json:"stages,omitempty"`
	EnableAlerts bool         `json:"enable_alerts"`
}

// DefaultStages is the full stage sequence used when a request names none.
var DefaultStages = []TaskType{TaskTypeScrape, TaskTypeProcess, TaskTypeClean, TaskTypePersist}
