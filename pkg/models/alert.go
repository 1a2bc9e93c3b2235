package models

import "time"

// AlertKind is the risk category an alert belongs to.
type AlertKind string

// Alert kinds.
const (
	AlertKindMentalHealth AlertKind = "mental_health"
	AlertKindStress       AlertKind = "stress"
	AlertKindAcademic     AlertKind = "academic"
	AlertKindHarassment   AlertKind = "harassment"
)

// AlertSeverity is the escalation tier of an alert.
type AlertSeverity string

// Alert severities, ordered low < medium < high.
const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// AlertStatus is the review state of an alert. Status is the only mutable
// field of a stored alert.
type AlertStatus string

// Alert statuses.
const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusReviewed AlertStatus = "reviewed"
	AlertStatusResolved AlertStatus = "resolved"
)

// ValidAlertStatus reports whether s is a known status value.
func ValidAlertStatus(s AlertStatus) bool {
	switch s {
	case AlertStatusActive, AlertStatusReviewed, AlertStatusResolved:
		return true
	}
	return false
}

// Alert is an emitted risk alert tied to a stored classification.
type Alert struct {
	ID              string        `json:"id"`
	ContentID       string        `json:"content_id"`
	Kind            AlertKind     `json:"kind"`
	Severity        AlertSeverity `json:"severity"`
	KeywordsMatched []string      `json:"keywords_matched"`
	CreatedAt       time.Time     `json:"created_at"`
	Status          AlertStatus   `json:"status"`
	Note            string        `json:"note,omitempty"`
}
