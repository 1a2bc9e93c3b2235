// Code generated by ent, DO NOT EDIT.

package alert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the alert type in the database.
	Label = "alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "alert_id"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldKeywordsMatched holds the string denoting the keywords_matched field in the database.
	FieldKeywordsMatched = "keywords_matched"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeClassification holds the string denoting the classification edge name in mutations.
	EdgeClassification = "classification"
	// ClassificationFieldID holds the string denoting the ID field of the Classification.
	ClassificationFieldID = "content_id"
	// Table holds the table name of the alert in the database.
	Table = "alerts"
	// ClassificationTable is the table that holds the classification relation/edge.
	ClassificationTable = "alerts"
	// ClassificationInverseTable is the table name for the Classification entity.
	// It exists in this package in order to avoid circular dependency with the "classification" package.
	ClassificationInverseTable = "classifications"
	// ClassificationColumn is the table column denoting the classification relation/edge.
	ClassificationColumn = "content_id"
)

// Columns holds all SQL columns for alert fields.
var Columns = []string{
	FieldID,
	FieldContentID,
	FieldKind,
	FieldSeverity,
	FieldKeywordsMatched,
	FieldStatus,
	FieldNote,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindMentalHealth Kind = "mental_health"
	KindStress       Kind = "stress"
	KindAcademic     Kind = "academic"
	KindHarassment   Kind = "harassment"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindMentalHealth, KindStress, KindAcademic, KindHarassment:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for kind field: %q", k)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for severity field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusReviewed Status = "reviewed"
	StatusResolved Status = "resolved"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusReviewed, StatusResolved:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Alert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClassificationField orders the results by classification field.
func ByClassificationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClassificationStep(), sql.OrderByField(field, opts...))
	}
}
func newClassificationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClassificationInverseTable, ClassificationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClassificationTable, ClassificationColumn),
	)
}
