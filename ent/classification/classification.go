// Code generated by ent, DO NOT EDIT.

package classification

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// EntityLabel holds the string label denoting the classification type in the database.
	EntityLabel = "classification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "content_id"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldSubreddit holds the string denoting the subreddit field in the database.
	FieldSubreddit = "subreddit"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTextHash holds the string denoting the text_hash field in the database.
	FieldTextHash = "text_hash"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCompound holds the string denoting the compound field in the database.
	FieldCompound = "compound"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldVerdictSource holds the string denoting the verdict_source field in the database.
	FieldVerdictSource = "verdict_source"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldContentCreatedAt holds the string denoting the content_created_at field in the database.
	FieldContentCreatedAt = "content_created_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAlerts holds the string denoting the alerts edge name in mutations.
	EdgeAlerts = "alerts"
	// AlertFieldID holds the string denoting the ID field of the Alert.
	AlertFieldID = "alert_id"
	// Table holds the table name of the classification in the database.
	Table = "classifications"
	// AlertsTable is the table that holds the alerts relation/edge.
	AlertsTable = "alerts"
	// AlertsInverseTable is the table name for the Alert entity.
	// It exists in this package in order to avoid circular dependency with the "alert" package.
	AlertsInverseTable = "alerts"
	// AlertsColumn is the table column denoting the alerts relation/edge.
	AlertsColumn = "content_id"
)

// Columns holds all SQL columns for classification fields.
var Columns = []string{
	FieldID,
	FieldSourceID,
	FieldKind,
	FieldSubreddit,
	FieldAuthor,
	FieldParentID,
	FieldText,
	FieldTextHash,
	FieldLabel,
	FieldConfidence,
	FieldCompound,
	FieldModel,
	FieldVerdictSource,
	FieldLatencyMs,
	FieldScore,
	FieldContentCreatedAt,
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
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindPost, KindComment:
		return nil
	default:
		return fmt.Errorf("classification: invalid enum value for kind field: %q", k)
	}
}

// Label defines the type for the "label" enum field.
type Label string

// Label values.
const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

func (l Label) String() string {
	return string(l)
}

// LabelValidator is a validator for the "label" field enum values. It is called by the builders before save.
func LabelValidator(l Label) error {
	switch l {
	case LabelPositive, LabelNegative, LabelNeutral:
		return nil
	default:
		return fmt.Errorf("classification: invalid enum value for label field: %q", l)
	}
}

// VerdictSource defines the type for the "verdict_source" enum field.
type VerdictSource string

// VerdictSource values.
const (
	VerdictSourceModel    VerdictSource = "model"
	VerdictSourceFallback VerdictSource = "fallback"
)

func (vs VerdictSource) String() string {
	return string(vs)
}

// VerdictSourceValidator is a validator for the "verdict_source" field enum values. It is called by the builders before save.
func VerdictSourceValidator(vs VerdictSource) error {
	switch vs {
	case VerdictSourceModel, VerdictSourceFallback:
		return nil
	default:
		return fmt.Errorf("classification: invalid enum value for verdict_source field: %q", vs)
	}
}

// OrderOption defines the ordering options for the Classification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// BySubreddit orders the results by the subreddit field.
func BySubreddit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubreddit, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByTextHash orders the results by the text_hash field.
func ByTextHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextHash, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCompound orders the results by the compound field.
func ByCompound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompound, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByVerdictSource orders the results by the verdict_source field.
func ByVerdictSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdictSource, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByContentCreatedAt orders the results by the content_created_at field.
func ByContentCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentCreatedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAlertsCount orders the results by alerts count.
func ByAlertsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertsStep(), opts...)
	}
}

// ByAlerts orders the results by alerts terms.
func ByAlerts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAlertsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertsInverseTable, AlertFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
	)
}
