// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ohsono/sentiwatch/ent/classification"
)

// Classification is the model entity for the Classification schema.
type Classification struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Upstream identifier (post or comment ID)
	SourceID string `json:"source_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind classification.Kind `json:"kind,omitempty"`
	// Subreddit holds the value of the "subreddit" field.
	Subreddit string `json:"subreddit,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// Post ID for comments, empty for posts
	ParentID string `json:"parent_id,omitempty"`
	// Normalized text the verdict was computed from (full-text searchable)
	Text string `json:"text,omitempty"`
	// SHA-256 of normalized text, hex encoded; dedup key
	TextHash string `json:"text_hash,omitempty"`
	// Label holds the value of the "label" field.
	Label classification.Label `json:"label,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Compound holds the value of the "compound" field.
	Compound float64 `json:"compound,omitempty"`
	// Model that produced the verdict (e.g. 'distilbert', 'lexicon')
	Model string `json:"model,omitempty"`
	// VerdictSource holds the value of the "verdict_source" field.
	VerdictSource classification.VerdictSource `json:"verdict_source,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Upstream vote score at scrape time
	Score int `json:"score,omitempty"`
	// When the item was authored upstream
	ContentCreatedAt time.Time `json:"content_created_at,omitempty"`
	// When the row was persisted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClassificationQuery when eager-loading is set.
	Edges        ClassificationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClassificationEdges holds the relations/edges for other nodes in the graph.
type ClassificationEdges struct {
	// Alerts holds the value of the alerts edge.
	Alerts []*Alert `json:"alerts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e ClassificationEdges) AlertsOrErr() ([]*Alert, error) {
	if e.loadedTypes[0] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Classification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case classification.FieldConfidence, classification.FieldCompound:
			values[i] = new(sql.NullFloat64)
		case classification.FieldLatencyMs, classification.FieldScore:
			values[i] = new(sql.NullInt64)
		case classification.FieldID, classification.FieldSourceID, classification.FieldKind, classification.FieldSubreddit, classification.FieldAuthor, classification.FieldParentID, classification.FieldText, classification.FieldTextHash, classification.FieldLabel, classification.FieldModel, classification.FieldVerdictSource:
			values[i] = new(sql.NullString)
		case classification.FieldContentCreatedAt, classification.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Classification fields.
func (_m *Classification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case classification.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case classification.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case classification.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = classification.Kind(value.String)
			}
		case classification.FieldSubreddit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subreddit", values[i])
			} else if value.Valid {
				_m.Subreddit = value.String
			}
		case classification.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case classification.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = value.String
			}
		case classification.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case classification.FieldTextHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_hash", values[i])
			} else if value.Valid {
				_m.TextHash = value.String
			}
		case classification.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = classification.Label(value.String)
			}
		case classification.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case classification.FieldCompound:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field compound", values[i])
			} else if value.Valid {
				_m.Compound = value.Float64
			}
		case classification.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case classification.FieldVerdictSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict_source", values[i])
			} else if value.Valid {
				_m.VerdictSource = classification.VerdictSource(value.String)
			}
		case classification.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case classification.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case classification.FieldContentCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field content_created_at", values[i])
			} else if value.Valid {
				_m.ContentCreatedAt = value.Time
			}
		case classification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Classification.
// This includes values selected through modifiers, order, etc.
func (_m *Classification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAlerts queries the "alerts" edge of the Classification entity.
func (_m *Classification) QueryAlerts() *AlertQuery {
	return NewClassificationClient(_m.config).QueryAlerts(_m)
}

// Update returns a builder for updating this Classification.
// Note that you need to call Classification.Unwrap() before calling this method if this Classification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Classification) Update() *ClassificationUpdateOne {
	return NewClassificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Classification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Classification) Unwrap() *Classification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Classification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Classification) String() string {
	var builder strings.Builder
	builder.WriteString("Classification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("subreddit=")
	builder.WriteString(_m.Subreddit)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("parent_id=")
	builder.WriteString(_m.ParentID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("text_hash=")
	builder.WriteString(_m.TextHash)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(fmt.Sprintf("%v", _m.Label))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("compound=")
	builder.WriteString(fmt.Sprintf("%v", _m.Compound))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("verdict_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerdictSource))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("content_created_at=")
	builder.WriteString(_m.ContentCreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Classifications is a parsable slice of Classification.
type Classifications []*Classification
