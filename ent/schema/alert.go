package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert holds the schema definition for the Alert entity: a keyword-rule hit
// raised against a persisted classification.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("content_id").
			Immutable(),
		field.Enum("kind").
			Values("mental_health", "stress", "academic", "harassment"),
		field.Enum("severity").
			Values("low", "medium", "high"),
		field.Strings("keywords_matched"),
		field.Enum("status").
			Values("active", "reviewed", "resolved").
			Default("active"),
		field.Text("note").
			Optional().
			Comment("Reviewer annotation set on status change"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Alert.
func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("classification", Classification.Type).
			Ref("alerts").
			Field("content_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("kind", "severity"),
		index.Fields("content_id"),
	}
}
