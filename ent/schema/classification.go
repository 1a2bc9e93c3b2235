package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Classification holds the schema definition for the Classification entity:
// one scored item of scraped content.
type Classification struct {
	ent.Schema
}

// Fields of the Classification.
func (Classification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("content_id").
			Unique().
			Immutable(),
		field.String("source_id").
			Comment("Upstream identifier (post or comment ID)"),
		field.Enum("kind").
			Values("post", "comment"),
		field.String("subreddit"),
		field.String("author").
			Optional(),
		field.String("parent_id").
			Optional().
			Comment("Post ID for comments, empty for posts"),
		field.Text("text").
			Comment("Normalized text the verdict was computed from (full-text searchable)"),
		field.String("text_hash").
			Comment("SHA-256 of normalized text, hex encoded; dedup key"),
		field.Enum("label").
			Values("positive", "negative", "neutral"),
		field.Float("confidence"),
		field.Float("compound"),
		field.String("model").
			Comment("Model that produced the verdict (e.g. 'distilbert', 'lexicon')"),
		field.Enum("verdict_source").
			Values("model", "fallback"),
		field.Int64("latency_ms").
			Optional(),
		field.Int("score").
			Default(0).
			Comment("Upstream vote score at scrape time"),
		field.Time("content_created_at").
			Comment("When the item was authored upstream"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the row was persisted"),
	}
}

// Edges of the Classification.
func (Classification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("alerts", Alert.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Classification.
func (Classification) Indexes() []ent.Index {
	return []ent.Index{
		// Dedup constraint: re-persisting identical text is a no-op.
		index.Fields("text_hash").
			Unique(),

		index.Fields("subreddit", "created_at"),
		index.Fields("label", "created_at"),
		index.Fields("created_at"),
	}
}
