// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"mental_health", "stress", "academic", "harassment"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "keywords_matched", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "reviewed", "resolved"}, Default: "active"},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "content_id", Type: field.TypeString},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alerts_classifications_alerts",
				Columns:    []*schema.Column{AlertsColumns[7]},
				RefColumns: []*schema.Column{ClassificationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alert_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[4], AlertsColumns[6]},
			},
			{
				Name:    "alert_kind_severity",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[1], AlertsColumns[2]},
			},
			{
				Name:    "alert_content_id",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[7]},
			},
		},
	}
	// ClassificationsColumns holds the columns for the "classifications" table.
	ClassificationsColumns = []*schema.Column{
		{Name: "content_id", Type: field.TypeString, Unique: true},
		{Name: "source_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"post", "comment"}},
		{Name: "subreddit", Type: field.TypeString},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "text_hash", Type: field.TypeString},
		{Name: "label", Type: field.TypeEnum, Enums: []string{"positive", "negative", "neutral"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "compound", Type: field.TypeFloat64},
		{Name: "model", Type: field.TypeString},
		{Name: "verdict_source", Type: field.TypeEnum, Enums: []string{"model", "fallback"}},
		{Name: "latency_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "content_created_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ClassificationsTable holds the schema information for the "classifications" table.
	ClassificationsTable = &schema.Table{
		Name:       "classifications",
		Columns:    ClassificationsColumns,
		PrimaryKey: []*schema.Column{ClassificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "classification_text_hash",
				Unique:  true,
				Columns: []*schema.Column{ClassificationsColumns[7]},
			},
			{
				Name:    "classification_subreddit_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClassificationsColumns[3], ClassificationsColumns[16]},
			},
			{
				Name:    "classification_label_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClassificationsColumns[8], ClassificationsColumns[16]},
			},
			{
				Name:    "classification_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClassificationsColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		ClassificationsTable,
	}
)

func init() {
	AlertsTable.ForeignKeys[0].RefTable = ClassificationsTable
}
