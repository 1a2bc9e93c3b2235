// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ohsono/sentiwatch/ent/alert"
	"github.com/ohsono/sentiwatch/ent/classification"
	"github.com/ohsono/sentiwatch/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertFields[7].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	classificationFields := schema.Classification{}.Fields()
	_ = classificationFields
	// classificationDescScore is the schema descriptor for score field.
	classificationDescScore := classificationFields[14].Descriptor()
	// classification.DefaultScore holds the default value on creation for the score field.
	classification.DefaultScore = classificationDescScore.Default.(int)
	// classificationDescCreatedAt is the schema descriptor for created_at field.
	classificationDescCreatedAt := classificationFields[16].Descriptor()
	// classification.DefaultCreatedAt holds the default value on creation for the created_at field.
	classification.DefaultCreatedAt = classificationDescCreatedAt.Default.(func() time.Time)
}
