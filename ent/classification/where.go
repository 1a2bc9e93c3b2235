// Code generated by ent, DO NOT EDIT.

package classification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ohsono/sentiwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldSourceID, v))
}

// Subreddit applies equality check predicate on the "subreddit" field. It's identical to SubredditEQ.
func Subreddit(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldSubreddit, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldAuthor, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldParentID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldText, v))
}

// TextHash applies equality check predicate on the "text_hash" field. It's identical to TextHashEQ.
func TextHash(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldTextHash, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldConfidence, v))
}

// Compound applies equality check predicate on the "compound" field. It's identical to CompoundEQ.
func Compound(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldCompound, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldModel, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldLatencyMs, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldScore, v))
}

// ContentCreatedAt applies equality check predicate on the "content_created_at" field. It's identical to ContentCreatedAtEQ.
func ContentCreatedAt(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldContentCreatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldSourceID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldKind, vs...))
}

// SubredditEQ applies the EQ predicate on the "subreddit" field.
func SubredditEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldSubreddit, v))
}

// SubredditNEQ applies the NEQ predicate on the "subreddit" field.
func SubredditNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldSubreddit, v))
}

// SubredditIn applies the In predicate on the "subreddit" field.
func SubredditIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldSubreddit, vs...))
}

// SubredditNotIn applies the NotIn predicate on the "subreddit" field.
func SubredditNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldSubreddit, vs...))
}

// SubredditGT applies the GT predicate on the "subreddit" field.
func SubredditGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldSubreddit, v))
}

// SubredditGTE applies the GTE predicate on the "subreddit" field.
func SubredditGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldSubreddit, v))
}

// SubredditLT applies the LT predicate on the "subreddit" field.
func SubredditLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldSubreddit, v))
}

// SubredditLTE applies the LTE predicate on the "subreddit" field.
func SubredditLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldSubreddit, v))
}

// SubredditContains applies the Contains predicate on the "subreddit" field.
func SubredditContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldSubreddit, v))
}

// SubredditHasPrefix applies the HasPrefix predicate on the "subreddit" field.
func SubredditHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldSubreddit, v))
}

// SubredditHasSuffix applies the HasSuffix predicate on the "subreddit" field.
func SubredditHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldSubreddit, v))
}

// SubredditEqualFold applies the EqualFold predicate on the "subreddit" field.
func SubredditEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldSubreddit, v))
}

// SubredditContainsFold applies the ContainsFold predicate on the "subreddit" field.
func SubredditContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldSubreddit, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Classification {
	return predicate.Classification(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Classification {
	return predicate.Classification(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldAuthor, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Classification {
	return predicate.Classification(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Classification {
	return predicate.Classification(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldParentID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldText, v))
}

// TextHashEQ applies the EQ predicate on the "text_hash" field.
func TextHashEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldTextHash, v))
}

// TextHashNEQ applies the NEQ predicate on the "text_hash" field.
func TextHashNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldTextHash, v))
}

// TextHashIn applies the In predicate on the "text_hash" field.
func TextHashIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldTextHash, vs...))
}

// TextHashNotIn applies the NotIn predicate on the "text_hash" field.
func TextHashNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldTextHash, vs...))
}

// TextHashGT applies the GT predicate on the "text_hash" field.
func TextHashGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldTextHash, v))
}

// TextHashGTE applies the GTE predicate on the "text_hash" field.
func TextHashGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldTextHash, v))
}

// TextHashLT applies the LT predicate on the "text_hash" field.
func TextHashLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldTextHash, v))
}

// TextHashLTE applies the LTE predicate on the "text_hash" field.
func TextHashLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldTextHash, v))
}

// TextHashContains applies the Contains predicate on the "text_hash" field.
func TextHashContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldTextHash, v))
}

// TextHashHasPrefix applies the HasPrefix predicate on the "text_hash" field.
func TextHashHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldTextHash, v))
}

// TextHashHasSuffix applies the HasSuffix predicate on the "text_hash" field.
func TextHashHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldTextHash, v))
}

// TextHashEqualFold applies the EqualFold predicate on the "text_hash" field.
func TextHashEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldTextHash, v))
}

// TextHashContainsFold applies the ContainsFold predicate on the "text_hash" field.
func TextHashContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldTextHash, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v Label) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v Label) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...Label) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...Label) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldLabel, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldConfidence, v))
}

// CompoundEQ applies the EQ predicate on the "compound" field.
func CompoundEQ(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldCompound, v))
}

// CompoundNEQ applies the NEQ predicate on the "compound" field.
func CompoundNEQ(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldCompound, v))
}

// CompoundIn applies the In predicate on the "compound" field.
func CompoundIn(vs ...float64) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldCompound, vs...))
}

// CompoundNotIn applies the NotIn predicate on the "compound" field.
func CompoundNotIn(vs ...float64) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldCompound, vs...))
}

// CompoundGT applies the GT predicate on the "compound" field.
func CompoundGT(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldCompound, v))
}

// CompoundGTE applies the GTE predicate on the "compound" field.
func CompoundGTE(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldCompound, v))
}

// CompoundLT applies the LT predicate on the "compound" field.
func CompoundLT(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldCompound, v))
}

// CompoundLTE applies the LTE predicate on the "compound" field.
func CompoundLTE(v float64) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldCompound, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Classification {
	return predicate.Classification(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Classification {
	return predicate.Classification(sql.FieldContainsFold(FieldModel, v))
}

// VerdictSourceEQ applies the EQ predicate on the "verdict_source" field.
func VerdictSourceEQ(v VerdictSource) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldVerdictSource, v))
}

// VerdictSourceNEQ applies the NEQ predicate on the "verdict_source" field.
func VerdictSourceNEQ(v VerdictSource) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldVerdictSource, v))
}

// VerdictSourceIn applies the In predicate on the "verdict_source" field.
func VerdictSourceIn(vs ...VerdictSource) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldVerdictSource, vs...))
}

// VerdictSourceNotIn applies the NotIn predicate on the "verdict_source" field.
func VerdictSourceNotIn(vs ...VerdictSource) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldVerdictSource, vs...))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldLatencyMs, v))
}

// LatencyMsIsNil applies the IsNil predicate on the "latency_ms" field.
func LatencyMsIsNil() predicate.Classification {
	return predicate.Classification(sql.FieldIsNull(FieldLatencyMs))
}

// LatencyMsNotNil applies the NotNil predicate on the "latency_ms" field.
func LatencyMsNotNil() predicate.Classification {
	return predicate.Classification(sql.FieldNotNull(FieldLatencyMs))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldScore, v))
}

// ContentCreatedAtEQ applies the EQ predicate on the "content_created_at" field.
func ContentCreatedAtEQ(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldContentCreatedAt, v))
}

// ContentCreatedAtNEQ applies the NEQ predicate on the "content_created_at" field.
func ContentCreatedAtNEQ(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldContentCreatedAt, v))
}

// ContentCreatedAtIn applies the In predicate on the "content_created_at" field.
func ContentCreatedAtIn(vs ...time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldContentCreatedAt, vs...))
}

// ContentCreatedAtNotIn applies the NotIn predicate on the "content_created_at" field.
func ContentCreatedAtNotIn(vs ...time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldContentCreatedAt, vs...))
}

// ContentCreatedAtGT applies the GT predicate on the "content_created_at" field.
func ContentCreatedAtGT(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldContentCreatedAt, v))
}

// ContentCreatedAtGTE applies the GTE predicate on the "content_created_at" field.
func ContentCreatedAtGTE(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldContentCreatedAt, v))
}

// ContentCreatedAtLT applies the LT predicate on the "content_created_at" field.
func ContentCreatedAtLT(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldContentCreatedAt, v))
}

// ContentCreatedAtLTE applies the LTE predicate on the "content_created_at" field.
func ContentCreatedAtLTE(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldContentCreatedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Classification {
	return predicate.Classification(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAlerts applies the HasEdge predicate on the "alerts" edge.
func HasAlerts() predicate.Classification {
	return predicate.Classification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertsWith applies the HasEdge predicate on the "alerts" edge with a given conditions (other predicates).
func HasAlertsWith(preds ...predicate.Alert) predicate.Classification {
	return predicate.Classification(func(s *sql.Selector) {
		step := newAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Classification) predicate.Classification {
	return predicate.Classification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Classification) predicate.Classification {
	return predicate.Classification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Classification) predicate.Classification {
	return predicate.Classification(sql.NotPredicates(p))
}
