// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ohsono/sentiwatch/ent/alert"
	"github.com/ohsono/sentiwatch/ent/classification"
	"github.com/ohsono/sentiwatch/ent/predicate"
)

// ClassificationUpdate is the builder for updating Classification entities.
type ClassificationUpdate struct {
	config
	hooks    []Hook
	mutation *ClassificationMutation
}

// Where appends a list predicates to the ClassificationUpdate builder.
func (_u *ClassificationUpdate) Where(ps ...predicate.Classification) *ClassificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *ClassificationUpdate) SetSourceID(v string) *ClassificationUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableSourceID(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ClassificationUpdate) SetKind(v classification.Kind) *ClassificationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableKind(v *classification.Kind) *ClassificationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSubreddit sets the "subreddit" field.
func (_u *ClassificationUpdate) SetSubreddit(v string) *ClassificationUpdate {
	_u.mutation.SetSubreddit(v)
	return _u
}

// SetNillableSubreddit sets the "subreddit" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableSubreddit(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetSubreddit(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ClassificationUpdate) SetAuthor(v string) *ClassificationUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableAuthor(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ClassificationUpdate) ClearAuthor() *ClassificationUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ClassificationUpdate) SetParentID(v string) *ClassificationUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableParentID(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *ClassificationUpdate) ClearParentID() *ClassificationUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetText sets the "text" field.
func (_u *ClassificationUpdate) SetText(v string) *ClassificationUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableText(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTextHash sets the "text_hash" field.
func (_u *ClassificationUpdate) SetTextHash(v string) *ClassificationUpdate {
	_u.mutation.SetTextHash(v)
	return _u
}

// SetNillableTextHash sets the "text_hash" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableTextHash(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetTextHash(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *ClassificationUpdate) SetLabel(v classification.Label) *ClassificationUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableLabel(v *classification.Label) *ClassificationUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClassificationUpdate) SetConfidence(v float64) *ClassificationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableConfidence(v *float64) *ClassificationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClassificationUpdate) AddConfidence(v float64) *ClassificationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCompound sets the "compound" field.
func (_u *ClassificationUpdate) SetCompound(v float64) *ClassificationUpdate {
	_u.mutation.ResetCompound()
	_u.mutation.SetCompound(v)
	return _u
}

// SetNillableCompound sets the "compound" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableCompound(v *float64) *ClassificationUpdate {
	if v != nil {
		_u.SetCompound(*v)
	}
	return _u
}

// AddCompound adds value to the "compound" field.
func (_u *ClassificationUpdate) AddCompound(v float64) *ClassificationUpdate {
	_u.mutation.AddCompound(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ClassificationUpdate) SetModel(v string) *ClassificationUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableModel(v *string) *ClassificationUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetVerdictSource sets the "verdict_source" field.
func (_u *ClassificationUpdate) SetVerdictSource(v classification.VerdictSource) *ClassificationUpdate {
	_u.mutation.SetVerdictSource(v)
	return _u
}

// SetNillableVerdictSource sets the "verdict_source" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableVerdictSource(v *classification.VerdictSource) *ClassificationUpdate {
	if v != nil {
		_u.SetVerdictSource(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ClassificationUpdate) SetLatencyMs(v int64) *ClassificationUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableLatencyMs(v *int64) *ClassificationUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ClassificationUpdate) AddLatencyMs(v int64) *ClassificationUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *ClassificationUpdate) ClearLatencyMs() *ClassificationUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetScore sets the "score" field.
func (_u *ClassificationUpdate) SetScore(v int) *ClassificationUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableScore(v *int) *ClassificationUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ClassificationUpdate) AddScore(v int) *ClassificationUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetContentCreatedAt sets the "content_created_at" field.
func (_u *ClassificationUpdate) SetContentCreatedAt(v time.Time) *ClassificationUpdate {
	_u.mutation.SetContentCreatedAt(v)
	return _u
}

// SetNillableContentCreatedAt sets the "content_created_at" field if the given value is not nil.
func (_u *ClassificationUpdate) SetNillableContentCreatedAt(v *time.Time) *ClassificationUpdate {
	if v != nil {
		_u.SetContentCreatedAt(*v)
	}
	return _u
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *ClassificationUpdate) AddAlertIDs(ids ...string) *ClassificationUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *ClassificationUpdate) AddAlerts(v ...*Alert) *ClassificationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// Mutation returns the ClassificationMutation object of the builder.
func (_u *ClassificationUpdate) Mutation() *ClassificationMutation {
	return _u.mutation
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *ClassificationUpdate) ClearAlerts() *ClassificationUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *ClassificationUpdate) RemoveAlertIDs(ids ...string) *ClassificationUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *ClassificationUpdate) RemoveAlerts(v ...*Alert) *ClassificationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClassificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClassificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassificationUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := classification.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Classification.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := classification.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Classification.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerdictSource(); ok {
		if err := classification.VerdictSourceValidator(v); err != nil {
			return &ValidationError{Name: "verdict_source", err: fmt.Errorf(`ent: validator failed for field "Classification.verdict_source": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classification.Table, classification.Columns, sqlgraph.NewFieldSpec(classification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(classification.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(classification.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subreddit(); ok {
		_spec.SetField(classification.FieldSubreddit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(classification.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(classification.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(classification.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(classification.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(classification.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextHash(); ok {
		_spec.SetField(classification.FieldTextHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(classification.FieldLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(classification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(classification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Compound(); ok {
		_spec.SetField(classification.FieldCompound, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompound(); ok {
		_spec.AddField(classification.FieldCompound, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(classification.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerdictSource(); ok {
		_spec.SetField(classification.FieldVerdictSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(classification.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(classification.FieldLatencyMs, field.TypeInt64, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(classification.FieldLatencyMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(classification.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(classification.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentCreatedAt(); ok {
		_spec.SetField(classification.FieldContentCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   classification.AlertsTable,
			Columns: []string{classification.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   classification.AlertsTable,
			Columns: []string{classification.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   classification.AlertsTable,
			Columns: []string{classification.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classification.EntityLabel}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClassificationUpdateOne is the builder for updating a single Classification entity.
type ClassificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClassificationMutation
}

// SetSourceID sets the "source_id" field.
func (_u *ClassificationUpdateOne) SetSourceID(v string) *ClassificationUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableSourceID(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ClassificationUpdateOne) SetKind(v classification.Kind) *ClassificationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableKind(v *classification.Kind) *ClassificationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSubreddit sets the "subreddit" field.
func (_u *ClassificationUpdateOne) SetSubreddit(v string) *ClassificationUpdateOne {
	_u.mutation.SetSubreddit(v)
	return _u
}

// SetNillableSubreddit sets the "subreddit" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableSubreddit(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetSubreddit(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ClassificationUpdateOne) SetAuthor(v string) *ClassificationUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableAuthor(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ClassificationUpdateOne) ClearAuthor() *ClassificationUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ClassificationUpdateOne) SetParentID(v string) *ClassificationUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableParentID(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *ClassificationUpdateOne) ClearParentID() *ClassificationUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetText sets the "text" field.
func (_u *ClassificationUpdateOne) SetText(v string) *ClassificationUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableText(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTextHash sets the "text_hash" field.
func (_u *ClassificationUpdateOne) SetTextHash(v string) *ClassificationUpdateOne {
	_u.mutation.SetTextHash(v)
	return _u
}

// SetNillableTextHash sets the "text_hash" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableTextHash(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetTextHash(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *ClassificationUpdateOne) SetLabel(v classification.Label) *ClassificationUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableLabel(v *classification.Label) *ClassificationUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClassificationUpdateOne) SetConfidence(v float64) *ClassificationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableConfidence(v *float64) *ClassificationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClassificationUpdateOne) AddConfidence(v float64) *ClassificationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCompound sets the "compound" field.
func (_u *ClassificationUpdateOne) SetCompound(v float64) *ClassificationUpdateOne {
	_u.mutation.ResetCompound()
	_u.mutation.SetCompound(v)
	return _u
}

// SetNillableCompound sets the "compound" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableCompound(v *float64) *ClassificationUpdateOne {
	if v != nil {
		_u.SetCompound(*v)
	}
	return _u
}

// AddCompound adds value to the "compound" field.
func (_u *ClassificationUpdateOne) AddCompound(v float64) *ClassificationUpdateOne {
	_u.mutation.AddCompound(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ClassificationUpdateOne) SetModel(v string) *ClassificationUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableModel(v *string) *ClassificationUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetVerdictSource sets the "verdict_source" field.
func (_u *ClassificationUpdateOne) SetVerdictSource(v classification.VerdictSource) *ClassificationUpdateOne {
	_u.mutation.SetVerdictSource(v)
	return _u
}

// SetNillableVerdictSource sets the "verdict_source" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableVerdictSource(v *classification.VerdictSource) *ClassificationUpdateOne {
	if v != nil {
		_u.SetVerdictSource(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ClassificationUpdateOne) SetLatencyMs(v int64) *ClassificationUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableLatencyMs(v *int64) *ClassificationUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ClassificationUpdateOne) AddLatencyMs(v int64) *ClassificationUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *ClassificationUpdateOne) ClearLatencyMs() *ClassificationUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetScore sets the "score" field.
func (_u *ClassificationUpdateOne) SetScore(v int) *ClassificationUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableScore(v *int) *ClassificationUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ClassificationUpdateOne) AddScore(v int) *ClassificationUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetContentCreatedAt sets the "content_created_at" field.
func (_u *ClassificationUpdateOne) SetContentCreatedAt(v time.Time) *ClassificationUpdateOne {
	_u.mutation.SetContentCreatedAt(v)
	return _u
}

// SetNillableContentCreatedAt sets the "content_created_at" field if the given value is not nil.
func (_u *ClassificationUpdateOne) SetNillableContentCreatedAt(v *time.Time) *ClassificationUpdateOne {
	if v != nil {
		_u.SetContentCreatedAt(*v)
	}
	return _u
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *ClassificationUpdateOne) AddAlertIDs(ids ...string) *ClassificationUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *ClassificationUpdateOne) AddAlerts(v ...*Alert) *ClassificationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// Mutation returns the ClassificationMutation object of the builder.
func (_u *ClassificationUpdateOne) Mutation() *ClassificationMutation {
	return _u.mutation
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *ClassificationUpdateOne) ClearAlerts() *ClassificationUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *ClassificationUpdateOne) RemoveAlertIDs(ids ...string) *ClassificationUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *ClassificationUpdateOne) RemoveAlerts(v ...*Alert) *ClassificationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// Where appends a list predicates to the ClassificationUpdate builder.
func (_u *ClassificationUpdateOne) Where(ps ...predicate.Classification) *ClassificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClassificationUpdateOne) Select(field string, fields ...string) *ClassificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Classification entity.
func (_u *ClassificationUpdateOne) Save(ctx context.Context) (*Classification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassificationUpdateOne) SaveX(ctx context.Context) *Classification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClassificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassificationUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := classification.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Classification.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := classification.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Classification.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerdictSource(); ok {
		if err := classification.VerdictSourceValidator(v); err != nil {
			return &ValidationError{Name: "verdict_source", err: fmt.Errorf(`ent: validator failed for field "Classification.verdict_source": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassificationUpdateOne) sqlSave(ctx context.Context) (_node *Classification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classification.Table, classification.Columns, sqlgraph.NewFieldSpec(classification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Classification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, classification.FieldID)
		for _, f := range fields {
			if !classification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != classification.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(classification.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(classification.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subreddit(); ok {
		_spec.SetField(classification.FieldSubreddit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(classification.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(classification.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(classification.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(classification.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(classification.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextHash(); ok {
		_spec.SetField(classification.FieldTextHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(classification.FieldLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(classification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(classification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Compound(); ok {
		_spec.SetField(classification.FieldCompound, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompound(); ok {
		_spec.AddField(classification.FieldCompound, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(classification.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerdictSource(); ok {
		_spec.SetField(classification.FieldVerdictSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(classification.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(classification.FieldLatencyMs, field.TypeInt64, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(classification.FieldLatencyMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(classification.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(classification.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentCreatedAt(); ok {
		_spec.SetField(classification.FieldContentCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   classification.AlertsTable,
			Columns: []string{classification.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   classification.AlertsTable,
			Columns: []string{classification.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   classification.AlertsTable,
			Columns: []string{classification.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Classification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classification.EntityLabel}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
