// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ohsono/sentiwatch/ent/alert"
	"github.com/ohsono/sentiwatch/ent/predicate"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AlertUpdate) SetKind(v alert.Kind) *AlertUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableKind(v *alert.Kind) *AlertUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdate) SetSeverity(v alert.Severity) *AlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSeverity(v *alert.Severity) *AlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetKeywordsMatched sets the "keywords_matched" field.
func (_u *AlertUpdate) SetKeywordsMatched(v []string) *AlertUpdate {
	_u.mutation.SetKeywordsMatched(v)
	return _u
}

// AppendKeywordsMatched appends value to the "keywords_matched" field.
func (_u *AlertUpdate) AppendKeywordsMatched(v []string) *AlertUpdate {
	_u.mutation.AppendKeywordsMatched(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdate) SetStatus(v alert.Status) *AlertUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableStatus(v *alert.Status) *AlertUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *AlertUpdate) SetNote(v string) *AlertUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableNote(v *string) *AlertUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *AlertUpdate) ClearNote() *AlertUpdate {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := alert.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Alert.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	if _u.mutation.ClassificationCleared() && len(_u.mutation.ClassificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Alert.classification"`)
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(alert.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.KeywordsMatched(); ok {
		_spec.SetField(alert.FieldKeywordsMatched, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywordsMatched(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alert.FieldKeywordsMatched, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(alert.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(alert.FieldNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetKind sets the "kind" field.
func (_u *AlertUpdateOne) SetKind(v alert.Kind) *AlertUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableKind(v *alert.Kind) *AlertUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdateOne) SetSeverity(v alert.Severity) *AlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSeverity(v *alert.Severity) *AlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetKeywordsMatched sets the "keywords_matched" field.
func (_u *AlertUpdateOne) SetKeywordsMatched(v []string) *AlertUpdateOne {
	_u.mutation.SetKeywordsMatched(v)
	return _u
}

// AppendKeywordsMatched appends value to the "keywords_matched" field.
func (_u *AlertUpdateOne) AppendKeywordsMatched(v []string) *AlertUpdateOne {
	_u.mutation.AppendKeywordsMatched(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdateOne) SetStatus(v alert.Status) *AlertUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableStatus(v *alert.Status) *AlertUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *AlertUpdateOne) SetNote(v string) *AlertUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableNote(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *AlertUpdateOne) ClearNote() *AlertUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := alert.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Alert.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	if _u.mutation.ClassificationCleared() && len(_u.mutation.ClassificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Alert.classification"`)
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(alert.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.KeywordsMatched(); ok {
		_spec.SetField(alert.FieldKeywordsMatched, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywordsMatched(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alert.FieldKeywordsMatched, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(alert.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(alert.FieldNote, field.TypeString)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
