// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ohsono/sentiwatch/ent/alert"
	"github.com/ohsono/sentiwatch/ent/classification"
)

// ClassificationCreate is the builder for creating a Classification entity.
type ClassificationCreate struct {
	config
	mutation *ClassificationMutation
	hooks    []Hook
}

// SetSourceID sets the "source_id" field.
func (_c *ClassificationCreate) SetSourceID(v string) *ClassificationCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ClassificationCreate) SetKind(v classification.Kind) *ClassificationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSubreddit sets the "subreddit" field.
func (_c *ClassificationCreate) SetSubreddit(v string) *ClassificationCreate {
	_c.mutation.SetSubreddit(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *ClassificationCreate) SetAuthor(v string) *ClassificationCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *ClassificationCreate) SetNillableAuthor(v *string) *ClassificationCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *ClassificationCreate) SetParentID(v string) *ClassificationCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *ClassificationCreate) SetNillableParentID(v *string) *ClassificationCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *ClassificationCreate) SetText(v string) *ClassificationCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTextHash sets the "text_hash" field.
func (_c *ClassificationCreate) SetTextHash(v string) *ClassificationCreate {
	_c.mutation.SetTextHash(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ClassificationCreate) SetLabel(v classification.Label) *ClassificationCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ClassificationCreate) SetConfidence(v float64) *ClassificationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetCompound sets the "compound" field.
func (_c *ClassificationCreate) SetCompound(v float64) *ClassificationCreate {
	_c.mutation.SetCompound(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ClassificationCreate) SetModel(v string) *ClassificationCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetVerdictSource sets the "verdict_source" field.
func (_c *ClassificationCreate) SetVerdictSource(v classification.VerdictSource) *ClassificationCreate {
	_c.mutation.SetVerdictSource(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ClassificationCreate) SetLatencyMs(v int64) *ClassificationCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ClassificationCreate) SetNillableLatencyMs(v *int64) *ClassificationCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ClassificationCreate) SetScore(v int) *ClassificationCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ClassificationCreate) SetNillableScore(v *int) *ClassificationCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetContentCreatedAt sets the "content_created_at" field.
func (_c *ClassificationCreate) SetContentCreatedAt(v time.Time) *ClassificationCreate {
	_c.mutation.SetContentCreatedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClassificationCreate) SetCreatedAt(v time.Time) *ClassificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClassificationCreate) SetNillableCreatedAt(v *time.Time) *ClassificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClassificationCreate) SetID(v string) *ClassificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_c *ClassificationCreate) AddAlertIDs(ids ...string) *ClassificationCreate {
	_c.mutation.AddAlertIDs(ids...)
	return _c
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_c *ClassificationCreate) AddAlerts(v ...*Alert) *ClassificationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertIDs(ids...)
}

// Mutation returns the ClassificationMutation object of the builder.
func (_c *ClassificationCreate) Mutation() *ClassificationMutation {
	return _c.mutation
}

// Save creates the Classification in the database.
func (_c *ClassificationCreate) Save(ctx context.Context) (*Classification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClassificationCreate) SaveX(ctx context.Context) *Classification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClassificationCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := classification.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := classification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClassificationCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Classification.source_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Classification.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := classification.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Classification.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subreddit(); !ok {
		return &ValidationError{Name: "subreddit", err: errors.New(`ent: missing required field "Classification.subreddit"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Classification.text"`)}
	}
	if _, ok := _c.mutation.TextHash(); !ok {
		return &ValidationError{Name: "text_hash", err: errors.New(`ent: missing required field "Classification.text_hash"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "Classification.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := classification.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Classification.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Classification.confidence"`)}
	}
	if _, ok := _c.mutation.Compound(); !ok {
		return &ValidationError{Name: "compound", err: errors.New(`ent: missing required field "Classification.compound"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Classification.model"`)}
	}
	if _, ok := _c.mutation.VerdictSource(); !ok {
		return &ValidationError{Name: "verdict_source", err: errors.New(`ent: missing required field "Classification.verdict_source"`)}
	}
	if v, ok := _c.mutation.VerdictSource(); ok {
		if err := classification.VerdictSourceValidator(v); err != nil {
			return &ValidationError{Name: "verdict_source", err: fmt.Errorf(`ent: validator failed for field "Classification.verdict_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Classification.score"`)}
	}
	if _, ok := _c.mutation.ContentCreatedAt(); !ok {
		return &ValidationError{Name: "content_created_at", err: errors.New(`ent: missing required field "Classification.content_created_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Classification.created_at"`)}
	}
	return nil
}

func (_c *ClassificationCreate) sqlSave(ctx context.Context) (*Classification, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Classification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClassificationCreate) createSpec() (*Classification, *sqlgraph.CreateSpec) {
	var (
		_node = &Classification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(classification.Table, sqlgraph.NewFieldSpec(classification.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(classification.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(classification.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Subreddit(); ok {
		_spec.SetField(classification.FieldSubreddit, field.TypeString, value)
		_node.Subreddit = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(classification.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(classification.FieldParentID, field.TypeString, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(classification.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.TextHash(); ok {
		_spec.SetField(classification.FieldTextHash, field.TypeString, value)
		_node.TextHash = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(classification.FieldLabel, field.TypeEnum, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(classification.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Compound(); ok {
		_spec.SetField(classification.FieldCompound, field.TypeFloat64, value)
		_node.Compound = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(classification.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.VerdictSource(); ok {
		_spec.SetField(classification.FieldVerdictSource, field.TypeEnum, value)
		_node.VerdictSource = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(classification.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(classification.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.ContentCreatedAt(); ok {
		_spec.SetField(classification.FieldContentCreatedAt, field.TypeTime, value)
		_node.ContentCreatedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(classification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClassificationCreateBulk is the builder for creating many Classification entities in bulk.
type ClassificationCreateBulk struct {
	config
	err      error
	builders []*ClassificationCreate
}

// Save creates the Classification entities in the database.
func (_c *ClassificationCreateBulk) Save(ctx context.Context) ([]*Classification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Classification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClassificationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClassificationCreateBulk) SaveX(ctx context.Context) []*Classification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
