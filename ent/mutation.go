// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ohsono/sentiwatch/ent/alert"
	"github.com/ohsono/sentiwatch/ent/classification"
	"github.com/ohsono/sentiwatch/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert          = "Alert"
	TypeClassification = "Classification"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	kind                   *alert.Kind
	severity               *alert.Severity
	keywords_matched       *[]string
	appendkeywords_matched []string
	status                 *alert.Status
	note                   *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	classification         *string
	clearedclassification  bool
	done                   bool
	oldValue               func(context.Context) (*Alert, error)
	predicates             []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id string) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentID sets the "content_id" field.
func (m *AlertMutation) SetContentID(s string) {
	m.classification = &s
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *AlertMutation) ContentID() (r string, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldContentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *AlertMutation) ResetContentID() {
	m.classification = nil
}

// SetKind sets the "kind" field.
func (m *AlertMutation) SetKind(a alert.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AlertMutation) Kind() (r alert.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldKind(ctx context.Context) (v alert.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AlertMutation) ResetKind() {
	m.kind = nil
}

// SetSeverity sets the "severity" field.
func (m *AlertMutation) SetSeverity(a alert.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AlertMutation) Severity() (r alert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSeverity(ctx context.Context) (v alert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetKeywordsMatched sets the "keywords_matched" field.
func (m *AlertMutation) SetKeywordsMatched(s []string) {
	m.keywords_matched = &s
	m.appendkeywords_matched = nil
}

// KeywordsMatched returns the value of the "keywords_matched" field in the mutation.
func (m *AlertMutation) KeywordsMatched() (r []string, exists bool) {
	v := m.keywords_matched
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywordsMatched returns the old "keywords_matched" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldKeywordsMatched(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywordsMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywordsMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywordsMatched: %w", err)
	}
	return oldValue.KeywordsMatched, nil
}

// AppendKeywordsMatched adds s to the "keywords_matched" field.
func (m *AlertMutation) AppendKeywordsMatched(s []string) {
	m.appendkeywords_matched = append(m.appendkeywords_matched, s...)
}

// AppendedKeywordsMatched returns the list of values that were appended to the "keywords_matched" field in this mutation.
func (m *AlertMutation) AppendedKeywordsMatched() ([]string, bool) {
	if len(m.appendkeywords_matched) == 0 {
		return nil, false
	}
	return m.appendkeywords_matched, true
}

// ResetKeywordsMatched resets all changes to the "keywords_matched" field.
func (m *AlertMutation) ResetKeywordsMatched() {
	m.keywords_matched = nil
	m.appendkeywords_matched = nil
}

// SetStatus sets the "status" field.
func (m *AlertMutation) SetStatus(a alert.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertMutation) Status() (r alert.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldStatus(ctx context.Context) (v alert.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertMutation) ResetStatus() {
	m.status = nil
}

// SetNote sets the "note" field.
func (m *AlertMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *AlertMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *AlertMutation) ClearNote() {
	m.note = nil
	m.clearedFields[alert.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *AlertMutation) NoteCleared() bool {
	_, ok := m.clearedFields[alert.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *AlertMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, alert.FieldNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClassificationID sets the "classification" edge to the Classification entity by id.
func (m *AlertMutation) SetClassificationID(id string) {
	m.classification = &id
}

// ClearClassification clears the "classification" edge to the Classification entity.
func (m *AlertMutation) ClearClassification() {
	m.clearedclassification = true
	m.clearedFields[alert.FieldContentID] = struct{}{}
}

// ClassificationCleared reports if the "classification" edge to the Classification entity was cleared.
func (m *AlertMutation) ClassificationCleared() bool {
	return m.clearedclassification
}

// ClassificationID returns the "classification" edge ID in the mutation.
func (m *AlertMutation) ClassificationID() (id string, exists bool) {
	if m.classification != nil {
		return *m.classification, true
	}
	return
}

// ClassificationIDs returns the "classification" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClassificationID instead. It exists only for internal usage by the builders.
func (m *AlertMutation) ClassificationIDs() (ids []string) {
	if id := m.classification; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClassification resets all changes to the "classification" edge.
func (m *AlertMutation) ResetClassification() {
	m.classification = nil
	m.clearedclassification = false
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.classification != nil {
		fields = append(fields, alert.FieldContentID)
	}
	if m.kind != nil {
		fields = append(fields, alert.FieldKind)
	}
	if m.severity != nil {
		fields = append(fields, alert.FieldSeverity)
	}
	if m.keywords_matched != nil {
		fields = append(fields, alert.FieldKeywordsMatched)
	}
	if m.status != nil {
		fields = append(fields, alert.FieldStatus)
	}
	if m.note != nil {
		fields = append(fields, alert.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, alert.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldContentID:
		return m.ContentID()
	case alert.FieldKind:
		return m.Kind()
	case alert.FieldSeverity:
		return m.Severity()
	case alert.FieldKeywordsMatched:
		return m.KeywordsMatched()
	case alert.FieldStatus:
		return m.Status()
	case alert.FieldNote:
		return m.Note()
	case alert.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldContentID:
		return m.OldContentID(ctx)
	case alert.FieldKind:
		return m.OldKind(ctx)
	case alert.FieldSeverity:
		return m.OldSeverity(ctx)
	case alert.FieldKeywordsMatched:
		return m.OldKeywordsMatched(ctx)
	case alert.FieldStatus:
		return m.OldStatus(ctx)
	case alert.FieldNote:
		return m.OldNote(ctx)
	case alert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case alert.FieldKind:
		v, ok := value.(alert.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case alert.FieldSeverity:
		v, ok := value.(alert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case alert.FieldKeywordsMatched:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywordsMatched(v)
		return nil
	case alert.FieldStatus:
		v, ok := value.(alert.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alert.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case alert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldNote) {
		fields = append(fields, alert.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldContentID:
		m.ResetContentID()
		return nil
	case alert.FieldKind:
		m.ResetKind()
		return nil
	case alert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case alert.FieldKeywordsMatched:
		m.ResetKeywordsMatched()
		return nil
	case alert.FieldStatus:
		m.ResetStatus()
		return nil
	case alert.FieldNote:
		m.ResetNote()
		return nil
	case alert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.classification != nil {
		edges = append(edges, alert.EdgeClassification)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alert.EdgeClassification:
		if id := m.classification; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclassification {
		edges = append(edges, alert.EdgeClassification)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	switch name {
	case alert.EdgeClassification:
		return m.clearedclassification
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	switch name {
	case alert.EdgeClassification:
		m.ClearClassification()
		return nil
	}
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	switch name {
	case alert.EdgeClassification:
		m.ResetClassification()
		return nil
	}
	return fmt.Errorf("unknown Alert edge %s", name)
}

// ClassificationMutation represents an operation that mutates the Classification nodes in the graph.
type ClassificationMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	source_id          *string
	kind               *classification.Kind
	subreddit          *string
	author             *string
	parent_id          *string
	text               *string
	text_hash          *string
	label              *classification.Label
	confidence         *float64
	addconfidence      *float64
	compound           *float64
	addcompound        *float64
	model              *string
	verdict_source     *classification.VerdictSource
	latency_ms         *int64
	addlatency_ms      *int64
	score              *int
	addscore           *int
	content_created_at *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	alerts             map[string]struct{}
	removedalerts      map[string]struct{}
	clearedalerts      bool
	done               bool
	oldValue           func(context.Context) (*Classification, error)
	predicates         []predicate.Classification
}

var _ ent.Mutation = (*ClassificationMutation)(nil)

// classificationOption allows management of the mutation configuration using functional options.
type classificationOption func(*ClassificationMutation)

// newClassificationMutation creates new mutation for the Classification entity.
func newClassificationMutation(c config, op Op, opts ...classificationOption) *ClassificationMutation {
	m := &ClassificationMutation{
		config:        c,
		op:            op,
		typ:           TypeClassification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClassificationID sets the ID field of the mutation.
func withClassificationID(id string) classificationOption {
	return func(m *ClassificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Classification
		)
		m.oldValue = func(ctx context.Context) (*Classification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Classification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClassification sets the old Classification of the mutation.
func withClassification(node *Classification) classificationOption {
	return func(m *ClassificationMutation) {
		m.oldValue = func(context.Context) (*Classification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClassificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClassificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Classification entities.
func (m *ClassificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClassificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClassificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Classification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceID sets the "source_id" field.
func (m *ClassificationMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *ClassificationMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *ClassificationMutation) ResetSourceID() {
	m.source_id = nil
}

// SetKind sets the "kind" field.
func (m *ClassificationMutation) SetKind(c classification.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ClassificationMutation) Kind() (r classification.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldKind(ctx context.Context) (v classification.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ClassificationMutation) ResetKind() {
	m.kind = nil
}

// SetSubreddit sets the "subreddit" field.
func (m *ClassificationMutation) SetSubreddit(s string) {
	m.subreddit = &s
}

// Subreddit returns the value of the "subreddit" field in the mutation.
func (m *ClassificationMutation) Subreddit() (r string, exists bool) {
	v := m.subreddit
	if v == nil {
		return
	}
	return *v, true
}

// OldSubreddit returns the old "subreddit" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldSubreddit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubreddit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubreddit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubreddit: %w", err)
	}
	return oldValue.Subreddit, nil
}

// ResetSubreddit resets all changes to the "subreddit" field.
func (m *ClassificationMutation) ResetSubreddit() {
	m.subreddit = nil
}

// SetAuthor sets the "author" field.
func (m *ClassificationMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ClassificationMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *ClassificationMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[classification.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *ClassificationMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[classification.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *ClassificationMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, classification.FieldAuthor)
}

// SetParentID sets the "parent_id" field.
func (m *ClassificationMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *ClassificationMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldParentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *ClassificationMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[classification.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *ClassificationMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[classification.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *ClassificationMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, classification.FieldParentID)
}

// SetText sets the "text" field.
func (m *ClassificationMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ClassificationMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ClassificationMutation) ResetText() {
	m.text = nil
}

// SetTextHash sets the "text_hash" field.
func (m *ClassificationMutation) SetTextHash(s string) {
	m.text_hash = &s
}

// TextHash returns the value of the "text_hash" field in the mutation.
func (m *ClassificationMutation) TextHash() (r string, exists bool) {
	v := m.text_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTextHash returns the old "text_hash" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldTextHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextHash: %w", err)
	}
	return oldValue.TextHash, nil
}

// ResetTextHash resets all changes to the "text_hash" field.
func (m *ClassificationMutation) ResetTextHash() {
	m.text_hash = nil
}

// SetLabel sets the "label" field.
func (m *ClassificationMutation) SetLabel(c classification.Label) {
	m.label = &c
}

// Label returns the value of the "label" field in the mutation.
func (m *ClassificationMutation) Label() (r classification.Label, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldLabel(ctx context.Context) (v classification.Label, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *ClassificationMutation) ResetLabel() {
	m.label = nil
}

// SetConfidence sets the "confidence" field.
func (m *ClassificationMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ClassificationMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ClassificationMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ClassificationMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ClassificationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCompound sets the "compound" field.
func (m *ClassificationMutation) SetCompound(f float64) {
	m.compound = &f
	m.addcompound = nil
}

// Compound returns the value of the "compound" field in the mutation.
func (m *ClassificationMutation) Compound() (r float64, exists bool) {
	v := m.compound
	if v == nil {
		return
	}
	return *v, true
}

// OldCompound returns the old "compound" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldCompound(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompound: %w", err)
	}
	return oldValue.Compound, nil
}

// AddCompound adds f to the "compound" field.
func (m *ClassificationMutation) AddCompound(f float64) {
	if m.addcompound != nil {
		*m.addcompound += f
	} else {
		m.addcompound = &f
	}
}

// AddedCompound returns the value that was added to the "compound" field in this mutation.
func (m *ClassificationMutation) AddedCompound() (r float64, exists bool) {
	v := m.addcompound
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompound resets all changes to the "compound" field.
func (m *ClassificationMutation) ResetCompound() {
	m.compound = nil
	m.addcompound = nil
}

// SetModel sets the "model" field.
func (m *ClassificationMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ClassificationMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ClassificationMutation) ResetModel() {
	m.model = nil
}

// SetVerdictSource sets the "verdict_source" field.
func (m *ClassificationMutation) SetVerdictSource(cs classification.VerdictSource) {
	m.verdict_source = &cs
}

// VerdictSource returns the value of the "verdict_source" field in the mutation.
func (m *ClassificationMutation) VerdictSource() (r classification.VerdictSource, exists bool) {
	v := m.verdict_source
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdictSource returns the old "verdict_source" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldVerdictSource(ctx context.Context) (v classification.VerdictSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdictSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdictSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdictSource: %w", err)
	}
	return oldValue.VerdictSource, nil
}

// ResetVerdictSource resets all changes to the "verdict_source" field.
func (m *ClassificationMutation) ResetVerdictSource() {
	m.verdict_source = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ClassificationMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ClassificationMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ClassificationMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ClassificationMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *ClassificationMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[classification.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *ClassificationMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[classification.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ClassificationMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, classification.FieldLatencyMs)
}

// SetScore sets the "score" field.
func (m *ClassificationMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ClassificationMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ClassificationMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ClassificationMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ClassificationMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetContentCreatedAt sets the "content_created_at" field.
func (m *ClassificationMutation) SetContentCreatedAt(t time.Time) {
	m.content_created_at = &t
}

// ContentCreatedAt returns the value of the "content_created_at" field in the mutation.
func (m *ClassificationMutation) ContentCreatedAt() (r time.Time, exists bool) {
	v := m.content_created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldContentCreatedAt returns the old "content_created_at" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldContentCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentCreatedAt: %w", err)
	}
	return oldValue.ContentCreatedAt, nil
}

// ResetContentCreatedAt resets all changes to the "content_created_at" field.
func (m *ClassificationMutation) ResetContentCreatedAt() {
	m.content_created_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClassificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClassificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClassificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by ids.
func (m *ClassificationMutation) AddAlertIDs(ids ...string) {
	if m.alerts == nil {
		m.alerts = make(map[string]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the Alert entity.
func (m *ClassificationMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the Alert entity was cleared.
func (m *ClassificationMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the Alert entity by IDs.
func (m *ClassificationMutation) RemoveAlertIDs(ids ...string) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the Alert entity.
func (m *ClassificationMutation) RemovedAlertsIDs() (ids []string) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *ClassificationMutation) AlertsIDs() (ids []string) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *ClassificationMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// Where appends a list predicates to the ClassificationMutation builder.
func (m *ClassificationMutation) Where(ps ...predicate.Classification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClassificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClassificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Classification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClassificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClassificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Classification).
func (m *ClassificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClassificationMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.source_id != nil {
		fields = append(fields, classification.FieldSourceID)
	}
	if m.kind != nil {
		fields = append(fields, classification.FieldKind)
	}
	if m.subreddit != nil {
		fields = append(fields, classification.FieldSubreddit)
	}
	if m.author != nil {
		fields = append(fields, classification.FieldAuthor)
	}
	if m.parent_id != nil {
		fields = append(fields, classification.FieldParentID)
	}
	if m.text != nil {
		fields = append(fields, classification.FieldText)
	}
	if m.text_hash != nil {
		fields = append(fields, classification.FieldTextHash)
	}
	if m.label != nil {
		fields = append(fields, classification.FieldLabel)
	}
	if m.confidence != nil {
		fields = append(fields, classification.FieldConfidence)
	}
	if m.compound != nil {
		fields = append(fields, classification.FieldCompound)
	}
	if m.model != nil {
		fields = append(fields, classification.FieldModel)
	}
	if m.verdict_source != nil {
		fields = append(fields, classification.FieldVerdictSource)
	}
	if m.latency_ms != nil {
		fields = append(fields, classification.FieldLatencyMs)
	}
	if m.score != nil {
		fields = append(fields, classification.FieldScore)
	}
	if m.content_created_at != nil {
		fields = append(fields, classification.FieldContentCreatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, classification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClassificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case classification.FieldSourceID:
		return m.SourceID()
	case classification.FieldKind:
		return m.Kind()
	case classification.FieldSubreddit:
		return m.Subreddit()
	case classification.FieldAuthor:
		return m.Author()
	case classification.FieldParentID:
		return m.ParentID()
	case classification.FieldText:
		return m.Text()
	case classification.FieldTextHash:
		return m.TextHash()
	case classification.FieldLabel:
		return m.Label()
	case classification.FieldConfidence:
		return m.Confidence()
	case classification.FieldCompound:
		return m.Compound()
	case classification.FieldModel:
		return m.Model()
	case classification.FieldVerdictSource:
		return m.VerdictSource()
	case classification.FieldLatencyMs:
		return m.LatencyMs()
	case classification.FieldScore:
		return m.Score()
	case classification.FieldContentCreatedAt:
		return m.ContentCreatedAt()
	case classification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClassificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case classification.FieldSourceID:
		return m.OldSourceID(ctx)
	case classification.FieldKind:
		return m.OldKind(ctx)
	case classification.FieldSubreddit:
		return m.OldSubreddit(ctx)
	case classification.FieldAuthor:
		return m.OldAuthor(ctx)
	case classification.FieldParentID:
		return m.OldParentID(ctx)
	case classification.FieldText:
		return m.OldText(ctx)
	case classification.FieldTextHash:
		return m.OldTextHash(ctx)
	case classification.FieldLabel:
		return m.OldLabel(ctx)
	case classification.FieldConfidence:
		return m.OldConfidence(ctx)
	case classification.FieldCompound:
		return m.OldCompound(ctx)
	case classification.FieldModel:
		return m.OldModel(ctx)
	case classification.FieldVerdictSource:
		return m.OldVerdictSource(ctx)
	case classification.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case classification.FieldScore:
		return m.OldScore(ctx)
	case classification.FieldContentCreatedAt:
		return m.OldContentCreatedAt(ctx)
	case classification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Classification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case classification.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case classification.FieldKind:
		v, ok := value.(classification.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case classification.FieldSubreddit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubreddit(v)
		return nil
	case classification.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case classification.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case classification.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case classification.FieldTextHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextHash(v)
		return nil
	case classification.FieldLabel:
		v, ok := value.(classification.Label)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case classification.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case classification.FieldCompound:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompound(v)
		return nil
	case classification.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case classification.FieldVerdictSource:
		v, ok := value.(classification.VerdictSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdictSource(v)
		return nil
	case classification.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case classification.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case classification.FieldContentCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentCreatedAt(v)
		return nil
	case classification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Classification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClassificationMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, classification.FieldConfidence)
	}
	if m.addcompound != nil {
		fields = append(fields, classification.FieldCompound)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, classification.FieldLatencyMs)
	}
	if m.addscore != nil {
		fields = append(fields, classification.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClassificationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case classification.FieldConfidence:
		return m.AddedConfidence()
	case classification.FieldCompound:
		return m.AddedCompound()
	case classification.FieldLatencyMs:
		return m.AddedLatencyMs()
	case classification.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case classification.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case classification.FieldCompound:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompound(v)
		return nil
	case classification.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case classification.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Classification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClassificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(classification.FieldAuthor) {
		fields = append(fields, classification.FieldAuthor)
	}
	if m.FieldCleared(classification.FieldParentID) {
		fields = append(fields, classification.FieldParentID)
	}
	if m.FieldCleared(classification.FieldLatencyMs) {
		fields = append(fields, classification.FieldLatencyMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClassificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClassificationMutation) ClearField(name string) error {
	switch name {
	case classification.FieldAuthor:
		m.ClearAuthor()
		return nil
	case classification.FieldParentID:
		m.ClearParentID()
		return nil
	case classification.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	}
	return fmt.Errorf("unknown Classification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClassificationMutation) ResetField(name string) error {
	switch name {
	case classification.FieldSourceID:
		m.ResetSourceID()
		return nil
	case classification.FieldKind:
		m.ResetKind()
		return nil
	case classification.FieldSubreddit:
		m.ResetSubreddit()
		return nil
	case classification.FieldAuthor:
		m.ResetAuthor()
		return nil
	case classification.FieldParentID:
		m.ResetParentID()
		return nil
	case classification.FieldText:
		m.ResetText()
		return nil
	case classification.FieldTextHash:
		m.ResetTextHash()
		return nil
	case classification.FieldLabel:
		m.ResetLabel()
		return nil
	case classification.FieldConfidence:
		m.ResetConfidence()
		return nil
	case classification.FieldCompound:
		m.ResetCompound()
		return nil
	case classification.FieldModel:
		m.ResetModel()
		return nil
	case classification.FieldVerdictSource:
		m.ResetVerdictSource()
		return nil
	case classification.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case classification.FieldScore:
		m.ResetScore()
		return nil
	case classification.FieldContentCreatedAt:
		m.ResetContentCreatedAt()
		return nil
	case classification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Classification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClassificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.alerts != nil {
		edges = append(edges, classification.EdgeAlerts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClassificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case classification.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClassificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedalerts != nil {
		edges = append(edges, classification.EdgeAlerts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClassificationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case classification.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClassificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedalerts {
		edges = append(edges, classification.EdgeAlerts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClassificationMutation) EdgeCleared(name string) bool {
	switch name {
	case classification.EdgeAlerts:
		return m.clearedalerts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClassificationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Classification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClassificationMutation) ResetEdge(name string) error {
	switch name {
	case classification.EdgeAlerts:
		m.ResetAlerts()
		return nil
	}
	return fmt.Errorf("unknown Classification edge %s", name)
}
