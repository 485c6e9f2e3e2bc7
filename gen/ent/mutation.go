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
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/attachment"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/emailbody"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/vendor"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttachment   = "Attachment"
	TypeEmail        = "Email"
	TypeEmailBody    = "EmailBody"
	TypeQuote        = "Quote"
	TypeQuoteItem    = "QuoteItem"
	TypeQuoteVersion = "QuoteVersion"
	TypeThread       = "Thread"
	TypeVendor       = "Vendor"
)

// AttachmentMutation represents an operation that mutates the Attachment nodes in the graph.
type AttachmentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	filename      *string
	mime_type     *string
	size_bytes    *int64
	addsize_bytes *int64
	local_path    *string
	clearedFields map[string]struct{}
	email         *uuid.UUID
	clearedemail  bool
	done          bool
	oldValue      func(context.Context) (*Attachment, error)
	predicates    []predicate.Attachment
}

var _ ent.Mutation = (*AttachmentMutation)(nil)

// attachmentOption allows management of the mutation configuration using functional options.
type attachmentOption func(*AttachmentMutation)

// newAttachmentMutation creates new mutation for the Attachment entity.
func newAttachmentMutation(c config, op Op, opts ...attachmentOption) *AttachmentMutation {
	m := &AttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttachmentID sets the ID field of the mutation.
func withAttachmentID(id uuid.UUID) attachmentOption {
	return func(m *AttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Attachment
		)
		m.oldValue = func(ctx context.Context) (*Attachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttachment sets the old Attachment of the mutation.
func withAttachment(node *Attachment) attachmentOption {
	return func(m *AttachmentMutation) {
		m.oldValue = func(context.Context) (*Attachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attachment entities.
func (m *AttachmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttachmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttachmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmailID sets the "email_id" field.
func (m *AttachmentMutation) SetEmailID(u uuid.UUID) {
	m.email = &u
}

// EmailID returns the value of the "email_id" field in the mutation.
func (m *AttachmentMutation) EmailID() (r uuid.UUID, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailID returns the old "email_id" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldEmailID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailID: %w", err)
	}
	return oldValue.EmailID, nil
}

// ResetEmailID resets all changes to the "email_id" field.
func (m *AttachmentMutation) ResetEmailID() {
	m.email = nil
}

// SetFilename sets the "filename" field.
func (m *AttachmentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *AttachmentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ClearFilename clears the value of the "filename" field.
func (m *AttachmentMutation) ClearFilename() {
	m.filename = nil
	m.clearedFields[attachment.FieldFilename] = struct{}{}
}

// FilenameCleared returns if the "filename" field was cleared in this mutation.
func (m *AttachmentMutation) FilenameCleared() bool {
	_, ok := m.clearedFields[attachment.FieldFilename]
	return ok
}

// ResetFilename resets all changes to the "filename" field.
func (m *AttachmentMutation) ResetFilename() {
	m.filename = nil
	delete(m.clearedFields, attachment.FieldFilename)
}

// SetMimeType sets the "mime_type" field.
func (m *AttachmentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *AttachmentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *AttachmentMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[attachment.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *AttachmentMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[attachment.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *AttachmentMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, attachment.FieldMimeType)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *AttachmentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *AttachmentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldSizeBytes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *AttachmentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *AttachmentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (m *AttachmentMutation) ClearSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	m.clearedFields[attachment.FieldSizeBytes] = struct{}{}
}

// SizeBytesCleared returns if the "size_bytes" field was cleared in this mutation.
func (m *AttachmentMutation) SizeBytesCleared() bool {
	_, ok := m.clearedFields[attachment.FieldSizeBytes]
	return ok
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *AttachmentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	delete(m.clearedFields, attachment.FieldSizeBytes)
}

// SetLocalPath sets the "local_path" field.
func (m *AttachmentMutation) SetLocalPath(s string) {
	m.local_path = &s
}

// LocalPath returns the value of the "local_path" field in the mutation.
func (m *AttachmentMutation) LocalPath() (r string, exists bool) {
	v := m.local_path
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalPath returns the old "local_path" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldLocalPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalPath: %w", err)
	}
	return oldValue.LocalPath, nil
}

// ClearLocalPath clears the value of the "local_path" field.
func (m *AttachmentMutation) ClearLocalPath() {
	m.local_path = nil
	m.clearedFields[attachment.FieldLocalPath] = struct{}{}
}

// LocalPathCleared returns if the "local_path" field was cleared in this mutation.
func (m *AttachmentMutation) LocalPathCleared() bool {
	_, ok := m.clearedFields[attachment.FieldLocalPath]
	return ok
}

// ResetLocalPath resets all changes to the "local_path" field.
func (m *AttachmentMutation) ResetLocalPath() {
	m.local_path = nil
	delete(m.clearedFields, attachment.FieldLocalPath)
}

// ClearEmail clears the "email" edge to the Email entity.
func (m *AttachmentMutation) ClearEmail() {
	m.clearedemail = true
	m.clearedFields[attachment.FieldEmailID] = struct{}{}
}

// EmailCleared reports if the "email" edge to the Email entity was cleared.
func (m *AttachmentMutation) EmailCleared() bool {
	return m.clearedemail
}

// EmailIDs returns the "email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmailID instead. It exists only for internal usage by the builders.
func (m *AttachmentMutation) EmailIDs() (ids []uuid.UUID) {
	if id := m.email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmail resets all changes to the "email" edge.
func (m *AttachmentMutation) ResetEmail() {
	m.email = nil
	m.clearedemail = false
}

// Where appends a list predicates to the AttachmentMutation builder.
func (m *AttachmentMutation) Where(ps ...predicate.Attachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attachment).
func (m *AttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttachmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, attachment.FieldEmailID)
	}
	if m.filename != nil {
		fields = append(fields, attachment.FieldFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, attachment.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	if m.local_path != nil {
		fields = append(fields, attachment.FieldLocalPath)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldEmailID:
		return m.EmailID()
	case attachment.FieldFilename:
		return m.Filename()
	case attachment.FieldMimeType:
		return m.MimeType()
	case attachment.FieldSizeBytes:
		return m.SizeBytes()
	case attachment.FieldLocalPath:
		return m.LocalPath()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attachment.FieldEmailID:
		return m.OldEmailID(ctx)
	case attachment.FieldFilename:
		return m.OldFilename(ctx)
	case attachment.FieldMimeType:
		return m.OldMimeType(ctx)
	case attachment.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case attachment.FieldLocalPath:
		return m.OldLocalPath(ctx)
	}
	return nil, fmt.Errorf("unknown Attachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailID(v)
		return nil
	case attachment.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case attachment.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case attachment.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case attachment.FieldLocalPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalPath(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttachmentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttachmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttachmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attachment.FieldFilename) {
		fields = append(fields, attachment.FieldFilename)
	}
	if m.FieldCleared(attachment.FieldMimeType) {
		fields = append(fields, attachment.FieldMimeType)
	}
	if m.FieldCleared(attachment.FieldSizeBytes) {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	if m.FieldCleared(attachment.FieldLocalPath) {
		fields = append(fields, attachment.FieldLocalPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttachmentMutation) ClearField(name string) error {
	switch name {
	case attachment.FieldFilename:
		m.ClearFilename()
		return nil
	case attachment.FieldMimeType:
		m.ClearMimeType()
		return nil
	case attachment.FieldSizeBytes:
		m.ClearSizeBytes()
		return nil
	case attachment.FieldLocalPath:
		m.ClearLocalPath()
		return nil
	}
	return fmt.Errorf("unknown Attachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttachmentMutation) ResetField(name string) error {
	switch name {
	case attachment.FieldEmailID:
		m.ResetEmailID()
		return nil
	case attachment.FieldFilename:
		m.ResetFilename()
		return nil
	case attachment.FieldMimeType:
		m.ResetMimeType()
		return nil
	case attachment.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case attachment.FieldLocalPath:
		m.ResetLocalPath()
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.email != nil {
		edges = append(edges, attachment.EdgeEmail)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attachment.EdgeEmail:
		if id := m.email; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedemail {
		edges = append(edges, attachment.EdgeEmail)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case attachment.EdgeEmail:
		return m.clearedemail
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttachmentMutation) ClearEdge(name string) error {
	switch name {
	case attachment.EdgeEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown Attachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttachmentMutation) ResetEdge(name string) error {
	switch name {
	case attachment.EdgeEmail:
		m.ResetEmail()
		return nil
	}
	return fmt.Errorf("unknown Attachment edge %s", name)
}

// EmailMutation represents an operation that mutates the Email nodes in the graph.
type EmailMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	provider_message_id    *string
	from_addr              *string
	to_addrs               *[]string
	appendto_addrs         []string
	subject                *string
	sent_at                *time.Time
	snippet                *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	thread                 *uuid.UUID
	clearedthread          bool
	bodies                 map[uuid.UUID]struct{}
	removedbodies          map[uuid.UUID]struct{}
	clearedbodies          bool
	attachments            map[uuid.UUID]struct{}
	removedattachments     map[uuid.UUID]struct{}
	clearedattachments     bool
	quote_versions         map[uuid.UUID]struct{}
	removedquote_versions  map[uuid.UUID]struct{}
	clearedquote_versions  bool
	anchored_quotes        map[uuid.UUID]struct{}
	removedanchored_quotes map[uuid.UUID]struct{}
	clearedanchored_quotes bool
	done                   bool
	oldValue               func(context.Context) (*Email, error)
	predicates             []predicate.Email
}

var _ ent.Mutation = (*EmailMutation)(nil)

// emailOption allows management of the mutation configuration using functional options.
type emailOption func(*EmailMutation)

// newEmailMutation creates new mutation for the Email entity.
func newEmailMutation(c config, op Op, opts ...emailOption) *EmailMutation {
	m := &EmailMutation{
		config:        c,
		op:            op,
		typ:           TypeEmail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailID sets the ID field of the mutation.
func withEmailID(id uuid.UUID) emailOption {
	return func(m *EmailMutation) {
		var (
			err   error
			once  sync.Once
			value *Email
		)
		m.oldValue = func(ctx context.Context) (*Email, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Email.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmail sets the old Email of the mutation.
func withEmail(node *Email) emailOption {
	return func(m *EmailMutation) {
		m.oldValue = func(context.Context) (*Email, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Email entities.
func (m *EmailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Email.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *EmailMutation) SetThreadID(u uuid.UUID) {
	m.thread = &u
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *EmailMutation) ThreadID() (r uuid.UUID, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Email entity.
// If the Email object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMutation) OldThreadID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *EmailMutation) ResetThreadID() {
	m.thread = nil
}

// SetProviderMessageID sets the "provider_message_id" field.
func (m *EmailMutation) SetProviderMessageID(s string) {
	m.provider_message_id = &s
}

// ProviderMessageID returns the value of the "provider_message_id" field in the mutation.
func (m *EmailMutation) ProviderMessageID() (r string, exists bool) {
	v := m.provider_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderMessageID returns the old "provider_message_id" field's value of the Email entity.
// If the Email object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMutation) OldProviderMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderMessageID: %w", err)
	}
	return oldValue.ProviderMessageID, nil
}

// ResetProviderMessageID resets all changes to the "provider_message_id" field.
func (m *EmailMutation) ResetProviderMessageID() {
	m.provider_message_id = nil
}

// SetFromAddr sets the "from_addr" field.
func (m *EmailMutation) SetFromAddr(s string) {
	m.from_addr = &s
}

// FromAddr returns the value of the "from_addr" field in the mutation.
func (m *EmailMutation) FromAddr() (r string, exists bool) {
	v := m.from_addr
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAddr returns the old "from_addr" field's value of the Email entity.
// If the Email object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMutation) OldFromAddr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAddr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAddr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAddr: %w", err)
	}
	return oldValue.FromAddr, nil
}

// ClearFromAddr clears the value of the "from_addr" field.
func (m *EmailMutation) ClearFromAddr() {
	m.from_addr = nil
	m.clearedFields[email.FieldFromAddr] = struct{}{}
}

// FromAddrCleared returns if the "from_addr" field was cleared in this mutation.
func (m *EmailMutation) FromAddrCleared() bool {
	_, ok := m.clearedFields[email.FieldFromAddr]
	return ok
}

// ResetFromAddr resets all changes to the "from_addr" field.
func (m *EmailMutation) ResetFromAddr() {
	m.from_addr = nil
	delete(m.clearedFields, email.FieldFromAddr)
}

// SetToAddrs sets the "to_addrs" field.
func (m *EmailMutation) SetToAddrs(s []string) {
	m.to_addrs = &s
	m.appendto_addrs = nil
}

// ToAddrs returns the value of the "to_addrs" field in the mutation.
func (m *EmailMutation) ToAddrs() (r []string, exists bool) {
	v := m.to_addrs
	if v == nil {
		return
	}
	return *v, true
}

// OldToAddrs returns the old "to_addrs" field's value of the Email entity.
// If the Email object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMutation) OldToAddrs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAddrs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAddrs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAddrs: %w", err)
	}
	return oldValue.ToAddrs, nil
}

// AppendToAddrs adds s to the "to_addrs" field.
func (m *EmailMutation) AppendToAddrs(s []string) {
	m.appendto_addrs = append(m.appendto_addrs, s...)
}

// AppendedToAddrs returns the list of values that were appended to the "to_addrs" field in this mutation.
func (m *EmailMutation) AppendedToAddrs() ([]string, bool) {
	if len(m.appendto_addrs) == 0 {
		return nil, false
	}
	return m.appendto_addrs, true
}

// ClearToAddrs clears the value of the "to_addrs" field.
func (m *EmailMutation) ClearToAddrs() {
	m.to_addrs = nil
	m.appendto_addrs = nil
	m.clearedFields[email.FieldToAddrs] = struct{}{}
}

// ToAddrsCleared returns if the "to_addrs" field was cleared in this mutation.
func (m *EmailMutation) ToAddrsCleared() bool {
	_, ok := m.clearedFields[email.FieldToAddrs]
	return ok
}

// ResetToAddrs resets all changes to the "to_addrs" field.
func (m *EmailMutation) ResetToAddrs() {
	m.to_addrs = nil
	m.appendto_addrs = nil
	delete(m.clearedFields, email.FieldToAddrs)
}

// SetSubject sets the "subject" field.
func (m *EmailMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EmailMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Email entity.
// If the Email object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMutation) OldSubject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *EmailMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[email.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *EmailMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[email.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *EmailMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, email.FieldSubject)
}

// SetSentAt sets the "sent_at" field.
func (m *EmailMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *EmailMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Email entity.
// If the Email object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *EmailMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[email.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *EmailMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[email.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *EmailMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, email.FieldSentAt)
}

// SetSnippet sets the "snippet" field.
func (m *EmailMutation) SetSnippet(s string) {
	m.snippet = &s
}

// Snippet returns the value of the "snippet" field in the mutation.
func (m *EmailMutation) Snippet() (r string, exists bool) {
	v := m.snippet
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippet returns the old "snippet" field's value of the Email entity.
// If the Email object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMutation) OldSnippet(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippet: %w", err)
	}
	return oldValue.Snippet, nil
}

// ClearSnippet clears the value of the "snippet" field.
func (m *EmailMutation) ClearSnippet() {
	m.snippet = nil
	m.clearedFields[email.FieldSnippet] = struct{}{}
}

// SnippetCleared returns if the "snippet" field was cleared in this mutation.
func (m *EmailMutation) SnippetCleared() bool {
	_, ok := m.clearedFields[email.FieldSnippet]
	return ok
}

// ResetSnippet resets all changes to the "snippet" field.
func (m *EmailMutation) ResetSnippet() {
	m.snippet = nil
	delete(m.clearedFields, email.FieldSnippet)
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Email entity.
// If the Email object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EmailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearThread clears the "thread" edge to the Thread entity.
func (m *EmailMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[email.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the Thread entity was cleared.
func (m *EmailMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *EmailMutation) ThreadIDs() (ids []uuid.UUID) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *EmailMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// AddBodyIDs adds the "bodies" edge to the EmailBody entity by ids.
func (m *EmailMutation) AddBodyIDs(ids ...uuid.UUID) {
	if m.bodies == nil {
		m.bodies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bodies[ids[i]] = struct{}{}
	}
}

// ClearBodies clears the "bodies" edge to the EmailBody entity.
func (m *EmailMutation) ClearBodies() {
	m.clearedbodies = true
}

// BodiesCleared reports if the "bodies" edge to the EmailBody entity was cleared.
func (m *EmailMutation) BodiesCleared() bool {
	return m.clearedbodies
}

// RemoveBodyIDs removes the "bodies" edge to the EmailBody entity by IDs.
func (m *EmailMutation) RemoveBodyIDs(ids ...uuid.UUID) {
	if m.removedbodies == nil {
		m.removedbodies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bodies, ids[i])
		m.removedbodies[ids[i]] = struct{}{}
	}
}

// RemovedBodies returns the removed IDs of the "bodies" edge to the EmailBody entity.
func (m *EmailMutation) RemovedBodiesIDs() (ids []uuid.UUID) {
	for id := range m.removedbodies {
		ids = append(ids, id)
	}
	return
}

// BodiesIDs returns the "bodies" edge IDs in the mutation.
func (m *EmailMutation) BodiesIDs() (ids []uuid.UUID) {
	for id := range m.bodies {
		ids = append(ids, id)
	}
	return
}

// ResetBodies resets all changes to the "bodies" edge.
func (m *EmailMutation) ResetBodies() {
	m.bodies = nil
	m.clearedbodies = false
	m.removedbodies = nil
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by ids.
func (m *EmailMutation) AddAttachmentIDs(ids ...uuid.UUID) {
	if m.attachments == nil {
		m.attachments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the Attachment entity.
func (m *EmailMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the Attachment entity was cleared.
func (m *EmailMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the Attachment entity by IDs.
func (m *EmailMutation) RemoveAttachmentIDs(ids ...uuid.UUID) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the Attachment entity.
func (m *EmailMutation) RemovedAttachmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *EmailMutation) AttachmentsIDs() (ids []uuid.UUID) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *EmailMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// AddQuoteVersionIDs adds the "quote_versions" edge to the QuoteVersion entity by ids.
func (m *EmailMutation) AddQuoteVersionIDs(ids ...uuid.UUID) {
	if m.quote_versions == nil {
		m.quote_versions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.quote_versions[ids[i]] = struct{}{}
	}
}

// ClearQuoteVersions clears the "quote_versions" edge to the QuoteVersion entity.
func (m *EmailMutation) ClearQuoteVersions() {
	m.clearedquote_versions = true
}

// QuoteVersionsCleared reports if the "quote_versions" edge to the QuoteVersion entity was cleared.
func (m *EmailMutation) QuoteVersionsCleared() bool {
	return m.clearedquote_versions
}

// RemoveQuoteVersionIDs removes the "quote_versions" edge to the QuoteVersion entity by IDs.
func (m *EmailMutation) RemoveQuoteVersionIDs(ids ...uuid.UUID) {
	if m.removedquote_versions == nil {
		m.removedquote_versions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.quote_versions, ids[i])
		m.removedquote_versions[ids[i]] = struct{}{}
	}
}

// RemovedQuoteVersions returns the removed IDs of the "quote_versions" edge to the QuoteVersion entity.
func (m *EmailMutation) RemovedQuoteVersionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquote_versions {
		ids = append(ids, id)
	}
	return
}

// QuoteVersionsIDs returns the "quote_versions" edge IDs in the mutation.
func (m *EmailMutation) QuoteVersionsIDs() (ids []uuid.UUID) {
	for id := range m.quote_versions {
		ids = append(ids, id)
	}
	return
}

// ResetQuoteVersions resets all changes to the "quote_versions" edge.
func (m *EmailMutation) ResetQuoteVersions() {
	m.quote_versions = nil
	m.clearedquote_versions = false
	m.removedquote_versions = nil
}

// AddAnchoredQuoteIDs adds the "anchored_quotes" edge to the Quote entity by ids.
func (m *EmailMutation) AddAnchoredQuoteIDs(ids ...uuid.UUID) {
	if m.anchored_quotes == nil {
		m.anchored_quotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.anchored_quotes[ids[i]] = struct{}{}
	}
}

// ClearAnchoredQuotes clears the "anchored_quotes" edge to the Quote entity.
func (m *EmailMutation) ClearAnchoredQuotes() {
	m.clearedanchored_quotes = true
}

// AnchoredQuotesCleared reports if the "anchored_quotes" edge to the Quote entity was cleared.
func (m *EmailMutation) AnchoredQuotesCleared() bool {
	return m.clearedanchored_quotes
}

// RemoveAnchoredQuoteIDs removes the "anchored_quotes" edge to the Quote entity by IDs.
func (m *EmailMutation) RemoveAnchoredQuoteIDs(ids ...uuid.UUID) {
	if m.removedanchored_quotes == nil {
		m.removedanchored_quotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.anchored_quotes, ids[i])
		m.removedanchored_quotes[ids[i]] = struct{}{}
	}
}

// RemovedAnchoredQuotes returns the removed IDs of the "anchored_quotes" edge to the Quote entity.
func (m *EmailMutation) RemovedAnchoredQuotesIDs() (ids []uuid.UUID) {
	for id := range m.removedanchored_quotes {
		ids = append(ids, id)
	}
	return
}

// AnchoredQuotesIDs returns the "anchored_quotes" edge IDs in the mutation.
func (m *EmailMutation) AnchoredQuotesIDs() (ids []uuid.UUID) {
	for id := range m.anchored_quotes {
		ids = append(ids, id)
	}
	return
}

// ResetAnchoredQuotes resets all changes to the "anchored_quotes" edge.
func (m *EmailMutation) ResetAnchoredQuotes() {
	m.anchored_quotes = nil
	m.clearedanchored_quotes = false
	m.removedanchored_quotes = nil
}

// Where appends a list predicates to the EmailMutation builder.
func (m *EmailMutation) Where(ps ...predicate.Email) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Email, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Email).
func (m *EmailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.thread != nil {
		fields = append(fields, email.FieldThreadID)
	}
	if m.provider_message_id != nil {
		fields = append(fields, email.FieldProviderMessageID)
	}
	if m.from_addr != nil {
		fields = append(fields, email.FieldFromAddr)
	}
	if m.to_addrs != nil {
		fields = append(fields, email.FieldToAddrs)
	}
	if m.subject != nil {
		fields = append(fields, email.FieldSubject)
	}
	if m.sent_at != nil {
		fields = append(fields, email.FieldSentAt)
	}
	if m.snippet != nil {
		fields = append(fields, email.FieldSnippet)
	}
	if m.created_at != nil {
		fields = append(fields, email.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case email.FieldThreadID:
		return m.ThreadID()
	case email.FieldProviderMessageID:
		return m.ProviderMessageID()
	case email.FieldFromAddr:
		return m.FromAddr()
	case email.FieldToAddrs:
		return m.ToAddrs()
	case email.FieldSubject:
		return m.Subject()
	case email.FieldSentAt:
		return m.SentAt()
	case email.FieldSnippet:
		return m.Snippet()
	case email.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case email.FieldThreadID:
		return m.OldThreadID(ctx)
	case email.FieldProviderMessageID:
		return m.OldProviderMessageID(ctx)
	case email.FieldFromAddr:
		return m.OldFromAddr(ctx)
	case email.FieldToAddrs:
		return m.OldToAddrs(ctx)
	case email.FieldSubject:
		return m.OldSubject(ctx)
	case email.FieldSentAt:
		return m.OldSentAt(ctx)
	case email.FieldSnippet:
		return m.OldSnippet(ctx)
	case email.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Email field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case email.FieldThreadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case email.FieldProviderMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderMessageID(v)
		return nil
	case email.FieldFromAddr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAddr(v)
		return nil
	case email.FieldToAddrs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAddrs(v)
		return nil
	case email.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case email.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case email.FieldSnippet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippet(v)
		return nil
	case email.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Email field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Email numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(email.FieldFromAddr) {
		fields = append(fields, email.FieldFromAddr)
	}
	if m.FieldCleared(email.FieldToAddrs) {
		fields = append(fields, email.FieldToAddrs)
	}
	if m.FieldCleared(email.FieldSubject) {
		fields = append(fields, email.FieldSubject)
	}
	if m.FieldCleared(email.FieldSentAt) {
		fields = append(fields, email.FieldSentAt)
	}
	if m.FieldCleared(email.FieldSnippet) {
		fields = append(fields, email.FieldSnippet)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailMutation) ClearField(name string) error {
	switch name {
	case email.FieldFromAddr:
		m.ClearFromAddr()
		return nil
	case email.FieldToAddrs:
		m.ClearToAddrs()
		return nil
	case email.FieldSubject:
		m.ClearSubject()
		return nil
	case email.FieldSentAt:
		m.ClearSentAt()
		return nil
	case email.FieldSnippet:
		m.ClearSnippet()
		return nil
	}
	return fmt.Errorf("unknown Email nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailMutation) ResetField(name string) error {
	switch name {
	case email.FieldThreadID:
		m.ResetThreadID()
		return nil
	case email.FieldProviderMessageID:
		m.ResetProviderMessageID()
		return nil
	case email.FieldFromAddr:
		m.ResetFromAddr()
		return nil
	case email.FieldToAddrs:
		m.ResetToAddrs()
		return nil
	case email.FieldSubject:
		m.ResetSubject()
		return nil
	case email.FieldSentAt:
		m.ResetSentAt()
		return nil
	case email.FieldSnippet:
		m.ResetSnippet()
		return nil
	case email.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Email field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.thread != nil {
		edges = append(edges, email.EdgeThread)
	}
	if m.bodies != nil {
		edges = append(edges, email.EdgeBodies)
	}
	if m.attachments != nil {
		edges = append(edges, email.EdgeAttachments)
	}
	if m.quote_versions != nil {
		edges = append(edges, email.EdgeQuoteVersions)
	}
	if m.anchored_quotes != nil {
		edges = append(edges, email.EdgeAnchoredQuotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case email.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	case email.EdgeBodies:
		ids := make([]ent.Value, 0, len(m.bodies))
		for id := range m.bodies {
			ids = append(ids, id)
		}
		return ids
	case email.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	case email.EdgeQuoteVersions:
		ids := make([]ent.Value, 0, len(m.quote_versions))
		for id := range m.quote_versions {
			ids = append(ids, id)
		}
		return ids
	case email.EdgeAnchoredQuotes:
		ids := make([]ent.Value, 0, len(m.anchored_quotes))
		for id := range m.anchored_quotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedbodies != nil {
		edges = append(edges, email.EdgeBodies)
	}
	if m.removedattachments != nil {
		edges = append(edges, email.EdgeAttachments)
	}
	if m.removedquote_versions != nil {
		edges = append(edges, email.EdgeQuoteVersions)
	}
	if m.removedanchored_quotes != nil {
		edges = append(edges, email.EdgeAnchoredQuotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case email.EdgeBodies:
		ids := make([]ent.Value, 0, len(m.removedbodies))
		for id := range m.removedbodies {
			ids = append(ids, id)
		}
		return ids
	case email.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	case email.EdgeQuoteVersions:
		ids := make([]ent.Value, 0, len(m.removedquote_versions))
		for id := range m.removedquote_versions {
			ids = append(ids, id)
		}
		return ids
	case email.EdgeAnchoredQuotes:
		ids := make([]ent.Value, 0, len(m.removedanchored_quotes))
		for id := range m.removedanchored_quotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedthread {
		edges = append(edges, email.EdgeThread)
	}
	if m.clearedbodies {
		edges = append(edges, email.EdgeBodies)
	}
	if m.clearedattachments {
		edges = append(edges, email.EdgeAttachments)
	}
	if m.clearedquote_versions {
		edges = append(edges, email.EdgeQuoteVersions)
	}
	if m.clearedanchored_quotes {
		edges = append(edges, email.EdgeAnchoredQuotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailMutation) EdgeCleared(name string) bool {
	switch name {
	case email.EdgeThread:
		return m.clearedthread
	case email.EdgeBodies:
		return m.clearedbodies
	case email.EdgeAttachments:
		return m.clearedattachments
	case email.EdgeQuoteVersions:
		return m.clearedquote_versions
	case email.EdgeAnchoredQuotes:
		return m.clearedanchored_quotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailMutation) ClearEdge(name string) error {
	switch name {
	case email.EdgeThread:
		m.ClearThread()
		return nil
	}
	return fmt.Errorf("unknown Email unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailMutation) ResetEdge(name string) error {
	switch name {
	case email.EdgeThread:
		m.ResetThread()
		return nil
	case email.EdgeBodies:
		m.ResetBodies()
		return nil
	case email.EdgeAttachments:
		m.ResetAttachments()
		return nil
	case email.EdgeQuoteVersions:
		m.ResetQuoteVersions()
		return nil
	case email.EdgeAnchoredQuotes:
		m.ResetAnchoredQuotes()
		return nil
	}
	return fmt.Errorf("unknown Email edge %s", name)
}

// EmailBodyMutation represents an operation that mutates the EmailBody nodes in the graph.
type EmailBodyMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	mime_type     *string
	body_text     *string
	body_html     *string
	clearedFields map[string]struct{}
	email         *uuid.UUID
	clearedemail  bool
	done          bool
	oldValue      func(context.Context) (*EmailBody, error)
	predicates    []predicate.EmailBody
}

var _ ent.Mutation = (*EmailBodyMutation)(nil)

// emailbodyOption allows management of the mutation configuration using functional options.
type emailbodyOption func(*EmailBodyMutation)

// newEmailBodyMutation creates new mutation for the EmailBody entity.
func newEmailBodyMutation(c config, op Op, opts ...emailbodyOption) *EmailBodyMutation {
	m := &EmailBodyMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailBody,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailBodyID sets the ID field of the mutation.
func withEmailBodyID(id uuid.UUID) emailbodyOption {
	return func(m *EmailBodyMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailBody
		)
		m.oldValue = func(ctx context.Context) (*EmailBody, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailBody.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailBody sets the old EmailBody of the mutation.
func withEmailBody(node *EmailBody) emailbodyOption {
	return func(m *EmailBodyMutation) {
		m.oldValue = func(context.Context) (*EmailBody, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailBodyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailBodyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailBody entities.
func (m *EmailBodyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailBodyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailBodyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailBody.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmailID sets the "email_id" field.
func (m *EmailBodyMutation) SetEmailID(u uuid.UUID) {
	m.email = &u
}

// EmailID returns the value of the "email_id" field in the mutation.
func (m *EmailBodyMutation) EmailID() (r uuid.UUID, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailID returns the old "email_id" field's value of the EmailBody entity.
// If the EmailBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailBodyMutation) OldEmailID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailID: %w", err)
	}
	return oldValue.EmailID, nil
}

// ResetEmailID resets all changes to the "email_id" field.
func (m *EmailBodyMutation) ResetEmailID() {
	m.email = nil
}

// SetMimeType sets the "mime_type" field.
func (m *EmailBodyMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *EmailBodyMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the EmailBody entity.
// If the EmailBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailBodyMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *EmailBodyMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[emailbody.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *EmailBodyMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[emailbody.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *EmailBodyMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, emailbody.FieldMimeType)
}

// SetBodyText sets the "body_text" field.
func (m *EmailBodyMutation) SetBodyText(s string) {
	m.body_text = &s
}

// BodyText returns the value of the "body_text" field in the mutation.
func (m *EmailBodyMutation) BodyText() (r string, exists bool) {
	v := m.body_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyText returns the old "body_text" field's value of the EmailBody entity.
// If the EmailBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailBodyMutation) OldBodyText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyText: %w", err)
	}
	return oldValue.BodyText, nil
}

// ClearBodyText clears the value of the "body_text" field.
func (m *EmailBodyMutation) ClearBodyText() {
	m.body_text = nil
	m.clearedFields[emailbody.FieldBodyText] = struct{}{}
}

// BodyTextCleared returns if the "body_text" field was cleared in this mutation.
func (m *EmailBodyMutation) BodyTextCleared() bool {
	_, ok := m.clearedFields[emailbody.FieldBodyText]
	return ok
}

// ResetBodyText resets all changes to the "body_text" field.
func (m *EmailBodyMutation) ResetBodyText() {
	m.body_text = nil
	delete(m.clearedFields, emailbody.FieldBodyText)
}

// SetBodyHTML sets the "body_html" field.
func (m *EmailBodyMutation) SetBodyHTML(s string) {
	m.body_html = &s
}

// BodyHTML returns the value of the "body_html" field in the mutation.
func (m *EmailBodyMutation) BodyHTML() (r string, exists bool) {
	v := m.body_html
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyHTML returns the old "body_html" field's value of the EmailBody entity.
// If the EmailBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailBodyMutation) OldBodyHTML(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyHTML: %w", err)
	}
	return oldValue.BodyHTML, nil
}

// ClearBodyHTML clears the value of the "body_html" field.
func (m *EmailBodyMutation) ClearBodyHTML() {
	m.body_html = nil
	m.clearedFields[emailbody.FieldBodyHTML] = struct{}{}
}

// BodyHTMLCleared returns if the "body_html" field was cleared in this mutation.
func (m *EmailBodyMutation) BodyHTMLCleared() bool {
	_, ok := m.clearedFields[emailbody.FieldBodyHTML]
	return ok
}

// ResetBodyHTML resets all changes to the "body_html" field.
func (m *EmailBodyMutation) ResetBodyHTML() {
	m.body_html = nil
	delete(m.clearedFields, emailbody.FieldBodyHTML)
}

// ClearEmail clears the "email" edge to the Email entity.
func (m *EmailBodyMutation) ClearEmail() {
	m.clearedemail = true
	m.clearedFields[emailbody.FieldEmailID] = struct{}{}
}

// EmailCleared reports if the "email" edge to the Email entity was cleared.
func (m *EmailBodyMutation) EmailCleared() bool {
	return m.clearedemail
}

// EmailIDs returns the "email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmailID instead. It exists only for internal usage by the builders.
func (m *EmailBodyMutation) EmailIDs() (ids []uuid.UUID) {
	if id := m.email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmail resets all changes to the "email" edge.
func (m *EmailBodyMutation) ResetEmail() {
	m.email = nil
	m.clearedemail = false
}

// Where appends a list predicates to the EmailBodyMutation builder.
func (m *EmailBodyMutation) Where(ps ...predicate.EmailBody) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailBodyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailBodyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailBody, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailBodyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailBodyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailBody).
func (m *EmailBodyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailBodyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.email != nil {
		fields = append(fields, emailbody.FieldEmailID)
	}
	if m.mime_type != nil {
		fields = append(fields, emailbody.FieldMimeType)
	}
	if m.body_text != nil {
		fields = append(fields, emailbody.FieldBodyText)
	}
	if m.body_html != nil {
		fields = append(fields, emailbody.FieldBodyHTML)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailBodyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailbody.FieldEmailID:
		return m.EmailID()
	case emailbody.FieldMimeType:
		return m.MimeType()
	case emailbody.FieldBodyText:
		return m.BodyText()
	case emailbody.FieldBodyHTML:
		return m.BodyHTML()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailBodyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailbody.FieldEmailID:
		return m.OldEmailID(ctx)
	case emailbody.FieldMimeType:
		return m.OldMimeType(ctx)
	case emailbody.FieldBodyText:
		return m.OldBodyText(ctx)
	case emailbody.FieldBodyHTML:
		return m.OldBodyHTML(ctx)
	}
	return nil, fmt.Errorf("unknown EmailBody field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailBodyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailbody.FieldEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailID(v)
		return nil
	case emailbody.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case emailbody.FieldBodyText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyText(v)
		return nil
	case emailbody.FieldBodyHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyHTML(v)
		return nil
	}
	return fmt.Errorf("unknown EmailBody field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailBodyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailBodyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailBodyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailBody numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailBodyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emailbody.FieldMimeType) {
		fields = append(fields, emailbody.FieldMimeType)
	}
	if m.FieldCleared(emailbody.FieldBodyText) {
		fields = append(fields, emailbody.FieldBodyText)
	}
	if m.FieldCleared(emailbody.FieldBodyHTML) {
		fields = append(fields, emailbody.FieldBodyHTML)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailBodyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailBodyMutation) ClearField(name string) error {
	switch name {
	case emailbody.FieldMimeType:
		m.ClearMimeType()
		return nil
	case emailbody.FieldBodyText:
		m.ClearBodyText()
		return nil
	case emailbody.FieldBodyHTML:
		m.ClearBodyHTML()
		return nil
	}
	return fmt.Errorf("unknown EmailBody nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailBodyMutation) ResetField(name string) error {
	switch name {
	case emailbody.FieldEmailID:
		m.ResetEmailID()
		return nil
	case emailbody.FieldMimeType:
		m.ResetMimeType()
		return nil
	case emailbody.FieldBodyText:
		m.ResetBodyText()
		return nil
	case emailbody.FieldBodyHTML:
		m.ResetBodyHTML()
		return nil
	}
	return fmt.Errorf("unknown EmailBody field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailBodyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.email != nil {
		edges = append(edges, emailbody.EdgeEmail)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailBodyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case emailbody.EdgeEmail:
		if id := m.email; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailBodyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailBodyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailBodyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedemail {
		edges = append(edges, emailbody.EdgeEmail)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailBodyMutation) EdgeCleared(name string) bool {
	switch name {
	case emailbody.EdgeEmail:
		return m.clearedemail
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailBodyMutation) ClearEdge(name string) error {
	switch name {
	case emailbody.EdgeEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown EmailBody unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailBodyMutation) ResetEdge(name string) error {
	switch name {
	case emailbody.EdgeEmail:
		m.ResetEmail()
		return nil
	}
	return fmt.Errorf("unknown EmailBody edge %s", name)
}

// QuoteMutation represents an operation that mutates the Quote nodes in the graph.
type QuoteMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	status              *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	thread              *uuid.UUID
	clearedthread       bool
	vendor              *uuid.UUID
	clearedvendor       bool
	anchor_email        *uuid.UUID
	clearedanchor_email bool
	versions            map[uuid.UUID]struct{}
	removedversions     map[uuid.UUID]struct{}
	clearedversions     bool
	done                bool
	oldValue            func(context.Context) (*Quote, error)
	predicates          []predicate.Quote
}

var _ ent.Mutation = (*QuoteMutation)(nil)

// quoteOption allows management of the mutation configuration using functional options.
type quoteOption func(*QuoteMutation)

// newQuoteMutation creates new mutation for the Quote entity.
func newQuoteMutation(c config, op Op, opts ...quoteOption) *QuoteMutation {
	m := &QuoteMutation{
		config:        c,
		op:            op,
		typ:           TypeQuote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuoteID sets the ID field of the mutation.
func withQuoteID(id uuid.UUID) quoteOption {
	return func(m *QuoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Quote
		)
		m.oldValue = func(ctx context.Context) (*Quote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Quote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuote sets the old Quote of the mutation.
func withQuote(node *Quote) quoteOption {
	return func(m *QuoteMutation) {
		m.oldValue = func(context.Context) (*Quote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Quote entities.
func (m *QuoteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuoteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuoteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Quote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *QuoteMutation) SetThreadID(u uuid.UUID) {
	m.thread = &u
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *QuoteMutation) ThreadID() (r uuid.UUID, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldThreadID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *QuoteMutation) ResetThreadID() {
	m.thread = nil
}

// SetVendorID sets the "vendor_id" field.
func (m *QuoteMutation) SetVendorID(u uuid.UUID) {
	m.vendor = &u
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *QuoteMutation) VendorID() (r uuid.UUID, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldVendorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *QuoteMutation) ResetVendorID() {
	m.vendor = nil
}

// SetAnchorEmailID sets the "anchor_email_id" field.
func (m *QuoteMutation) SetAnchorEmailID(u uuid.UUID) {
	m.anchor_email = &u
}

// AnchorEmailID returns the value of the "anchor_email_id" field in the mutation.
func (m *QuoteMutation) AnchorEmailID() (r uuid.UUID, exists bool) {
	v := m.anchor_email
	if v == nil {
		return
	}
	return *v, true
}

// OldAnchorEmailID returns the old "anchor_email_id" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldAnchorEmailID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnchorEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnchorEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnchorEmailID: %w", err)
	}
	return oldValue.AnchorEmailID, nil
}

// ClearAnchorEmailID clears the value of the "anchor_email_id" field.
func (m *QuoteMutation) ClearAnchorEmailID() {
	m.anchor_email = nil
	m.clearedFields[quote.FieldAnchorEmailID] = struct{}{}
}

// AnchorEmailIDCleared returns if the "anchor_email_id" field was cleared in this mutation.
func (m *QuoteMutation) AnchorEmailIDCleared() bool {
	_, ok := m.clearedFields[quote.FieldAnchorEmailID]
	return ok
}

// ResetAnchorEmailID resets all changes to the "anchor_email_id" field.
func (m *QuoteMutation) ResetAnchorEmailID() {
	m.anchor_email = nil
	delete(m.clearedFields, quote.FieldAnchorEmailID)
}

// SetStatus sets the "status" field.
func (m *QuoteMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *QuoteMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *QuoteMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Quote entity.
// If the Quote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *QuoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearThread clears the "thread" edge to the Thread entity.
func (m *QuoteMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[quote.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the Thread entity was cleared.
func (m *QuoteMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *QuoteMutation) ThreadIDs() (ids []uuid.UUID) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *QuoteMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (m *QuoteMutation) ClearVendor() {
	m.clearedvendor = true
	m.clearedFields[quote.FieldVendorID] = struct{}{}
}

// VendorCleared reports if the "vendor" edge to the Vendor entity was cleared.
func (m *QuoteMutation) VendorCleared() bool {
	return m.clearedvendor
}

// VendorIDs returns the "vendor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VendorID instead. It exists only for internal usage by the builders.
func (m *QuoteMutation) VendorIDs() (ids []uuid.UUID) {
	if id := m.vendor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVendor resets all changes to the "vendor" edge.
func (m *QuoteMutation) ResetVendor() {
	m.vendor = nil
	m.clearedvendor = false
}

// ClearAnchorEmail clears the "anchor_email" edge to the Email entity.
func (m *QuoteMutation) ClearAnchorEmail() {
	m.clearedanchor_email = true
	m.clearedFields[quote.FieldAnchorEmailID] = struct{}{}
}

// AnchorEmailCleared reports if the "anchor_email" edge to the Email entity was cleared.
func (m *QuoteMutation) AnchorEmailCleared() bool {
	return m.AnchorEmailIDCleared() || m.clearedanchor_email
}

// AnchorEmailIDs returns the "anchor_email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnchorEmailID instead. It exists only for internal usage by the builders.
func (m *QuoteMutation) AnchorEmailIDs() (ids []uuid.UUID) {
	if id := m.anchor_email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnchorEmail resets all changes to the "anchor_email" edge.
func (m *QuoteMutation) ResetAnchorEmail() {
	m.anchor_email = nil
	m.clearedanchor_email = false
}

// AddVersionIDs adds the "versions" edge to the QuoteVersion entity by ids.
func (m *QuoteMutation) AddVersionIDs(ids ...uuid.UUID) {
	if m.versions == nil {
		m.versions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the QuoteVersion entity.
func (m *QuoteMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the QuoteVersion entity was cleared.
func (m *QuoteMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the QuoteVersion entity by IDs.
func (m *QuoteMutation) RemoveVersionIDs(ids ...uuid.UUID) {
	if m.removedversions == nil {
		m.removedversions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the QuoteVersion entity.
func (m *QuoteMutation) RemovedVersionsIDs() (ids []uuid.UUID) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *QuoteMutation) VersionsIDs() (ids []uuid.UUID) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *QuoteMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the QuoteMutation builder.
func (m *QuoteMutation) Where(ps ...predicate.Quote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Quote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Quote).
func (m *QuoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuoteMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.thread != nil {
		fields = append(fields, quote.FieldThreadID)
	}
	if m.vendor != nil {
		fields = append(fields, quote.FieldVendorID)
	}
	if m.anchor_email != nil {
		fields = append(fields, quote.FieldAnchorEmailID)
	}
	if m.status != nil {
		fields = append(fields, quote.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, quote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quote.FieldThreadID:
		return m.ThreadID()
	case quote.FieldVendorID:
		return m.VendorID()
	case quote.FieldAnchorEmailID:
		return m.AnchorEmailID()
	case quote.FieldStatus:
		return m.Status()
	case quote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quote.FieldThreadID:
		return m.OldThreadID(ctx)
	case quote.FieldVendorID:
		return m.OldVendorID(ctx)
	case quote.FieldAnchorEmailID:
		return m.OldAnchorEmailID(ctx)
	case quote.FieldStatus:
		return m.OldStatus(ctx)
	case quote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Quote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quote.FieldThreadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case quote.FieldVendorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case quote.FieldAnchorEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnchorEmailID(v)
		return nil
	case quote.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case quote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Quote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Quote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quote.FieldAnchorEmailID) {
		fields = append(fields, quote.FieldAnchorEmailID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuoteMutation) ClearField(name string) error {
	switch name {
	case quote.FieldAnchorEmailID:
		m.ClearAnchorEmailID()
		return nil
	}
	return fmt.Errorf("unknown Quote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuoteMutation) ResetField(name string) error {
	switch name {
	case quote.FieldThreadID:
		m.ResetThreadID()
		return nil
	case quote.FieldVendorID:
		m.ResetVendorID()
		return nil
	case quote.FieldAnchorEmailID:
		m.ResetAnchorEmailID()
		return nil
	case quote.FieldStatus:
		m.ResetStatus()
		return nil
	case quote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Quote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.thread != nil {
		edges = append(edges, quote.EdgeThread)
	}
	if m.vendor != nil {
		edges = append(edges, quote.EdgeVendor)
	}
	if m.anchor_email != nil {
		edges = append(edges, quote.EdgeAnchorEmail)
	}
	if m.versions != nil {
		edges = append(edges, quote.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quote.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	case quote.EdgeVendor:
		if id := m.vendor; id != nil {
			return []ent.Value{*id}
		}
	case quote.EdgeAnchorEmail:
		if id := m.anchor_email; id != nil {
			return []ent.Value{*id}
		}
	case quote.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedversions != nil {
		edges = append(edges, quote.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuoteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case quote.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedthread {
		edges = append(edges, quote.EdgeThread)
	}
	if m.clearedvendor {
		edges = append(edges, quote.EdgeVendor)
	}
	if m.clearedanchor_email {
		edges = append(edges, quote.EdgeAnchorEmail)
	}
	if m.clearedversions {
		edges = append(edges, quote.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuoteMutation) EdgeCleared(name string) bool {
	switch name {
	case quote.EdgeThread:
		return m.clearedthread
	case quote.EdgeVendor:
		return m.clearedvendor
	case quote.EdgeAnchorEmail:
		return m.clearedanchor_email
	case quote.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuoteMutation) ClearEdge(name string) error {
	switch name {
	case quote.EdgeThread:
		m.ClearThread()
		return nil
	case quote.EdgeVendor:
		m.ClearVendor()
		return nil
	case quote.EdgeAnchorEmail:
		m.ClearAnchorEmail()
		return nil
	}
	return fmt.Errorf("unknown Quote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuoteMutation) ResetEdge(name string) error {
	switch name {
	case quote.EdgeThread:
		m.ResetThread()
		return nil
	case quote.EdgeVendor:
		m.ResetVendor()
		return nil
	case quote.EdgeAnchorEmail:
		m.ResetAnchorEmail()
		return nil
	case quote.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown Quote edge %s", name)
}

// QuoteItemMutation represents an operation that mutates the QuoteItem nodes in the graph.
type QuoteItemMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	sku            *string
	description    *string
	quantity       *decimal.Decimal
	addquantity    *decimal.Decimal
	unit_price     *decimal.Decimal
	addunit_price  *decimal.Decimal
	discount       *decimal.Decimal
	adddiscount    *decimal.Decimal
	line_total     *decimal.Decimal
	addline_total  *decimal.Decimal
	clearedFields  map[string]struct{}
	version        *uuid.UUID
	clearedversion bool
	done           bool
	oldValue       func(context.Context) (*QuoteItem, error)
	predicates     []predicate.QuoteItem
}

var _ ent.Mutation = (*QuoteItemMutation)(nil)

// quoteitemOption allows management of the mutation configuration using functional options.
type quoteitemOption func(*QuoteItemMutation)

// newQuoteItemMutation creates new mutation for the QuoteItem entity.
func newQuoteItemMutation(c config, op Op, opts ...quoteitemOption) *QuoteItemMutation {
	m := &QuoteItemMutation{
		config:        c,
		op:            op,
		typ:           TypeQuoteItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuoteItemID sets the ID field of the mutation.
func withQuoteItemID(id uuid.UUID) quoteitemOption {
	return func(m *QuoteItemMutation) {
		var (
			err   error
			once  sync.Once
			value *QuoteItem
		)
		m.oldValue = func(ctx context.Context) (*QuoteItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuoteItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuoteItem sets the old QuoteItem of the mutation.
func withQuoteItem(node *QuoteItem) quoteitemOption {
	return func(m *QuoteItemMutation) {
		m.oldValue = func(context.Context) (*QuoteItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuoteItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuoteItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuoteItem entities.
func (m *QuoteItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuoteItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuoteItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuoteItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersionID sets the "version_id" field.
func (m *QuoteItemMutation) SetVersionID(u uuid.UUID) {
	m.version = &u
}

// VersionID returns the value of the "version_id" field in the mutation.
func (m *QuoteItemMutation) VersionID() (r uuid.UUID, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionID returns the old "version_id" field's value of the QuoteItem entity.
// If the QuoteItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteItemMutation) OldVersionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionID: %w", err)
	}
	return oldValue.VersionID, nil
}

// ResetVersionID resets all changes to the "version_id" field.
func (m *QuoteItemMutation) ResetVersionID() {
	m.version = nil
}

// SetSku sets the "sku" field.
func (m *QuoteItemMutation) SetSku(s string) {
	m.sku = &s
}

// Sku returns the value of the "sku" field in the mutation.
func (m *QuoteItemMutation) Sku() (r string, exists bool) {
	v := m.sku
	if v == nil {
		return
	}
	return *v, true
}

// OldSku returns the old "sku" field's value of the QuoteItem entity.
// If the QuoteItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteItemMutation) OldSku(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSku: %w", err)
	}
	return oldValue.Sku, nil
}

// ClearSku clears the value of the "sku" field.
func (m *QuoteItemMutation) ClearSku() {
	m.sku = nil
	m.clearedFields[quoteitem.FieldSku] = struct{}{}
}

// SkuCleared returns if the "sku" field was cleared in this mutation.
func (m *QuoteItemMutation) SkuCleared() bool {
	_, ok := m.clearedFields[quoteitem.FieldSku]
	return ok
}

// ResetSku resets all changes to the "sku" field.
func (m *QuoteItemMutation) ResetSku() {
	m.sku = nil
	delete(m.clearedFields, quoteitem.FieldSku)
}

// SetDescription sets the "description" field.
func (m *QuoteItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *QuoteItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the QuoteItem entity.
// If the QuoteItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *QuoteItemMutation) ResetDescription() {
	m.description = nil
}

// SetQuantity sets the "quantity" field.
func (m *QuoteItemMutation) SetQuantity(d decimal.Decimal) {
	m.quantity = &d
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *QuoteItemMutation) Quantity() (r decimal.Decimal, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the QuoteItem entity.
// If the QuoteItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteItemMutation) OldQuantity(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds d to the "quantity" field.
func (m *QuoteItemMutation) AddQuantity(d decimal.Decimal) {
	if m.addquantity != nil {
		*m.addquantity = m.addquantity.Add(d)
	} else {
		m.addquantity = &d
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *QuoteItemMutation) AddedQuantity() (r decimal.Decimal, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *QuoteItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *QuoteItemMutation) SetUnitPrice(d decimal.Decimal) {
	m.unit_price = &d
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *QuoteItemMutation) UnitPrice() (r decimal.Decimal, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the QuoteItem entity.
// If the QuoteItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteItemMutation) OldUnitPrice(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds d to the "unit_price" field.
func (m *QuoteItemMutation) AddUnitPrice(d decimal.Decimal) {
	if m.addunit_price != nil {
		*m.addunit_price = m.addunit_price.Add(d)
	} else {
		m.addunit_price = &d
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *QuoteItemMutation) AddedUnitPrice() (r decimal.Decimal, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *QuoteItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetDiscount sets the "discount" field.
func (m *QuoteItemMutation) SetDiscount(d decimal.Decimal) {
	m.discount = &d
	m.adddiscount = nil
}

// Discount returns the value of the "discount" field in the mutation.
func (m *QuoteItemMutation) Discount() (r decimal.Decimal, exists bool) {
	v := m.discount
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscount returns the old "discount" field's value of the QuoteItem entity.
// If the QuoteItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteItemMutation) OldDiscount(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscount: %w", err)
	}
	return oldValue.Discount, nil
}

// AddDiscount adds d to the "discount" field.
func (m *QuoteItemMutation) AddDiscount(d decimal.Decimal) {
	if m.adddiscount != nil {
		*m.adddiscount = m.adddiscount.Add(d)
	} else {
		m.adddiscount = &d
	}
}

// AddedDiscount returns the value that was added to the "discount" field in this mutation.
func (m *QuoteItemMutation) AddedDiscount() (r decimal.Decimal, exists bool) {
	v := m.adddiscount
	if v == nil {
		return
	}
	return *v, true
}

// ClearDiscount clears the value of the "discount" field.
func (m *QuoteItemMutation) ClearDiscount() {
	m.discount = nil
	m.adddiscount = nil
	m.clearedFields[quoteitem.FieldDiscount] = struct{}{}
}

// DiscountCleared returns if the "discount" field was cleared in this mutation.
func (m *QuoteItemMutation) DiscountCleared() bool {
	_, ok := m.clearedFields[quoteitem.FieldDiscount]
	return ok
}

// ResetDiscount resets all changes to the "discount" field.
func (m *QuoteItemMutation) ResetDiscount() {
	m.discount = nil
	m.adddiscount = nil
	delete(m.clearedFields, quoteitem.FieldDiscount)
}

// SetLineTotal sets the "line_total" field.
func (m *QuoteItemMutation) SetLineTotal(d decimal.Decimal) {
	m.line_total = &d
	m.addline_total = nil
}

// LineTotal returns the value of the "line_total" field in the mutation.
func (m *QuoteItemMutation) LineTotal() (r decimal.Decimal, exists bool) {
	v := m.line_total
	if v == nil {
		return
	}
	return *v, true
}

// OldLineTotal returns the old "line_total" field's value of the QuoteItem entity.
// If the QuoteItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteItemMutation) OldLineTotal(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineTotal: %w", err)
	}
	return oldValue.LineTotal, nil
}

// AddLineTotal adds d to the "line_total" field.
func (m *QuoteItemMutation) AddLineTotal(d decimal.Decimal) {
	if m.addline_total != nil {
		*m.addline_total = m.addline_total.Add(d)
	} else {
		m.addline_total = &d
	}
}

// AddedLineTotal returns the value that was added to the "line_total" field in this mutation.
func (m *QuoteItemMutation) AddedLineTotal() (r decimal.Decimal, exists bool) {
	v := m.addline_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearLineTotal clears the value of the "line_total" field.
func (m *QuoteItemMutation) ClearLineTotal() {
	m.line_total = nil
	m.addline_total = nil
	m.clearedFields[quoteitem.FieldLineTotal] = struct{}{}
}

// LineTotalCleared returns if the "line_total" field was cleared in this mutation.
func (m *QuoteItemMutation) LineTotalCleared() bool {
	_, ok := m.clearedFields[quoteitem.FieldLineTotal]
	return ok
}

// ResetLineTotal resets all changes to the "line_total" field.
func (m *QuoteItemMutation) ResetLineTotal() {
	m.line_total = nil
	m.addline_total = nil
	delete(m.clearedFields, quoteitem.FieldLineTotal)
}

// ClearVersion clears the "version" edge to the QuoteVersion entity.
func (m *QuoteItemMutation) ClearVersion() {
	m.clearedversion = true
	m.clearedFields[quoteitem.FieldVersionID] = struct{}{}
}

// VersionCleared reports if the "version" edge to the QuoteVersion entity was cleared.
func (m *QuoteItemMutation) VersionCleared() bool {
	return m.clearedversion
}

// VersionIDs returns the "version" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VersionID instead. It exists only for internal usage by the builders.
func (m *QuoteItemMutation) VersionIDs() (ids []uuid.UUID) {
	if id := m.version; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVersion resets all changes to the "version" edge.
func (m *QuoteItemMutation) ResetVersion() {
	m.version = nil
	m.clearedversion = false
}

// Where appends a list predicates to the QuoteItemMutation builder.
func (m *QuoteItemMutation) Where(ps ...predicate.QuoteItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuoteItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuoteItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuoteItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuoteItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuoteItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuoteItem).
func (m *QuoteItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuoteItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.version != nil {
		fields = append(fields, quoteitem.FieldVersionID)
	}
	if m.sku != nil {
		fields = append(fields, quoteitem.FieldSku)
	}
	if m.description != nil {
		fields = append(fields, quoteitem.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, quoteitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, quoteitem.FieldUnitPrice)
	}
	if m.discount != nil {
		fields = append(fields, quoteitem.FieldDiscount)
	}
	if m.line_total != nil {
		fields = append(fields, quoteitem.FieldLineTotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuoteItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quoteitem.FieldVersionID:
		return m.VersionID()
	case quoteitem.FieldSku:
		return m.Sku()
	case quoteitem.FieldDescription:
		return m.Description()
	case quoteitem.FieldQuantity:
		return m.Quantity()
	case quoteitem.FieldUnitPrice:
		return m.UnitPrice()
	case quoteitem.FieldDiscount:
		return m.Discount()
	case quoteitem.FieldLineTotal:
		return m.LineTotal()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuoteItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quoteitem.FieldVersionID:
		return m.OldVersionID(ctx)
	case quoteitem.FieldSku:
		return m.OldSku(ctx)
	case quoteitem.FieldDescription:
		return m.OldDescription(ctx)
	case quoteitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case quoteitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case quoteitem.FieldDiscount:
		return m.OldDiscount(ctx)
	case quoteitem.FieldLineTotal:
		return m.OldLineTotal(ctx)
	}
	return nil, fmt.Errorf("unknown QuoteItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quoteitem.FieldVersionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionID(v)
		return nil
	case quoteitem.FieldSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSku(v)
		return nil
	case quoteitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case quoteitem.FieldQuantity:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case quoteitem.FieldUnitPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case quoteitem.FieldDiscount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscount(v)
		return nil
	case quoteitem.FieldLineTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineTotal(v)
		return nil
	}
	return fmt.Errorf("unknown QuoteItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuoteItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, quoteitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, quoteitem.FieldUnitPrice)
	}
	if m.adddiscount != nil {
		fields = append(fields, quoteitem.FieldDiscount)
	}
	if m.addline_total != nil {
		fields = append(fields, quoteitem.FieldLineTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuoteItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quoteitem.FieldQuantity:
		return m.AddedQuantity()
	case quoteitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case quoteitem.FieldDiscount:
		return m.AddedDiscount()
	case quoteitem.FieldLineTotal:
		return m.AddedLineTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quoteitem.FieldQuantity:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case quoteitem.FieldUnitPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case quoteitem.FieldDiscount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscount(v)
		return nil
	case quoteitem.FieldLineTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineTotal(v)
		return nil
	}
	return fmt.Errorf("unknown QuoteItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuoteItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quoteitem.FieldSku) {
		fields = append(fields, quoteitem.FieldSku)
	}
	if m.FieldCleared(quoteitem.FieldDiscount) {
		fields = append(fields, quoteitem.FieldDiscount)
	}
	if m.FieldCleared(quoteitem.FieldLineTotal) {
		fields = append(fields, quoteitem.FieldLineTotal)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuoteItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuoteItemMutation) ClearField(name string) error {
	switch name {
	case quoteitem.FieldSku:
		m.ClearSku()
		return nil
	case quoteitem.FieldDiscount:
		m.ClearDiscount()
		return nil
	case quoteitem.FieldLineTotal:
		m.ClearLineTotal()
		return nil
	}
	return fmt.Errorf("unknown QuoteItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuoteItemMutation) ResetField(name string) error {
	switch name {
	case quoteitem.FieldVersionID:
		m.ResetVersionID()
		return nil
	case quoteitem.FieldSku:
		m.ResetSku()
		return nil
	case quoteitem.FieldDescription:
		m.ResetDescription()
		return nil
	case quoteitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case quoteitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case quoteitem.FieldDiscount:
		m.ResetDiscount()
		return nil
	case quoteitem.FieldLineTotal:
		m.ResetLineTotal()
		return nil
	}
	return fmt.Errorf("unknown QuoteItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuoteItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.version != nil {
		edges = append(edges, quoteitem.EdgeVersion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuoteItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quoteitem.EdgeVersion:
		if id := m.version; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuoteItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuoteItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuoteItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedversion {
		edges = append(edges, quoteitem.EdgeVersion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuoteItemMutation) EdgeCleared(name string) bool {
	switch name {
	case quoteitem.EdgeVersion:
		return m.clearedversion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuoteItemMutation) ClearEdge(name string) error {
	switch name {
	case quoteitem.EdgeVersion:
		m.ClearVersion()
		return nil
	}
	return fmt.Errorf("unknown QuoteItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuoteItemMutation) ResetEdge(name string) error {
	switch name {
	case quoteitem.EdgeVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown QuoteItem edge %s", name)
}

// QuoteVersionMutation represents an operation that mutates the QuoteVersion nodes in the graph.
type QuoteVersionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	version_label       *string
	currency            *string
	subtotal            *decimal.Decimal
	addsubtotal         *decimal.Decimal
	tax                 *decimal.Decimal
	addtax              *decimal.Decimal
	shipping            *decimal.Decimal
	addshipping         *decimal.Decimal
	total               *decimal.Decimal
	addtotal            *decimal.Decimal
	valid_till          *time.Time
	terms               *string
	extracted_json      *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	quote               *uuid.UUID
	clearedquote        bool
	source_email        *uuid.UUID
	clearedsource_email bool
	items               map[uuid.UUID]struct{}
	removeditems        map[uuid.UUID]struct{}
	cleareditems        bool
	done                bool
	oldValue            func(context.Context) (*QuoteVersion, error)
	predicates          []predicate.QuoteVersion
}

var _ ent.Mutation = (*QuoteVersionMutation)(nil)

// quoteversionOption allows management of the mutation configuration using functional options.
type quoteversionOption func(*QuoteVersionMutation)

// newQuoteVersionMutation creates new mutation for the QuoteVersion entity.
func newQuoteVersionMutation(c config, op Op, opts ...quoteversionOption) *QuoteVersionMutation {
	m := &QuoteVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuoteVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuoteVersionID sets the ID field of the mutation.
func withQuoteVersionID(id uuid.UUID) quoteversionOption {
	return func(m *QuoteVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *QuoteVersion
		)
		m.oldValue = func(ctx context.Context) (*QuoteVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuoteVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuoteVersion sets the old QuoteVersion of the mutation.
func withQuoteVersion(node *QuoteVersion) quoteversionOption {
	return func(m *QuoteVersionMutation) {
		m.oldValue = func(context.Context) (*QuoteVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuoteVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuoteVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuoteVersion entities.
func (m *QuoteVersionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuoteVersionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuoteVersionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuoteVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuoteID sets the "quote_id" field.
func (m *QuoteVersionMutation) SetQuoteID(u uuid.UUID) {
	m.quote = &u
}

// QuoteID returns the value of the "quote_id" field in the mutation.
func (m *QuoteVersionMutation) QuoteID() (r uuid.UUID, exists bool) {
	v := m.quote
	if v == nil {
		return
	}
	return *v, true
}

// OldQuoteID returns the old "quote_id" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldQuoteID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuoteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuoteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuoteID: %w", err)
	}
	return oldValue.QuoteID, nil
}

// ResetQuoteID resets all changes to the "quote_id" field.
func (m *QuoteVersionMutation) ResetQuoteID() {
	m.quote = nil
}

// SetSourceEmailID sets the "source_email_id" field.
func (m *QuoteVersionMutation) SetSourceEmailID(u uuid.UUID) {
	m.source_email = &u
}

// SourceEmailID returns the value of the "source_email_id" field in the mutation.
func (m *QuoteVersionMutation) SourceEmailID() (r uuid.UUID, exists bool) {
	v := m.source_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEmailID returns the old "source_email_id" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldSourceEmailID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEmailID: %w", err)
	}
	return oldValue.SourceEmailID, nil
}

// ResetSourceEmailID resets all changes to the "source_email_id" field.
func (m *QuoteVersionMutation) ResetSourceEmailID() {
	m.source_email = nil
}

// SetVersionLabel sets the "version_label" field.
func (m *QuoteVersionMutation) SetVersionLabel(s string) {
	m.version_label = &s
}

// VersionLabel returns the value of the "version_label" field in the mutation.
func (m *QuoteVersionMutation) VersionLabel() (r string, exists bool) {
	v := m.version_label
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionLabel returns the old "version_label" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldVersionLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionLabel: %w", err)
	}
	return oldValue.VersionLabel, nil
}

// ClearVersionLabel clears the value of the "version_label" field.
func (m *QuoteVersionMutation) ClearVersionLabel() {
	m.version_label = nil
	m.clearedFields[quoteversion.FieldVersionLabel] = struct{}{}
}

// VersionLabelCleared returns if the "version_label" field was cleared in this mutation.
func (m *QuoteVersionMutation) VersionLabelCleared() bool {
	_, ok := m.clearedFields[quoteversion.FieldVersionLabel]
	return ok
}

// ResetVersionLabel resets all changes to the "version_label" field.
func (m *QuoteVersionMutation) ResetVersionLabel() {
	m.version_label = nil
	delete(m.clearedFields, quoteversion.FieldVersionLabel)
}

// SetCurrency sets the "currency" field.
func (m *QuoteVersionMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *QuoteVersionMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *QuoteVersionMutation) ResetCurrency() {
	m.currency = nil
}

// SetSubtotal sets the "subtotal" field.
func (m *QuoteVersionMutation) SetSubtotal(d decimal.Decimal) {
	m.subtotal = &d
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *QuoteVersionMutation) Subtotal() (r decimal.Decimal, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldSubtotal(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds d to the "subtotal" field.
func (m *QuoteVersionMutation) AddSubtotal(d decimal.Decimal) {
	if m.addsubtotal != nil {
		*m.addsubtotal = m.addsubtotal.Add(d)
	} else {
		m.addsubtotal = &d
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *QuoteVersionMutation) AddedSubtotal() (r decimal.Decimal, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubtotal clears the value of the "subtotal" field.
func (m *QuoteVersionMutation) ClearSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	m.clearedFields[quoteversion.FieldSubtotal] = struct{}{}
}

// SubtotalCleared returns if the "subtotal" field was cleared in this mutation.
func (m *QuoteVersionMutation) SubtotalCleared() bool {
	_, ok := m.clearedFields[quoteversion.FieldSubtotal]
	return ok
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *QuoteVersionMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	delete(m.clearedFields, quoteversion.FieldSubtotal)
}

// SetTax sets the "tax" field.
func (m *QuoteVersionMutation) SetTax(d decimal.Decimal) {
	m.tax = &d
	m.addtax = nil
}

// Tax returns the value of the "tax" field in the mutation.
func (m *QuoteVersionMutation) Tax() (r decimal.Decimal, exists bool) {
	v := m.tax
	if v == nil {
		return
	}
	return *v, true
}

// OldTax returns the old "tax" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldTax(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTax: %w", err)
	}
	return oldValue.Tax, nil
}

// AddTax adds d to the "tax" field.
func (m *QuoteVersionMutation) AddTax(d decimal.Decimal) {
	if m.addtax != nil {
		*m.addtax = m.addtax.Add(d)
	} else {
		m.addtax = &d
	}
}

// AddedTax returns the value that was added to the "tax" field in this mutation.
func (m *QuoteVersionMutation) AddedTax() (r decimal.Decimal, exists bool) {
	v := m.addtax
	if v == nil {
		return
	}
	return *v, true
}

// ClearTax clears the value of the "tax" field.
func (m *QuoteVersionMutation) ClearTax() {
	m.tax = nil
	m.addtax = nil
	m.clearedFields[quoteversion.FieldTax] = struct{}{}
}

// TaxCleared returns if the "tax" field was cleared in this mutation.
func (m *QuoteVersionMutation) TaxCleared() bool {
	_, ok := m.clearedFields[quoteversion.FieldTax]
	return ok
}

// ResetTax resets all changes to the "tax" field.
func (m *QuoteVersionMutation) ResetTax() {
	m.tax = nil
	m.addtax = nil
	delete(m.clearedFields, quoteversion.FieldTax)
}

// SetShipping sets the "shipping" field.
func (m *QuoteVersionMutation) SetShipping(d decimal.Decimal) {
	m.shipping = &d
	m.addshipping = nil
}

// Shipping returns the value of the "shipping" field in the mutation.
func (m *QuoteVersionMutation) Shipping() (r decimal.Decimal, exists bool) {
	v := m.shipping
	if v == nil {
		return
	}
	return *v, true
}

// OldShipping returns the old "shipping" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldShipping(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShipping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShipping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShipping: %w", err)
	}
	return oldValue.Shipping, nil
}

// AddShipping adds d to the "shipping" field.
func (m *QuoteVersionMutation) AddShipping(d decimal.Decimal) {
	if m.addshipping != nil {
		*m.addshipping = m.addshipping.Add(d)
	} else {
		m.addshipping = &d
	}
}

// AddedShipping returns the value that was added to the "shipping" field in this mutation.
func (m *QuoteVersionMutation) AddedShipping() (r decimal.Decimal, exists bool) {
	v := m.addshipping
	if v == nil {
		return
	}
	return *v, true
}

// ClearShipping clears the value of the "shipping" field.
func (m *QuoteVersionMutation) ClearShipping() {
	m.shipping = nil
	m.addshipping = nil
	m.clearedFields[quoteversion.FieldShipping] = struct{}{}
}

// ShippingCleared returns if the "shipping" field was cleared in this mutation.
func (m *QuoteVersionMutation) ShippingCleared() bool {
	_, ok := m.clearedFields[quoteversion.FieldShipping]
	return ok
}

// ResetShipping resets all changes to the "shipping" field.
func (m *QuoteVersionMutation) ResetShipping() {
	m.shipping = nil
	m.addshipping = nil
	delete(m.clearedFields, quoteversion.FieldShipping)
}

// SetTotal sets the "total" field.
func (m *QuoteVersionMutation) SetTotal(d decimal.Decimal) {
	m.total = &d
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *QuoteVersionMutation) Total() (r decimal.Decimal, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldTotal(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds d to the "total" field.
func (m *QuoteVersionMutation) AddTotal(d decimal.Decimal) {
	if m.addtotal != nil {
		*m.addtotal = m.addtotal.Add(d)
	} else {
		m.addtotal = &d
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *QuoteVersionMutation) AddedTotal() (r decimal.Decimal, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *QuoteVersionMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetValidTill sets the "valid_till" field.
func (m *QuoteVersionMutation) SetValidTill(t time.Time) {
	m.valid_till = &t
}

// ValidTill returns the value of the "valid_till" field in the mutation.
func (m *QuoteVersionMutation) ValidTill() (r time.Time, exists bool) {
	v := m.valid_till
	if v == nil {
		return
	}
	return *v, true
}

// OldValidTill returns the old "valid_till" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldValidTill(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidTill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidTill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidTill: %w", err)
	}
	return oldValue.ValidTill, nil
}

// ClearValidTill clears the value of the "valid_till" field.
func (m *QuoteVersionMutation) ClearValidTill() {
	m.valid_till = nil
	m.clearedFields[quoteversion.FieldValidTill] = struct{}{}
}

// ValidTillCleared returns if the "valid_till" field was cleared in this mutation.
func (m *QuoteVersionMutation) ValidTillCleared() bool {
	_, ok := m.clearedFields[quoteversion.FieldValidTill]
	return ok
}

// ResetValidTill resets all changes to the "valid_till" field.
func (m *QuoteVersionMutation) ResetValidTill() {
	m.valid_till = nil
	delete(m.clearedFields, quoteversion.FieldValidTill)
}

// SetTerms sets the "terms" field.
func (m *QuoteVersionMutation) SetTerms(s string) {
	m.terms = &s
}

// Terms returns the value of the "terms" field in the mutation.
func (m *QuoteVersionMutation) Terms() (r string, exists bool) {
	v := m.terms
	if v == nil {
		return
	}
	return *v, true
}

// OldTerms returns the old "terms" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldTerms(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerms: %w", err)
	}
	return oldValue.Terms, nil
}

// ClearTerms clears the value of the "terms" field.
func (m *QuoteVersionMutation) ClearTerms() {
	m.terms = nil
	m.clearedFields[quoteversion.FieldTerms] = struct{}{}
}

// TermsCleared returns if the "terms" field was cleared in this mutation.
func (m *QuoteVersionMutation) TermsCleared() bool {
	_, ok := m.clearedFields[quoteversion.FieldTerms]
	return ok
}

// ResetTerms resets all changes to the "terms" field.
func (m *QuoteVersionMutation) ResetTerms() {
	m.terms = nil
	delete(m.clearedFields, quoteversion.FieldTerms)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *QuoteVersionMutation) SetExtractedJSON(value map[string]interface{}) {
	m.extracted_json = &value
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *QuoteVersionMutation) ExtractedJSON() (r map[string]interface{}, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldExtractedJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *QuoteVersionMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.clearedFields[quoteversion.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *QuoteVersionMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[quoteversion.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *QuoteVersionMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	delete(m.clearedFields, quoteversion.FieldExtractedJSON)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuoteVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuoteVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuoteVersion entity.
// If the QuoteVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuoteVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *QuoteVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearQuote clears the "quote" edge to the Quote entity.
func (m *QuoteVersionMutation) ClearQuote() {
	m.clearedquote = true
	m.clearedFields[quoteversion.FieldQuoteID] = struct{}{}
}

// QuoteCleared reports if the "quote" edge to the Quote entity was cleared.
func (m *QuoteVersionMutation) QuoteCleared() bool {
	return m.clearedquote
}

// QuoteIDs returns the "quote" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuoteID instead. It exists only for internal usage by the builders.
func (m *QuoteVersionMutation) QuoteIDs() (ids []uuid.UUID) {
	if id := m.quote; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuote resets all changes to the "quote" edge.
func (m *QuoteVersionMutation) ResetQuote() {
	m.quote = nil
	m.clearedquote = false
}

// ClearSourceEmail clears the "source_email" edge to the Email entity.
func (m *QuoteVersionMutation) ClearSourceEmail() {
	m.clearedsource_email = true
	m.clearedFields[quoteversion.FieldSourceEmailID] = struct{}{}
}

// SourceEmailCleared reports if the "source_email" edge to the Email entity was cleared.
func (m *QuoteVersionMutation) SourceEmailCleared() bool {
	return m.clearedsource_email
}

// SourceEmailIDs returns the "source_email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceEmailID instead. It exists only for internal usage by the builders.
func (m *QuoteVersionMutation) SourceEmailIDs() (ids []uuid.UUID) {
	if id := m.source_email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSourceEmail resets all changes to the "source_email" edge.
func (m *QuoteVersionMutation) ResetSourceEmail() {
	m.source_email = nil
	m.clearedsource_email = false
}

// AddItemIDs adds the "items" edge to the QuoteItem entity by ids.
func (m *QuoteVersionMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the QuoteItem entity.
func (m *QuoteVersionMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the QuoteItem entity was cleared.
func (m *QuoteVersionMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the QuoteItem entity by IDs.
func (m *QuoteVersionMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the QuoteItem entity.
func (m *QuoteVersionMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *QuoteVersionMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *QuoteVersionMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the QuoteVersionMutation builder.
func (m *QuoteVersionMutation) Where(ps ...predicate.QuoteVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuoteVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuoteVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuoteVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuoteVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuoteVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuoteVersion).
func (m *QuoteVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuoteVersionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.quote != nil {
		fields = append(fields, quoteversion.FieldQuoteID)
	}
	if m.source_email != nil {
		fields = append(fields, quoteversion.FieldSourceEmailID)
	}
	if m.version_label != nil {
		fields = append(fields, quoteversion.FieldVersionLabel)
	}
	if m.currency != nil {
		fields = append(fields, quoteversion.FieldCurrency)
	}
	if m.subtotal != nil {
		fields = append(fields, quoteversion.FieldSubtotal)
	}
	if m.tax != nil {
		fields = append(fields, quoteversion.FieldTax)
	}
	if m.shipping != nil {
		fields = append(fields, quoteversion.FieldShipping)
	}
	if m.total != nil {
		fields = append(fields, quoteversion.FieldTotal)
	}
	if m.valid_till != nil {
		fields = append(fields, quoteversion.FieldValidTill)
	}
	if m.terms != nil {
		fields = append(fields, quoteversion.FieldTerms)
	}
	if m.extracted_json != nil {
		fields = append(fields, quoteversion.FieldExtractedJSON)
	}
	if m.created_at != nil {
		fields = append(fields, quoteversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuoteVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quoteversion.FieldQuoteID:
		return m.QuoteID()
	case quoteversion.FieldSourceEmailID:
		return m.SourceEmailID()
	case quoteversion.FieldVersionLabel:
		return m.VersionLabel()
	case quoteversion.FieldCurrency:
		return m.Currency()
	case quoteversion.FieldSubtotal:
		return m.Subtotal()
	case quoteversion.FieldTax:
		return m.Tax()
	case quoteversion.FieldShipping:
		return m.Shipping()
	case quoteversion.FieldTotal:
		return m.Total()
	case quoteversion.FieldValidTill:
		return m.ValidTill()
	case quoteversion.FieldTerms:
		return m.Terms()
	case quoteversion.FieldExtractedJSON:
		return m.ExtractedJSON()
	case quoteversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuoteVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quoteversion.FieldQuoteID:
		return m.OldQuoteID(ctx)
	case quoteversion.FieldSourceEmailID:
		return m.OldSourceEmailID(ctx)
	case quoteversion.FieldVersionLabel:
		return m.OldVersionLabel(ctx)
	case quoteversion.FieldCurrency:
		return m.OldCurrency(ctx)
	case quoteversion.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case quoteversion.FieldTax:
		return m.OldTax(ctx)
	case quoteversion.FieldShipping:
		return m.OldShipping(ctx)
	case quoteversion.FieldTotal:
		return m.OldTotal(ctx)
	case quoteversion.FieldValidTill:
		return m.OldValidTill(ctx)
	case quoteversion.FieldTerms:
		return m.OldTerms(ctx)
	case quoteversion.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case quoteversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuoteVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quoteversion.FieldQuoteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuoteID(v)
		return nil
	case quoteversion.FieldSourceEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEmailID(v)
		return nil
	case quoteversion.FieldVersionLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionLabel(v)
		return nil
	case quoteversion.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case quoteversion.FieldSubtotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case quoteversion.FieldTax:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTax(v)
		return nil
	case quoteversion.FieldShipping:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShipping(v)
		return nil
	case quoteversion.FieldTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case quoteversion.FieldValidTill:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidTill(v)
		return nil
	case quoteversion.FieldTerms:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerms(v)
		return nil
	case quoteversion.FieldExtractedJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case quoteversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuoteVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuoteVersionMutation) AddedFields() []string {
	var fields []string
	if m.addsubtotal != nil {
		fields = append(fields, quoteversion.FieldSubtotal)
	}
	if m.addtax != nil {
		fields = append(fields, quoteversion.FieldTax)
	}
	if m.addshipping != nil {
		fields = append(fields, quoteversion.FieldShipping)
	}
	if m.addtotal != nil {
		fields = append(fields, quoteversion.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuoteVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quoteversion.FieldSubtotal:
		return m.AddedSubtotal()
	case quoteversion.FieldTax:
		return m.AddedTax()
	case quoteversion.FieldShipping:
		return m.AddedShipping()
	case quoteversion.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuoteVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quoteversion.FieldSubtotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case quoteversion.FieldTax:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTax(v)
		return nil
	case quoteversion.FieldShipping:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShipping(v)
		return nil
	case quoteversion.FieldTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown QuoteVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuoteVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quoteversion.FieldVersionLabel) {
		fields = append(fields, quoteversion.FieldVersionLabel)
	}
	if m.FieldCleared(quoteversion.FieldSubtotal) {
		fields = append(fields, quoteversion.FieldSubtotal)
	}
	if m.FieldCleared(quoteversion.FieldTax) {
		fields = append(fields, quoteversion.FieldTax)
	}
	if m.FieldCleared(quoteversion.FieldShipping) {
		fields = append(fields, quoteversion.FieldShipping)
	}
	if m.FieldCleared(quoteversion.FieldValidTill) {
		fields = append(fields, quoteversion.FieldValidTill)
	}
	if m.FieldCleared(quoteversion.FieldTerms) {
		fields = append(fields, quoteversion.FieldTerms)
	}
	if m.FieldCleared(quoteversion.FieldExtractedJSON) {
		fields = append(fields, quoteversion.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuoteVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuoteVersionMutation) ClearField(name string) error {
	switch name {
	case quoteversion.FieldVersionLabel:
		m.ClearVersionLabel()
		return nil
	case quoteversion.FieldSubtotal:
		m.ClearSubtotal()
		return nil
	case quoteversion.FieldTax:
		m.ClearTax()
		return nil
	case quoteversion.FieldShipping:
		m.ClearShipping()
		return nil
	case quoteversion.FieldValidTill:
		m.ClearValidTill()
		return nil
	case quoteversion.FieldTerms:
		m.ClearTerms()
		return nil
	case quoteversion.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown QuoteVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuoteVersionMutation) ResetField(name string) error {
	switch name {
	case quoteversion.FieldQuoteID:
		m.ResetQuoteID()
		return nil
	case quoteversion.FieldSourceEmailID:
		m.ResetSourceEmailID()
		return nil
	case quoteversion.FieldVersionLabel:
		m.ResetVersionLabel()
		return nil
	case quoteversion.FieldCurrency:
		m.ResetCurrency()
		return nil
	case quoteversion.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case quoteversion.FieldTax:
		m.ResetTax()
		return nil
	case quoteversion.FieldShipping:
		m.ResetShipping()
		return nil
	case quoteversion.FieldTotal:
		m.ResetTotal()
		return nil
	case quoteversion.FieldValidTill:
		m.ResetValidTill()
		return nil
	case quoteversion.FieldTerms:
		m.ResetTerms()
		return nil
	case quoteversion.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case quoteversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuoteVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuoteVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.quote != nil {
		edges = append(edges, quoteversion.EdgeQuote)
	}
	if m.source_email != nil {
		edges = append(edges, quoteversion.EdgeSourceEmail)
	}
	if m.items != nil {
		edges = append(edges, quoteversion.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuoteVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quoteversion.EdgeQuote:
		if id := m.quote; id != nil {
			return []ent.Value{*id}
		}
	case quoteversion.EdgeSourceEmail:
		if id := m.source_email; id != nil {
			return []ent.Value{*id}
		}
	case quoteversion.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuoteVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeditems != nil {
		edges = append(edges, quoteversion.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuoteVersionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case quoteversion.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuoteVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedquote {
		edges = append(edges, quoteversion.EdgeQuote)
	}
	if m.clearedsource_email {
		edges = append(edges, quoteversion.EdgeSourceEmail)
	}
	if m.cleareditems {
		edges = append(edges, quoteversion.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuoteVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case quoteversion.EdgeQuote:
		return m.clearedquote
	case quoteversion.EdgeSourceEmail:
		return m.clearedsource_email
	case quoteversion.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuoteVersionMutation) ClearEdge(name string) error {
	switch name {
	case quoteversion.EdgeQuote:
		m.ClearQuote()
		return nil
	case quoteversion.EdgeSourceEmail:
		m.ClearSourceEmail()
		return nil
	}
	return fmt.Errorf("unknown QuoteVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuoteVersionMutation) ResetEdge(name string) error {
	switch name {
	case quoteversion.EdgeQuote:
		m.ResetQuote()
		return nil
	case quoteversion.EdgeSourceEmail:
		m.ResetSourceEmail()
		return nil
	case quoteversion.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown QuoteVersion edge %s", name)
}

// ThreadMutation represents an operation that mutates the Thread nodes in the graph.
type ThreadMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	provider_thread_id *string
	first_seen_at      *time.Time
	last_synced_at     *time.Time
	clearedFields      map[string]struct{}
	emails             map[uuid.UUID]struct{}
	removedemails      map[uuid.UUID]struct{}
	clearedemails      bool
	quotes             map[uuid.UUID]struct{}
	removedquotes      map[uuid.UUID]struct{}
	clearedquotes      bool
	done               bool
	oldValue           func(context.Context) (*Thread, error)
	predicates         []predicate.Thread
}

var _ ent.Mutation = (*ThreadMutation)(nil)

// threadOption allows management of the mutation configuration using functional options.
type threadOption func(*ThreadMutation)

// newThreadMutation creates new mutation for the Thread entity.
func newThreadMutation(c config, op Op, opts ...threadOption) *ThreadMutation {
	m := &ThreadMutation{
		config:        c,
		op:            op,
		typ:           TypeThread,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreadID sets the ID field of the mutation.
func withThreadID(id uuid.UUID) threadOption {
	return func(m *ThreadMutation) {
		var (
			err   error
			once  sync.Once
			value *Thread
		)
		m.oldValue = func(ctx context.Context) (*Thread, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Thread.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThread sets the old Thread of the mutation.
func withThread(node *Thread) threadOption {
	return func(m *ThreadMutation) {
		m.oldValue = func(context.Context) (*Thread, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Thread entities.
func (m *ThreadMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreadMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreadMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Thread.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProviderThreadID sets the "provider_thread_id" field.
func (m *ThreadMutation) SetProviderThreadID(s string) {
	m.provider_thread_id = &s
}

// ProviderThreadID returns the value of the "provider_thread_id" field in the mutation.
func (m *ThreadMutation) ProviderThreadID() (r string, exists bool) {
	v := m.provider_thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderThreadID returns the old "provider_thread_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldProviderThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderThreadID: %w", err)
	}
	return oldValue.ProviderThreadID, nil
}

// ResetProviderThreadID resets all changes to the "provider_thread_id" field.
func (m *ThreadMutation) ResetProviderThreadID() {
	m.provider_thread_id = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *ThreadMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *ThreadMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *ThreadMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (m *ThreadMutation) SetLastSyncedAt(t time.Time) {
	m.last_synced_at = &t
}

// LastSyncedAt returns the value of the "last_synced_at" field in the mutation.
func (m *ThreadMutation) LastSyncedAt() (r time.Time, exists bool) {
	v := m.last_synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncedAt returns the old "last_synced_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldLastSyncedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncedAt: %w", err)
	}
	return oldValue.LastSyncedAt, nil
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (m *ThreadMutation) ClearLastSyncedAt() {
	m.last_synced_at = nil
	m.clearedFields[thread.FieldLastSyncedAt] = struct{}{}
}

// LastSyncedAtCleared returns if the "last_synced_at" field was cleared in this mutation.
func (m *ThreadMutation) LastSyncedAtCleared() bool {
	_, ok := m.clearedFields[thread.FieldLastSyncedAt]
	return ok
}

// ResetLastSyncedAt resets all changes to the "last_synced_at" field.
func (m *ThreadMutation) ResetLastSyncedAt() {
	m.last_synced_at = nil
	delete(m.clearedFields, thread.FieldLastSyncedAt)
}

// AddEmailIDs adds the "emails" edge to the Email entity by ids.
func (m *ThreadMutation) AddEmailIDs(ids ...uuid.UUID) {
	if m.emails == nil {
		m.emails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.emails[ids[i]] = struct{}{}
	}
}

// ClearEmails clears the "emails" edge to the Email entity.
func (m *ThreadMutation) ClearEmails() {
	m.clearedemails = true
}

// EmailsCleared reports if the "emails" edge to the Email entity was cleared.
func (m *ThreadMutation) EmailsCleared() bool {
	return m.clearedemails
}

// RemoveEmailIDs removes the "emails" edge to the Email entity by IDs.
func (m *ThreadMutation) RemoveEmailIDs(ids ...uuid.UUID) {
	if m.removedemails == nil {
		m.removedemails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.emails, ids[i])
		m.removedemails[ids[i]] = struct{}{}
	}
}

// RemovedEmails returns the removed IDs of the "emails" edge to the Email entity.
func (m *ThreadMutation) RemovedEmailsIDs() (ids []uuid.UUID) {
	for id := range m.removedemails {
		ids = append(ids, id)
	}
	return
}

// EmailsIDs returns the "emails" edge IDs in the mutation.
func (m *ThreadMutation) EmailsIDs() (ids []uuid.UUID) {
	for id := range m.emails {
		ids = append(ids, id)
	}
	return
}

// ResetEmails resets all changes to the "emails" edge.
func (m *ThreadMutation) ResetEmails() {
	m.emails = nil
	m.clearedemails = false
	m.removedemails = nil
}

// AddQuoteIDs adds the "quotes" edge to the Quote entity by ids.
func (m *ThreadMutation) AddQuoteIDs(ids ...uuid.UUID) {
	if m.quotes == nil {
		m.quotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.quotes[ids[i]] = struct{}{}
	}
}

// ClearQuotes clears the "quotes" edge to the Quote entity.
func (m *ThreadMutation) ClearQuotes() {
	m.clearedquotes = true
}

// QuotesCleared reports if the "quotes" edge to the Quote entity was cleared.
func (m *ThreadMutation) QuotesCleared() bool {
	return m.clearedquotes
}

// RemoveQuoteIDs removes the "quotes" edge to the Quote entity by IDs.
func (m *ThreadMutation) RemoveQuoteIDs(ids ...uuid.UUID) {
	if m.removedquotes == nil {
		m.removedquotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.quotes, ids[i])
		m.removedquotes[ids[i]] = struct{}{}
	}
}

// RemovedQuotes returns the removed IDs of the "quotes" edge to the Quote entity.
func (m *ThreadMutation) RemovedQuotesIDs() (ids []uuid.UUID) {
	for id := range m.removedquotes {
		ids = append(ids, id)
	}
	return
}

// QuotesIDs returns the "quotes" edge IDs in the mutation.
func (m *ThreadMutation) QuotesIDs() (ids []uuid.UUID) {
	for id := range m.quotes {
		ids = append(ids, id)
	}
	return
}

// ResetQuotes resets all changes to the "quotes" edge.
func (m *ThreadMutation) ResetQuotes() {
	m.quotes = nil
	m.clearedquotes = false
	m.removedquotes = nil
}

// Where appends a list predicates to the ThreadMutation builder.
func (m *ThreadMutation) Where(ps ...predicate.Thread) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Thread, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Thread).
func (m *ThreadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreadMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.provider_thread_id != nil {
		fields = append(fields, thread.FieldProviderThreadID)
	}
	if m.first_seen_at != nil {
		fields = append(fields, thread.FieldFirstSeenAt)
	}
	if m.last_synced_at != nil {
		fields = append(fields, thread.FieldLastSyncedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thread.FieldProviderThreadID:
		return m.ProviderThreadID()
	case thread.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case thread.FieldLastSyncedAt:
		return m.LastSyncedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thread.FieldProviderThreadID:
		return m.OldProviderThreadID(ctx)
	case thread.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case thread.FieldLastSyncedAt:
		return m.OldLastSyncedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Thread field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thread.FieldProviderThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderThreadID(v)
		return nil
	case thread.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case thread.FieldLastSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Thread numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(thread.FieldLastSyncedAt) {
		fields = append(fields, thread.FieldLastSyncedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreadMutation) ClearField(name string) error {
	switch name {
	case thread.FieldLastSyncedAt:
		m.ClearLastSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown Thread nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreadMutation) ResetField(name string) error {
	switch name {
	case thread.FieldProviderThreadID:
		m.ResetProviderThreadID()
		return nil
	case thread.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case thread.FieldLastSyncedAt:
		m.ResetLastSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreadMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.emails != nil {
		edges = append(edges, thread.EdgeEmails)
	}
	if m.quotes != nil {
		edges = append(edges, thread.EdgeQuotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case thread.EdgeEmails:
		ids := make([]ent.Value, 0, len(m.emails))
		for id := range m.emails {
			ids = append(ids, id)
		}
		return ids
	case thread.EdgeQuotes:
		ids := make([]ent.Value, 0, len(m.quotes))
		for id := range m.quotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedemails != nil {
		edges = append(edges, thread.EdgeEmails)
	}
	if m.removedquotes != nil {
		edges = append(edges, thread.EdgeQuotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case thread.EdgeEmails:
		ids := make([]ent.Value, 0, len(m.removedemails))
		for id := range m.removedemails {
			ids = append(ids, id)
		}
		return ids
	case thread.EdgeQuotes:
		ids := make([]ent.Value, 0, len(m.removedquotes))
		for id := range m.removedquotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemails {
		edges = append(edges, thread.EdgeEmails)
	}
	if m.clearedquotes {
		edges = append(edges, thread.EdgeQuotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreadMutation) EdgeCleared(name string) bool {
	switch name {
	case thread.EdgeEmails:
		return m.clearedemails
	case thread.EdgeQuotes:
		return m.clearedquotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Thread unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreadMutation) ResetEdge(name string) error {
	switch name {
	case thread.EdgeEmails:
		m.ResetEmails()
		return nil
	case thread.EdgeQuotes:
		m.ResetQuotes()
		return nil
	}
	return fmt.Errorf("unknown Thread edge %s", name)
}

// VendorMutation represents an operation that mutates the Vendor nodes in the graph.
type VendorMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	domain        *string
	clearedFields map[string]struct{}
	quotes        map[uuid.UUID]struct{}
	removedquotes map[uuid.UUID]struct{}
	clearedquotes bool
	done          bool
	oldValue      func(context.Context) (*Vendor, error)
	predicates    []predicate.Vendor
}

var _ ent.Mutation = (*VendorMutation)(nil)

// vendorOption allows management of the mutation configuration using functional options.
type vendorOption func(*VendorMutation)

// newVendorMutation creates new mutation for the Vendor entity.
func newVendorMutation(c config, op Op, opts ...vendorOption) *VendorMutation {
	m := &VendorMutation{
		config:        c,
		op:            op,
		typ:           TypeVendor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVendorID sets the ID field of the mutation.
func withVendorID(id uuid.UUID) vendorOption {
	return func(m *VendorMutation) {
		var (
			err   error
			once  sync.Once
			value *Vendor
		)
		m.oldValue = func(ctx context.Context) (*Vendor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vendor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVendor sets the old Vendor of the mutation.
func withVendor(node *Vendor) vendorOption {
	return func(m *VendorMutation) {
		m.oldValue = func(context.Context) (*Vendor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VendorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VendorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vendor entities.
func (m *VendorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VendorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VendorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vendor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *VendorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VendorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *VendorMutation) ClearName() {
	m.name = nil
	m.clearedFields[vendor.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *VendorMutation) NameCleared() bool {
	_, ok := m.clearedFields[vendor.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *VendorMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, vendor.FieldName)
}

// SetDomain sets the "domain" field.
func (m *VendorMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *VendorMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Vendor entity.
// If the Vendor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorMutation) OldDomain(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *VendorMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[vendor.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *VendorMutation) DomainCleared() bool {
	_, ok := m.clearedFields[vendor.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *VendorMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, vendor.FieldDomain)
}

// AddQuoteIDs adds the "quotes" edge to the Quote entity by ids.
func (m *VendorMutation) AddQuoteIDs(ids ...uuid.UUID) {
	if m.quotes == nil {
		m.quotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.quotes[ids[i]] = struct{}{}
	}
}

// ClearQuotes clears the "quotes" edge to the Quote entity.
func (m *VendorMutation) ClearQuotes() {
	m.clearedquotes = true
}

// QuotesCleared reports if the "quotes" edge to the Quote entity was cleared.
func (m *VendorMutation) QuotesCleared() bool {
	return m.clearedquotes
}

// RemoveQuoteIDs removes the "quotes" edge to the Quote entity by IDs.
func (m *VendorMutation) RemoveQuoteIDs(ids ...uuid.UUID) {
	if m.removedquotes == nil {
		m.removedquotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.quotes, ids[i])
		m.removedquotes[ids[i]] = struct{}{}
	}
}

// RemovedQuotes returns the removed IDs of the "quotes" edge to the Quote entity.
func (m *VendorMutation) RemovedQuotesIDs() (ids []uuid.UUID) {
	for id := range m.removedquotes {
		ids = append(ids, id)
	}
	return
}

// QuotesIDs returns the "quotes" edge IDs in the mutation.
func (m *VendorMutation) QuotesIDs() (ids []uuid.UUID) {
	for id := range m.quotes {
		ids = append(ids, id)
	}
	return
}

// ResetQuotes resets all changes to the "quotes" edge.
func (m *VendorMutation) ResetQuotes() {
	m.quotes = nil
	m.clearedquotes = false
	m.removedquotes = nil
}

// Where appends a list predicates to the VendorMutation builder.
func (m *VendorMutation) Where(ps ...predicate.Vendor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VendorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VendorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vendor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VendorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VendorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vendor).
func (m *VendorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VendorMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, vendor.FieldName)
	}
	if m.domain != nil {
		fields = append(fields, vendor.FieldDomain)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VendorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vendor.FieldName:
		return m.Name()
	case vendor.FieldDomain:
		return m.Domain()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VendorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vendor.FieldName:
		return m.OldName(ctx)
	case vendor.FieldDomain:
		return m.OldDomain(ctx)
	}
	return nil, fmt.Errorf("unknown Vendor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vendor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case vendor.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	}
	return fmt.Errorf("unknown Vendor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VendorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VendorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vendor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VendorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vendor.FieldName) {
		fields = append(fields, vendor.FieldName)
	}
	if m.FieldCleared(vendor.FieldDomain) {
		fields = append(fields, vendor.FieldDomain)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VendorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VendorMutation) ClearField(name string) error {
	switch name {
	case vendor.FieldName:
		m.ClearName()
		return nil
	case vendor.FieldDomain:
		m.ClearDomain()
		return nil
	}
	return fmt.Errorf("unknown Vendor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VendorMutation) ResetField(name string) error {
	switch name {
	case vendor.FieldName:
		m.ResetName()
		return nil
	case vendor.FieldDomain:
		m.ResetDomain()
		return nil
	}
	return fmt.Errorf("unknown Vendor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VendorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.quotes != nil {
		edges = append(edges, vendor.EdgeQuotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VendorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vendor.EdgeQuotes:
		ids := make([]ent.Value, 0, len(m.quotes))
		for id := range m.quotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VendorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedquotes != nil {
		edges = append(edges, vendor.EdgeQuotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VendorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case vendor.EdgeQuotes:
		ids := make([]ent.Value, 0, len(m.removedquotes))
		for id := range m.removedquotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VendorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquotes {
		edges = append(edges, vendor.EdgeQuotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VendorMutation) EdgeCleared(name string) bool {
	switch name {
	case vendor.EdgeQuotes:
		return m.clearedquotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VendorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Vendor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VendorMutation) ResetEdge(name string) error {
	switch name {
	case vendor.EdgeQuotes:
		m.ResetQuotes()
		return nil
	}
	return fmt.Errorf("unknown Vendor edge %s", name)
}
