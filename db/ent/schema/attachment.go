package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Attachment references a downloaded attachment payload on local disk.
type Attachment struct{ ent.Schema }

func (Attachment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attachments"},
	}
}

func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("email_id", uuid.UUID{}),
		field.String("filename").Optional().Nillable(),
		field.String("mime_type").Optional().Nillable(),
		field.Int64("size_bytes").Optional().Nillable(),
		field.String("local_path").Optional().Nillable(),
	}
}

func (Attachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("email", Email.Type).
			Ref("attachments").
			Field("email_id").
			Required().
			Unique(),
	}
}
