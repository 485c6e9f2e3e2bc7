package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// EmailBody is one rendering of an email body, keyed by MIME type.
type EmailBody struct{ ent.Schema }

func (EmailBody) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "email_bodies"},
	}
}

func (EmailBody) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("email_id", uuid.UUID{}),
		field.String("mime_type").Optional().Nillable(),
		field.Text("body_text").Optional().Nillable(),
		field.Text("body_html").Optional().Nillable(),
	}
}

func (EmailBody) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("email", Email.Type).
			Ref("bodies").
			Field("email_id").
			Required().
			Unique(),
	}
}
