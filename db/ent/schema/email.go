package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Email is one message as delivered by the ingestion layer. The extraction
// pipeline only reads it.
type Email struct{ ent.Schema }

func (Email) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "emails"},
	}
}

func (Email) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("thread_id", uuid.UUID{}),
		field.String("provider_message_id").NotEmpty().Unique(),
		field.String("from_addr").Optional().Nillable(),
		field.JSON("to_addrs", []string{}).Optional(),
		field.String("subject").Optional().Nillable(),
		field.Time("sent_at").Optional().Nillable(),
		field.String("snippet").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Email) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY emails -> ONE thread (FK: emails.thread_id)
		edge.From("thread", Thread.Type).
			Ref("emails").
			Field("thread_id").
			Required().
			Unique(),
		edge.To("bodies", EmailBody.Type),
		edge.To("attachments", Attachment.Type),
		// Versions extracted from this email; quotes anchored at this email.
		edge.To("quote_versions", QuoteVersion.Type),
		edge.To("anchored_quotes", Quote.Type),
	}
}

func (Email) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "created_at"),
	}
}
