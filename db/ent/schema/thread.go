package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Thread groups related emails into one conversation.
type Thread struct{ ent.Schema }

func (Thread) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "threads"},
	}
}

func (Thread) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("provider_thread_id").NotEmpty().Unique(),
		field.Time("first_seen_at").Default(time.Now),
		field.Time("last_synced_at").Optional().Nillable(),
	}
}

func (Thread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("emails", Email.Type),
		edge.To("quotes", Quote.Type),
	}
}
