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

// Quote groups all price proposals from one vendor within one thread.
// Natural key is (thread_id, vendor_id).
type Quote struct{ ent.Schema }

func (Quote) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quotes"},
	}
}

func (Quote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("thread_id", uuid.UUID{}),
		field.UUID("vendor_id", uuid.UUID{}),
		// Set once from the first email that produced the quote.
		field.UUID("anchor_email_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").Default("active"),
		field.Time("created_at").Default(time.Now),
	}
}

func (Quote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("quotes").
			Field("thread_id").
			Required().
			Unique(),
		edge.From("vendor", Vendor.Type).
			Ref("quotes").
			Field("vendor_id").
			Required().
			Unique(),
		edge.From("anchor_email", Email.Type).
			Ref("anchored_quotes").
			Field("anchor_email_id").
			Unique(),
		edge.To("versions", QuoteVersion.Type),
	}
}

func (Quote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "vendor_id").Unique(),
	}
}
