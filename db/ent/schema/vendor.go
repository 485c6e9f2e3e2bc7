package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Vendor is the canonical record for one supplier. At most one record per
// domain; name is a fallback natural key when the domain is unknown.
type Vendor struct{ ent.Schema }

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").Optional().Nillable(),
		field.String("domain").Optional().Nillable().Unique(),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("quotes", Quote.Type),
	}
}
