package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteItem is one line within a version. Items are fully replaced on every
// reprocessing of a version.
type QuoteItem struct{ ent.Schema }

func (QuoteItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quote_items"},
	}
}

func (QuoteItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("version_id", uuid.UUID{}),
		field.String("sku").Optional().Nillable(),
		field.String("description").NotEmpty(),
		field.Float("quantity").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("unit_price").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("discount").
			GoType(decimal.Decimal{}).
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("line_total").
			GoType(decimal.Decimal{}).
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (QuoteItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("version", QuoteVersion.Type).
			Ref("items").
			Field("version_id").
			Required().
			Unique(),
	}
}
