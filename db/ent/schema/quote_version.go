package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteVersion is one structured quote snapshot extracted from exactly one
// source email. Natural key is (quote_id, source_email_id); reprocessing the
// same email updates the row in place.
type QuoteVersion struct{ ent.Schema }

func (QuoteVersion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quote_versions"},
	}
}

func (QuoteVersion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("quote_id", uuid.UUID{}),
		field.UUID("source_email_id", uuid.UUID{}),
		field.String("version_label").Optional().Nillable(),
		// Empty means the model did not report one; persisted as-is rather
		// than failing the version.
		field.String("currency"),
		field.Float("subtotal").
			GoType(decimal.Decimal{}).
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax").
			GoType(decimal.Decimal{}).
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("shipping").
			GoType(decimal.Decimal{}).
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("valid_till").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Text("terms").Optional().Nillable(),
		// Full normalized extraction payload, kept for audit and debugging.
		field.JSON("extracted_json", map[string]any{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (QuoteVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("quote", Quote.Type).
			Ref("versions").
			Field("quote_id").
			Required().
			Unique(),
		edge.From("source_email", Email.Type).
			Ref("quote_versions").
			Field("source_email_id").
			Required().
			Unique(),
		edge.To("items", QuoteItem.Type),
	}
}

func (QuoteVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quote_id", "source_email_id").Unique(),
	}
}
