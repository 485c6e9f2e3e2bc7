// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString, Nullable: true},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "local_path", Type: field.TypeString, Nullable: true},
		{Name: "email_id", Type: field.TypeUUID},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attachments_emails_attachments",
				Columns:    []*schema.Column{AttachmentsColumns[5]},
				RefColumns: []*schema.Column{EmailsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// EmailsColumns holds the columns for the "emails" table.
	EmailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider_message_id", Type: field.TypeString, Unique: true},
		{Name: "from_addr", Type: field.TypeString, Nullable: true},
		{Name: "to_addrs", Type: field.TypeJSON, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "snippet", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeUUID},
	}
	// EmailsTable holds the schema information for the "emails" table.
	EmailsTable = &schema.Table{
		Name:       "emails",
		Columns:    EmailsColumns,
		PrimaryKey: []*schema.Column{EmailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "emails_threads_emails",
				Columns:    []*schema.Column{EmailsColumns[8]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "email_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EmailsColumns[8], EmailsColumns[7]},
			},
		},
	}
	// EmailBodiesColumns holds the columns for the "email_bodies" table.
	EmailBodiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "body_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "body_html", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "email_id", Type: field.TypeUUID},
	}
	// EmailBodiesTable holds the schema information for the "email_bodies" table.
	EmailBodiesTable = &schema.Table{
		Name:       "email_bodies",
		Columns:    EmailBodiesColumns,
		PrimaryKey: []*schema.Column{EmailBodiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "email_bodies_emails_bodies",
				Columns:    []*schema.Column{EmailBodiesColumns[4]},
				RefColumns: []*schema.Column{EmailsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// QuotesColumns holds the columns for the "quotes" table.
	QuotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "anchor_email_id", Type: field.TypeUUID, Nullable: true},
		{Name: "thread_id", Type: field.TypeUUID},
		{Name: "vendor_id", Type: field.TypeUUID},
	}
	// QuotesTable holds the schema information for the "quotes" table.
	QuotesTable = &schema.Table{
		Name:       "quotes",
		Columns:    QuotesColumns,
		PrimaryKey: []*schema.Column{QuotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quotes_emails_anchored_quotes",
				Columns:    []*schema.Column{QuotesColumns[3]},
				RefColumns: []*schema.Column{EmailsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "quotes_threads_quotes",
				Columns:    []*schema.Column{QuotesColumns[4]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "quotes_vendors_quotes",
				Columns:    []*schema.Column{QuotesColumns[5]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quote_thread_id_vendor_id",
				Unique:  true,
				Columns: []*schema.Column{QuotesColumns[4], QuotesColumns[5]},
			},
		},
	}
	// QuoteItemsColumns holds the columns for the "quote_items" table.
	QuoteItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sku", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "discount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "line_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "version_id", Type: field.TypeUUID},
	}
	// QuoteItemsTable holds the schema information for the "quote_items" table.
	QuoteItemsTable = &schema.Table{
		Name:       "quote_items",
		Columns:    QuoteItemsColumns,
		PrimaryKey: []*schema.Column{QuoteItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quote_items_quote_versions_items",
				Columns:    []*schema.Column{QuoteItemsColumns[7]},
				RefColumns: []*schema.Column{QuoteVersionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// QuoteVersionsColumns holds the columns for the "quote_versions" table.
	QuoteVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version_label", Type: field.TypeString, Nullable: true},
		{Name: "currency", Type: field.TypeString},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "shipping", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "valid_till", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "terms", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_email_id", Type: field.TypeUUID},
		{Name: "quote_id", Type: field.TypeUUID},
	}
	// QuoteVersionsTable holds the schema information for the "quote_versions" table.
	QuoteVersionsTable = &schema.Table{
		Name:       "quote_versions",
		Columns:    QuoteVersionsColumns,
		PrimaryKey: []*schema.Column{QuoteVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quote_versions_emails_quote_versions",
				Columns:    []*schema.Column{QuoteVersionsColumns[11]},
				RefColumns: []*schema.Column{EmailsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "quote_versions_quotes_versions",
				Columns:    []*schema.Column{QuoteVersionsColumns[12]},
				RefColumns: []*schema.Column{QuotesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quoteversion_quote_id_source_email_id",
				Unique:  true,
				Columns: []*schema.Column{QuoteVersionsColumns[12], QuoteVersionsColumns[11]},
			},
		},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider_thread_id", Type: field.TypeString, Unique: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_synced_at", Type: field.TypeTime, Nullable: true},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
	}
	// VendorsColumns holds the columns for the "vendors" table.
	VendorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "domain", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// VendorsTable holds the schema information for the "vendors" table.
	VendorsTable = &schema.Table{
		Name:       "vendors",
		Columns:    VendorsColumns,
		PrimaryKey: []*schema.Column{VendorsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttachmentsTable,
		EmailsTable,
		EmailBodiesTable,
		QuotesTable,
		QuoteItemsTable,
		QuoteVersionsTable,
		ThreadsTable,
		VendorsTable,
	}
)

func init() {
	AttachmentsTable.ForeignKeys[0].RefTable = EmailsTable
	AttachmentsTable.Annotation = &entsql.Annotation{
		Table: "attachments",
	}
	EmailsTable.ForeignKeys[0].RefTable = ThreadsTable
	EmailsTable.Annotation = &entsql.Annotation{
		Table: "emails",
	}
	EmailBodiesTable.ForeignKeys[0].RefTable = EmailsTable
	EmailBodiesTable.Annotation = &entsql.Annotation{
		Table: "email_bodies",
	}
	QuotesTable.ForeignKeys[0].RefTable = EmailsTable
	QuotesTable.ForeignKeys[1].RefTable = ThreadsTable
	QuotesTable.ForeignKeys[2].RefTable = VendorsTable
	QuotesTable.Annotation = &entsql.Annotation{
		Table: "quotes",
	}
	QuoteItemsTable.ForeignKeys[0].RefTable = QuoteVersionsTable
	QuoteItemsTable.Annotation = &entsql.Annotation{
		Table: "quote_items",
	}
	QuoteVersionsTable.ForeignKeys[0].RefTable = EmailsTable
	QuoteVersionsTable.ForeignKeys[1].RefTable = QuotesTable
	QuoteVersionsTable.Annotation = &entsql.Annotation{
		Table: "quote_versions",
	}
	ThreadsTable.Annotation = &entsql.Annotation{
		Table: "threads",
	}
	VendorsTable.Annotation = &entsql.Annotation{
		Table: "vendors",
	}
}
