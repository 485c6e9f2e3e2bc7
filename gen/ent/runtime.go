// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Akash-sopho/email-extractor-agent/db/ent/schema"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/attachment"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/emailbody"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quote"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteitem"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/quoteversion"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/thread"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/vendor"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescID is the schema descriptor for id field.
	attachmentDescID := attachmentFields[0].Descriptor()
	// attachment.DefaultID holds the default value on creation for the id field.
	attachment.DefaultID = attachmentDescID.Default.(func() uuid.UUID)
	emailFields := schema.Email{}.Fields()
	_ = emailFields
	// emailDescProviderMessageID is the schema descriptor for provider_message_id field.
	emailDescProviderMessageID := emailFields[2].Descriptor()
	// email.ProviderMessageIDValidator is a validator for the "provider_message_id" field. It is called by the builders before save.
	email.ProviderMessageIDValidator = emailDescProviderMessageID.Validators[0].(func(string) error)
	// emailDescCreatedAt is the schema descriptor for created_at field.
	emailDescCreatedAt := emailFields[8].Descriptor()
	// email.DefaultCreatedAt holds the default value on creation for the created_at field.
	email.DefaultCreatedAt = emailDescCreatedAt.Default.(func() time.Time)
	// emailDescID is the schema descriptor for id field.
	emailDescID := emailFields[0].Descriptor()
	// email.DefaultID holds the default value on creation for the id field.
	email.DefaultID = emailDescID.Default.(func() uuid.UUID)
	emailbodyFields := schema.EmailBody{}.Fields()
	_ = emailbodyFields
	// emailbodyDescID is the schema descriptor for id field.
	emailbodyDescID := emailbodyFields[0].Descriptor()
	// emailbody.DefaultID holds the default value on creation for the id field.
	emailbody.DefaultID = emailbodyDescID.Default.(func() uuid.UUID)
	quoteFields := schema.Quote{}.Fields()
	_ = quoteFields
	// quoteDescStatus is the schema descriptor for status field.
	quoteDescStatus := quoteFields[4].Descriptor()
	// quote.DefaultStatus holds the default value on creation for the status field.
	quote.DefaultStatus = quoteDescStatus.Default.(string)
	// quoteDescCreatedAt is the schema descriptor for created_at field.
	quoteDescCreatedAt := quoteFields[5].Descriptor()
	// quote.DefaultCreatedAt holds the default value on creation for the created_at field.
	quote.DefaultCreatedAt = quoteDescCreatedAt.Default.(func() time.Time)
	// quoteDescID is the schema descriptor for id field.
	quoteDescID := quoteFields[0].Descriptor()
	// quote.DefaultID holds the default value on creation for the id field.
	quote.DefaultID = quoteDescID.Default.(func() uuid.UUID)
	quoteitemFields := schema.QuoteItem{}.Fields()
	_ = quoteitemFields
	// quoteitemDescDescription is the schema descriptor for description field.
	quoteitemDescDescription := quoteitemFields[3].Descriptor()
	// quoteitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	quoteitem.DescriptionValidator = quoteitemDescDescription.Validators[0].(func(string) error)
	// quoteitemDescID is the schema descriptor for id field.
	quoteitemDescID := quoteitemFields[0].Descriptor()
	// quoteitem.DefaultID holds the default value on creation for the id field.
	quoteitem.DefaultID = quoteitemDescID.Default.(func() uuid.UUID)
	quoteversionFields := schema.QuoteVersion{}.Fields()
	_ = quoteversionFields
	// quoteversionDescCreatedAt is the schema descriptor for created_at field.
	quoteversionDescCreatedAt := quoteversionFields[12].Descriptor()
	// quoteversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	quoteversion.DefaultCreatedAt = quoteversionDescCreatedAt.Default.(func() time.Time)
	// quoteversionDescID is the schema descriptor for id field.
	quoteversionDescID := quoteversionFields[0].Descriptor()
	// quoteversion.DefaultID holds the default value on creation for the id field.
	quoteversion.DefaultID = quoteversionDescID.Default.(func() uuid.UUID)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescProviderThreadID is the schema descriptor for provider_thread_id field.
	threadDescProviderThreadID := threadFields[1].Descriptor()
	// thread.ProviderThreadIDValidator is a validator for the "provider_thread_id" field. It is called by the builders before save.
	thread.ProviderThreadIDValidator = threadDescProviderThreadID.Validators[0].(func(string) error)
	// threadDescFirstSeenAt is the schema descriptor for first_seen_at field.
	threadDescFirstSeenAt := threadFields[2].Descriptor()
	// thread.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	thread.DefaultFirstSeenAt = threadDescFirstSeenAt.Default.(func() time.Time)
	// threadDescID is the schema descriptor for id field.
	threadDescID := threadFields[0].Descriptor()
	// thread.DefaultID holds the default value on creation for the id field.
	thread.DefaultID = threadDescID.Default.(func() uuid.UUID)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescID is the schema descriptor for id field.
	vendorDescID := vendorFields[0].Descriptor()
	// vendor.DefaultID holds the default value on creation for the id field.
	vendor.DefaultID = vendorDescID.Default.(func() uuid.UUID)
}
