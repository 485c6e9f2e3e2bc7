// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: quotes/v1/quotes.proto

package quotespb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Vendor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Domain        string                 `protobuf:"bytes,3,opt,name=domain,proto3" json:"domain,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Vendor) Reset() {
	*x = Vendor{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vendor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vendor) ProtoMessage() {}

func (x *Vendor) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vendor.ProtoReflect.Descriptor instead.
func (*Vendor) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{0}
}

func (x *Vendor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vendor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vendor) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

type QuoteItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Sku           string                 `protobuf:"bytes,2,opt,name=sku,proto3" json:"sku,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      string                 `protobuf:"bytes,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,5,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Discount      string                 `protobuf:"bytes,6,opt,name=discount,proto3" json:"discount,omitempty"`
	LineTotal     string                 `protobuf:"bytes,7,opt,name=line_total,json=lineTotal,proto3" json:"line_total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuoteItem) Reset() {
	*x = QuoteItem{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuoteItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuoteItem) ProtoMessage() {}

func (x *QuoteItem) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuoteItem.ProtoReflect.Descriptor instead.
func (*QuoteItem) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{1}
}

func (x *QuoteItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *QuoteItem) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *QuoteItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *QuoteItem) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *QuoteItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *QuoteItem) GetDiscount() string {
	if x != nil {
		return x.Discount
	}
	return ""
}

func (x *QuoteItem) GetLineTotal() string {
	if x != nil {
		return x.LineTotal
	}
	return ""
}

type QuoteVersion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	VersionLabel  string                 `protobuf:"bytes,2,opt,name=version_label,json=versionLabel,proto3" json:"version_label,omitempty"`
	Currency      string                 `protobuf:"bytes,3,opt,name=currency,proto3" json:"currency,omitempty"`
	Subtotal      string                 `protobuf:"bytes,4,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Tax           string                 `protobuf:"bytes,5,opt,name=tax,proto3" json:"tax,omitempty"`
	Shipping      string                 `protobuf:"bytes,6,opt,name=shipping,proto3" json:"shipping,omitempty"`
	Total         string                 `protobuf:"bytes,7,opt,name=total,proto3" json:"total,omitempty"`
	ValidTill     string                 `protobuf:"bytes,8,opt,name=valid_till,json=validTill,proto3" json:"valid_till,omitempty"`
	Terms         string                 `protobuf:"bytes,9,opt,name=terms,proto3" json:"terms,omitempty"`
	Items         []*QuoteItem           `protobuf:"bytes,10,rep,name=items,proto3" json:"items,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuoteVersion) Reset() {
	*x = QuoteVersion{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuoteVersion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuoteVersion) ProtoMessage() {}

func (x *QuoteVersion) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuoteVersion.ProtoReflect.Descriptor instead.
func (*QuoteVersion) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{2}
}

func (x *QuoteVersion) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *QuoteVersion) GetVersionLabel() string {
	if x != nil {
		return x.VersionLabel
	}
	return ""
}

func (x *QuoteVersion) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *QuoteVersion) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *QuoteVersion) GetTax() string {
	if x != nil {
		return x.Tax
	}
	return ""
}

func (x *QuoteVersion) GetShipping() string {
	if x != nil {
		return x.Shipping
	}
	return ""
}

func (x *QuoteVersion) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *QuoteVersion) GetValidTill() string {
	if x != nil {
		return x.ValidTill
	}
	return ""
}

func (x *QuoteVersion) GetTerms() string {
	if x != nil {
		return x.Terms
	}
	return ""
}

func (x *QuoteVersion) GetItems() []*QuoteItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *QuoteVersion) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Quote struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ThreadId      string                 `protobuf:"bytes,2,opt,name=thread_id,json=threadId,proto3" json:"thread_id,omitempty"`
	Vendor        *Vendor                `protobuf:"bytes,3,opt,name=vendor,proto3" json:"vendor,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Versions      []*QuoteVersion        `protobuf:"bytes,5,rep,name=versions,proto3" json:"versions,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Quote) Reset() {
	*x = Quote{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Quote) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Quote) ProtoMessage() {}

func (x *Quote) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Quote.ProtoReflect.Descriptor instead.
func (*Quote) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{3}
}

func (x *Quote) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Quote) GetThreadId() string {
	if x != nil {
		return x.ThreadId
	}
	return ""
}

func (x *Quote) GetVendor() *Vendor {
	if x != nil {
		return x.Vendor
	}
	return nil
}

func (x *Quote) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Quote) GetVersions() []*QuoteVersion {
	if x != nil {
		return x.Versions
	}
	return nil
}

func (x *Quote) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type EmailBodyInput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MimeType      string                 `protobuf:"bytes,1,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Html          string                 `protobuf:"bytes,3,opt,name=html,proto3" json:"html,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmailBodyInput) Reset() {
	*x = EmailBodyInput{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmailBodyInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmailBodyInput) ProtoMessage() {}

func (x *EmailBodyInput) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmailBodyInput.ProtoReflect.Descriptor instead.
func (*EmailBodyInput) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{4}
}

func (x *EmailBodyInput) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *EmailBodyInput) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *EmailBodyInput) GetHtml() string {
	if x != nil {
		return x.Html
	}
	return ""
}

type AttachmentInput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	SizeBytes     int64                  `protobuf:"varint,3,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	LocalPath     string                 `protobuf:"bytes,4,opt,name=local_path,json=localPath,proto3" json:"local_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachmentInput) Reset() {
	*x = AttachmentInput{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachmentInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachmentInput) ProtoMessage() {}

func (x *AttachmentInput) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachmentInput.ProtoReflect.Descriptor instead.
func (*AttachmentInput) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{5}
}

func (x *AttachmentInput) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *AttachmentInput) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *AttachmentInput) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *AttachmentInput) GetLocalPath() string {
	if x != nil {
		return x.LocalPath
	}
	return ""
}

type IngestEmailRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ProviderThreadId  string                 `protobuf:"bytes,1,opt,name=provider_thread_id,json=providerThreadId,proto3" json:"provider_thread_id,omitempty"`
	ProviderMessageId string                 `protobuf:"bytes,2,opt,name=provider_message_id,json=providerMessageId,proto3" json:"provider_message_id,omitempty"`
	FromAddr          string                 `protobuf:"bytes,3,opt,name=from_addr,json=fromAddr,proto3" json:"from_addr,omitempty"`
	ToAddrs           []string               `protobuf:"bytes,4,rep,name=to_addrs,json=toAddrs,proto3" json:"to_addrs,omitempty"`
	Subject           string                 `protobuf:"bytes,5,opt,name=subject,proto3" json:"subject,omitempty"`
	SentAt            string                 `protobuf:"bytes,6,opt,name=sent_at,json=sentAt,proto3" json:"sent_at,omitempty"`
	Snippet           string                 `protobuf:"bytes,7,opt,name=snippet,proto3" json:"snippet,omitempty"`
	Bodies            []*EmailBodyInput      `protobuf:"bytes,8,rep,name=bodies,proto3" json:"bodies,omitempty"`
	Attachments       []*AttachmentInput     `protobuf:"bytes,9,rep,name=attachments,proto3" json:"attachments,omitempty"`
	Process           bool                   `protobuf:"varint,10,opt,name=process,proto3" json:"process,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *IngestEmailRequest) Reset() {
	*x = IngestEmailRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestEmailRequest) ProtoMessage() {}

func (x *IngestEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestEmailRequest.ProtoReflect.Descriptor instead.
func (*IngestEmailRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{6}
}

func (x *IngestEmailRequest) GetProviderThreadId() string {
	if x != nil {
		return x.ProviderThreadId
	}
	return ""
}

func (x *IngestEmailRequest) GetProviderMessageId() string {
	if x != nil {
		return x.ProviderMessageId
	}
	return ""
}

func (x *IngestEmailRequest) GetFromAddr() string {
	if x != nil {
		return x.FromAddr
	}
	return ""
}

func (x *IngestEmailRequest) GetToAddrs() []string {
	if x != nil {
		return x.ToAddrs
	}
	return nil
}

func (x *IngestEmailRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *IngestEmailRequest) GetSentAt() string {
	if x != nil {
		return x.SentAt
	}
	return ""
}

func (x *IngestEmailRequest) GetSnippet() string {
	if x != nil {
		return x.Snippet
	}
	return ""
}

func (x *IngestEmailRequest) GetBodies() []*EmailBodyInput {
	if x != nil {
		return x.Bodies
	}
	return nil
}

func (x *IngestEmailRequest) GetAttachments() []*AttachmentInput {
	if x != nil {
		return x.Attachments
	}
	return nil
}

func (x *IngestEmailRequest) GetProcess() bool {
	if x != nil {
		return x.Process
	}
	return false
}

type IngestEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmailId       string                 `protobuf:"bytes,1,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	Created       bool                   `protobuf:"varint,2,opt,name=created,proto3" json:"created,omitempty"`
	Enqueued      bool                   `protobuf:"varint,3,opt,name=enqueued,proto3" json:"enqueued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestEmailResponse) Reset() {
	*x = IngestEmailResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestEmailResponse) ProtoMessage() {}

func (x *IngestEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestEmailResponse.ProtoReflect.Descriptor instead.
func (*IngestEmailResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{7}
}

func (x *IngestEmailResponse) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

func (x *IngestEmailResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

func (x *IngestEmailResponse) GetEnqueued() bool {
	if x != nil {
		return x.Enqueued
	}
	return false
}

type ProcessEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmailId       string                 `protobuf:"bytes,1,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessEmailRequest) Reset() {
	*x = ProcessEmailRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessEmailRequest) ProtoMessage() {}

func (x *ProcessEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessEmailRequest.ProtoReflect.Descriptor instead.
func (*ProcessEmailRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{8}
}

func (x *ProcessEmailRequest) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

type ProcessEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmailId       string                 `protobuf:"bytes,1,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	Processed     bool                   `protobuf:"varint,2,opt,name=processed,proto3" json:"processed,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	Versions      int32                  `protobuf:"varint,4,opt,name=versions,proto3" json:"versions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessEmailResponse) Reset() {
	*x = ProcessEmailResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessEmailResponse) ProtoMessage() {}

func (x *ProcessEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessEmailResponse.ProtoReflect.Descriptor instead.
func (*ProcessEmailResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{9}
}

func (x *ProcessEmailResponse) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

func (x *ProcessEmailResponse) GetProcessed() bool {
	if x != nil {
		return x.Processed
	}
	return false
}

func (x *ProcessEmailResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *ProcessEmailResponse) GetVersions() int32 {
	if x != nil {
		return x.Versions
	}
	return 0
}

type ReprocessEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmailId       string                 `protobuf:"bytes,1,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessEmailRequest) Reset() {
	*x = ReprocessEmailRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessEmailRequest) ProtoMessage() {}

func (x *ReprocessEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessEmailRequest.ProtoReflect.Descriptor instead.
func (*ReprocessEmailRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{10}
}

func (x *ReprocessEmailRequest) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

type ReprocessEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmailId       string                 `protobuf:"bytes,1,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	Enqueued      bool                   `protobuf:"varint,2,opt,name=enqueued,proto3" json:"enqueued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessEmailResponse) Reset() {
	*x = ReprocessEmailResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessEmailResponse) ProtoMessage() {}

func (x *ReprocessEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessEmailResponse.ProtoReflect.Descriptor instead.
func (*ReprocessEmailResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{11}
}

func (x *ReprocessEmailResponse) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

func (x *ReprocessEmailResponse) GetEnqueued() bool {
	if x != nil {
		return x.Enqueued
	}
	return false
}

type ListQuotesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendor        string                 `protobuf:"bytes,1,opt,name=vendor,proto3" json:"vendor,omitempty"`
	DateFrom      string                 `protobuf:"bytes,2,opt,name=date_from,json=dateFrom,proto3" json:"date_from,omitempty"`
	DateTo        string                 `protobuf:"bytes,3,opt,name=date_to,json=dateTo,proto3" json:"date_to,omitempty"`
	LatestOnly    bool                   `protobuf:"varint,4,opt,name=latest_only,json=latestOnly,proto3" json:"latest_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuotesRequest) Reset() {
	*x = ListQuotesRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuotesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuotesRequest) ProtoMessage() {}

func (x *ListQuotesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuotesRequest.ProtoReflect.Descriptor instead.
func (*ListQuotesRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{12}
}

func (x *ListQuotesRequest) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *ListQuotesRequest) GetDateFrom() string {
	if x != nil {
		return x.DateFrom
	}
	return ""
}

func (x *ListQuotesRequest) GetDateTo() string {
	if x != nil {
		return x.DateTo
	}
	return ""
}

func (x *ListQuotesRequest) GetLatestOnly() bool {
	if x != nil {
		return x.LatestOnly
	}
	return false
}

type ListQuotesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quotes        []*Quote               `protobuf:"bytes,1,rep,name=quotes,proto3" json:"quotes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuotesResponse) Reset() {
	*x = ListQuotesResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuotesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuotesResponse) ProtoMessage() {}

func (x *ListQuotesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuotesResponse.ProtoReflect.Descriptor instead.
func (*ListQuotesResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{13}
}

func (x *ListQuotesResponse) GetQuotes() []*Quote {
	if x != nil {
		return x.Quotes
	}
	return nil
}

type GetQuoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuoteId       string                 `protobuf:"bytes,1,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	LatestOnly    bool                   `protobuf:"varint,2,opt,name=latest_only,json=latestOnly,proto3" json:"latest_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuoteRequest) Reset() {
	*x = GetQuoteRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuoteRequest) ProtoMessage() {}

func (x *GetQuoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuoteRequest.ProtoReflect.Descriptor instead.
func (*GetQuoteRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{14}
}

func (x *GetQuoteRequest) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

func (x *GetQuoteRequest) GetLatestOnly() bool {
	if x != nil {
		return x.LatestOnly
	}
	return false
}

type GetQuoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quote         *Quote                 `protobuf:"bytes,1,opt,name=quote,proto3" json:"quote,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuoteResponse) Reset() {
	*x = GetQuoteResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuoteResponse) ProtoMessage() {}

func (x *GetQuoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuoteResponse.ProtoReflect.Descriptor instead.
func (*GetQuoteResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{15}
}

func (x *GetQuoteResponse) GetQuote() *Quote {
	if x != nil {
		return x.Quote
	}
	return nil
}

type DeleteQuoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuoteId       string                 `protobuf:"bytes,1,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteQuoteRequest) Reset() {
	*x = DeleteQuoteRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteQuoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteQuoteRequest) ProtoMessage() {}

func (x *DeleteQuoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteQuoteRequest.ProtoReflect.Descriptor instead.
func (*DeleteQuoteRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{16}
}

func (x *DeleteQuoteRequest) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

type DeleteQuoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteQuoteResponse) Reset() {
	*x = DeleteQuoteResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteQuoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteQuoteResponse) ProtoMessage() {}

func (x *DeleteQuoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteQuoteResponse.ProtoReflect.Descriptor instead.
func (*DeleteQuoteResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{17}
}

func (x *DeleteQuoteResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ListVendorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsRequest) Reset() {
	*x = ListVendorsRequest{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsRequest) ProtoMessage() {}

func (x *ListVendorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsRequest.ProtoReflect.Descriptor instead.
func (*ListVendorsRequest) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{18}
}

type ListVendorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendors       []*Vendor              `protobuf:"bytes,1,rep,name=vendors,proto3" json:"vendors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsResponse) Reset() {
	*x = ListVendorsResponse{}
	mi := &file_quotes_v1_quotes_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsResponse) ProtoMessage() {}

func (x *ListVendorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quotes_v1_quotes_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsResponse.ProtoReflect.Descriptor instead.
func (*ListVendorsResponse) Descriptor() ([]byte, []int) {
	return file_quotes_v1_quotes_proto_rawDescGZIP(), []int{19}
}

func (x *ListVendorsResponse) GetVendors() []*Vendor {
	if x != nil {
		return x.Vendors
	}
	return nil
}

var File_quotes_v1_quotes_proto protoreflect.FileDescriptor

const file_quotes_v1_quotes_proto_rawDesc = "" +
	"\n" +
	"\x16quotes/v1/quotes.proto\x12\tquotes.v1\"D\n" +
	"\x06Vendor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06domain\x18\x03 \x01(\tR\x06domain\"\xc5\x01\n" +
	"\tQuoteItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03sku\x18\x02 \x01(\tR\x03sku\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\tR\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x05 \x01(\tR\tunitPrice\x12\x1a\n" +
	"\bdiscount\x18\x06 \x01(\tR\bdiscount\x12\x1d\n" +
	"\n" +
	"line_total\x18\a \x01(\tR\tlineTotal\"\xbf\x02\n" +
	"\fQuoteVersion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rversion_label\x18\x02 \x01(\tR\fversionLabel\x12\x1a\n" +
	"\bcurrency\x18\x03 \x01(\tR\bcurrency\x12\x1a\n" +
	"\bsubtotal\x18\x04 \x01(\tR\bsubtotal\x12\x10\n" +
	"\x03tax\x18\x05 \x01(\tR\x03tax\x12\x1a\n" +
	"\bshipping\x18\x06 \x01(\tR\bshipping\x12\x14\n" +
	"\x05total\x18\a \x01(\tR\x05total\x12\x1d\n" +
	"\n" +
	"valid_till\x18\b \x01(\tR\tvalidTill\x12\x14\n" +
	"\x05terms\x18\t \x01(\tR\x05terms\x12*\n" +
	"\x05items\x18\n" +
	" \x03(\v2\x14.quotes.v1.QuoteItemR\x05items\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\"\xcb\x01\n" +
	"\x05Quote\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tthread_id\x18\x02 \x01(\tR\bthreadId\x12)\n" +
	"\x06vendor\x18\x03 \x01(\v2\x11.quotes.v1.VendorR\x06vendor\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x123\n" +
	"\bversions\x18\x05 \x03(\v2\x17.quotes.v1.QuoteVersionR\bversions\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"U\n" +
	"\x0eEmailBodyInput\x12\x1b\n" +
	"\tmime_type\x18\x01 \x01(\tR\bmimeType\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12\x12\n" +
	"\x04html\x18\x03 \x01(\tR\x04html\"\x88\x01\n" +
	"\x0fAttachmentInput\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\x03 \x01(\x03R\tsizeBytes\x12\x1d\n" +
	"\n" +
	"local_path\x18\x04 \x01(\tR\tlocalPath\"\x82\x03\n" +
	"\x12IngestEmailRequest\x12,\n" +
	"\x12provider_thread_id\x18\x01 \x01(\tR\x10providerThreadId\x12.\n" +
	"\x13provider_message_id\x18\x02 \x01(\tR\x11providerMessageId\x12\x1b\n" +
	"\tfrom_addr\x18\x03 \x01(\tR\bfromAddr\x12\x19\n" +
	"\bto_addrs\x18\x04 \x03(\tR\atoAddrs\x12\x18\n" +
	"\asubject\x18\x05 \x01(\tR\asubject\x12\x17\n" +
	"\asent_at\x18\x06 \x01(\tR\x06sentAt\x12\x18\n" +
	"\asnippet\x18\a \x01(\tR\asnippet\x121\n" +
	"\x06bodies\x18\b \x03(\v2\x19.quotes.v1.EmailBodyInputR\x06bodies\x12<\n" +
	"\vattachments\x18\t \x03(\v2\x1a.quotes.v1.AttachmentInputR\vattachments\x12\x18\n" +
	"\aprocess\x18\n" +
	" \x01(\bR\aprocess\"f\n" +
	"\x13IngestEmailResponse\x12\x19\n" +
	"\bemail_id\x18\x01 \x01(\tR\aemailId\x12\x18\n" +
	"\acreated\x18\x02 \x01(\bR\acreated\x12\x1a\n" +
	"\benqueued\x18\x03 \x01(\bR\benqueued\"0\n" +
	"\x13ProcessEmailRequest\x12\x19\n" +
	"\bemail_id\x18\x01 \x01(\tR\aemailId\"\x83\x01\n" +
	"\x14ProcessEmailResponse\x12\x19\n" +
	"\bemail_id\x18\x01 \x01(\tR\aemailId\x12\x1c\n" +
	"\tprocessed\x18\x02 \x01(\bR\tprocessed\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x12\x1a\n" +
	"\bversions\x18\x04 \x01(\x05R\bversions\"2\n" +
	"\x15ReprocessEmailRequest\x12\x19\n" +
	"\bemail_id\x18\x01 \x01(\tR\aemailId\"O\n" +
	"\x16ReprocessEmailResponse\x12\x19\n" +
	"\bemail_id\x18\x01 \x01(\tR\aemailId\x12\x1a\n" +
	"\benqueued\x18\x02 \x01(\bR\benqueued\"\x82\x01\n" +
	"\x11ListQuotesRequest\x12\x16\n" +
	"\x06vendor\x18\x01 \x01(\tR\x06vendor\x12\x1b\n" +
	"\tdate_from\x18\x02 \x01(\tR\bdateFrom\x12\x17\n" +
	"\adate_to\x18\x03 \x01(\tR\x06dateTo\x12\x1f\n" +
	"\vlatest_only\x18\x04 \x01(\bR\n" +
	"latestOnly\">\n" +
	"\x12ListQuotesResponse\x12(\n" +
	"\x06quotes\x18\x01 \x03(\v2\x10.quotes.v1.QuoteR\x06quotes\"M\n" +
	"\x0fGetQuoteRequest\x12\x19\n" +
	"\bquote_id\x18\x01 \x01(\tR\aquoteId\x12\x1f\n" +
	"\vlatest_only\x18\x02 \x01(\bR\n" +
	"latestOnly\":\n" +
	"\x10GetQuoteResponse\x12&\n" +
	"\x05quote\x18\x01 \x01(\v2\x10.quotes.v1.QuoteR\x05quote\"/\n" +
	"\x12DeleteQuoteRequest\x12\x19\n" +
	"\bquote_id\x18\x01 \x01(\tR\aquoteId\"/\n" +
	"\x13DeleteQuoteResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"\x14\n" +
	"\x12ListVendorsRequest\"B\n" +
	"\x13ListVendorsResponse\x12+\n" +
	"\avendors\x18\x01 \x03(\v2\x11.quotes.v1.VendorR\avendors2\xb1\x04\n" +
	"\rQuotesService\x12L\n" +
	"\vIngestEmail\x12\x1d.quotes.v1.IngestEmailRequest\x1a\x1e.quotes.v1.IngestEmailResponse\x12O\n" +
	"\fProcessEmail\x12\x1e.quotes.v1.ProcessEmailRequest\x1a\x1f.quotes.v1.ProcessEmailResponse\x12U\n" +
	"\x0eReprocessEmail\x12 .quotes.v1.ReprocessEmailRequest\x1a!.quotes.v1.ReprocessEmailResponse\x12I\n" +
	"\n" +
	"ListQuotes\x12\x1c.quotes.v1.ListQuotesRequest\x1a\x1d.quotes.v1.ListQuotesResponse\x12C\n" +
	"\bGetQuote\x12\x1a.quotes.v1.GetQuoteRequest\x1a\x1b.quotes.v1.GetQuoteResponse\x12L\n" +
	"\vDeleteQuote\x12\x1d.quotes.v1.DeleteQuoteRequest\x1a\x1e.quotes.v1.DeleteQuoteResponse\x12L\n" +
	"\vListVendors\x12\x1d.quotes.v1.ListVendorsRequest\x1a\x1e.quotes.v1.ListVendorsResponseBKZIgithub.com/Akash-sopho/email-extractor-agent/gen/proto/quotes/v1;quotespbb\x06proto3"

var (
	file_quotes_v1_quotes_proto_rawDescOnce sync.Once
	file_quotes_v1_quotes_proto_rawDescData []byte
)

func file_quotes_v1_quotes_proto_rawDescGZIP() []byte {
	file_quotes_v1_quotes_proto_rawDescOnce.Do(func() {
		file_quotes_v1_quotes_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_quotes_v1_quotes_proto_rawDesc), len(file_quotes_v1_quotes_proto_rawDesc)))
	})
	return file_quotes_v1_quotes_proto_rawDescData
}

var file_quotes_v1_quotes_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_quotes_v1_quotes_proto_goTypes = []any{
	(*Vendor)(nil),                 // 0: quotes.v1.Vendor
	(*QuoteItem)(nil),              // 1: quotes.v1.QuoteItem
	(*QuoteVersion)(nil),           // 2: quotes.v1.QuoteVersion
	(*Quote)(nil),                  // 3: quotes.v1.Quote
	(*EmailBodyInput)(nil),         // 4: quotes.v1.EmailBodyInput
	(*AttachmentInput)(nil),        // 5: quotes.v1.AttachmentInput
	(*IngestEmailRequest)(nil),     // 6: quotes.v1.IngestEmailRequest
	(*IngestEmailResponse)(nil),    // 7: quotes.v1.IngestEmailResponse
	(*ProcessEmailRequest)(nil),    // 8: quotes.v1.ProcessEmailRequest
	(*ProcessEmailResponse)(nil),   // 9: quotes.v1.ProcessEmailResponse
	(*ReprocessEmailRequest)(nil),  // 10: quotes.v1.ReprocessEmailRequest
	(*ReprocessEmailResponse)(nil), // 11: quotes.v1.ReprocessEmailResponse
	(*ListQuotesRequest)(nil),      // 12: quotes.v1.ListQuotesRequest
	(*ListQuotesResponse)(nil),     // 13: quotes.v1.ListQuotesResponse
	(*GetQuoteRequest)(nil),        // 14: quotes.v1.GetQuoteRequest
	(*GetQuoteResponse)(nil),       // 15: quotes.v1.GetQuoteResponse
	(*DeleteQuoteRequest)(nil),     // 16: quotes.v1.DeleteQuoteRequest
	(*DeleteQuoteResponse)(nil),    // 17: quotes.v1.DeleteQuoteResponse
	(*ListVendorsRequest)(nil),     // 18: quotes.v1.ListVendorsRequest
	(*ListVendorsResponse)(nil),    // 19: quotes.v1.ListVendorsResponse
}
var file_quotes_v1_quotes_proto_depIdxs = []int32{
	1,  // 0: quotes.v1.QuoteVersion.items:type_name -> quotes.v1.QuoteItem
	0,  // 1: quotes.v1.Quote.vendor:type_name -> quotes.v1.Vendor
	2,  // 2: quotes.v1.Quote.versions:type_name -> quotes.v1.QuoteVersion
	4,  // 3: quotes.v1.IngestEmailRequest.bodies:type_name -> quotes.v1.EmailBodyInput
	5,  // 4: quotes.v1.IngestEmailRequest.attachments:type_name -> quotes.v1.AttachmentInput
	3,  // 5: quotes.v1.ListQuotesResponse.quotes:type_name -> quotes.v1.Quote
	3,  // 6: quotes.v1.GetQuoteResponse.quote:type_name -> quotes.v1.Quote
	0,  // 7: quotes.v1.ListVendorsResponse.vendors:type_name -> quotes.v1.Vendor
	6,  // 8: quotes.v1.QuotesService.IngestEmail:input_type -> quotes.v1.IngestEmailRequest
	8,  // 9: quotes.v1.QuotesService.ProcessEmail:input_type -> quotes.v1.ProcessEmailRequest
	10, // 10: quotes.v1.QuotesService.ReprocessEmail:input_type -> quotes.v1.ReprocessEmailRequest
	12, // 11: quotes.v1.QuotesService.ListQuotes:input_type -> quotes.v1.ListQuotesRequest
	14, // 12: quotes.v1.QuotesService.GetQuote:input_type -> quotes.v1.GetQuoteRequest
	16, // 13: quotes.v1.QuotesService.DeleteQuote:input_type -> quotes.v1.DeleteQuoteRequest
	18, // 14: quotes.v1.QuotesService.ListVendors:input_type -> quotes.v1.ListVendorsRequest
	7,  // 15: quotes.v1.QuotesService.IngestEmail:output_type -> quotes.v1.IngestEmailResponse
	9,  // 16: quotes.v1.QuotesService.ProcessEmail:output_type -> quotes.v1.ProcessEmailResponse
	11, // 17: quotes.v1.QuotesService.ReprocessEmail:output_type -> quotes.v1.ReprocessEmailResponse
	13, // 18: quotes.v1.QuotesService.ListQuotes:output_type -> quotes.v1.ListQuotesResponse
	15, // 19: quotes.v1.QuotesService.GetQuote:output_type -> quotes.v1.GetQuoteResponse
	17, // 20: quotes.v1.QuotesService.DeleteQuote:output_type -> quotes.v1.DeleteQuoteResponse
	19, // 21: quotes.v1.QuotesService.ListVendors:output_type -> quotes.v1.ListVendorsResponse
	15, // [15:22] is the sub-list for method output_type
	8,  // [8:15] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_quotes_v1_quotes_proto_init() }
func file_quotes_v1_quotes_proto_init() {
	if File_quotes_v1_quotes_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_quotes_v1_quotes_proto_rawDesc), len(file_quotes_v1_quotes_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_quotes_v1_quotes_proto_goTypes,
		DependencyIndexes: file_quotes_v1_quotes_proto_depIdxs,
		MessageInfos:      file_quotes_v1_quotes_proto_msgTypes,
	}.Build()
	File_quotes_v1_quotes_proto = out.File
	file_quotes_v1_quotes_proto_goTypes = nil
	file_quotes_v1_quotes_proto_depIdxs = nil
}
