package healthcare

import (
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/transcode"
)

// Consent states.
const (
	ConsentStateActive   = "ACTIVE"
	ConsentStateArchived = "ARCHIVED"
	ConsentStateRevoked  = "REVOKED"
	ConsentStateDraft    = "DRAFT"
	ConsentStateRejected = "REJECTED"
)

// Message views accepted by Messages.Get and Messages.List.
const (
	MessageViewBasic           = "BASIC"
	MessageViewFull            = "FULL"
	MessageViewRawOnly         = "RAW_ONLY"
	MessageViewParsedOnly      = "PARSED_ONLY"
	MessageViewSchematizedOnly = "SCHEMATIZED_ONLY"
)

// Empty is returned by operations without a response payload.
type Empty struct {
	googleapi.ServerResponse `json:"-"`
}

// Consent: Represents a user's consent.
type Consent struct {
	// ConsentArtifact: Required. The resource name of the Consent artifact
	// that contains proof of the end user's consent.
	ConsentArtifact string `json:"consentArtifact,omitempty"`

	// ExpireTime: Timestamp in UTC of when this Consent is considered
	// expired.
	ExpireTime transcode.Time `json:"expireTime,omitzero"`

	// Metadata: User-supplied key-value pairs used to organize Consent
	// resources.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Name: Identifier. Resource name of the Consent.
	Name string `json:"name,omitempty"`

	// Policies: Represents a user's consent in terms of the resources that
	// can be accessed and under what conditions.
	Policies []*ConsentPolicy `json:"policies,omitempty"`

	// RevisionCreateTime: Output only. The timestamp that the revision was
	// created.
	RevisionCreateTime transcode.Time `json:"revisionCreateTime,omitzero"`

	// RevisionId: Output only. The revision ID of the Consent.
	RevisionId string `json:"revisionId,omitempty"`

	// State: Required. Indicates the current state of this Consent.
	State string `json:"state,omitempty"`

	// Ttl: Input only. The time to live for this Consent from when it is
	// created.
	Ttl *transcode.Duration `json:"ttl,omitempty"`

	// UserId: Required. User's UUID provided by the client.
	UserId string `json:"userId,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// ConsentPolicy: Represents a user's consent in terms of the resources that
// can be accessed and under what conditions.
type ConsentPolicy struct {
	// AuthorizationRule: Required. The request conditions to meet to grant
	// access.
	AuthorizationRule *Expr `json:"authorizationRule,omitempty"`

	// ResourceAttributes: The resources that this policy applies to.
	ResourceAttributes []*Attribute `json:"resourceAttributes,omitempty"`
}

// Expr: A textual expression in the Common Expression Language syntax.
type Expr struct {
	Description string `json:"description,omitempty"`
	Expression  string `json:"expression,omitempty"`
	Location    string `json:"location,omitempty"`
	Title       string `json:"title,omitempty"`
}

// Attribute: An attribute value for a Consent or User data mapping.
type Attribute struct {
	AttributeDefinitionId string   `json:"attributeDefinitionId,omitempty"`
	Values                []string `json:"values,omitempty"`
}

// ConsentArtifact: Documentation of a user's consent.
type ConsentArtifact struct {
	// ConsentContentScreenshots: Optional. Screenshots, PDFs, or other
	// binary information documenting the user's consent.
	ConsentContentScreenshots []*Image `json:"consentContentScreenshots,omitempty"`

	// ConsentContentVersion: Optional. An string indicating the version of
	// the consent information shown to the user.
	ConsentContentVersion string `json:"consentContentVersion,omitempty"`

	// GuardianSignature: Optional. A signature from a guardian.
	GuardianSignature *Signature `json:"guardianSignature,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`

	// Name: Identifier. Resource name of the Consent artifact.
	Name string `json:"name,omitempty"`

	// UserId: Required. User's UUID provided by the client.
	UserId string `json:"userId,omitempty"`

	// UserSignature: Optional. User's signature.
	UserSignature *Signature `json:"userSignature,omitempty"`

	// WitnessSignature: Optional. A signature from a witness.
	WitnessSignature *Signature `json:"witnessSignature,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// Signature: User signature.
type Signature struct {
	// Image: Optional. An image of the user's signature.
	Image *Image `json:"image,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`

	// SignatureTime: Optional. Timestamp of the signature.
	SignatureTime transcode.Time `json:"signatureTime,omitzero"`

	// UserId: Required. User's UUID provided by the client.
	UserId string `json:"userId,omitempty"`
}

// Image: Raw bytes representing consent artifact content.
type Image struct {
	// GcsUri: Input only. Points to a Cloud Storage URI containing the
	// consent artifact content.
	GcsUri string `json:"gcsUri,omitempty"`

	// RawBytes: Consent artifact content represented as a stream of bytes.
	RawBytes transcode.Bytes `json:"rawBytes,omitempty"`
}

// ActivateConsentRequest: Activates the latest revision of the specified
// Consent.
type ActivateConsentRequest struct {
	// ConsentArtifact: Required. The resource name of the Consent artifact
	// that contains documentation of the user's consent.
	ConsentArtifact string `json:"consentArtifact,omitempty"`

	// ExpireTime: Timestamp in UTC of when this Consent is considered
	// expired.
	ExpireTime transcode.Time `json:"expireTime,omitzero"`

	// Ttl: The time to live for this Consent from when it is marked as
	// active.
	Ttl *transcode.Duration `json:"ttl,omitempty"`
}

// RejectConsentRequest: Rejects the latest revision of the specified Consent.
type RejectConsentRequest struct {
	ConsentArtifact string `json:"consentArtifact,omitempty"`
}

// RevokeConsentRequest: Revokes the latest revision of the specified Consent.
type RevokeConsentRequest struct {
	ConsentArtifact string `json:"consentArtifact,omitempty"`
}

type ListConsentsResponse struct {
	Consents []*Consent `json:"consents,omitempty"`

	// NextPageToken: Token to retrieve the next page of results, or empty
	// if there are no more results in the list.
	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

type ListConsentRevisionsResponse struct {
	Consents      []*Consent `json:"consents,omitempty"`
	NextPageToken string     `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

type ListConsentArtifactsResponse struct {
	ConsentArtifacts []*ConsentArtifact `json:"consentArtifacts,omitempty"`
	NextPageToken    string             `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// CheckDataAccessRequest: Checks if a particular data_id of a User data
// mapping in the given consent store is consented for a given use.
type CheckDataAccessRequest struct {
	// ConsentList: Optional. Specific Consents to evaluate the access
	// request against.
	ConsentList *ConsentList `json:"consentList,omitempty"`

	// DataId: Required. The unique identifier of the resource to check
	// access for.
	DataId string `json:"dataId,omitempty"`

	// RequestAttributes: The values of request attributes associated with
	// this access request.
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`

	// ResponseView: Optional. The view for CheckDataAccessResponse: BASIC or
	// FULL.
	ResponseView string `json:"responseView,omitempty"`
}

// ConsentList: List of resource names of Consent resources.
type ConsentList struct {
	Consents []string `json:"consents,omitempty"`
}

// CheckDataAccessResponse: Whether the specified resource is consented for
// the given use.
type CheckDataAccessResponse struct {
	// ConsentDetails: The resource names of all evaluated Consents mapped to
	// their evaluation.
	ConsentDetails map[string]ConsentEvaluation `json:"consentDetails,omitempty"`

	// Consented: Whether the requested resource is consented for the given
	// use.
	Consented bool `json:"consented,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

// ConsentEvaluation: The detailed evaluation of a particular Consent.
type ConsentEvaluation struct {
	EvaluationResult string `json:"evaluationResult,omitempty"`
}

// Message: A complete HL7v2 message.
type Message struct {
	// CreateTime: Output only. The datetime when the message was created.
	CreateTime transcode.Time `json:"createTime,omitzero"`

	// Data: Required. Raw message bytes.
	Data transcode.Bytes `json:"data,omitempty"`

	// Labels: User-supplied key-value pairs used to organize HL7v2 stores.
	Labels map[string]string `json:"labels,omitempty"`

	// MessageType: Output only. The message type for this message. MSH-9.1.
	MessageType string `json:"messageType,omitempty"`

	// Name: Output only. Resource name of the Message.
	Name string `json:"name,omitempty"`

	// ParsedData: Output only. The parsed version of the raw message data.
	ParsedData *ParsedData `json:"parsedData,omitempty"`

	// PatientIds: Output only. All patient IDs listed in the PID-2, PID-3,
	// and PID-4 segments of this message.
	PatientIds []*PatientId `json:"patientIds,omitempty"`

	// SchematizedData: Output only. The parsed version of the raw message
	// data schematized according to this store's schemas and type
	// definitions.
	SchematizedData *SchematizedData `json:"schematizedData,omitempty"`

	// SendFacility: Output only. The hospital that this message came from.
	// MSH-4.
	SendFacility string `json:"sendFacility,omitempty"`

	// SendTime: Output only. The datetime the sending application sent this
	// message. MSH-7.
	SendTime transcode.Time `json:"sendTime,omitzero"`

	googleapi.ServerResponse `json:"-"`
}

// ParsedData: The content of an HL7v2 message in a structured format.
type ParsedData struct {
	Segments []*Segment `json:"segments,omitempty"`
}

// Segment: A segment in a structured format.
type Segment struct {
	// Fields: A mapping from the positional location to the value.
	Fields map[string]string `json:"fields,omitempty"`

	// SegmentId: A string that indicates the type of segment. For example,
	// EVN or PID.
	SegmentId string `json:"segmentId,omitempty"`

	// SetId: Set ID for segments that can be in a set.
	SetId string `json:"setId,omitempty"`
}

// PatientId: A patient identifier and associated type.
type PatientId struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`
}

// SchematizedData: The content of an HL7v2 message in a structured format as
// specified by a schema.
type SchematizedData struct {
	// Data: JSON output of the parser.
	Data string `json:"data,omitempty"`

	// Error: The error output of the parser.
	Error string `json:"error,omitempty"`
}

// CreateMessageRequest: Creates a new message.
type CreateMessageRequest struct {
	Message *Message `json:"message,omitempty"`
}

// IngestMessageRequest: Ingests a message into the specified HL7v2 store.
type IngestMessageRequest struct {
	Message *Message `json:"message,omitempty"`
}

// IngestMessageResponse: Acknowledges that a message has been ingested into
// the specified HL7v2 store.
type IngestMessageResponse struct {
	// Hl7Ack: HL7v2 ACK message.
	Hl7Ack transcode.Bytes `json:"hl7Ack,omitempty"`

	// Message: Created message resource.
	Message *Message `json:"message,omitempty"`

	googleapi.ServerResponse `json:"-"`
}

type ListMessagesResponse struct {
	// Hl7V2Messages: The returned Messages. Won't be more Messages than the
	// value of page_size in the request.
	Hl7V2Messages []*Message `json:"hl7V2Messages,omitempty"`

	NextPageToken string `json:"nextPageToken,omitempty"`

	googleapi.ServerResponse `json:"-"`
}
