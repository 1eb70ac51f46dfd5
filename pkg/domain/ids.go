package domain

import (
	"github.com/google/uuid"

	dErrors "caredocs/pkg/domain-errors"
)

// ClientID identifies a care-services client. Client records are managed by an
// external system; this service only references them.
type ClientID uuid.UUID

// DocumentID identifies an evidence artifact record.
type DocumentID uuid.UUID

// FolderID identifies a taxonomy folder. Folder ids are stable slugs declared
// in the taxonomy catalog, not generated values.
type FolderID string

// DocumentType names the obligation an evidence artifact satisfies. For
// tracked folders it matches a taxonomy-declared tracked document name; for
// multi-artifact folders it may be an ad-hoc string.
type DocumentType string

// ArchiveFolderID is the reserved id of the archive pseudo-folder. It is not
// part of the taxonomy tree; the catalog loader rejects folders that claim it.
const ArchiveFolderID FolderID = "archive"

func NewClientID() ClientID     { return ClientID(uuid.New()) }
func NewDocumentID() DocumentID { return DocumentID(uuid.New()) }

// ParseClientID constructs a ClientID from external input.
//
// Usage: call from handlers when parsing path or payload values; direct
// casting bypasses validation.
func ParseClientID(s string) (ClientID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ClientID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid client id")
	}
	return ClientID(u), nil
}

// ParseDocumentID constructs a DocumentID from external input.
func ParseDocumentID(s string) (DocumentID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return DocumentID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid document id")
	}
	return DocumentID(u), nil
}

func (c ClientID) IsNil() bool    { return uuid.UUID(c) == uuid.Nil }
func (c ClientID) String() string { return uuid.UUID(c).String() }

// MarshalText/UnmarshalText keep uuid-backed ids as canonical strings in JSON
// payloads and store encodings.
func (c ClientID) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *ClientID) UnmarshalText(text []byte) error {
	parsed, err := ParseClientID(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (d DocumentID) IsNil() bool    { return uuid.UUID(d) == uuid.Nil }
func (d DocumentID) String() string { return uuid.UUID(d).String() }

func (d DocumentID) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DocumentID) UnmarshalText(text []byte) error {
	parsed, err := ParseDocumentID(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (f FolderID) String() string { return string(f) }

func (t DocumentType) String() string { return string(t) }
