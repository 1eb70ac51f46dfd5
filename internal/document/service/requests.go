package service

import (
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"caredocs/internal/document"
	"caredocs/pkg/domain"
)

// MaxUploadBytes caps binary evidence uploads.
const MaxUploadBytes = 10 << 20 // 10 MB

// acceptedExtensions lists the evidence formats the store accepts for binary
// uploads. Link artifacts are exempt; they reference external systems.
var acceptedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadRequest creates a new evidence artifact. Exactly one of the binary or
// link field groups applies, selected by Source.
type UploadRequest struct {
	ClientID    domain.ClientID
	Type        domain.DocumentType
	FolderID    domain.FolderID
	CustomTitle string
	Source      document.Source

	// Binary uploads. StorageRef is the blob key assigned by the upload
	// boundary; the blob itself never passes through this service.
	FileName   string
	SizeBytes  int64
	StorageRef string

	// Link artifacts.
	LinkName string
	LinkURL  string

	// UploadDate defaults to the request time when absent.
	UploadDate *time.Time
	ExpiryDate *time.Time
}

// Validate rejects malformed uploads before any store mutation.
func (r UploadRequest) Validate() error {
	binary := r.Source == document.SourceBinary
	link := r.Source == document.SourceLink

	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required),
		validation.Field(&r.Source,
			validation.Required,
			validation.In(document.SourceBinary, document.SourceLink),
		),
		validation.Field(&r.FileName, validation.When(binary,
			validation.Required.Error("file name is required for binary uploads"),
			validation.By(acceptedFormat),
		)),
		validation.Field(&r.SizeBytes,
			validation.Min(int64(0)),
			validation.Max(int64(MaxUploadBytes)).Error("file exceeds the 10 MB upload limit"),
			validation.When(binary,
				validation.Required.Error("file size is required for binary uploads"),
			),
		),
		validation.Field(&r.StorageRef, validation.When(binary,
			validation.Required.Error("storage reference is required for binary uploads"),
		)),
		validation.Field(&r.LinkName, validation.When(link,
			validation.Required.Error("display name is required for link documents"),
		)),
		validation.Field(&r.LinkURL, validation.When(link,
			validation.Required.Error("url is required for link documents"),
			is.URL,
		)),
	)
}

func acceptedFormat(value any) error {
	name, _ := value.(string)
	ext := strings.ToLower(filepath.Ext(name))
	if !acceptedExtensions[ext] {
		return validation.NewError("validation_accepted_format",
			"file format is not an accepted evidence format")
	}
	return nil
}

// EditRequest updates title and dates in place. Document type and folder
// placement are immutable after creation; the fields exist here only so
// attempts to change them fail loudly instead of being silently dropped.
type EditRequest struct {
	UploadDate  *time.Time
	ExpiryDate  *time.Time
	ClearExpiry bool
	CustomTitle *string

	Type     *string
	FolderID *string
}

func (r EditRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Nil.Error("document type is immutable")),
		validation.Field(&r.FolderID, validation.Nil.Error("folder placement is immutable")),
	)
}
