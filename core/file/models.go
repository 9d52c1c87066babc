package file

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/campushare/campushare/core"
)

// MaxUploadBytes is the hard cap on upload size (50 MiB), enforced before
// any byte reaches the object store.
const MaxUploadBytes = 50 << 20

// File is a registry row pointing at an object in blob storage.
type File struct {
	ID           string    `json:"id"`
	SubjectID    string    `json:"subject_id"`
	Name         string    `json:"name"`
	OriginalName string    `json:"original_name"`
	Path         string    `json:"-"` // opaque key into blob storage
	Size         int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	Description  string    `json:"description,omitempty"`
	UploadedBy   string    `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"` // UTC

	// resolved on read, never stored
	PublicURL    string `json:"public_url,omitempty"`
	UploaderName string `json:"uploader_name,omitempty"`
}

// BookFile belongs to the books catalog and is keyed by semester/subject
// labels instead of foreign keys. Early rows carry a stored URL; it is only
// used when path resolution is not possible.
type BookFile struct {
	ID           string    `json:"id"`
	Semester     string    `json:"semester"`
	Subject      string    `json:"subject"`
	Name         string    `json:"name"`
	OriginalName string    `json:"original_name"`
	Path         string    `json:"-"`
	Size         int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	Description  string    `json:"description,omitempty"`
	LegacyURL    string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC

	PublicURL string `json:"public_url,omitempty"`
}

// NewFile contains the client-supplied metadata of an upload. Size and
// MimeType are trusted from the client, as the original portal does.
type NewFile struct {
	SubjectID    string `json:"subject_id" validate:"required"`
	OriginalName string `json:"original_name" validate:"required"`
	Size         int64  `json:"file_size" validate:"required,gt=0"`
	MimeType     string `json:"mime_type"`
	Description  string `json:"description"`
}

func (nf *NewFile) Validate() error {
	nf.SubjectID = core.CleanString(nf.SubjectID)
	nf.OriginalName = core.CleanString(nf.OriginalName)
	nf.Description = core.CleanString(nf.Description)

	if err := core.Validate.Struct(nf); err != nil {
		return err
	}
	if nf.Size > MaxUploadBytes {
		return core.NewValidationError(nil, core.FieldError{Field: "file_size", Error: errFileTooLarge})
	}
	return nil
}

type NewBookFile struct {
	Semester     string `json:"semester" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	OriginalName string `json:"original_name" validate:"required"`
	Size         int64  `json:"file_size" validate:"required,gt=0"`
	MimeType     string `json:"mime_type"`
	Description  string `json:"description"`
}

func (nbf *NewBookFile) Validate() error {
	nbf.Semester = core.CleanString(nbf.Semester)
	nbf.Subject = core.CleanString(nbf.Subject)
	nbf.OriginalName = core.CleanString(nbf.OriginalName)
	nbf.Description = core.CleanString(nbf.Description)

	if err := core.Validate.Struct(nbf); err != nil {
		return err
	}
	if nbf.Size > MaxUploadBytes {
		return core.NewValidationError(nil, core.FieldError{Field: "file_size", Error: errFileTooLarge})
	}
	return nil
}

// displayName derives the registry display name from an original filename:
// the base name without its extension, or the full name when that leaves
// nothing.
func displayName(originalName string) string {
	ext := filepath.Ext(originalName)
	if name := strings.TrimSuffix(originalName, ext); name != "" {
		return name
	}
	return originalName
}
