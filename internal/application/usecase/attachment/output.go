// Package attachment contains use cases for invoice/contract documents
// attached to expenses and recurring costs.
package attachment

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// AttachmentOutput represents attachment data returned to the caller.
type AttachmentOutput struct {
	ID               uuid.UUID
	OwnerType        entity.AttachmentOwner
	OwnerID          uuid.UUID
	OriginalFilename string
	StoredFilename   string
	FileType         entity.AttachmentFileType
	UploadedAt       time.Time
}

func newAttachmentOutput(a *entity.FileAttachment) *AttachmentOutput {
	return &AttachmentOutput{
		ID:               a.ID,
		OwnerType:        a.OwnerType,
		OwnerID:          a.OwnerID,
		OriginalFilename: a.OriginalFilename,
		StoredFilename:   a.StoredFilename,
		FileType:         a.FileType,
		UploadedAt:       a.UploadedAt,
	}
}

// FileTypeFor classifies an upload by filename extension. Anything that is
// not a PDF is stored as an image; unsupported extensions are rejected at
// the DTO layer.
func FileTypeFor(filename string) entity.AttachmentFileType {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return entity.AttachmentFileTypePDF
	}
	return entity.AttachmentFileTypeImage
}
