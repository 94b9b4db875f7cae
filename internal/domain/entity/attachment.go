package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentOwner identifies which kind of record an attachment belongs to.
type AttachmentOwner string

const (
	AttachmentOwnerExpense       AttachmentOwner = "expense"
	AttachmentOwnerRecurringCost AttachmentOwner = "recurring_cost"
)

// AttachmentFileType classifies the stored file.
type AttachmentFileType string

const (
	AttachmentFileTypeImage AttachmentFileType = "image"
	AttachmentFileTypePDF   AttachmentFileType = "pdf"
)

// FileAttachment is an invoice/contract document attached to an expense or
// a recurring cost.
type FileAttachment struct {
	ID               uuid.UUID
	OwnerType        AttachmentOwner
	OwnerID          uuid.UUID
	OriginalFilename string
	StoredFilename   string
	FileType         AttachmentFileType
	UploadedAt       time.Time
}

// NewFileAttachment creates a new FileAttachment entity.
func NewFileAttachment(ownerType AttachmentOwner, ownerID uuid.UUID, originalFilename, storedFilename string, fileType AttachmentFileType) *FileAttachment {
	return &FileAttachment{
		ID:               uuid.New(),
		OwnerType:        ownerType,
		OwnerID:          ownerID,
		OriginalFilename: originalFilename,
		StoredFilename:   storedFilename,
		FileType:         fileType,
		UploadedAt:       time.Now().UTC(),
	}
}

// StorageCategory returns the upload folder for the attachment's owner type.
func (a *FileAttachment) StorageCategory() string {
	if a.OwnerType == AttachmentOwnerExpense {
		return "expenses"
	}
	return "recurring_costs"
}
