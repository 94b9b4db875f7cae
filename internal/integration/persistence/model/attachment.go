package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// FileAttachmentModel represents the file_attachments table in the database.
type FileAttachmentModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerType        string    `gorm:"type:varchar(30);not null;index:idx_attachment_owner"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;index:idx_attachment_owner"`
	OriginalFilename string    `gorm:"type:varchar(255);not null"`
	StoredFilename   string    `gorm:"type:varchar(255);not null"`
	FileType         string    `gorm:"type:varchar(10);not null"`
	UploadedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the FileAttachmentModel.
func (FileAttachmentModel) TableName() string {
	return "file_attachments"
}

// ToEntity converts a FileAttachmentModel to a domain FileAttachment entity.
func (m *FileAttachmentModel) ToEntity() *entity.FileAttachment {
	return &entity.FileAttachment{
		ID:               m.ID,
		OwnerType:        entity.AttachmentOwner(m.OwnerType),
		OwnerID:          m.OwnerID,
		OriginalFilename: m.OriginalFilename,
		StoredFilename:   m.StoredFilename,
		FileType:         entity.AttachmentFileType(m.FileType),
		UploadedAt:       m.UploadedAt,
	}
}

// FileAttachmentFromEntity creates a FileAttachmentModel from a domain FileAttachment entity.
func FileAttachmentFromEntity(attachment *entity.FileAttachment) *FileAttachmentModel {
	return &FileAttachmentModel{
		ID:               attachment.ID,
		OwnerType:        string(attachment.OwnerType),
		OwnerID:          attachment.OwnerID,
		OriginalFilename: attachment.OriginalFilename,
		StoredFilename:   attachment.StoredFilename,
		FileType:         string(attachment.FileType),
		UploadedAt:       attachment.UploadedAt,
	}
}
