package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/attachment"
)

// AttachmentResponse represents a file attachment in API responses.
type AttachmentResponse struct {
	ID               uuid.UUID `json:"id"`
	OwnerType        string    `json:"owner_type"`
	OwnerID          uuid.UUID `json:"owner_id"`
	OriginalFilename string    `json:"original_filename"`
	StoredFilename   string    `json:"stored_filename"`
	FileType         string    `json:"file_type"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// ToAttachmentResponse converts an attachment output to a response DTO.
func ToAttachmentResponse(out *attachment.AttachmentOutput) *AttachmentResponse {
	return &AttachmentResponse{
		ID:               out.ID,
		OwnerType:        string(out.OwnerType),
		OwnerID:          out.OwnerID,
		OriginalFilename: out.OriginalFilename,
		StoredFilename:   out.StoredFilename,
		FileType:         string(out.FileType),
		UploadedAt:       out.UploadedAt,
	}
}

// ToAttachmentListResponse converts a list of attachment outputs to
// response DTOs.
func ToAttachmentListResponse(outs []*attachment.AttachmentOutput) []*AttachmentResponse {
	responses := make([]*AttachmentResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToAttachmentResponse(out)
	}
	return responses
}
