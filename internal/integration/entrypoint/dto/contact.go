package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/contact"
)

// CreateContactRequest represents the request to create a contact.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	TaxID   string `json:"tax_id"`
	Notes   string `json:"notes"`
}

// UpdateContactRequest represents the request to update a contact.
type UpdateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	TaxID   string `json:"tax_id"`
	Notes   string `json:"notes"`
}

// ContactResponse represents a contact in API responses.
type ContactResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company,omitempty"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Website       string    `json:"website,omitempty"`
	TaxID         string    `json:"tax_id,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PhotoFilename string    `json:"photo_filename,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ScanCardResponse represents the fields extracted from a scanned business
// card or letterhead.
type ScanCardResponse struct {
	Name          string `json:"name"`
	Company       string `json:"company"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	TaxID         string `json:"tax_id"`
	PhotoFilename string `json:"photo_filename"`
}

// ToContactResponse converts a contact output to a response DTO.
func ToContactResponse(out *contact.ContactOutput) *ContactResponse {
	return &ContactResponse{
		ID:            out.ID,
		Name:          out.Name,
		Company:       out.Company,
		Address:       out.Address,
		Phone:         out.Phone,
		Email:         out.Email,
		Website:       out.Website,
		TaxID:         out.TaxID,
		Notes:         out.Notes,
		PhotoFilename: out.PhotoFilename,
		CreatedAt:     out.CreatedAt,
	}
}

// ToContactListResponse converts a list of contact outputs to response DTOs.
func ToContactListResponse(outs []*contact.ContactOutput) []*ContactResponse {
	responses := make([]*ContactResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToContactResponse(out)
	}
	return responses
}

// ToScanCardResponse converts a card scan output to a response DTO.
func ToScanCardResponse(out *contact.ScanCardOutput) *ScanCardResponse {
	return &ScanCardResponse{
		Name:          out.Name,
		Company:       out.Company,
		Address:       out.Address,
		Phone:         out.Phone,
		Email:         out.Email,
		Website:       out.Website,
		TaxID:         out.TaxID,
		PhotoFilename: out.PhotoFilename,
	}
}
