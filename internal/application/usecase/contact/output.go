// Package contact contains contact-related use cases. Contacts are global:
// any authenticated user may manage them.
package contact

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ContactOutput represents contact data returned to the caller.
type ContactOutput struct {
	ID            uuid.UUID
	Name          string
	Company       string
	Address       string
	Phone         string
	Email         string
	Website       string
	TaxID         string
	Notes         string
	PhotoFilename string
	CreatedAt     time.Time
}

func newContactOutput(c *entity.Contact) *ContactOutput {
	return &ContactOutput{
		ID:            c.ID,
		Name:          c.Name,
		Company:       c.Company,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		Website:       c.Website,
		TaxID:         c.TaxID,
		Notes:         c.Notes,
		PhotoFilename: c.PhotoFilename,
		CreatedAt:     c.CreatedAt,
	}
}
