package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents a vendor or service provider. Contacts are shared:
// expenses and recurring costs reference them weakly and survive contact
// deletion with the reference cleared.
type Contact struct {
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

// NewContact creates a new Contact entity.
func NewContact(name, company, address, phone, email, website, taxID, notes string) *Contact {
	return &Contact{
		ID:        uuid.New(),
		Name:      name,
		Company:   company,
		Address:   address,
		Phone:     phone,
		Email:     email,
		Website:   website,
		TaxID:     taxID,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
}
