package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ContactModel represents the contacts table in the database.
type ContactModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Company       string    `gorm:"type:varchar(255)"`
	Address       string    `gorm:"type:text"`
	Phone         string    `gorm:"type:varchar(50)"`
	Email         string    `gorm:"type:varchar(255)"`
	Website       string    `gorm:"type:varchar(255)"`
	TaxID         string    `gorm:"type:varchar(50)"`
	Notes         string    `gorm:"type:text"`
	PhotoFilename string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the ContactModel.
func (ContactModel) TableName() string {
	return "contacts"
}

// ToEntity converts a ContactModel to a domain Contact entity.
func (m *ContactModel) ToEntity() *entity.Contact {
	return &entity.Contact{
		ID:            m.ID,
		Name:          m.Name,
		Company:       m.Company,
		Address:       m.Address,
		Phone:         m.Phone,
		Email:         m.Email,
		Website:       m.Website,
		TaxID:         m.TaxID,
		Notes:         m.Notes,
		PhotoFilename: m.PhotoFilename,
		CreatedAt:     m.CreatedAt,
	}
}

// ContactFromEntity creates a ContactModel from a domain Contact entity.
func ContactFromEntity(contact *entity.Contact) *ContactModel {
	return &ContactModel{
		ID:            contact.ID,
		Name:          contact.Name,
		Company:       contact.Company,
		Address:       contact.Address,
		Phone:         contact.Phone,
		Email:         contact.Email,
		Website:       contact.Website,
		TaxID:         contact.TaxID,
		Notes:         contact.Notes,
		PhotoFilename: contact.PhotoFilename,
		CreatedAt:     contact.CreatedAt,
	}
}
