package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// UpdateContactInput represents the input for contact updates.
type UpdateContactInput struct {
	UserID    uuid.UUID
	ContactID uuid.UUID
	Name      string
	Company   string
	Address   string
	Phone     string
	Email     string
	Website   string
	TaxID     string
	Notes     string
	IPAddress string
}

// UpdateContactOutput represents the output of contact updates.
type UpdateContactOutput struct {
	Contact *ContactOutput
}

// UpdateContactUseCase handles contact updates.
type UpdateContactUseCase struct {
	contactRepo adapter.ContactRepository
	access      *access.Service
	recorder    *activity.Recorder
}

// NewUpdateContactUseCase creates a new UpdateContactUseCase instance.
func NewUpdateContactUseCase(contactRepo adapter.ContactRepository, accessService *access.Service, recorder *activity.Recorder) *UpdateContactUseCase {
	return &UpdateContactUseCase{contactRepo: contactRepo, access: accessService, recorder: recorder}
}

// Execute performs the update.
func (uc *UpdateContactUseCase) Execute(ctx context.Context, input UpdateContactInput) (*UpdateContactOutput, error) {
	user, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	contact, err := uc.contactRepo.FindByID(ctx, input.ContactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	if contact == nil {
		return nil, domainerror.ErrContactNotFound
	}

	contact.Name = input.Name
	contact.Company = input.Company
	contact.Address = input.Address
	contact.Phone = input.Phone
	contact.Email = input.Email
	contact.Website = input.Website
	contact.TaxID = input.TaxID
	contact.Notes = input.Notes

	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionUpdate, "contact", &contact.ID, contact.Name, input.IPAddress)

	return &UpdateContactOutput{Contact: newContactOutput(contact)}, nil
}
