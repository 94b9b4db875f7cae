package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
)

// CreateContactInput represents the input for contact creation.
type CreateContactInput struct {
	UserID    uuid.UUID
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

// CreateContactOutput represents the output of contact creation.
type CreateContactOutput struct {
	Contact *ContactOutput
}

// CreateContactUseCase handles contact creation.
type CreateContactUseCase struct {
	contactRepo adapter.ContactRepository
	access      *access.Service
	recorder    *activity.Recorder
}

// NewCreateContactUseCase creates a new CreateContactUseCase instance.
func NewCreateContactUseCase(contactRepo adapter.ContactRepository, accessService *access.Service, recorder *activity.Recorder) *CreateContactUseCase {
	return &CreateContactUseCase{contactRepo: contactRepo, access: accessService, recorder: recorder}
}

// Execute performs the creation.
func (uc *CreateContactUseCase) Execute(ctx context.Context, input CreateContactInput) (*CreateContactOutput, error) {
	user, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	contact := entity.NewContact(input.Name, input.Company, input.Address, input.Phone,
		input.Email, input.Website, input.TaxID, input.Notes)
	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionCreate, "contact", &contact.ID, contact.Name, input.IPAddress)

	return &CreateContactOutput{Contact: newContactOutput(contact)}, nil
}
