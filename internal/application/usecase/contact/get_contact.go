package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// GetContactInput represents the input for fetching one contact.
type GetContactInput struct {
	ContactID uuid.UUID
}

// GetContactOutput represents the output of fetching one contact.
type GetContactOutput struct {
	Contact *ContactOutput
}

// GetContactUseCase fetches a single contact.
type GetContactUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewGetContactUseCase creates a new GetContactUseCase instance.
func NewGetContactUseCase(contactRepo adapter.ContactRepository) *GetContactUseCase {
	return &GetContactUseCase{contactRepo: contactRepo}
}

// Execute performs the fetch.
func (uc *GetContactUseCase) Execute(ctx context.Context, input GetContactInput) (*GetContactOutput, error) {
	contact, err := uc.contactRepo.FindByID(ctx, input.ContactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	if contact == nil {
		return nil, domainerror.ErrContactNotFound
	}
	return &GetContactOutput{Contact: newContactOutput(contact)}, nil
}
