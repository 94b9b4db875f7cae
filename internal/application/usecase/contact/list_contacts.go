package contact

import (
	"context"
	"fmt"

	"github.com/property-manager/backend/internal/application/adapter"
)

// ListContactsInput represents the input for listing contacts.
type ListContactsInput struct {
	Search string
}

// ListContactsOutput represents the output of listing contacts.
type ListContactsOutput struct {
	Contacts []*ContactOutput
}

// ListContactsUseCase lists contacts, optionally filtered by a substring
// search over name and company.
type ListContactsUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewListContactsUseCase creates a new ListContactsUseCase instance.
func NewListContactsUseCase(contactRepo adapter.ContactRepository) *ListContactsUseCase {
	return &ListContactsUseCase{contactRepo: contactRepo}
}

// Execute performs the listing.
func (uc *ListContactsUseCase) Execute(ctx context.Context, input ListContactsInput) (*ListContactsOutput, error) {
	contacts, err := uc.contactRepo.FindAll(ctx, input.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	output := &ListContactsOutput{Contacts: make([]*ContactOutput, 0, len(contacts))}
	for _, c := range contacts {
		output.Contacts = append(output.Contacts, newContactOutput(c))
	}
	return output, nil
}
