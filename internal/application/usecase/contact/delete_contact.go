package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// DeleteContactInput represents the input for contact deletion.
type DeleteContactInput struct {
	UserID    uuid.UUID
	ContactID uuid.UUID
	IPAddress string
}

// DeleteContactUseCase handles contact deletion. References from expenses
// and recurring costs are cleared, not cascaded: the financial records
// survive with no contact.
type DeleteContactUseCase struct {
	contactRepo   adapter.ContactRepository
	expenseRepo   adapter.ExpenseRepository
	recurringRepo adapter.RecurringCostRepository
	storage       adapter.FileStorage
	access        *access.Service
	recorder      *activity.Recorder
}

// NewDeleteContactUseCase creates a new DeleteContactUseCase instance.
func NewDeleteContactUseCase(
	contactRepo adapter.ContactRepository,
	expenseRepo adapter.ExpenseRepository,
	recurringRepo adapter.RecurringCostRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *DeleteContactUseCase {
	return &DeleteContactUseCase{
		contactRepo:   contactRepo,
		expenseRepo:   expenseRepo,
		recurringRepo: recurringRepo,
		storage:       storage,
		access:        accessService,
		recorder:      recorder,
	}
}

// Execute performs the deletion.
func (uc *DeleteContactUseCase) Execute(ctx context.Context, input DeleteContactInput) error {
	user, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return err
	}

	contact, err := uc.contactRepo.FindByID(ctx, input.ContactID)
	if err != nil {
		return fmt.Errorf("failed to load contact: %w", err)
	}
	if contact == nil {
		return domainerror.ErrContactNotFound
	}

	if err := uc.expenseRepo.ClearContact(ctx, input.ContactID); err != nil {
		return fmt.Errorf("failed to clear expense references: %w", err)
	}
	if err := uc.recurringRepo.ClearContact(ctx, input.ContactID); err != nil {
		return fmt.Errorf("failed to clear recurring cost references: %w", err)
	}

	if err := uc.contactRepo.Delete(ctx, input.ContactID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	if contact.PhotoFilename != "" {
		if err := uc.storage.Delete(ctx, "contacts", contact.PhotoFilename); err != nil {
			slog.Warn("failed to delete contact photo", "filename", contact.PhotoFilename, "error", err)
		}
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionDelete, "contact", &input.ContactID, contact.Name, input.IPAddress)
	return nil
}
