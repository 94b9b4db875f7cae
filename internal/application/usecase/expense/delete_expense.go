package expense

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

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
	IPAddress string
}

// DeleteExpenseUseCase handles expense deletion, removing its attachments
// and their stored files along the way.
type DeleteExpenseUseCase struct {
	expenseRepo    adapter.ExpenseRepository
	attachmentRepo adapter.AttachmentRepository
	storage        adapter.FileStorage
	access         *access.Service
	recorder       *activity.Recorder
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo:    expenseRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		access:         accessService,
		recorder:       recorder,
	}
}

// Execute performs the deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return fmt.Errorf("failed to load expense: %w", err)
	}
	if expense == nil {
		return domainerror.ErrExpenseNotFound
	}

	user, err := uc.access.RequireProperty(ctx, input.UserID, expense.PropertyID)
	if err != nil {
		return err
	}

	attachments, err := uc.attachmentRepo.FindByOwner(ctx, entity.AttachmentOwnerExpense, expense.ID)
	if err != nil {
		return fmt.Errorf("failed to list attachments: %w", err)
	}
	for _, att := range attachments {
		if err := uc.attachmentRepo.Delete(ctx, att.ID); err != nil {
			return fmt.Errorf("failed to delete attachment: %w", err)
		}
		if err := uc.storage.Delete(ctx, att.StorageCategory(), att.StoredFilename); err != nil {
			slog.Warn("failed to delete attachment file", "filename", att.StoredFilename, "error", err)
		}
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionDelete, "expense", &input.ExpenseID, expense.Vendor, input.IPAddress)
	return nil
}
