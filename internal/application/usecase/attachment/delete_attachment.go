package attachment

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

// DeleteAttachmentInput represents the input for attachment deletion.
type DeleteAttachmentInput struct {
	UserID       uuid.UUID
	AttachmentID uuid.UUID
	IPAddress    string
}

// DeleteAttachmentUseCase removes an attachment record and its stored file.
type DeleteAttachmentUseCase struct {
	attachmentRepo adapter.AttachmentRepository
	storage        adapter.FileStorage
	owners         *ownerResolver
	access         *access.Service
	recorder       *activity.Recorder
}

// NewDeleteAttachmentUseCase creates a new DeleteAttachmentUseCase instance.
func NewDeleteAttachmentUseCase(
	attachmentRepo adapter.AttachmentRepository,
	expenseRepo adapter.ExpenseRepository,
	recurringRepo adapter.RecurringCostRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		owners:         &ownerResolver{expenseRepo: expenseRepo, recurringRepo: recurringRepo},
		access:         accessService,
		recorder:       recorder,
	}
}

// Execute performs the deletion.
func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, input DeleteAttachmentInput) error {
	att, err := uc.attachmentRepo.FindByID(ctx, input.AttachmentID)
	if err != nil {
		return fmt.Errorf("failed to load attachment: %w", err)
	}
	if att == nil {
		return domainerror.ErrAttachmentNotFound
	}

	propertyID, err := uc.owners.propertyOf(ctx, att.OwnerType, att.OwnerID)
	if err != nil {
		return err
	}
	user, err := uc.access.RequireProperty(ctx, input.UserID, propertyID)
	if err != nil {
		return err
	}

	if err := uc.attachmentRepo.Delete(ctx, input.AttachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	if err := uc.storage.Delete(ctx, att.StorageCategory(), att.StoredFilename); err != nil {
		slog.Warn("failed to delete attachment file", "filename", att.StoredFilename, "error", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionDelete, "attachment", &input.AttachmentID, att.OriginalFilename, input.IPAddress)
	return nil
}
