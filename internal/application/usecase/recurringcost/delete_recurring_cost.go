package recurringcost

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

// DeleteRecurringCostInput represents the input for recurring cost deletion.
type DeleteRecurringCostInput struct {
	UserID    uuid.UUID
	CostID    uuid.UUID
	IPAddress string
}

// DeleteRecurringCostUseCase handles recurring cost deletion, removing its
// attachments and their stored files along the way.
type DeleteRecurringCostUseCase struct {
	costRepo       adapter.RecurringCostRepository
	attachmentRepo adapter.AttachmentRepository
	storage        adapter.FileStorage
	access         *access.Service
	recorder       *activity.Recorder
}

// NewDeleteRecurringCostUseCase creates a new DeleteRecurringCostUseCase instance.
func NewDeleteRecurringCostUseCase(
	costRepo adapter.RecurringCostRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *DeleteRecurringCostUseCase {
	return &DeleteRecurringCostUseCase{
		costRepo:       costRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		access:         accessService,
		recorder:       recorder,
	}
}

// Execute performs the deletion.
func (uc *DeleteRecurringCostUseCase) Execute(ctx context.Context, input DeleteRecurringCostInput) error {
	cost, err := uc.costRepo.FindByID(ctx, input.CostID)
	if err != nil {
		return fmt.Errorf("failed to load recurring cost: %w", err)
	}
	if cost == nil {
		return domainerror.ErrRecurringCostNotFound
	}

	user, err := uc.access.RequireProperty(ctx, input.UserID, cost.PropertyID)
	if err != nil {
		return err
	}

	attachments, err := uc.attachmentRepo.FindByOwner(ctx, entity.AttachmentOwnerRecurringCost, cost.ID)
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

	if err := uc.costRepo.Delete(ctx, input.CostID); err != nil {
		return fmt.Errorf("failed to delete recurring cost: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionDelete, "recurring_cost", &input.CostID, cost.Description, input.IPAddress)
	return nil
}
