package attachment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
)

// AddAttachmentInput represents the input for attaching a document.
type AddAttachmentInput struct {
	UserID    uuid.UUID
	OwnerType entity.AttachmentOwner
	OwnerID   uuid.UUID
	Filename  string
	Data      []byte
	IPAddress string
}

// AddAttachmentOutput represents the output of attaching a document.
type AddAttachmentOutput struct {
	Attachment *AttachmentOutput
}

// AddAttachmentUseCase stores an uploaded document and links it to its
// owning expense or recurring cost.
type AddAttachmentUseCase struct {
	attachmentRepo adapter.AttachmentRepository
	storage        adapter.FileStorage
	owners         *ownerResolver
	access         *access.Service
	recorder       *activity.Recorder
}

// NewAddAttachmentUseCase creates a new AddAttachmentUseCase instance.
func NewAddAttachmentUseCase(
	attachmentRepo adapter.AttachmentRepository,
	expenseRepo adapter.ExpenseRepository,
	recurringRepo adapter.RecurringCostRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		owners:         &ownerResolver{expenseRepo: expenseRepo, recurringRepo: recurringRepo},
		access:         accessService,
		recorder:       recorder,
	}
}

// Execute performs the upload.
func (uc *AddAttachmentUseCase) Execute(ctx context.Context, input AddAttachmentInput) (*AddAttachmentOutput, error) {
	propertyID, err := uc.owners.propertyOf(ctx, input.OwnerType, input.OwnerID)
	if err != nil {
		return nil, err
	}
	user, err := uc.access.RequireProperty(ctx, input.UserID, propertyID)
	if err != nil {
		return nil, err
	}

	att := entity.NewFileAttachment(input.OwnerType, input.OwnerID, input.Filename, "", FileTypeFor(input.Filename))

	stored, err := uc.storage.Save(ctx, att.StorageCategory(), input.Filename, input.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}
	att.StoredFilename = stored

	if err := uc.attachmentRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionCreate, "attachment", &att.ID, input.Filename, input.IPAddress)

	return &AddAttachmentOutput{Attachment: newAttachmentOutput(att)}, nil
}
