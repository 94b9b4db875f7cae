package attachment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
)

// ListAttachmentsInput represents the input for listing attachments of one
// owning record.
type ListAttachmentsInput struct {
	UserID    uuid.UUID
	OwnerType entity.AttachmentOwner
	OwnerID   uuid.UUID
}

// ListAttachmentsOutput represents the output of listing attachments.
type ListAttachmentsOutput struct {
	Attachments []*AttachmentOutput
}

// ListAttachmentsUseCase lists the documents attached to an expense or a
// recurring cost.
type ListAttachmentsUseCase struct {
	attachmentRepo adapter.AttachmentRepository
	owners         *ownerResolver
	access         *access.Service
}

// NewListAttachmentsUseCase creates a new ListAttachmentsUseCase instance.
func NewListAttachmentsUseCase(
	attachmentRepo adapter.AttachmentRepository,
	expenseRepo adapter.ExpenseRepository,
	recurringRepo adapter.RecurringCostRepository,
	accessService *access.Service,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		attachmentRepo: attachmentRepo,
		owners:         &ownerResolver{expenseRepo: expenseRepo, recurringRepo: recurringRepo},
		access:         accessService,
	}
}

// Execute performs the listing.
func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, input ListAttachmentsInput) (*ListAttachmentsOutput, error) {
	propertyID, err := uc.owners.propertyOf(ctx, input.OwnerType, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.access.RequireProperty(ctx, input.UserID, propertyID); err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.FindByOwner(ctx, input.OwnerType, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	output := &ListAttachmentsOutput{Attachments: make([]*AttachmentOutput, 0, len(attachments))}
	for _, a := range attachments {
		output.Attachments = append(output.Attachments, newAttachmentOutput(a))
	}
	return output, nil
}
