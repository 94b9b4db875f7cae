package recurringcost

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	usecaseattachment "github.com/property-manager/backend/internal/application/usecase/attachment"
	"github.com/property-manager/backend/internal/domain/entity"
)

// AttachmentUpload is one file uploaded alongside a create request.
type AttachmentUpload struct {
	Filename string
	Data     []byte
}

// CreateRecurringCostInput represents the input for recurring cost creation.
type CreateRecurringCostInput struct {
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	ContactID     *uuid.UUID
	Description   string
	Vendor        string
	MonthlyAmount decimal.Decimal
	VATRate       *decimal.Decimal
	StartDate     time.Time
	EndDate       *time.Time
	Category      string
	Attachments   []AttachmentUpload
	IPAddress     string
}

// CreateRecurringCostOutput represents the output of recurring cost creation.
type CreateRecurringCostOutput struct {
	Cost *RecurringCostOutput
}

// CreateRecurringCostUseCase handles recurring cost creation.
type CreateRecurringCostUseCase struct {
	costRepo       adapter.RecurringCostRepository
	attachmentRepo adapter.AttachmentRepository
	storage        adapter.FileStorage
	access         *access.Service
	recorder       *activity.Recorder
}

// NewCreateRecurringCostUseCase creates a new CreateRecurringCostUseCase instance.
func NewCreateRecurringCostUseCase(
	costRepo adapter.RecurringCostRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *CreateRecurringCostUseCase {
	return &CreateRecurringCostUseCase{
		costRepo:       costRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		access:         accessService,
		recorder:       recorder,
	}
}

// Execute performs the creation.
func (uc *CreateRecurringCostUseCase) Execute(ctx context.Context, input CreateRecurringCostInput) (*CreateRecurringCostOutput, error) {
	user, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	vatRate := entity.DefaultVATRate
	if input.VATRate != nil {
		vatRate = *input.VATRate
	}

	cost := entity.NewRecurringCost(input.PropertyID, input.ContactID, input.Description, input.Vendor,
		input.MonthlyAmount, vatRate, input.StartDate, input.EndDate, input.Category)

	if err := uc.costRepo.Create(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to create recurring cost: %w", err)
	}

	for _, upload := range input.Attachments {
		att := entity.NewFileAttachment(entity.AttachmentOwnerRecurringCost, cost.ID, upload.Filename, "",
			usecaseattachment.FileTypeFor(upload.Filename))
		stored, err := uc.storage.Save(ctx, att.StorageCategory(), upload.Filename, upload.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		att.StoredFilename = stored
		if err := uc.attachmentRepo.Create(ctx, att); err != nil {
			return nil, fmt.Errorf("failed to create attachment: %w", err)
		}
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionCreate, "recurring_cost", &cost.ID,
		fmt.Sprintf("%s %s/month", cost.Description, cost.MonthlyAmount), input.IPAddress)

	return &CreateRecurringCostOutput{Cost: newRecurringCostOutput(cost)}, nil
}
