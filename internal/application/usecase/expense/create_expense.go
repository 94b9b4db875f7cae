package expense

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

// CreateExpenseInput represents the input for expense creation. A zero
// VATRate means "not given" and falls back to the default rate.
type CreateExpenseInput struct {
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	ContactID     *uuid.UUID
	Vendor        string
	InvoiceDate   time.Time
	InvoiceNumber string
	NetAmount     decimal.Decimal
	VATRate       *decimal.Decimal
	Description   string
	Category      string
	Attachments   []AttachmentUpload
	IPAddress     string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation, including documents
// uploaded with the same multipart request.
type CreateExpenseUseCase struct {
	expenseRepo    adapter.ExpenseRepository
	attachmentRepo adapter.AttachmentRepository
	storage        adapter.FileStorage
	access         *access.Service
	recorder       *activity.Recorder
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:    expenseRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		access:         accessService,
		recorder:       recorder,
	}
}

// Execute performs the creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	user, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	vatRate := entity.DefaultVATRate
	if input.VATRate != nil {
		vatRate = *input.VATRate
	}

	expense := entity.NewExpense(input.PropertyID, input.ContactID, input.Vendor, input.InvoiceDate,
		input.InvoiceNumber, input.NetAmount, vatRate, input.Description, input.Category)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	count := int64(0)
	for _, upload := range input.Attachments {
		att := entity.NewFileAttachment(entity.AttachmentOwnerExpense, expense.ID, upload.Filename, "",
			usecaseattachment.FileTypeFor(upload.Filename))
		stored, err := uc.storage.Save(ctx, att.StorageCategory(), upload.Filename, upload.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		att.StoredFilename = stored
		if err := uc.attachmentRepo.Create(ctx, att); err != nil {
			return nil, fmt.Errorf("failed to create attachment: %w", err)
		}
		count++
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionCreate, "expense", &expense.ID,
		fmt.Sprintf("%s %s", expense.Vendor, expense.GrossAmount), input.IPAddress)

	output := newExpenseOutput(expense)
	output.AttachmentCount = count
	return &CreateExpenseOutput{Expense: output}, nil
}
