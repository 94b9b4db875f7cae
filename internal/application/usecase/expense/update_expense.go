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
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense updates.
type UpdateExpenseInput struct {
	UserID        uuid.UUID
	ExpenseID     uuid.UUID
	ContactID     *uuid.UUID
	Vendor        string
	InvoiceDate   time.Time
	InvoiceNumber string
	NetAmount     decimal.Decimal
	VATRate       *decimal.Decimal
	Description   string
	Category      string
	IPAddress     string
}

// UpdateExpenseOutput represents the output of expense updates.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense updates. VAT and gross amounts are
// rederived from the submitted net amount and rate.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	access      *access.Service
	recorder    *activity.Recorder
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, accessService *access.Service, recorder *activity.Recorder) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{expenseRepo: expenseRepo, access: accessService, recorder: recorder}
}

// Execute performs the update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}
	if expense == nil {
		return nil, domainerror.ErrExpenseNotFound
	}

	user, err := uc.access.RequireProperty(ctx, input.UserID, expense.PropertyID)
	if err != nil {
		return nil, err
	}

	expense.ContactID = input.ContactID
	expense.Vendor = input.Vendor
	expense.InvoiceDate = input.InvoiceDate
	expense.InvoiceNumber = input.InvoiceNumber
	expense.NetAmount = input.NetAmount
	if input.VATRate != nil {
		expense.VATRate = *input.VATRate
	}
	expense.Description = input.Description
	expense.Category = input.Category
	expense.RecalculateAmounts()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionUpdate, "expense", &expense.ID,
		fmt.Sprintf("%s %s", expense.Vendor, expense.GrossAmount), input.IPAddress)

	return &UpdateExpenseOutput{Expense: newExpenseOutput(expense)}, nil
}
