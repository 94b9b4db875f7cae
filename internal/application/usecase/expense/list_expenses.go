package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase lists expenses of a property, newest invoice first,
// with per-expense attachment counts.
type ListExpensesUseCase struct {
	expenseRepo    adapter.ExpenseRepository
	attachmentRepo adapter.AttachmentRepository
	access         *access.Service
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(
	expenseRepo adapter.ExpenseRepository,
	attachmentRepo adapter.AttachmentRepository,
	accessService *access.Service,
) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo:    expenseRepo,
		attachmentRepo: attachmentRepo,
		access:         accessService,
	}
}

// Execute performs the listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		PropertyID: input.PropertyID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Category:   input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(expenses))
	for _, e := range expenses {
		ids = append(ids, e.ID)
	}
	counts, err := uc.attachmentRepo.CountByOwners(ctx, entity.AttachmentOwnerExpense, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count attachments: %w", err)
	}

	output := &ListExpensesOutput{Expenses: make([]*ExpenseOutput, 0, len(expenses))}
	for _, e := range expenses {
		out := newExpenseOutput(e)
		out.AttachmentCount = counts[e.ID]
		output.Expenses = append(output.Expenses, out)
	}
	return output, nil
}
