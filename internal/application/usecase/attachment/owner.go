package attachment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// ownerResolver maps an attachment owner to the property it belongs to so
// the regular property access check applies to attachment operations.
type ownerResolver struct {
	expenseRepo   adapter.ExpenseRepository
	recurringRepo adapter.RecurringCostRepository
}

func (r *ownerResolver) propertyOf(ctx context.Context, ownerType entity.AttachmentOwner, ownerID uuid.UUID) (uuid.UUID, error) {
	switch ownerType {
	case entity.AttachmentOwnerExpense:
		expense, err := r.expenseRepo.FindByID(ctx, ownerID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to load expense: %w", err)
		}
		if expense == nil {
			return uuid.Nil, domainerror.ErrExpenseNotFound
		}
		return expense.PropertyID, nil
	case entity.AttachmentOwnerRecurringCost:
		cost, err := r.recurringRepo.FindByID(ctx, ownerID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to load recurring cost: %w", err)
		}
		if cost == nil {
			return uuid.Nil, domainerror.ErrRecurringCostNotFound
		}
		return cost.PropertyID, nil
	}
	return uuid.Nil, fmt.Errorf("unknown attachment owner type %q", ownerType)
}
