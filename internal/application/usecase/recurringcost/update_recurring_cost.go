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
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// UpdateRecurringCostInput represents the input for recurring cost updates.
type UpdateRecurringCostInput struct {
	UserID        uuid.UUID
	CostID        uuid.UUID
	ContactID     *uuid.UUID
	Description   string
	Vendor        string
	MonthlyAmount decimal.Decimal
	VATRate       *decimal.Decimal
	StartDate     time.Time
	EndDate       *time.Time
	Category      string
	IPAddress     string
}

// UpdateRecurringCostOutput represents the output of recurring cost updates.
type UpdateRecurringCostOutput struct {
	Cost *RecurringCostOutput
}

// UpdateRecurringCostUseCase handles recurring cost updates. The net amount
// is rederived from the submitted monthly amount and VAT rate.
type UpdateRecurringCostUseCase struct {
	costRepo adapter.RecurringCostRepository
	access   *access.Service
	recorder *activity.Recorder
}

// NewUpdateRecurringCostUseCase creates a new UpdateRecurringCostUseCase instance.
func NewUpdateRecurringCostUseCase(costRepo adapter.RecurringCostRepository, accessService *access.Service, recorder *activity.Recorder) *UpdateRecurringCostUseCase {
	return &UpdateRecurringCostUseCase{costRepo: costRepo, access: accessService, recorder: recorder}
}

// Execute performs the update.
func (uc *UpdateRecurringCostUseCase) Execute(ctx context.Context, input UpdateRecurringCostInput) (*UpdateRecurringCostOutput, error) {
	cost, err := uc.costRepo.FindByID(ctx, input.CostID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring cost: %w", err)
	}
	if cost == nil {
		return nil, domainerror.ErrRecurringCostNotFound
	}

	user, err := uc.access.RequireProperty(ctx, input.UserID, cost.PropertyID)
	if err != nil {
		return nil, err
	}

	cost.ContactID = input.ContactID
	cost.Description = input.Description
	cost.Vendor = input.Vendor
	cost.MonthlyAmount = input.MonthlyAmount
	if input.VATRate != nil {
		cost.VATRate = *input.VATRate
	}
	cost.StartDate = input.StartDate
	cost.EndDate = input.EndDate
	cost.Category = input.Category
	cost.RecalculateAmounts()

	if err := uc.costRepo.Update(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to update recurring cost: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionUpdate, "recurring_cost", &cost.ID,
		fmt.Sprintf("%s %s/month", cost.Description, cost.MonthlyAmount), input.IPAddress)

	return &UpdateRecurringCostOutput{Cost: newRecurringCostOutput(cost)}, nil
}
