package recurringcost

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
)

// ListRecurringCostsInput represents the input for listing recurring costs.
type ListRecurringCostsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// ListRecurringCostsOutput represents the output of listing recurring costs.
type ListRecurringCostsOutput struct {
	Costs []*RecurringCostOutput
}

// ListRecurringCostsUseCase lists the recurring costs of a property.
type ListRecurringCostsUseCase struct {
	costRepo adapter.RecurringCostRepository
	access   *access.Service
}

// NewListRecurringCostsUseCase creates a new ListRecurringCostsUseCase instance.
func NewListRecurringCostsUseCase(costRepo adapter.RecurringCostRepository, accessService *access.Service) *ListRecurringCostsUseCase {
	return &ListRecurringCostsUseCase{costRepo: costRepo, access: accessService}
}

// Execute performs the listing.
func (uc *ListRecurringCostsUseCase) Execute(ctx context.Context, input ListRecurringCostsInput) (*ListRecurringCostsOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	costs, err := uc.costRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring costs: %w", err)
	}

	output := &ListRecurringCostsOutput{Costs: make([]*RecurringCostOutput, 0, len(costs))}
	for _, c := range costs {
		output.Costs = append(output.Costs, newRecurringCostOutput(c))
	}
	return output, nil
}
