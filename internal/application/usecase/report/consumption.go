package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/billing"
	"github.com/property-manager/backend/internal/domain/entity"
)

// ConsumptionReportInput represents the input for the consumption report.
// Nil dates fall back to January 1 of the current year and today.
type ConsumptionReportInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Start      *time.Time
	End        *time.Time
}

// ConsumptionReportOutput represents the output of the consumption report.
// Meter types with fewer than two readings in the window are absent.
type ConsumptionReportOutput struct {
	Period   PeriodOutput
	PerMeter map[entity.MeterType]*ConsumptionOutput
}

// ConsumptionReportUseCase derives consumption per meter type over a
// period.
type ConsumptionReportUseCase struct {
	readingRepo adapter.MeterReadingRepository
	access      *access.Service
	now         func() time.Time
}

// NewConsumptionReportUseCase creates a new ConsumptionReportUseCase instance.
func NewConsumptionReportUseCase(readingRepo adapter.MeterReadingRepository, accessService *access.Service) *ConsumptionReportUseCase {
	return &ConsumptionReportUseCase{
		readingRepo: readingRepo,
		access:      accessService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the report.
func (uc *ConsumptionReportUseCase) Execute(ctx context.Context, input ConsumptionReportInput) (*ConsumptionReportOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	period, err := resolvePeriod(input.Start, input.End, uc.now())
	if err != nil {
		return nil, err
	}

	output := &ConsumptionReportOutput{
		Period:   PeriodOutput{Start: period.Start, End: period.End},
		PerMeter: make(map[entity.MeterType]*ConsumptionOutput),
	}
	for _, mt := range entity.MeterTypes {
		cons, err := consumptionFor(ctx, uc.readingRepo, input.PropertyID, mt, period)
		if err != nil {
			return nil, err
		}
		if cons != nil {
			output.PerMeter[mt] = newConsumptionOutput(cons)
		}
	}
	return output, nil
}

// consumptionFor loads the readings of one meter type inside the period and
// runs the engine over them.
func consumptionFor(ctx context.Context, repo adapter.MeterReadingRepository, propertyID uuid.UUID, mt entity.MeterType, period billing.Period) (*billing.Consumption, error) {
	readings, err := repo.FindByFilter(ctx, adapter.MeterReadingFilter{
		PropertyID: propertyID,
		MeterType:  &mt,
		StartDate:  &period.Start,
		EndDate:    &period.End,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	return billing.ComputeConsumption(readings), nil
}
