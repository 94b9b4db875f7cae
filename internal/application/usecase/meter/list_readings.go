package meter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// ListReadingsInput represents the input for listing meter readings.
type ListReadingsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	MeterType  string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListReadingsOutput represents the output of listing meter readings.
type ListReadingsOutput struct {
	Readings []*ReadingOutput
}

// ListReadingsUseCase lists readings of a property, oldest first.
type ListReadingsUseCase struct {
	readingRepo adapter.MeterReadingRepository
	access      *access.Service
}

// NewListReadingsUseCase creates a new ListReadingsUseCase instance.
func NewListReadingsUseCase(readingRepo adapter.MeterReadingRepository, accessService *access.Service) *ListReadingsUseCase {
	return &ListReadingsUseCase{readingRepo: readingRepo, access: accessService}
}

// Execute performs the listing.
func (uc *ListReadingsUseCase) Execute(ctx context.Context, input ListReadingsInput) (*ListReadingsOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	filter := adapter.MeterReadingFilter{
		PropertyID: input.PropertyID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	if input.MeterType != "" {
		mt := entity.MeterType(input.MeterType)
		if !entity.ValidMeterType(mt) {
			return nil, domainerror.ErrInvalidMeterType
		}
		filter.MeterType = &mt
	}

	readings, err := uc.readingRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}

	output := &ListReadingsOutput{Readings: make([]*ReadingOutput, 0, len(readings))}
	for _, r := range readings {
		output.Readings = append(output.Readings, newReadingOutput(r))
	}
	return output, nil
}
