package meter

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

// UpdateReadingInput represents the input for meter reading updates.
type UpdateReadingInput struct {
	UserID       uuid.UUID
	ReadingID    uuid.UUID
	MeterType    string
	ReadingValue decimal.Decimal
	ReadingDate  time.Time
	Notes        string
	IPAddress    string
}

// UpdateReadingOutput represents the output of meter reading updates.
type UpdateReadingOutput struct {
	Reading *ReadingOutput
}

// UpdateReadingUseCase handles meter reading updates.
type UpdateReadingUseCase struct {
	readingRepo adapter.MeterReadingRepository
	access      *access.Service
	recorder    *activity.Recorder
}

// NewUpdateReadingUseCase creates a new UpdateReadingUseCase instance.
func NewUpdateReadingUseCase(readingRepo adapter.MeterReadingRepository, accessService *access.Service, recorder *activity.Recorder) *UpdateReadingUseCase {
	return &UpdateReadingUseCase{readingRepo: readingRepo, access: accessService, recorder: recorder}
}

// Execute performs the update.
func (uc *UpdateReadingUseCase) Execute(ctx context.Context, input UpdateReadingInput) (*UpdateReadingOutput, error) {
	reading, err := uc.readingRepo.FindByID(ctx, input.ReadingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading: %w", err)
	}
	if reading == nil {
		return nil, domainerror.ErrReadingNotFound
	}

	user, err := uc.access.RequireProperty(ctx, input.UserID, reading.PropertyID)
	if err != nil {
		return nil, err
	}

	meterType := entity.MeterType(input.MeterType)
	if !entity.ValidMeterType(meterType) {
		return nil, domainerror.ErrInvalidMeterType
	}

	reading.MeterType = meterType
	reading.ReadingValue = input.ReadingValue
	reading.ReadingDate = input.ReadingDate
	reading.Notes = input.Notes

	if err := uc.readingRepo.Update(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to update reading: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionUpdate, "meter_reading", &reading.ID,
		fmt.Sprintf("%s reading %s", meterType, input.ReadingValue), input.IPAddress)

	return &UpdateReadingOutput{Reading: newReadingOutput(reading)}, nil
}
