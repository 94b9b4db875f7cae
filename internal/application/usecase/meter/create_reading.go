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

// CreateReadingInput represents the input for meter reading creation. Photo
// is optional; when present it is stored under the meters category and the
// stored filename recorded on the reading. JSON and multipart requests both
// funnel into this one input.
type CreateReadingInput struct {
	UserID       uuid.UUID
	PropertyID   uuid.UUID
	MeterType    string
	ReadingValue decimal.Decimal
	ReadingDate  time.Time
	Notes        string
	PhotoName    string
	PhotoData    []byte
	IPAddress    string
}

// CreateReadingOutput represents the output of meter reading creation.
type CreateReadingOutput struct {
	Reading *ReadingOutput
}

// CreateReadingUseCase handles meter reading creation.
type CreateReadingUseCase struct {
	readingRepo adapter.MeterReadingRepository
	storage     adapter.FileStorage
	access      *access.Service
	recorder    *activity.Recorder
}

// NewCreateReadingUseCase creates a new CreateReadingUseCase instance.
func NewCreateReadingUseCase(
	readingRepo adapter.MeterReadingRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *CreateReadingUseCase {
	return &CreateReadingUseCase{
		readingRepo: readingRepo,
		storage:     storage,
		access:      accessService,
		recorder:    recorder,
	}
}

// Execute performs the creation.
func (uc *CreateReadingUseCase) Execute(ctx context.Context, input CreateReadingInput) (*CreateReadingOutput, error) {
	user, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	meterType := entity.MeterType(input.MeterType)
	if !entity.ValidMeterType(meterType) {
		return nil, domainerror.ErrInvalidMeterType
	}

	reading := entity.NewMeterReading(input.PropertyID, meterType, input.ReadingValue, input.ReadingDate, input.Notes)

	if len(input.PhotoData) > 0 {
		stored, err := uc.storage.Save(ctx, "meters", input.PhotoName, input.PhotoData)
		if err != nil {
			return nil, fmt.Errorf("failed to store meter photo: %w", err)
		}
		reading.PhotoFilename = stored
	}

	if err := uc.readingRepo.Create(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to create reading: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionCreate, "meter_reading", &reading.ID,
		fmt.Sprintf("%s reading %s", meterType, input.ReadingValue), input.IPAddress)

	return &CreateReadingOutput{Reading: newReadingOutput(reading)}, nil
}
