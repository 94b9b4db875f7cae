package meter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// DeleteReadingInput represents the input for meter reading deletion.
type DeleteReadingInput struct {
	UserID    uuid.UUID
	ReadingID uuid.UUID
	IPAddress string
}

// DeleteReadingUseCase handles meter reading deletion. A stored meter photo
// is removed along with the record.
type DeleteReadingUseCase struct {
	readingRepo adapter.MeterReadingRepository
	storage     adapter.FileStorage
	access      *access.Service
	recorder    *activity.Recorder
}

// NewDeleteReadingUseCase creates a new DeleteReadingUseCase instance.
func NewDeleteReadingUseCase(
	readingRepo adapter.MeterReadingRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *DeleteReadingUseCase {
	return &DeleteReadingUseCase{
		readingRepo: readingRepo,
		storage:     storage,
		access:      accessService,
		recorder:    recorder,
	}
}

// Execute performs the deletion.
func (uc *DeleteReadingUseCase) Execute(ctx context.Context, input DeleteReadingInput) error {
	reading, err := uc.readingRepo.FindByID(ctx, input.ReadingID)
	if err != nil {
		return fmt.Errorf("failed to load reading: %w", err)
	}
	if reading == nil {
		return domainerror.ErrReadingNotFound
	}

	user, err := uc.access.RequireProperty(ctx, input.UserID, reading.PropertyID)
	if err != nil {
		return err
	}

	if err := uc.readingRepo.Delete(ctx, input.ReadingID); err != nil {
		return fmt.Errorf("failed to delete reading: %w", err)
	}

	if reading.PhotoFilename != "" {
		// The record is gone; a stale photo on disk is acceptable.
		if err := uc.storage.Delete(ctx, "meters", reading.PhotoFilename); err != nil {
			slog.Warn("failed to delete meter photo", "filename", reading.PhotoFilename, "error", err)
		}
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionDelete, "meter_reading", &input.ReadingID,
		string(reading.MeterType), input.IPAddress)
	return nil
}
