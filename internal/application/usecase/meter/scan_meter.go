package meter

import (
	"context"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
)

// ScanMeterInput represents the input for scanning a meter photo.
type ScanMeterInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Data       []byte
}

// ScanMeterOutput represents the fields read off the photo, for form
// pre-fill. Fields the model could not read are empty.
type ScanMeterOutput struct {
	MeterType    string
	ReadingValue string
	Date         string
}

// ScanMeterUseCase extracts a counter value from a meter photo.
type ScanMeterUseCase struct {
	scanner adapter.DocumentScanner
	access  *access.Service
}

// NewScanMeterUseCase creates a new ScanMeterUseCase instance.
func NewScanMeterUseCase(scanner adapter.DocumentScanner, accessService *access.Service) *ScanMeterUseCase {
	return &ScanMeterUseCase{scanner: scanner, access: accessService}
}

// Execute performs the scan.
func (uc *ScanMeterUseCase) Execute(ctx context.Context, input ScanMeterInput) (*ScanMeterOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	scan, err := uc.scanner.ScanMeter(ctx, input.Data)
	if err != nil {
		return nil, err
	}
	return &ScanMeterOutput{
		MeterType:    scan.MeterType,
		ReadingValue: scan.ReadingValue,
		Date:         scan.Date,
	}, nil
}
