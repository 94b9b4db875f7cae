package recurringcost

import (
	"context"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
)

// ScanContractInput represents the input for scanning a contract document.
type ScanContractInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Data       []byte
}

// ScanContractOutput represents the extracted contract fields for form
// pre-fill. Fields the model could not read are empty.
type ScanContractOutput struct {
	Vendor        string
	Description   string
	MonthlyAmount string
	VATRate       string
	StartDate     string
	Category      string
}

// ScanContractUseCase extracts recurring cost fields from a contract.
type ScanContractUseCase struct {
	scanner adapter.DocumentScanner
	access  *access.Service
}

// NewScanContractUseCase creates a new ScanContractUseCase instance.
func NewScanContractUseCase(scanner adapter.DocumentScanner, accessService *access.Service) *ScanContractUseCase {
	return &ScanContractUseCase{scanner: scanner, access: accessService}
}

// Execute performs the scan.
func (uc *ScanContractUseCase) Execute(ctx context.Context, input ScanContractInput) (*ScanContractOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	scan, err := uc.scanner.ScanRecurringCost(ctx, input.Data)
	if err != nil {
		return nil, err
	}
	return &ScanContractOutput{
		Vendor:        scan.Vendor,
		Description:   scan.Description,
		MonthlyAmount: scan.MonthlyAmount,
		VATRate:       scan.VATRate,
		StartDate:     scan.StartDate,
		Category:      scan.Category,
	}, nil
}
