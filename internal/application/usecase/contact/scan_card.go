package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
)

// ScanCardInput represents the input for scanning a business card.
type ScanCardInput struct {
	UserID   uuid.UUID
	Filename string
	Data     []byte
}

// ScanCardOutput represents the extracted contact fields for form pre-fill.
// PhotoFilename references the stored card image so a subsequent create can
// link it.
type ScanCardOutput struct {
	Name          string
	Company       string
	Address       string
	Phone         string
	Email         string
	Website       string
	TaxID         string
	PhotoFilename string
}

// ScanCardUseCase extracts contact fields from a business card or
// letterhead photo and keeps the photo in contact storage.
type ScanCardUseCase struct {
	scanner adapter.DocumentScanner
	storage adapter.FileStorage
	access  *access.Service
}

// NewScanCardUseCase creates a new ScanCardUseCase instance.
func NewScanCardUseCase(scanner adapter.DocumentScanner, storage adapter.FileStorage, accessService *access.Service) *ScanCardUseCase {
	return &ScanCardUseCase{scanner: scanner, storage: storage, access: accessService}
}

// Execute performs the scan.
func (uc *ScanCardUseCase) Execute(ctx context.Context, input ScanCardInput) (*ScanCardOutput, error) {
	if _, err := uc.access.User(ctx, input.UserID); err != nil {
		return nil, err
	}

	scan, err := uc.scanner.ScanContact(ctx, input.Data)
	if err != nil {
		return nil, err
	}

	stored, err := uc.storage.Save(ctx, "contacts", input.Filename, input.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to store card photo: %w", err)
	}

	return &ScanCardOutput{
		Name:          scan.Name,
		Company:       scan.Company,
		Address:       scan.Address,
		Phone:         scan.Phone,
		Email:         scan.Email,
		Website:       scan.Website,
		TaxID:         scan.TaxID,
		PhotoFilename: stored,
	}, nil
}
