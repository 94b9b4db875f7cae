package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
)

// ScanInvoiceInput represents the input for scanning an invoice document.
type ScanInvoiceInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Data       []byte
}

// ScanInvoiceOutput represents the extracted invoice fields for form
// pre-fill. ContactID points at the vendor's contact record, created on the
// fly when none matched the vendor name.
type ScanInvoiceOutput struct {
	Vendor        string
	InvoiceDate   string
	InvoiceNumber string
	NetAmount     string
	VATRate       string
	GrossAmount   string
	Description   string
	Category      string
	ContactID     *uuid.UUID
}

// ScanInvoiceUseCase extracts invoice fields from an uploaded document and
// links them to a contact: an existing contact matching the vendor name is
// reused (with missing phone/email/address backfilled from the invoice),
// otherwise a new one is created.
type ScanInvoiceUseCase struct {
	scanner     adapter.DocumentScanner
	contactRepo adapter.ContactRepository
	access      *access.Service
}

// NewScanInvoiceUseCase creates a new ScanInvoiceUseCase instance.
func NewScanInvoiceUseCase(scanner adapter.DocumentScanner, contactRepo adapter.ContactRepository, accessService *access.Service) *ScanInvoiceUseCase {
	return &ScanInvoiceUseCase{scanner: scanner, contactRepo: contactRepo, access: accessService}
}

// Execute performs the scan.
func (uc *ScanInvoiceUseCase) Execute(ctx context.Context, input ScanInvoiceInput) (*ScanInvoiceOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	scan, err := uc.scanner.ScanExpense(ctx, input.Data)
	if err != nil {
		return nil, err
	}

	output := &ScanInvoiceOutput{
		Vendor:        scan.Vendor,
		InvoiceDate:   scan.InvoiceDate,
		InvoiceNumber: scan.InvoiceNumber,
		NetAmount:     scan.NetAmount,
		VATRate:       scan.VATRate,
		GrossAmount:   scan.GrossAmount,
		Description:   scan.Description,
		Category:      scan.Category,
	}

	if scan.Vendor != "" {
		contactID, err := uc.findOrCreateContact(ctx, scan)
		if err != nil {
			return nil, err
		}
		output.ContactID = contactID
	}
	return output, nil
}

func (uc *ScanInvoiceUseCase) findOrCreateContact(ctx context.Context, scan *adapter.ExpenseScan) (*uuid.UUID, error) {
	contacts, err := uc.contactRepo.FindAll(ctx, scan.Vendor)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	for _, c := range contacts {
		if !strings.EqualFold(c.Name, scan.Vendor) && !strings.EqualFold(c.Company, scan.Vendor) {
			continue
		}
		// Backfill only what the contact is missing.
		changed := false
		if c.Phone == "" && scan.ContactPhone != "" {
			c.Phone = scan.ContactPhone
			changed = true
		}
		if c.Email == "" && scan.ContactEmail != "" {
			c.Email = scan.ContactEmail
			changed = true
		}
		if c.Address == "" && scan.ContactAddress != "" {
			c.Address = scan.ContactAddress
			changed = true
		}
		if changed {
			if err := uc.contactRepo.Update(ctx, c); err != nil {
				return nil, fmt.Errorf("failed to update contact: %w", err)
			}
		}
		return &c.ID, nil
	}

	contact := entity.NewContact(scan.Vendor, scan.Vendor, scan.ContactAddress, scan.ContactPhone, scan.ContactEmail, "", "", "")
	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact.ID, nil
}
