// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// ExpenseScan holds the fields extracted from an invoice photo or PDF.
// Empty strings mean the field was not found on the document.
type ExpenseScan struct {
	Vendor        string
	InvoiceDate   string // YYYY-MM-DD
	InvoiceNumber string
	NetAmount     string
	VATRate       string
	GrossAmount   string
	Description   string
	Category      string

	// Contact details printed on the invoice, used to enrich the vendor's
	// contact record.
	ContactPhone   string
	ContactEmail   string
	ContactAddress string
}

// RecurringCostScan holds the fields extracted from a contract document.
type RecurringCostScan struct {
	Vendor        string
	Description   string
	MonthlyAmount string
	VATRate       string
	StartDate     string // YYYY-MM-DD
	Category      string
}

// ContactScan holds the fields extracted from a business card or letterhead.
type ContactScan struct {
	Name    string
	Company string
	Address string
	Phone   string
	Email   string
	Website string
	TaxID   string
}

// MeterScan holds the fields extracted from a meter photo. Date is the
// reading date printed on or embedded in the photo, YYYY-MM-DD, empty when
// unknown.
type MeterScan struct {
	MeterType    string
	ReadingValue string
	Date         string
}

// DocumentScanner defines the interface for extracting structured data from
// uploaded documents. Implementations distinguish the service being
// unreachable (ErrScanUnavailable) from an answer that does not fit the
// schema (ErrScanParse); callers fall back to manual entry in either case.
type DocumentScanner interface {
	// ScanExpense extracts invoice fields from an image or PDF.
	ScanExpense(ctx context.Context, data []byte) (*ExpenseScan, error)

	// ScanRecurringCost extracts contract fields from an image or PDF.
	ScanRecurringCost(ctx context.Context, data []byte) (*RecurringCostScan, error)

	// ScanContact extracts contact fields from an image or PDF.
	ScanContact(ctx context.Context, data []byte) (*ContactScan, error)

	// ScanMeter reads the counter value off a meter photo.
	ScanMeter(ctx context.Context, data []byte) (*MeterScan, error)

	// IsAvailable checks if the scanner is configured and usable.
	IsAvailable() bool
}
