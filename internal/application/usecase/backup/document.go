// Package backup contains the full-database export and restore use cases.
package backup

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// documentVersion is written into every backup and checked on restore.
const documentVersion = "1.0"

const dateLayout = "2006-01-02"

// Document is the on-disk backup format: one self-contained JSON file
// holding every record plus the upload files base64-embedded, so a backup
// can be restored into an empty installation.
type Document struct {
	Version        string                 `json:"version"`
	CreatedAt      string                 `json:"created_at"`
	CreatedBy      string                 `json:"created_by"`
	Properties     []*PropertyRecord      `json:"properties"`
	MeterReadings  []*ReadingRecord       `json:"meter_readings"`
	Tariffs        []*TariffRecord        `json:"tariffs"`
	Expenses       []*ExpenseRecord       `json:"expenses"`
	RecurringCosts []*RecurringCostRecord `json:"recurring_costs"`
	Users          []*UserRecord          `json:"users"`
	Assignments    []*AssignmentRecord    `json:"user_property"`
	Attachments    []*AttachmentRecord    `json:"attachments"`
	MeterPhotos    []*MeterPhotoRecord    `json:"meter_photos"`
}

// PropertyRecord is a property row in the backup document.
type PropertyRecord struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
}

// ReadingRecord is a meter reading row in the backup document.
type ReadingRecord struct {
	ID           uuid.UUID       `json:"id"`
	PropertyID   uuid.UUID       `json:"property_id"`
	MeterType    string          `json:"meter_type"`
	ReadingValue decimal.Decimal `json:"reading_value"`
	ReadingDate  string          `json:"reading_date"`
	Notes        string          `json:"notes"`
}

// TariffRecord is a tariff row in the backup document.
type TariffRecord struct {
	ID              uuid.UUID       `json:"id"`
	PropertyID      uuid.UUID       `json:"property_id"`
	TariffType      string          `json:"tariff_type"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	BaseCostMonthly decimal.Decimal `json:"base_cost_monthly"`
	ValidFrom       string          `json:"valid_from"`
	ValidTo         *string         `json:"valid_to"`
}

// ExpenseRecord is an expense row in the backup document.
type ExpenseRecord struct {
	ID            uuid.UUID       `json:"id"`
	PropertyID    uuid.UUID       `json:"property_id"`
	Vendor        string          `json:"vendor"`
	InvoiceDate   string          `json:"invoice_date"`
	InvoiceNumber string          `json:"invoice_number"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	VATRate       decimal.Decimal `json:"vat_rate"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
}

// RecurringCostRecord is a recurring cost row in the backup document.
type RecurringCostRecord struct {
	ID            uuid.UUID       `json:"id"`
	PropertyID    uuid.UUID       `json:"property_id"`
	Description   string          `json:"description"`
	Vendor        string          `json:"vendor"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	VATRate       decimal.Decimal `json:"vat_rate"`
	StartDate     string          `json:"start_date"`
	EndDate       *string         `json:"end_date"`
	Category      string          `json:"category"`
}

// UserRecord is a user row in the backup document. Password hashes are not
// exported; restored accounts get a well-known initial password instead.
type UserRecord struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// AssignmentRecord links a user to a property they may access.
type AssignmentRecord struct {
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
}

// AttachmentRecord is an expense or recurring cost document, with the file
// content base64-embedded. FileData is empty when the file was missing on
// disk at backup time.
type AttachmentRecord struct {
	ID               uuid.UUID `json:"id"`
	OwnerType        string    `json:"owner_type"`
	OwnerID          uuid.UUID `json:"owner_id"`
	OriginalFilename string    `json:"original_filename"`
	StoredFilename   string    `json:"stored_filename"`
	FileType         string    `json:"file_type"`
	FileData         string    `json:"file_data"`
}

// MeterPhotoRecord is a meter reading photo with the image base64-embedded.
type MeterPhotoRecord struct {
	ReadingID uuid.UUID `json:"reading_id"`
	Filename  string    `json:"filename"`
	Data      string    `json:"data"`
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
