package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/property-manager/backend/internal/application/adapter"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// VisionService implements adapter.DocumentScanner using Google Gemini.
type VisionService struct {
	apiKey    string
	modelName string
}

// NewVisionService creates a new vision service instance.
func NewVisionService(apiKey string) *VisionService {
	return &VisionService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the vision service is configured.
func (s *VisionService) IsAvailable() bool {
	return s.apiKey != ""
}

const expensePrompt = `Extract the invoice data from this document. Respond with a single JSON object:
{
  "vendor": "issuer name",
  "invoice_date": "YYYY-MM-DD",
  "invoice_number": "string",
  "net_amount": "decimal as string",
  "vat_rate": "percentage as string, e.g. 19",
  "gross_amount": "decimal as string",
  "description": "short description of the billed work or goods",
  "category": "one of: maintenance, utilities, insurance, tax, other",
  "contact_phone": "string",
  "contact_email": "string",
  "contact_address": "string"
}
Use an empty string for any field not present on the document. Do not guess amounts.`

const recurringCostPrompt = `Extract the contract data from this document. Respond with a single JSON object:
{
  "vendor": "provider name",
  "description": "what the contract covers",
  "monthly_amount": "gross monthly amount as string",
  "vat_rate": "percentage as string, e.g. 19",
  "start_date": "YYYY-MM-DD",
  "category": "one of: insurance, utilities, telecom, maintenance, other"
}
Use an empty string for any field not present on the document. Convert yearly or quarterly amounts to monthly.`

const contactPrompt = `Extract the contact data from this business card or letterhead. Respond with a single JSON object:
{
  "name": "person name",
  "company": "company name",
  "address": "full postal address",
  "phone": "string",
  "email": "string",
  "website": "string",
  "tax_id": "string"
}
Use an empty string for any field not present on the document.`

const meterPrompt = `Read the counter from this utility meter photo. Respond with a single JSON object:
{
  "meter_type": "one of: water, electricity_day, electricity_night",
  "reading_value": "counter value as decimal string, ignore red digits and digits after the decimal point marker",
  "date": "reading date as YYYY-MM-DD if printed on the photo or display"
}
Use an empty string for any field you cannot determine.`

// ScanExpense extracts invoice fields from an image or PDF.
func (s *VisionService) ScanExpense(ctx context.Context, data []byte) (*adapter.ExpenseScan, error) {
	var out struct {
		Vendor         string `json:"vendor"`
		InvoiceDate    string `json:"invoice_date"`
		InvoiceNumber  string `json:"invoice_number"`
		NetAmount      string `json:"net_amount"`
		VATRate        string `json:"vat_rate"`
		GrossAmount    string `json:"gross_amount"`
		Description    string `json:"description"`
		Category       string `json:"category"`
		ContactPhone   string `json:"contact_phone"`
		ContactEmail   string `json:"contact_email"`
		ContactAddress string `json:"contact_address"`
	}
	if err := s.scan(ctx, expensePrompt, data, &out); err != nil {
		return nil, err
	}
	return &adapter.ExpenseScan{
		Vendor:         out.Vendor,
		InvoiceDate:    out.InvoiceDate,
		InvoiceNumber:  out.InvoiceNumber,
		NetAmount:      out.NetAmount,
		VATRate:        out.VATRate,
		GrossAmount:    out.GrossAmount,
		Description:    out.Description,
		Category:       out.Category,
		ContactPhone:   out.ContactPhone,
		ContactEmail:   out.ContactEmail,
		ContactAddress: out.ContactAddress,
	}, nil
}

// ScanRecurringCost extracts contract fields from an image or PDF.
func (s *VisionService) ScanRecurringCost(ctx context.Context, data []byte) (*adapter.RecurringCostScan, error) {
	var out struct {
		Vendor        string `json:"vendor"`
		Description   string `json:"description"`
		MonthlyAmount string `json:"monthly_amount"`
		VATRate       string `json:"vat_rate"`
		StartDate     string `json:"start_date"`
		Category      string `json:"category"`
	}
	if err := s.scan(ctx, recurringCostPrompt, data, &out); err != nil {
		return nil, err
	}
	return &adapter.RecurringCostScan{
		Vendor:        out.Vendor,
		Description:   out.Description,
		MonthlyAmount: out.MonthlyAmount,
		VATRate:       out.VATRate,
		StartDate:     out.StartDate,
		Category:      out.Category,
	}, nil
}

// ScanContact extracts contact fields from an image or PDF.
func (s *VisionService) ScanContact(ctx context.Context, data []byte) (*adapter.ContactScan, error) {
	var out struct {
		Name    string `json:"name"`
		Company string `json:"company"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Website string `json:"website"`
		TaxID   string `json:"tax_id"`
	}
	if err := s.scan(ctx, contactPrompt, data, &out); err != nil {
		return nil, err
	}
	return &adapter.ContactScan{
		Name:    out.Name,
		Company: out.Company,
		Address: out.Address,
		Phone:   out.Phone,
		Email:   out.Email,
		Website: out.Website,
		TaxID:   out.TaxID,
	}, nil
}

// ScanMeter reads the counter value off a meter photo.
func (s *VisionService) ScanMeter(ctx context.Context, data []byte) (*adapter.MeterScan, error) {
	var out struct {
		MeterType    string `json:"meter_type"`
		ReadingValue string `json:"reading_value"`
		Date         string `json:"date"`
	}
	if err := s.scan(ctx, meterPrompt, data, &out); err != nil {
		return nil, err
	}
	return &adapter.MeterScan{
		MeterType:    out.MeterType,
		ReadingValue: out.ReadingValue,
		Date:         out.Date,
	}, nil
}

// scan sends the document with the prompt to Gemini and decodes the JSON
// answer into target.
func (s *VisionService) scan(ctx context.Context, prompt string, data []byte, target interface{}) error {
	if !s.IsAvailable() {
		return domainerror.ErrScanUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrScanUnavailable, err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: detectMediaType(data), Data: data},
		genai.Text(prompt),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrScanUnavailable, err)
	}

	textContent, err := responseText(resp)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(textContent), target); err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrScanParse, err)
	}
	return nil
}

// responseText pulls the text part out of a Gemini response and strips
// markdown code fences if present.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", domainerror.ErrScanParse)
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", fmt.Errorf("%w: no text content in response", domainerror.ErrScanParse)
	}

	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	return strings.TrimSpace(textContent), nil
}

// detectMediaType sniffs the media type off the file's magic bytes.
func detectMediaType(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return "application/pdf"
	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}):
		return "image/png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "image/jpeg"
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
