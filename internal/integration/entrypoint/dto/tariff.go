package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/usecase/tariff"
)

// CreateTariffRequest represents the request to create a tariff.
type CreateTariffRequest struct {
	TariffType      string  `json:"tariff_type" binding:"required"`
	PricePerUnit    string  `json:"price_per_unit" binding:"required"`
	BaseCostMonthly string  `json:"base_cost_monthly"`
	ValidFrom       string  `json:"valid_from" binding:"required"`
	ValidTo         *string `json:"valid_to"`
}

// UpdateTariffRequest represents the request to update a tariff.
type UpdateTariffRequest struct {
	TariffType      string  `json:"tariff_type" binding:"required"`
	PricePerUnit    string  `json:"price_per_unit" binding:"required"`
	BaseCostMonthly string  `json:"base_cost_monthly"`
	ValidFrom       string  `json:"valid_from" binding:"required"`
	ValidTo         *string `json:"valid_to"`
}

// BulkTariffItemRequest represents one tariff inside a bulk create request.
type BulkTariffItemRequest struct {
	TariffType      string `json:"tariff_type" binding:"required"`
	PricePerUnit    string `json:"price_per_unit" binding:"required"`
	BaseCostMonthly string `json:"base_cost_monthly"`
}

// BulkCreateTariffsRequest represents the request to create several tariffs
// sharing a validity window, typically after a price sheet arrived.
type BulkCreateTariffsRequest struct {
	ValidFrom string                  `json:"valid_from" binding:"required"`
	ValidTo   *string                 `json:"valid_to"`
	Items     []BulkTariffItemRequest `json:"items" binding:"required,min=1"`
}

// TariffResponse represents a tariff in API responses.
type TariffResponse struct {
	ID              uuid.UUID       `json:"id"`
	PropertyID      uuid.UUID       `json:"property_id"`
	TariffType      string          `json:"tariff_type"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	BaseCostMonthly decimal.Decimal `json:"base_cost_monthly"`
	ValidFrom       string          `json:"valid_from"`
	ValidTo         *string         `json:"valid_to,omitempty"`
}

// BulkCreateTariffsResponse represents the result of a bulk create.
type BulkCreateTariffsResponse struct {
	Tariffs []*TariffResponse `json:"tariffs"`
	Skipped int               `json:"skipped"`
}

// ToTariffResponse converts a tariff output to a response DTO.
func ToTariffResponse(out *tariff.TariffOutput) *TariffResponse {
	return &TariffResponse{
		ID:              out.ID,
		PropertyID:      out.PropertyID,
		TariffType:      string(out.TariffType),
		PricePerUnit:    out.PricePerUnit,
		BaseCostMonthly: out.BaseCostMonthly,
		ValidFrom:       FormatDate(out.ValidFrom),
		ValidTo:         FormatDatePtr(out.ValidTo),
	}
}

// ToTariffListResponse converts a list of tariff outputs to response DTOs.
func ToTariffListResponse(outs []*tariff.TariffOutput) []*TariffResponse {
	responses := make([]*TariffResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToTariffResponse(out)
	}
	return responses
}
