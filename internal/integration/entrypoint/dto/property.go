package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/property"
)

// CreatePropertyRequest represents the request to create a property.
type CreatePropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// UpdatePropertyRequest represents the request to update a property.
type UpdatePropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// PropertyResponse represents a property in API responses.
type PropertyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToPropertyResponse converts a property output to a response DTO.
func ToPropertyResponse(out *property.PropertyOutput) *PropertyResponse {
	return &PropertyResponse{
		ID:          out.ID,
		Name:        out.Name,
		Address:     out.Address,
		Description: out.Description,
		CreatedAt:   out.CreatedAt,
	}
}

// ToPropertyListResponse converts a list of property outputs to response DTOs.
func ToPropertyListResponse(outs []*property.PropertyOutput) []*PropertyResponse {
	responses := make([]*PropertyResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToPropertyResponse(out)
	}
	return responses
}
