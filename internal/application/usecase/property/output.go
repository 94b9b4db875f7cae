// Package property contains property-related use cases.
package property

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// PropertyOutput represents property data returned to the caller.
type PropertyOutput struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Description string
	CreatedAt   time.Time
}

func newPropertyOutput(p *entity.Property) *PropertyOutput {
	return &PropertyOutput{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
