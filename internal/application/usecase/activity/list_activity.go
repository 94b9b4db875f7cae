package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// DefaultListLimit caps the page size when none is given.
const DefaultListLimit = 50

// MaxListLimit is the largest accepted page size.
const MaxListLimit = 500

// ListActivityInput represents the input for listing audit entries.
type ListActivityInput struct {
	UserID     uuid.UUID
	FilterUser *uuid.UUID
	Action     string
	EntityType string
	Limit      int
	Offset     int
}

// ActivityOutput represents one audit entry.
type ActivityOutput struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Username   string
	Action     entity.ActivityAction
	EntityType string
	EntityID   *uuid.UUID
	Details    string
	Tags       []string
	IPAddress  string
	Timestamp  time.Time
}

// ListActivityOutput represents the output of listing audit entries.
type ListActivityOutput struct {
	Entries []*ActivityOutput
	Total   int64
	Limit   int
	Offset  int
}

// ListActivityUseCase handles audit-trail listing. Admins and managers only.
type ListActivityUseCase struct {
	activityRepo adapter.ActivityRepository
	userRepo     adapter.UserRepository
}

// NewListActivityUseCase creates a new ListActivityUseCase instance.
func NewListActivityUseCase(activityRepo adapter.ActivityRepository, userRepo adapter.UserRepository) *ListActivityUseCase {
	return &ListActivityUseCase{activityRepo: activityRepo, userRepo: userRepo}
}

// Execute performs the listing.
func (uc *ListActivityUseCase) Execute(ctx context.Context, input ListActivityInput) (*ListActivityOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, domainerror.ErrUserNotFound
	}
	if user.Role == entity.RoleUser {
		return nil, domainerror.ErrInsufficientRole
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	filter := adapter.ActivityFilter{
		UserID:     input.FilterUser,
		EntityType: input.EntityType,
		Limit:      limit,
		Offset:     input.Offset,
	}
	if input.Action != "" {
		action := entity.ActivityAction(input.Action)
		filter.Action = &action
	}

	entries, total, err := uc.activityRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	output := &ListActivityOutput{
		Entries: make([]*ActivityOutput, 0, len(entries)),
		Total:   total,
		Limit:   limit,
		Offset:  input.Offset,
	}
	for _, e := range entries {
		output.Entries = append(output.Entries, &ActivityOutput{
			ID:         e.ID,
			UserID:     e.UserID,
			Username:   e.Username,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Details:    e.Details,
			Tags:       e.Tags,
			IPAddress:  e.IPAddress,
			Timestamp:  e.Timestamp,
		})
	}
	return output, nil
}
