package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/activity"
)

// ActivityEntryResponse represents one activity log entry in API responses.
type ActivityEntryResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Username   string     `json:"username"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id,omitempty"`
	Details    string     `json:"details,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	IPAddress  string     `json:"ip_address,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// ActivityListResponse represents a page of the activity log.
type ActivityListResponse struct {
	Entries []*ActivityEntryResponse `json:"entries"`
	Total   int64                    `json:"total"`
	Limit   int                      `json:"limit"`
	Offset  int                      `json:"offset"`
}

// ToActivityListResponse converts an activity listing output to a response
// DTO.
func ToActivityListResponse(out *activity.ListActivityOutput) *ActivityListResponse {
	entries := make([]*ActivityEntryResponse, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = &ActivityEntryResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			Username:   e.Username,
			Action:     string(e.Action),
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Details:    e.Details,
			Tags:       e.Tags,
			IPAddress:  e.IPAddress,
			Timestamp:  e.Timestamp,
		}
	}
	return &ActivityListResponse{
		Entries: entries,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}
