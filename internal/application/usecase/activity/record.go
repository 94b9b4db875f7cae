// Package activity contains audit-trail use cases.
package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
)

// Recorder writes audit-trail entries. Recording is best effort: a failed
// write is logged and swallowed so it can never fail the originating
// request.
type Recorder struct {
	activityRepo adapter.ActivityRepository
}

// NewRecorder creates a new Recorder instance.
func NewRecorder(activityRepo adapter.ActivityRepository) *Recorder {
	return &Recorder{activityRepo: activityRepo}
}

// Record appends an audit entry for an action performed by the user.
func (r *Recorder) Record(ctx context.Context, user *entity.User, action entity.ActivityAction, entityType string, entityID *uuid.UUID, details, ipAddress string) {
	entry := entity.NewActivityEntry(user.ID, user.Username, action, entityType, entityID, details, ipAddress)
	if err := r.activityRepo.Create(ctx, entry); err != nil {
		slog.Warn("failed to record activity",
			"userID", user.ID,
			"action", action,
			"entityType", entityType,
			"error", err,
		)
	}
}
