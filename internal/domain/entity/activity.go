package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityAction is the kind of operation recorded in the audit trail.
type ActivityAction string

const (
	ActivityActionCreate ActivityAction = "create"
	ActivityActionUpdate ActivityAction = "update"
	ActivityActionDelete ActivityAction = "delete"
	ActivityActionView   ActivityAction = "view"
	ActivityActionExport ActivityAction = "export"
	ActivityActionImport ActivityAction = "import"
	ActivityActionLogin  ActivityAction = "login"
)

// ActivityEntry is one row of the audit trail. The username is snapshotted
// so entries stay readable after the user is deleted.
type ActivityEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Username   string
	Action     ActivityAction
	EntityType string
	EntityID   *uuid.UUID
	Details    string
	Tags       []string
	IPAddress  string
	Timestamp  time.Time
}

// NewActivityEntry creates a new audit trail entry.
func NewActivityEntry(userID uuid.UUID, username string, action ActivityAction, entityType string, entityID *uuid.UUID, details, ipAddress string) *ActivityEntry {
	return &ActivityEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Username:   username,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		IPAddress:  ipAddress,
		Timestamp:  time.Now().UTC(),
	}
}
