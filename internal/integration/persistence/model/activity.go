package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ActivityEntryModel represents the activity_log table in the database.
// Tags are stored in the pq array text format, which round-trips on both
// postgres and sqlite.
type ActivityEntryModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Username   string         `gorm:"type:varchar(100);not null"`
	Action     string         `gorm:"type:varchar(20);not null;index"`
	EntityType string         `gorm:"type:varchar(30);index"`
	EntityID   *uuid.UUID     `gorm:"type:uuid"`
	Details    string         `gorm:"type:text"`
	Tags       pq.StringArray `gorm:"type:text"`
	IPAddress  string         `gorm:"type:varchar(45)"`
	Timestamp  time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the ActivityEntryModel.
func (ActivityEntryModel) TableName() string {
	return "activity_log"
}

// ToEntity converts an ActivityEntryModel to a domain ActivityEntry entity.
func (m *ActivityEntryModel) ToEntity() *entity.ActivityEntry {
	return &entity.ActivityEntry{
		ID:         m.ID,
		UserID:     m.UserID,
		Username:   m.Username,
		Action:     entity.ActivityAction(m.Action),
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Details:    m.Details,
		Tags:       m.Tags,
		IPAddress:  m.IPAddress,
		Timestamp:  m.Timestamp,
	}
}

// ActivityEntryFromEntity creates an ActivityEntryModel from a domain ActivityEntry entity.
func ActivityEntryFromEntity(entry *entity.ActivityEntry) *ActivityEntryModel {
	return &ActivityEntryModel{
		ID:         entry.ID,
		UserID:     entry.UserID,
		Username:   entry.Username,
		Action:     string(entry.Action),
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Details:    entry.Details,
		Tags:       entry.Tags,
		IPAddress:  entry.IPAddress,
		Timestamp:  entry.Timestamp,
	}
}
