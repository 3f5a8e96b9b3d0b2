// Package activityrepo persists the activity log in PostgreSQL through GORM.
package activityrepo

import (
	"time"

	"freight/internal/core/domain/model/activity"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO is one row of the activity_entries table. Seq keeps the append
// order stable when two entries share a timestamp.
type EntryDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RecordedAt time.Time `gorm:"index;not null"`
	Message    string    `gorm:"type:text;not null"`
}

func (EntryDTO) TableName() string {
	return "activity_entries"
}

func fromDomain(e activity.Entry) EntryDTO {
	return EntryDTO{
		ID:         e.ID().Bytes(),
		RecordedAt: e.RecordedAt(),
		Message:    e.Message(),
	}
}

func toDomain(dto EntryDTO) (activity.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return activity.Entry{}, err
	}

	return activity.NewEntry(id, dto.RecordedAt, dto.Message)
}
