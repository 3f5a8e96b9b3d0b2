package activityrepo

import (
	"context"
	"slices"
	"time"

	"freight/internal/core/domain/model/activity"

	"gorm.io/gorm"
)

// GormActivityRepository implements ports.ActivityStore using GORM.
type GormActivityRepository struct {
	db *gorm.DB
}

func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Migrate creates or updates the activity_entries table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&EntryDTO{})
}

// Append inserts a new entry.
func (r *GormActivityRepository) Append(ctx context.Context, entry activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Recent reads the newest limit rows and returns them oldest first.
func (r *GormActivityRepository) Recent(ctx context.Context, limit int) ([]activity.Entry, error) {
	if limit <= 0 {
		return []activity.Entry{}, nil
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).Order("seq DESC").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, err
	}
	slices.Reverse(dtos)

	entries := make([]activity.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// PruneBefore deletes rows recorded before cutoff.
func (r *GormActivityRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("recorded_at < ?", cutoff).Delete(&EntryDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
