package cmd

import (
	"fmt"

	"freight/internal/adapters/out/memory/activitystore"
	"freight/internal/adapters/out/postgres/activityrepo"
	"freight/internal/core/ports"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenActivityStore builds the activity store selected by the configuration.
// The returned close function releases the database connection, if any.
func OpenActivityStore(config Config) (ports.ActivityStore, func() error, error) {
	if config.ActivityStore != ActivityStorePostgres {
		return activitystore.New(config.ActivityCapacity), func() error { return nil }, nil
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = activityrepo.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate activity table: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	return activityrepo.NewGormActivityRepository(db), sqlDB.Close, nil
}
