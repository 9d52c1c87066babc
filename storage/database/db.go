package database

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campushare/campushare/core"
	gormrepos "github.com/campushare/campushare/storage/database/gorm"
)

func Open(conf *core.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if conf.Debug {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(conf.DatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql.DB")
	}

	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = sqlDB.Ping(); err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}
	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return errors.Wrap(gormrepos.AutoMigrate(db), "migrating database")
}
