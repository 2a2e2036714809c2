// Package audit persists a trail of every admin mutation the console
// issues against the storefront backend. Reads are never audited.
package audit

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/config"
	"github.com/cardstore/console/pkg/logger"
)

// Store is the audit trail backed by a relational database.
type Store struct {
	db *gorm.DB
}

// Open connects using the configured driver and DSN and migrates the
// audit table.
func Open() (*Store, error) {
	return OpenWith(config.DatabaseDriver(), config.DatabaseDSN())
}

// OpenWith connects to an explicit driver and DSN (tests use sqlite
// with a throwaway file).
func OpenWith(driver, dsn string) (*Store, error) {
	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("audit: build dialector: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // pkg/logger covers app logging
	})
	if err != nil {
		return nil, fmt.Errorf("audit: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("audit: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(&models.AuditEntry{}); err != nil {
		return nil, fmt.Errorf("audit: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

// DB exposes the underlying handle so other persistence concerns
// (failed queue jobs) can share the connection.
func (s *Store) DB() *gorm.DB { return s.db }

// Record writes one audit row. Failures are logged and swallowed: the
// trail must never block or fail an admin operation.
func (s *Store) Record(actor, action, resource, targetID, outcome, detail string) {
	entry := models.AuditEntry{
		Actor:    actor,
		Action:   action,
		Resource: resource,
		TargetID: targetID,
		Outcome:  outcome,
		Detail:   detail,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		logger.Error("audit record failed", "resource", resource, "action", action, "error", err)
	}
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(limit int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []models.AuditEntry
	err := s.db.Order("id DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("audit: recent: %w", err)
	}
	return out, nil
}

// ForResource returns the newest entries for one resource.
func (s *Store) ForResource(resource string, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []models.AuditEntry
	err := s.db.Where("resource = ?", resource).Order("id DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("audit: for resource: %w", err)
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
