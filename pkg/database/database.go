// Package database owns the connection pool handle. Callers open it once at
// startup, pass it to the repositories and release it with Close.
package database

import (
	"fmt"
	"strings"
	"time"

	"employee_manager/internal/config"
	"employee_manager/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"moul.io/zapgorm2"
)

// Dialector picks the gorm dialector for the configured driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.Open(cfg.MySQL.DSN), nil
	case "postgres":
		return postgres.Open(cfg.Postgres.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects with the configured driver and sizes the pool. gorm pings the
// server while opening, so an unreachable database fails here.
func Open(cfg config.DatabaseConfig, sqlLevel string) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return OpenWithDialector(dialector, cfg.Pool, sqlLevel)
}

// OpenWithDialector is Open for an already built dialector.
func OpenWithDialector(dialector gorm.Dialector, pool config.PoolConfig, sqlLevel string) (*gorm.DB, error) {
	gormLogger := zapgorm2.New(log.GetLogger())
	gormLogger.IgnoreRecordNotFoundError = true
	gormLogger.SlowThreshold = time.Second
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.LogMode(ParseLogLevel(sqlLevel)),
		// every statement issued here is a single insert/update/delete
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.ConnMaxLifetimeMin > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeMin) * time.Minute)
	}

	log.Infow("Database connected", "dialect", dialector.Name())
	return db, nil
}

// Close releases the pool. It is safe to call with a nil handle.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ParseLogLevel maps a config string to a gorm log level, defaulting to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
