package db

import (
	"fmt"     // Error wrapping
	"strings" // DSN scheme inspection
	"time"    // Pool durations

	"gorm.io/driver/mysql"    // MySQL driver for GORM
	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/driver/sqlite"   // SQLite driver for GORM
	"gorm.io/gorm"            // GORM ORM library
)

// Dialector picks the GORM driver from the DSN scheme; a bare DSN is treated as MySQL
func Dialector(dsn string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn) // PostgreSQL understands the URL form directly
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://")) // File path or :memory:
	case strings.HasPrefix(dsn, "mysql://"):
		return mysql.Open(strings.TrimPrefix(dsn, "mysql://")) // go-sql-driver DSN after the scheme
	default:
		return mysql.Open(dsn) // user:pass@tcp(host:port)/name
	}
}

// Open connects to the database behind dsn
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(Dialector(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         NewLogger(), // Query errors go through logrus
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	return gdb, nil
}

// SetPool applies connection pool limits to the underlying sql.DB
func SetPool(gdb *gorm.DB, maxOpen, maxIdle int, lifetime time.Duration) error {
	sqlDB, err := gdb.DB() // Underlying database/sql handle
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)
	return nil
}

// Close releases the connection pool
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
