package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	MemoryPath = ":memory:"
)

// SQLiteDSN turns a database path into a DSN with foreign keys enabled. The
// special path ":memory:" becomes a uniquely named shared-cache in-memory database,
// so every store gets its own isolated schema.
func SQLiteDSN(path string) string {
	if path == MemoryPath {
		path = fmt.Sprintf("file:zetanom-%s?mode=memory&cache=shared", uuid.NewString())
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// ParseLogLevel maps silent, error, warn and info onto gorm log levels.
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
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

// Open connects to the database. SQLite is limited to a single connection since
// the store serialises all access anyway.
func Open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// OpenMemory opens an empty in-memory SQLite database.
func OpenMemory() (*gorm.DB, error) {
	return Open(DriverSQLite, SQLiteDSN(MemoryPath), logger.Silent)
}
