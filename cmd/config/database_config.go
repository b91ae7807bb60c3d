package config

import (
	"fmt"

	migration "zetanom/cmd/database/migrate"
	"zetanom/internal/utils"
	"zetanom/internal/utils/storage"

	"gorm.io/gorm"
)

func ConnectDB(cfg utils.Config) (*gorm.DB, error) {
	var dsn string
	switch cfg.DBDriver {
	case storage.DriverPostgres:
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
		)
	default:
		dsn = storage.SQLiteDSN(cfg.DBPath)
	}

	return storage.Open(cfg.DBDriver, dsn, storage.ParseLogLevel(cfg.DBLogLevel))
}

// OpenStore connects, migrates and wraps the database in a Store.
func OpenStore(cfg utils.Config) (*storage.Store, error) {
	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		return nil, err
	}
	return storage.NewStore(db), nil
}
