package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite://"

// ConnectSQL opens a gorm connection for a postgres:// or sqlite:// URL.
// The first round-trip is deferred so that an unreachable server surfaces
// in diagnostics instead of aborting startup.
func ConnectSQL(url string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(url, sqlitePrefix):
		dialector = sqlite.Open(strings.TrimPrefix(url, sqlitePrefix))
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		dialector = postgres.New(postgres.Config{
			DSN:                  url,
			PreferSimpleProtocol: true, // no implicit prepared statements, pgbouncer friendly
		})
	default:
		return nil, fmt.Errorf("database: unsupported sql url scheme in %q", redact(url))
	}

	gormLogger := logger.New(
		zerologWriter{},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               gormLogger,
		PrepareStmt:          false,
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	if strings.HasPrefix(url, sqlitePrefix) {
		// sqlite serializes writers; an in-memory database also lives on a
		// single connection.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info().Str("dialect", dialector.Name()).Msg("sql store configured")
	return db, nil
}

// zerologWriter routes gorm's slow-query and error lines through zerolog.
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	log.Warn().Str("component", "gorm").Msgf(format, args...)
}

// redact hides credentials embedded in a connection string.
func redact(url string) string {
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return url
	}
	return url[:scheme+3] + "***" + url[at:]
}
