// Package bootstrap holds the startup steps shared by the binaries: logger
// setup and opening the store selected by DATABASE_URL.
package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cafeteria-admin/internal/config"
	"cafeteria-admin/internal/repository"
	"cafeteria-admin/internal/repository/mongostore"
	"cafeteria-admin/internal/repository/sqlstore"
	"cafeteria-admin/pkg/database"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global zerolog logger: human readable console
// output in development, JSON otherwise.
func SetupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &log.Logger
}

// OpenStore connects to the backend named by cfg.DatabaseURL and prepares
// its schema. Schema failures are logged, not returned: the process still
// starts and /test reports the store as unreachable.
func OpenStore(ctx context.Context, cfg *config.Config) (*repository.Store, error) {
	switch database.KindOf(cfg.DatabaseURL) {
	case database.KindMongo:
		client, db, err := database.ConnectMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			log.Warn().Err(err).Msg("mongo indexes not ensured")
		}
		return mongostore.New(client, db), nil

	case database.KindSQL:
		db, err := database.ConnectSQL(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := sqlstore.AutoMigrate(ctx, db); err != nil {
			log.Warn().Err(err).Msg("sql schema not migrated")
		}
		return sqlstore.New(db, sqlDatabaseName(cfg.DatabaseURL)), nil

	default:
		return nil, fmt.Errorf("bootstrap: unsupported DATABASE_URL scheme")
	}
}

// sqlDatabaseName derives the name shown by diagnostics from a SQL URL:
// the file name for sqlite, the path segment for postgres.
func sqlDatabaseName(raw string) string {
	if strings.HasPrefix(raw, "sqlite://") {
		path := strings.TrimPrefix(raw, "sqlite://")
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		return filepath.Base(path)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
