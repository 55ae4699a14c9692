package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookcatalog/internal/entities"
	"github.com/mrlokans/bookcatalog/internal/logging"
)

var (
	// ErrNotFound is returned when no record matches the identifier or offset.
	ErrNotFound = errors.New("book not found")

	// ErrUnavailable is returned by repositories created without a connection.
	ErrUnavailable = errors.New("database unavailable")
)

const (
	mysqlScheme  = "mysql://"
	sqliteScheme = "sqlite://"
)

type Database struct {
	DB *gorm.DB
}

// Options tune how the connection is established.
type Options struct {
	// ConnectAttempts is the total number of connection attempts, at least 1.
	ConnectAttempts uint64
	// ConnectBackoff is the initial delay between attempts; it doubles each time.
	ConnectBackoff time.Duration
	// LogLevel is the gorm logger level: silent, error, warn or info.
	LogLevel string
}

// Dialector picks the gorm driver for a connection string. "mysql://" URLs use the
// MySQL driver with the remainder as DSN; anything else is a SQLite path or file: URI,
// optionally prefixed with "sqlite://".
//
// The MySQL dialector skips its version query so that no connection is dialled
// until open pings with the caller's context.
func Dialector(url string) gorm.Dialector {
	switch {
	case strings.HasPrefix(url, mysqlScheme):
		return mysql.New(mysql.Config{
			DSN:                       strings.TrimPrefix(url, mysqlScheme),
			SkipInitializeWithVersion: true,
		})
	case strings.HasPrefix(url, sqliteScheme):
		return sqlite.Open(strings.TrimPrefix(url, sqliteScheme))
	default:
		return sqlite.Open(url)
	}
}

// NewDatabase opens url once and creates the books table if needed.
func NewDatabase(url string) (*Database, error) {
	return open(context.Background(), url, Options{LogLevel: "warn"})
}

// Connect opens url, retrying with exponential backoff until it succeeds, the
// attempts are exhausted, or ctx is done.
func Connect(ctx context.Context, url string, opts Options) (*Database, error) {
	attempts := opts.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}
	base := opts.ConnectBackoff
	if base <= 0 {
		base = time.Millisecond
	}

	b := retry.WithMaxRetries(attempts-1, retry.NewExponential(base))

	var (
		database *Database
		attempt  int
	)
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		db, err := open(ctx, url, opts)
		if err != nil {
			logging.Warn().Err(err).Int("attempt", attempt).Uint64("max_attempts", attempts).
				Msg("Database connection attempt failed")
			return retry.RetryableError(err)
		}
		database = db
		return nil
	})
	if err != nil {
		return nil, err
	}
	return database, nil
}

// open connects and migrates within ctx. gorm's own ping is disabled in favour of
// PingContext so a slow dial is abandoned when ctx is done.
func open(ctx context.Context, url string, opts Options) (*Database, error) {
	db, err := gorm.Open(Dialector(url), &gorm.Config{
		Logger:               logger.Default.LogMode(gormLogLevel(opts.LogLevel)),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&entities.Book{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logging.Info().Str("dialect", db.Dialector.Name()).Msg("Database initialized successfully")

	return &Database{DB: db}, nil
}

func gormLogLevel(level string) logger.LogLevel {
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

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
