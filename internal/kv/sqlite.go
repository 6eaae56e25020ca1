package kv

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQLite opens (creating if needed) the sqlite database backing the
// default substrate and applies pending schema migrations.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

// SQLiteStore keeps every collection as one row in the kv_entries table.
type SQLiteStore struct {
	database *gorm.DB
}

func NewSQLiteStore(database *gorm.DB) *SQLiteStore {
	return &SQLiteStore{database: database}
}

type kvRow struct {
	Value string `gorm:"column:value"`
}

func (store *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	rows := make([]kvRow, 0, 1)
	err := store.database.WithContext(ctx).
		Raw(`SELECT value FROM kv_entries WHERE key = ?`, key).
		Scan(&rows).Error
	if err != nil {
		return "", false, fmt.Errorf("read key %q: %w", key, err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

func (store *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	err := store.database.WithContext(ctx).Exec(
		`INSERT INTO kv_entries(key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	).Error
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

func (store *SQLiteStore) DeleteKeys(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := store.database.WithContext(ctx).
		Exec(`DELETE FROM kv_entries WHERE key IN ?`, keys).Error
	if err != nil {
		return fmt.Errorf("delete keys %v: %w", keys, err)
	}
	return nil
}
