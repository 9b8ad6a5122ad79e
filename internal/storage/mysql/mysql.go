package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-sql-driver/mysql"

	"kpi-mantenimiento/internal/config"
)

const tableSnapshots = "kpi_snapshots"

const schemaSnapshots = `CREATE TABLE IF NOT EXISTS kpi_snapshots (
	slot_key   VARCHAR(191) NOT NULL PRIMARY KEY,
	payload    LONGTEXT     NOT NULL,
	updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

// Storage keeps the snapshot slot as one row of kpi_snapshots keyed by the slot key.
type Storage struct {
	db      *sql.DB
	slotKey string
}

func New(ctx context.Context, cfg config.Config) (*Storage, error) {
	const op = "storage.mysql.New"

	dsn := mysql.NewConfig()
	dsn.User = cfg.Storage.DBUser
	dsn.Passwd = cfg.Storage.DBPassword
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%d", cfg.Storage.DBHost, cfg.Storage.DBPort)
	dsn.DBName = cfg.Storage.DBName
	dsn.ParseTime = true

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open db: %w", op, err)
	}

	s := &Storage{db: db, slotKey: cfg.SlotKey()}

	if err := s.ping(ctx, cfg.Storage.ConnectRetries); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// NewWithDB wraps an already opened connection pool.
func NewWithDB(db *sql.DB, slotKey string) *Storage {
	return &Storage{db: db, slotKey: slotKey}
}

func (s *Storage) ping(ctx context.Context, retries uint64) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), retries),
		ctx,
	)

	return backoff.Retry(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return s.db.PingContext(pingCtx)
	}, policy)
}

func (s *Storage) EnsureSchema(ctx context.Context) error {
	const op = "storage.mysql.EnsureSchema"

	if _, err := s.db.ExecContext(ctx, schemaSnapshots); err != nil {
		return fmt.Errorf("%s: create %s: %w", op, tableSnapshots, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
