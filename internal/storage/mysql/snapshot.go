package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"kpi-mantenimiento/internal/storage"
)

func (s *Storage) Load(ctx context.Context) ([]byte, error) {
	const op = "storage.mysql.Load"

	query, args, err := sq.Select("payload").
		From(tableSnapshots).
		Where(sq.Eq{"slot_key": s.slotKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var payload []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSlotEmpty
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(payload) == 0 {
		return nil, storage.ErrSlotEmpty
	}

	return payload, nil
}

// Save upserts the whole snapshot in one statement so readers never see a partial write.
func (s *Storage) Save(ctx context.Context, payload []byte) error {
	const op = "storage.mysql.Save"

	query, args, err := sq.Insert(tableSnapshots).
		Columns("slot_key", "payload").
		Values(s.slotKey, string(payload)).
		Suffix("ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Delete drops the slot row; the next Load reports an empty slot.
func (s *Storage) Delete(ctx context.Context) error {
	const op = "storage.mysql.Delete"

	query, args, err := sq.Delete(tableSnapshots).
		Where(sq.Eq{"slot_key": s.slotKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
