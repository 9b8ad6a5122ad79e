package storage

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by a Slot that holds no snapshot yet.
var ErrSlotEmpty = errors.New("snapshot slot is empty")

// Slot is the single named key-value slot holding the latest serialized state.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}
