package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/tasklist/internal/logging"
)

const DefaultSlotKey = "tasks"

// CreatedAtLayout matches JavaScript's Date.toISOString output for UTC times.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// TaskRecord is the persisted shape of one task.
type TaskRecord struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// TaskSlot reads and writes the whole task collection under one key.
type TaskSlot struct {
	kv  KV
	key string
}

func NewTaskSlot(kv KV, key string) *TaskSlot {
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultSlotKey
	}
	return &TaskSlot{kv: kv, key: key}
}

func (s *TaskSlot) Key() string { return s.key }

// Load returns the stored records. An absent or unparseable slot yields an
// empty collection; only backend read failures are returned as errors.
func (s *TaskSlot) Load(ctx context.Context) ([]TaskRecord, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []TaskRecord{}, nil
		}
		return nil, fmt.Errorf("read slot %q: %w", s.key, err)
	}
	if strings.TrimSpace(raw) == "" {
		return []TaskRecord{}, nil
	}
	var out []TaskRecord
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logging.Info("storage", "slot %q is corrupt, starting empty: %v", s.key, err)
		return []TaskRecord{}, nil
	}
	if out == nil {
		out = []TaskRecord{}
	}
	return out, nil
}

// Save overwrites the slot with the full collection.
func (s *TaskSlot) Save(ctx context.Context, records []TaskRecord) error {
	if records == nil {
		records = []TaskRecord{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", s.key, err)
	}
	if err := s.kv.Put(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("write slot %q: %w", s.key, err)
	}
	return nil
}

// Open builds the configured backend.
func Open(backend Backend, dbPath, statePath string) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		return OpenSQLite(dbPath)
	case BackendFile:
		return OpenFile(statePath)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
