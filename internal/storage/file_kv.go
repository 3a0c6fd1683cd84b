package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/tasklist/internal/logging"
)

// FileKV keeps every slot in one JSON object on disk. Writes go through a
// temp file and a rename so a crash never leaves a half-written file.
type FileKV struct {
	path  string
	slots map[string]string
}

func OpenFile(path string) (*FileKV, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("storage: empty state file path")
	}
	kv := &FileKV{path: trimmed, slots: make(map[string]string)}

	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return kv, nil
	}
	if err := json.Unmarshal(raw, &kv.slots); err != nil {
		logging.Info("storage", "state file %s is unreadable, starting empty: %v", trimmed, err)
		kv.slots = make(map[string]string)
	}
	if kv.slots == nil {
		kv.slots = make(map[string]string)
	}
	return kv, nil
}

func (f *FileKV) Get(_ context.Context, key string) (string, error) {
	value, ok := f.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (f *FileKV) Put(_ context.Context, key, value string) error {
	prev, had := f.slots[key]
	f.slots[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.slots[key] = prev
		} else {
			delete(f.slots, key)
		}
		return err
	}
	return nil
}

func (f *FileKV) Close() error { return nil }

func (f *FileKV) flush() error {
	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(f.slots, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
