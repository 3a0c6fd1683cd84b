// Package store owns the ordered task collection and writes it back through a
// storage slot after every mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/storage"
)

var ErrNotFound = errors.New("store: task not found")

// Slot is the persistence side of the store.
type Slot interface {
	Load(ctx context.Context) ([]storage.TaskRecord, error)
	Save(ctx context.Context, records []storage.TaskRecord) error
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store keeps tasks newest first. It is meant to be driven from a single
// event loop and does no locking.
type Store struct {
	slot       Slot
	tasks      []model.Task
	lastIssued int64
	now        func() time.Time
}

// Open loads the collection from slot. Records that do not validate are
// skipped, as are repeated IDs after the first occurrence.
func Open(ctx context.Context, slot Slot, opts ...Option) (*Store, error) {
	if slot == nil {
		return nil, errors.New("store: nil slot")
	}
	s := &Store{slot: slot, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	records, err := slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: load tasks: %w", err)
	}
	seen := make(map[int64]bool, len(records))
	s.tasks = make([]model.Task, 0, len(records))
	for _, rec := range records {
		task, convErr := fromRecord(rec)
		if convErr != nil {
			logging.Info("store", "skipping stored task %d: %v", rec.ID, convErr)
			continue
		}
		if seen[task.ID] {
			logging.Info("store", "skipping duplicate task id %d", task.ID)
			continue
		}
		seen[task.ID] = true
		s.tasks = append(s.tasks, task)
		if task.ID > s.lastIssued {
			s.lastIssued = task.ID
		}
	}
	logging.Debug("store", "loaded %d tasks", len(s.tasks))
	return s, nil
}

// All returns a copy of the collection in display order.
func (s *Store) All() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) Get(id int64) (model.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

func (s *Store) Create(ctx context.Context, text string) (model.Task, error) {
	trimmed, err := model.NormalizeText(text)
	if err != nil {
		return model.Task{}, err
	}
	now := s.now()
	task := model.Task{
		ID:        s.nextID(now),
		Text:      trimmed,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	logging.Debug("store", "created task %d: %s", task.ID, logging.Truncate(task.Text, 40))
	return task, s.persist(ctx)
}

func (s *Store) Toggle(ctx context.Context, id int64) (model.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.tasks[i], s.persist(ctx)
}

func (s *Store) Rename(ctx context.Context, id int64, text string) (model.Task, error) {
	trimmed, err := model.NormalizeText(text)
	if err != nil {
		return model.Task{}, err
	}
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	s.tasks[i].Text = trimmed
	logging.Debug("store", "renamed task %d: %s", id, logging.Truncate(trimmed, 40))
	return s.tasks[i], s.persist(ctx)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	logging.Debug("store", "deleted task %d", id)
	return s.persist(ctx)
}

// nextID is the creation time in milliseconds, bumped past the last issued ID
// so IDs stay strictly increasing even when the clock stalls or goes back.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastIssued {
		id = s.lastIssued + 1
	}
	s.lastIssued = id
	return id
}

func (s *Store) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	records := make([]storage.TaskRecord, 0, len(s.tasks))
	for _, t := range s.tasks {
		records = append(records, toRecord(t))
	}
	if err := s.slot.Save(ctx, records); err != nil {
		logging.Info("store", "persist failed: %v", err)
		return fmt.Errorf("store: persist tasks: %w", err)
	}
	return nil
}

func toRecord(t model.Task) storage.TaskRecord {
	return storage.TaskRecord{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.UTC().Format(storage.CreatedAtLayout),
	}
}

func fromRecord(rec storage.TaskRecord) (model.Task, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("parse createdAt: %w", err)
	}
	task := model.Task{
		ID:        rec.ID,
		Text:      rec.Text,
		Completed: rec.Completed,
		CreatedAt: createdAt.UTC(),
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	return task, nil
}
