package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        now.UnixMilli(),
		Text:      "Buy milk",
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBlankText(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{ID: 1, Text: "   ", CreatedAt: now}
	err := task.Validate()
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}

func TestTaskValidateRequiresIDAndCreatedAt(t *testing.T) {
	task := Task{Text: "x", CreatedAt: time.Now()}
	if err := task.Validate(); err == nil || err.Error() != "model: task id is required" {
		t.Fatalf("unexpected error: %v", err)
	}
	task = Task{ID: 7, Text: "x"}
	if err := task.Validate(); err == nil || err.Error() != "model: task created_at is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizeText(t *testing.T) {
	got, err := NormalizeText("  write docs \n")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "write docs" {
		t.Fatalf("unexpected text %q", got)
	}

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeText(in)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "text" {
			t.Fatalf("expected text validation error for %q, got %v", in, err)
		}
	}
}
