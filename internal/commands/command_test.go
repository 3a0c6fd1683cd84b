package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/tasklist/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent tomorrow", TypeAdd},
		{"toggle 1712345678901", TypeToggle},
		{"done #42", TypeToggle},
		{"edit 7", TypeEdit},
		{"rename 7 new title", TypeRename},
		{"delete 7", TypeDelete},
		{"rm 7", TypeDelete},
		{"filter pending", TypeFilter},
		{"ls", TypeList},
		{"list completed", TypeList},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
		if cmd.Raw != tc.in {
			t.Fatalf("parse %q raw = %q", tc.in, cmd.Raw)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, _ := Parse("rename #12 Buy oat milk")
	if cmd.Rename.ID != 12 || cmd.Rename.Text != "Buy oat milk" {
		t.Fatalf("unexpected rename args: %#v", cmd.Rename)
	}

	cmd, _ = Parse("filter Completed")
	if cmd.Filter.Filter != model.FilterCompleted {
		t.Fatalf("unexpected filter: %#v", cmd.Filter)
	}

	cmd, _ = Parse("ls")
	if cmd.List.Filter != model.FilterAll {
		t.Fatalf("expected list to default to all, got %#v", cmd.List)
	}

	// Blank text is left for the store to reject.
	cmd, err := Parse("add")
	if err != nil || cmd.Add.Text != "" {
		t.Fatalf("expected add with empty text, got %#v err=%v", cmd, err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{" / ", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"toggle", ErrCodeInvalidArgument},
		{"toggle abc", ErrCodeInvalidArgument},
		{"delete -3", ErrCodeInvalidArgument},
		{"rename", ErrCodeInvalidArgument},
		{"filter", ErrCodeInvalidArgument},
		{"filter done", ErrCodeInvalidArgument},
		{"ls all pending", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" {
				t.Fatalf("unexpected text: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteTypedConstructors(t *testing.T) {
	var got []string
	h := Handlers{
		Toggle: func(a TaskArgs) (Result, error) { got = append(got, "toggle"); return Result{}, nil },
		Edit:   func(a TaskArgs) (Result, error) { got = append(got, "edit"); return Result{}, nil },
		Rename: func(a RenameArgs) (Result, error) { got = append(got, "rename:"+a.Text); return Result{}, nil },
		Delete: func(a TaskArgs) (Result, error) { got = append(got, "delete"); return Result{}, nil },
		Filter: func(a FilterArgs) (Result, error) { got = append(got, "filter:"+string(a.Filter)); return Result{}, nil },
	}
	for _, cmd := range []Command{Toggle(1), Edit(1), Rename(1, "x"), Delete(1), SetFilter(model.FilterPending)} {
		if _, err := Execute(cmd, h); err != nil {
			t.Fatalf("execute %s: %v", cmd.Type, err)
		}
	}
	want := []string{"toggle", "edit", "rename:x", "delete", "filter:pending"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected dispatch order: %v", got)
		}
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("ls pending")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
