package model

import (
	"fmt"
	"strings"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterPending, FilterCompleted:
		return true
	default:
		return false
	}
}

func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return FilterAll, fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return f, nil
}

// Next cycles all -> pending -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterPending
	case FilterPending:
		return FilterCompleted
	default:
		return FilterAll
	}
}

func (f Filter) Label() string {
	switch f {
	case FilterPending:
		return "Pending"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Apply returns the visible subset of tasks in their original order.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		switch f {
		case FilterPending:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func (f Filter) EmptyState() (title, subtitle string) {
	switch f {
	case FilterPending:
		return "No pending tasks", "All tasks are complete!"
	case FilterCompleted:
		return "No completed tasks", "Completed tasks will appear here"
	default:
		return "No tasks yet", "Add a new task using the field above"
	}
}

// EmptyIcon names the placeholder icon shown with EmptyState.
func (f Filter) EmptyIcon() string {
	switch f {
	case FilterPending:
		return "check-circle"
	case FilterCompleted:
		return "tasks"
	default:
		return "clipboard-list"
	}
}

type Summary struct {
	Total     int
	Completed int
	Pending   int
}

func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}

// Ratio is the completed share of all tasks, 0 for an empty collection.
func (s Summary) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

func (f Filter) CountText(s Summary) string {
	switch f {
	case FilterCompleted:
		return fmt.Sprintf("Completed: %d", s.Completed)
	case FilterPending:
		return fmt.Sprintf("Pending: %d", s.Pending)
	default:
		return fmt.Sprintf("Total: %d (Completed: %d, Pending: %d)", s.Total, s.Completed, s.Pending)
	}
}
