package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sandeepkv93/tasklist/internal/model"
)

type ListState string

const (
	ListEmpty   ListState = "empty"
	ListListing ListState = "listing"
	ListEditing ListState = "editing"
)

// ListStateOf derives the list state from what is visible. An edit session on
// a task hidden by the filter does not count.
func ListStateOf(visible []model.Task, editingID int64) ListState {
	if len(visible) == 0 {
		return ListEmpty
	}
	if editingID != 0 {
		for _, t := range visible {
			if t.ID == editingID {
				return ListEditing
			}
		}
	}
	return ListListing
}

type TaskRowData struct {
	ID        int64
	Text      string
	Completed bool
	Selected  bool
	Editing   bool
	EditView  string
	Removing  bool
}

type TaskListData struct {
	State  ListState
	Filter model.Filter
	Rows   []TaskRowData
}

var (
	rowCompletedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	rowRemovingStyle  = lipgloss.NewStyle().Faint(true)
	rowSelectedStyle  = lipgloss.NewStyle().Bold(true)
	filterActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	emptyTitleStyle   = lipgloss.NewStyle().Bold(true)
)

func RenderTaskList(data TaskListData) string {
	if data.State == ListEmpty || len(data.Rows) == 0 {
		return RenderEmptyState(data.Filter)
	}
	lines := make([]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		lines = append(lines, renderTaskRow(row))
	}
	return strings.Join(lines, "\n")
}

func renderTaskRow(row TaskRowData) string {
	cursor := " "
	if row.Selected {
		cursor = ">"
	}
	check := "[ ]"
	if row.Completed {
		check = "[x]"
	}
	if row.Editing {
		return fmt.Sprintf("%s %s %s", cursor, check, row.EditView)
	}

	text := SanitizeText(row.Text)
	switch {
	case row.Removing:
		return rowRemovingStyle.Render(fmt.Sprintf("%s %s %s (removing)", cursor, check, text))
	case row.Completed:
		text = rowCompletedStyle.Render(text)
	case row.Selected:
		text = rowSelectedStyle.Render(text)
	}
	line := fmt.Sprintf("%s %s %s", cursor, check, text)
	if row.Selected {
		line += mutedStyle.Render("  [e]dit [d]elete")
	}
	return line
}

func RenderEmptyState(f model.Filter) string {
	title, subtitle := f.EmptyState()
	return fmt.Sprintf("%s %s\n%s", emptyGlyph(f.EmptyIcon()), emptyTitleStyle.Render(title), mutedStyle.Render(subtitle))
}

func emptyGlyph(icon string) string {
	switch icon {
	case "check-circle":
		return "✔"
	case "tasks":
		return "☰"
	default:
		return "▤"
	}
}

// RenderFilterBar lists every filter mode with exactly the active one
// bracketed and highlighted.
func RenderFilterBar(active model.Filter) string {
	parts := make([]string, 0, len(model.Filters))
	for i, f := range model.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == active {
			parts = append(parts, filterActiveStyle.Render("["+label+"]"))
			continue
		}
		parts = append(parts, " "+label+" ")
	}
	return "filter: " + strings.Join(parts, " ")
}

func RenderCount(text, progressView string) string {
	if progressView == "" {
		return text
	}
	return text + "  " + progressView
}

// SanitizeText removes escape sequences and control characters so task text
// cannot restyle or move the terminal cursor.
func SanitizeText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, s)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
)

// TaskMarkdown renders tasks as a markdown checklist for glamour.
func TaskMarkdown(title string, tasks []model.Task, count string) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	if len(tasks) == 0 {
		b.WriteString("_(no tasks)_\n")
	}
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s `#%d`\n", mark, markdownEscaper.Replace(SanitizeText(t.Text)), t.ID)
	}
	if count != "" {
		b.WriteString("\n" + count + "\n")
	}
	return b.String()
}
