package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type NotificationData struct {
	Message string
	Glyph   string
	Color   string
	Leaving bool
}

type ConfirmData struct {
	Active   bool
	Prompt   string
	TaskText string
}

type HelpPanelData struct {
	Context  string
	Bindings []string
	HelpView string
}

type InputData struct {
	View    string
	Focused bool
}

var inputFocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

func RenderInput(data InputData) string {
	if data.Focused {
		return inputFocusedStyle.Render("▍") + data.View
	}
	return " " + data.View
}

func RenderNotification(data NotificationData) string {
	if strings.TrimSpace(data.Message) == "" {
		return ""
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(data.Color)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(data.Color)).
		PaddingLeft(1)
	if data.Leaving {
		style = style.Faint(true)
	}
	return style.Render(fmt.Sprintf("%s %s", data.Glyph, data.Message))
}

func RenderConfirm(data ConfirmData) string {
	if !data.Active {
		return ""
	}
	if data.TaskText == "" {
		return data.Prompt
	}
	return fmt.Sprintf("%s\n%q", data.Prompt, SanitizeText(data.TaskText))
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n%s",
		strings.ToLower(data.Context),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

var selectionStyle = lipgloss.NewStyle().Reverse(true)

// RenderSelection shows text as selected, the way an editor highlights a
// field whose whole value will be replaced by the next keystroke.
func RenderSelection(text string) string {
	return selectionStyle.Render(SanitizeText(text))
}
