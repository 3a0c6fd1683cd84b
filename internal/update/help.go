package update

import (
	"fmt"

	"github.com/sandeepkv93/tasklist/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	var plain []string
	for _, kb := range m.contextBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Context:  m.context(),
		Bindings: plain,
		HelpView: m.helpModel.View(m.Keys),
	})
}

func (m Model) context() string {
	switch {
	case m.confirmID != 0:
		return "confirm"
	case m.Palette.Active:
		return "command"
	case m.editingID != 0:
		return "edit"
	case m.inputFocused:
		return "input"
	default:
		return "list"
	}
}

// contextBindings are the fixed keys of the non-list contexts.
func (m Model) contextBindings() []KeyBinding {
	switch m.context() {
	case "confirm":
		return []KeyBinding{{Key: "y/enter", Action: "delete"}, {Key: "n/esc", Action: "keep"}}
	case "command":
		return []KeyBinding{{Key: "enter", Action: "run command"}, {Key: "esc", Action: "close"}}
	case "edit":
		return []KeyBinding{
			{Key: "enter/tab/↑/↓", Action: "save"},
			{Key: "esc", Action: "cancel"},
		}
	case "input":
		return []KeyBinding{{Key: "enter", Action: "add task"}, {Key: "esc/tab", Action: "back to list"}}
	default:
		return []KeyBinding{
			{Key: "/", Action: "run add, toggle, edit, rename, delete or filter"},
		}
	}
}
