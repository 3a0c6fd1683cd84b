package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/model"
)

// handleEditKey drives the inline editor. Enter and focus-moving keys commit,
// esc cancels. While the initial text is still selected, the first typed
// rune replaces it and backspace clears it.
func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "tab":
		m.commitEdit()
		return nil
	case "up", "down":
		if m.commitEdit() {
			if msg.String() == "up" {
				m.moveCursor(-1)
			} else {
				m.moveCursor(1)
			}
		}
		return nil
	case "esc":
		m.endEdit()
		return nil
	case "ctrl+j":
		if m.commitEdit() {
			return m.focusInput()
		}
		return nil
	}

	if m.editSelected {
		m.editSelected = false
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m.editInput.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			m.editInput.SetValue("")
			return nil
		}
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return cmd
}

// commitEdit renames the task being edited and closes the session. An empty
// value keeps the session open; it reports whether the session closed.
func (m *Model) commitEdit() bool {
	id := m.editingID
	if id == 0 {
		return true
	}
	text := m.editInput.Value()
	if m.editSelected {
		// The prefill went through textinput sanitizing; keep the stored text.
		if task, ok := m.tasks.Get(id); ok {
			text = task.Text
		}
	}
	err := m.dispatch(commands.Rename(id, text))
	if model.IsValidationError(err) {
		return false
	}
	if err != nil {
		logging.Debug("update", "rename of task %d: %v", id, err)
	}
	m.endEdit()
	return true
}

func (m *Model) endEdit() {
	m.editingID = 0
	m.editSelected = false
	m.editInput.Blur()
	m.editInput.SetValue("")
}
