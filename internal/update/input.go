package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
)

func (m *Model) focusInput() tea.Cmd {
	if m.inputFocused {
		return nil
	}
	m.inputFocused = true
	return m.taskInput.Focus()
}

func (m *Model) blurInput() {
	m.inputFocused = false
	m.taskInput.Blur()
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		_ = m.dispatch(commands.Add(m.taskInput.Value()))
		return nil
	case "esc", "tab":
		m.blurInput()
		return nil
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return cmd
}
