package update

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/model"
)

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.quit()
	case key.Matches(msg, m.Keys.FocusInput):
		cmd := m.focusInput()
		return m, cmd
	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.Keys.Toggle):
		if task, ok := m.selectedTask(); ok {
			_ = m.dispatch(commands.Toggle(task.ID))
		}
	case key.Matches(msg, m.Keys.Edit):
		if task, ok := m.selectedTask(); ok {
			_ = m.dispatch(commands.Edit(task.ID))
			if m.editingID == task.ID {
				cmd := m.editInput.Focus()
				return m, cmd
			}
		}
	case key.Matches(msg, m.Keys.Delete):
		if task, ok := m.selectedTask(); ok {
			_ = m.dispatch(commands.Delete(task.ID))
		}
	case key.Matches(msg, m.Keys.FilterAll):
		_ = m.dispatch(commands.SetFilter(model.FilterAll))
	case key.Matches(msg, m.Keys.FilterPending):
		_ = m.dispatch(commands.SetFilter(model.FilterPending))
	case key.Matches(msg, m.Keys.FilterCompleted):
		_ = m.dispatch(commands.SetFilter(model.FilterCompleted))
	case key.Matches(msg, m.Keys.CycleFilter):
		_ = m.dispatch(commands.SetFilter(m.Filter.Next()))
	case key.Matches(msg, m.Keys.Palette):
		m.openPalette()
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.Cursor += delta
	m.clampCursor()
}
