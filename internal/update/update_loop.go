package update

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/scheduler"
)

func (m Model) Init() tea.Cmd {
	return waitForTimerCmd(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.BlurMsg:
		if m.editingID != 0 {
			m.commitEdit()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		return m, nil
	case EditTaskMsg:
		m.dispatch(commands.Edit(typed.ID))
		return m, nil
	case TimerFiredMsg:
		m.handleTimer(typed.Event)
		return m, waitForTimerCmd(m.events)
	}
	return m, nil
}

// handleKey routes a key by context. The delete confirmation is modal and
// swallows everything except its own answers and ctrl+c.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m.quit()
	}
	switch {
	case m.confirmID != 0:
		m.handleConfirmKey(msg)
		return m, nil
	case m.Palette.Active:
		m.handlePaletteKey(msg)
		return m, nil
	case m.editingID != 0:
		cmd := m.handleEditKey(msg)
		return m, cmd
	case m.inputFocused:
		cmd := m.handleInputKey(msg)
		return m, cmd
	}
	return m.handleListKey(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.flushRemovals()
	m.notices.Clear()
	m.Quitting = true
	return m, tea.Quit
}

func (m *Model) handleTimer(ev scheduler.Event) {
	switch ev.Kind {
	case scheduler.KindTaskRemoval:
		handle, ok := m.removing[ev.Ref]
		if !ok || handle != ev.ID {
			logging.Debug("update", "ignoring stale removal timer for task %d", ev.Ref)
			return
		}
		m.finishRemoval(ev.Ref)
	default:
		m.notices.Handle(ev)
	}
}

func (m Model) View() string {
	return m.renderApp()
}
