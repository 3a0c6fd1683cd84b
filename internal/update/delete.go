package update

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/notify"
	"github.com/sandeepkv93/tasklist/internal/scheduler"
	"github.com/sandeepkv93/tasklist/internal/store"
)

func (m *Model) handleConfirmKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := m.confirmID
		m.confirmID = 0
		m.startRemoval(id)
	case "n", "N", "esc":
		m.confirmID = 0
	}
}

// startRemoval marks the task as leaving and schedules the actual delete
// after the removal delay.
func (m *Model) startRemoval(id int64) {
	if m.editingID == id {
		m.endEdit()
	}
	if m.timers == nil || m.removalDelay <= 0 {
		m.finishRemoval(id)
		return
	}
	handle, err := m.timers.Schedule(scheduler.Event{
		Kind:      scheduler.KindTaskRemoval,
		Ref:       id,
		TriggerAt: m.now().Add(m.removalDelay),
	})
	if err != nil {
		logging.Info("update", "schedule removal of task %d: %v", id, err)
		m.finishRemoval(id)
		return
	}
	m.removing[id] = handle
}

func (m *Model) finishRemoval(id int64) {
	delete(m.removing, id)
	err := m.tasks.Delete(m.ctx, id)
	m.clampCursor()
	switch {
	case errors.Is(err, store.ErrNotFound):
		return
	case err != nil:
		_ = m.reportFailure(err)
		return
	}
	m.notices.Show(msgTaskDeleted, notify.SeverityInfo)
}

// flushRemovals completes confirmed deletes whose timers have not fired yet.
func (m *Model) flushRemovals() {
	for id, handle := range m.removing {
		if m.timers != nil {
			m.timers.Cancel(handle)
		}
		m.finishRemoval(id)
	}
}
