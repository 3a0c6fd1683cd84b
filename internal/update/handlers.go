package update

import (
	"errors"

	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/logging"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/notify"
	"github.com/sandeepkv93/tasklist/internal/store"
)

const (
	msgTaskAdded       = "Task added"
	msgTaskCompleted   = "Task completed"
	msgTaskIncomplete  = "Task marked incomplete"
	msgTaskUpdated     = "Task updated"
	msgTaskDeleted     = "Task deleted"
	msgEnterTask       = "Please enter a task"
	msgEnterTaskName   = "Please enter a task name"
	deleteConfirmation = "Delete this task? (y/n)"
)

// dispatch runs a command against the model. Feedback goes to the
// notification service; the returned error is only for callers that need to
// know whether the command took effect.
func (m *Model) dispatch(cmd commands.Command) error {
	_, err := commands.Execute(cmd, m.handlers())
	var ce *commands.CommandError
	if errors.As(err, &ce) {
		m.notices.Show(ce.Error(), notify.SeverityError)
	}
	return err
}

func (m *Model) handlers() commands.Handlers {
	return commands.Handlers{
		Add:    m.addTask,
		Toggle: m.toggleTask,
		Edit:   m.beginEdit,
		Rename: m.renameTask,
		Delete: m.requestDelete,
		Filter: m.setFilter,
		List:   m.setFilter,
	}
}

func (m *Model) addTask(a commands.AddArgs) (commands.Result, error) {
	task, err := m.tasks.Create(m.ctx, a.Text)
	if model.IsValidationError(err) {
		m.notices.Show(msgEnterTask, notify.SeverityWarning)
		return commands.Result{}, err
	}
	if task.ID == 0 {
		return commands.Result{}, m.reportFailure(err)
	}
	m.taskInput.SetValue("")
	m.Cursor = 0
	m.clampCursor()
	if err != nil {
		return commands.Result{}, m.reportFailure(err)
	}
	m.notices.Show(msgTaskAdded, notify.SeveritySuccess)
	return commands.Result{Message: msgTaskAdded}, nil
}

func (m *Model) toggleTask(a commands.TaskArgs) (commands.Result, error) {
	if m.IsRemoving(a.ID) {
		return commands.Result{}, nil
	}
	task, err := m.tasks.Toggle(m.ctx, a.ID)
	if errors.Is(err, store.ErrNotFound) {
		return commands.Result{}, err
	}
	m.clampCursor()
	if err != nil {
		return commands.Result{}, m.reportFailure(err)
	}
	msg, sev := msgTaskIncomplete, notify.SeverityInfo
	if task.Completed {
		msg = msgTaskCompleted
	}
	m.notices.Show(msg, sev)
	return commands.Result{Message: msg}, nil
}

// beginEdit opens an edit session. Any session already open is dropped
// without renaming its task.
func (m *Model) beginEdit(a commands.TaskArgs) (commands.Result, error) {
	task, ok := m.tasks.Get(a.ID)
	if !ok || m.IsRemoving(a.ID) {
		return commands.Result{}, store.ErrNotFound
	}
	if m.editingID != 0 && m.editingID != a.ID {
		logging.Debug("update", "dropping edit session for task %d", m.editingID)
	}
	m.inputFocused = false
	m.taskInput.Blur()
	m.editingID = task.ID
	m.editSelected = true
	m.editInput.SetValue(task.Text)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	return commands.Result{}, nil
}

func (m *Model) renameTask(a commands.RenameArgs) (commands.Result, error) {
	_, err := m.tasks.Rename(m.ctx, a.ID, a.Text)
	switch {
	case model.IsValidationError(err):
		m.notices.Show(msgEnterTaskName, notify.SeverityWarning)
		return commands.Result{}, err
	case errors.Is(err, store.ErrNotFound):
		return commands.Result{}, err
	case err != nil:
		return commands.Result{}, m.reportFailure(err)
	}
	m.notices.Show(msgTaskUpdated, notify.SeveritySuccess)
	return commands.Result{Message: msgTaskUpdated}, nil
}

func (m *Model) requestDelete(a commands.TaskArgs) (commands.Result, error) {
	if _, ok := m.tasks.Get(a.ID); !ok {
		return commands.Result{}, store.ErrNotFound
	}
	if m.IsRemoving(a.ID) {
		return commands.Result{}, nil
	}
	m.confirmID = a.ID
	return commands.Result{Message: deleteConfirmation}, nil
}

func (m *Model) setFilter(a commands.FilterArgs) (commands.Result, error) {
	if !a.Filter.IsValid() {
		return commands.Result{}, model.ErrInvalidFilter
	}
	m.Filter = a.Filter
	m.clampCursor()
	return commands.Result{}, nil
}

// reportFailure surfaces a persistence failure. The in-memory change stays.
func (m *Model) reportFailure(err error) error {
	logging.Info("update", "%v", err)
	m.notices.Show(err.Error(), notify.SeverityError)
	return err
}
