package update

import (
	"fmt"

	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/notify"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m Model) renderApp() string {
	all := m.tasks.All()
	summary := model.Summarize(all)

	overlay := views.RenderConfirm(m.confirmData())
	if overlay == "" {
		overlay = views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("tasklist | %s", m.Filter.Label()),
		Input:        views.RenderInput(views.InputData{View: m.taskInput.View(), Focused: m.inputFocused}),
		FilterBar:    views.RenderFilterBar(m.Filter),
		Body:         m.renderTaskList(all),
		Count:        views.RenderCount(m.Filter.CountText(summary), m.completion.ViewAs(summary.Ratio())),
		Overlay:      overlay,
		Notification: m.renderNotificationView(),
		Help:         m.renderHelpIfVisible(),
		Footer:       m.helpModel.ShortHelpView(m.Keys.ShortHelp()),
	})
}

func (m Model) renderTaskList(all []model.Task) string {
	visible := m.Filter.Apply(all)
	data := views.TaskListData{
		State:  views.ListStateOf(visible, m.editingID),
		Filter: m.Filter,
		Rows:   make([]views.TaskRowData, 0, len(visible)),
	}
	for i, t := range visible {
		row := views.TaskRowData{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Selected:  i == m.Cursor,
			Removing:  m.IsRemoving(t.ID),
		}
		if t.ID == m.editingID {
			row.Editing = true
			row.EditView = m.editView()
		}
		data.Rows = append(data.Rows, row)
	}
	return views.RenderTaskList(data)
}

func (m Model) editView() string {
	if m.editSelected {
		return views.RenderSelection(m.editInput.Value())
	}
	return m.editInput.View()
}

func (m Model) confirmData() views.ConfirmData {
	if m.confirmID == 0 {
		return views.ConfirmData{}
	}
	data := views.ConfirmData{Active: true, Prompt: deleteConfirmation}
	if t, ok := m.tasks.Get(m.confirmID); ok {
		data.TaskText = t.Text
	}
	return data
}

func (m Model) renderNotificationView() string {
	n, ok := m.notices.Current()
	if !ok {
		return ""
	}
	return views.RenderNotification(views.NotificationData{
		Message: n.Message,
		Glyph:   n.Severity.Glyph(),
		Color:   n.Severity.Color(),
		Leaving: n.Phase == notify.PhaseLeaving,
	})
}
