package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/notify"
	"github.com/sandeepkv93/tasklist/internal/scheduler"
	"github.com/sandeepkv93/tasklist/internal/store"
)

// Deps are the collaborators a Model drives. Timers is usually the same
// scheduler the notification service was built with; Events delivers the
// timers that fired. Both may be nil, in which case delayed removals happen
// immediately.
type Deps struct {
	Context context.Context
	Store   *store.Store
	Notices *notify.Service
	Timers  notify.Timers
	Events  <-chan scheduler.Event
	Clock   func() time.Time
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Filter      model.Filter
	Cursor      int
	Keys        KeyMap
	Palette     CommandPaletteState
	HelpVisible bool
	Quitting    bool

	ctx          context.Context
	tasks        *store.Store
	notices      *notify.Service
	timers       notify.Timers
	events       <-chan scheduler.Event
	now          func() time.Time
	removalDelay time.Duration

	inputFocused bool
	editingID    int64
	editSelected bool
	confirmID    int64
	// removing maps a task ID to its pending removal timer.
	removing map[int64]uint64

	taskInput    textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
	completion   progress.Model
}

// TimerFiredMsg carries a scheduler event back into the update loop.
type TimerFiredMsg struct {
	Event scheduler.Event
}

// EditTaskMsg starts an edit session on a task, replacing any open one.
type EditTaskMsg struct {
	ID int64
}

func NewModel(deps Deps, cfg RuntimeConfig) Model {
	m := Model{
		Filter:       model.FilterAll,
		Keys:         DefaultKeyMap(),
		ctx:          deps.Context,
		tasks:        deps.Store,
		notices:      deps.Notices,
		timers:       deps.Timers,
		events:       deps.Events,
		now:          deps.Clock,
		removalDelay: cfg.RemovalDelay(),
		removing:     make(map[int64]uint64),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.notices == nil {
		m.notices = notify.NewService(m.timers, notify.WithClock(m.now))
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "add> "
	m.taskInput.Placeholder = "What needs to be done?"
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 48

	m.editInput = textinput.New()
	m.editInput.Prompt = ""
	// Unlimited: stored text may come from the CLI, which has no limit.
	m.editInput.CharLimit = 0
	m.editInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.helpModel.ShowAll = true

	m.completion = progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())
}

// EditingID is the task in edit mode, 0 when none.
func (m Model) EditingID() int64 { return m.editingID }

func (m Model) InputFocused() bool { return m.inputFocused }

// ConfirmingID is the task awaiting delete confirmation, 0 when none.
func (m Model) ConfirmingID() int64 { return m.confirmID }

func (m Model) IsRemoving(id int64) bool {
	_, ok := m.removing[id]
	return ok
}

func (m Model) visibleTasks() []model.Task {
	return m.Filter.Apply(m.tasks.All())
}

func (m Model) selectedTask() (model.Task, bool) {
	visible := m.visibleTasks()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
