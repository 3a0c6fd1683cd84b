package update

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the list-context bindings. Input, edit and confirm contexts
// use fixed keys.
type KeyMap struct {
	Quit            key.Binding
	ForceQuit       key.Binding
	FocusInput      key.Binding
	Up              key.Binding
	Down            key.Binding
	Toggle          key.Binding
	Edit            key.Binding
	Delete          key.Binding
	FilterAll       key.Binding
	FilterPending   key.Binding
	FilterCompleted key.Binding
	CycleFilter     key.Binding
	Palette         key.Binding
	Help            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:            key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		FocusInput:      key.NewBinding(key.WithKeys("ctrl+j", "i"), key.WithHelp("i/ctrl+j", "new task")),
		Up:              key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:            key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Toggle:          key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle")),
		Edit:            key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:          key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		FilterAll:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterPending:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "pending")),
		FilterCompleted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		CycleFilter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next filter")),
		Palette:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:            key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusInput, k.Toggle, k.Edit, k.Delete, k.CycleFilter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit, k.Delete},
		{k.FilterAll, k.FilterPending, k.FilterCompleted, k.CycleFilter},
		{k.FocusInput, k.Palette, k.Help, k.Quit, k.ForceQuit},
	}
}
