package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	OpenDialog  key.Binding
	CloseDialog key.Binding
	ToggleTimer key.Binding
	AddTask     key.Binding
	SwitchFocus key.Binding
	Up          key.Binding
	Down        key.Binding
	DeleteTask  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		OpenDialog:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open modal")),
		CloseDialog: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close modal")),
		ToggleTimer: key.NewBinding(key.WithKeys("enter", " ", "s"), key.WithHelp("enter/s", "stop/start timer")),
		AddTask:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "input/list")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		DeleteTask:  key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete task")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// focusState selects which bindings are live (and therefore listed by help).
type focusState int

const (
	focusInput focusState = iota
	focusList
	focusDialog
)

func (k *keyMap) setFocus(f focusState) {
	inDialog := f == focusDialog
	k.OpenDialog.SetEnabled(!inDialog)
	k.CloseDialog.SetEnabled(inDialog)
	k.ToggleTimer.SetEnabled(inDialog)
	k.AddTask.SetEnabled(f == focusInput)
	k.SwitchFocus.SetEnabled(!inDialog)
	k.Up.SetEnabled(f == focusList)
	k.Down.SetEnabled(f == focusList)
	k.DeleteTask.SetEnabled(f == focusList)
	k.Help.SetEnabled(f == focusList)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenDialog, k.CloseDialog, k.ToggleTimer, k.AddTask, k.DeleteTask, k.SwitchFocus, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenDialog, k.CloseDialog, k.ToggleTimer},
		{k.AddTask, k.SwitchFocus},
		{k.Up, k.Down, k.DeleteTask},
		{k.Help, k.Quit},
	}
}
