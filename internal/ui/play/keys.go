package play

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the player key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Next    key.Binding
	Convert key.Binding
	Clear   key.Binding
	Edit    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		Next:    key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter", "next")),
		Convert: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "convert to quiz")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Edit:    key.NewBinding(key.WithKeys("e", "ctrl+e"), key.WithHelp("e", "edit text")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// screenKeys exposes the bindings relevant to one screen to the help view.
type screenKeys struct {
	keys   keyMap
	screen Screen
}

// ShortHelp implements help.KeyMap.
func (s screenKeys) ShortHelp() []key.Binding {
	switch s.screen {
	case ScreenEditor:
		return []key.Binding{s.keys.Convert, s.keys.Clear, quitOnly(s.keys.Quit)}
	case ScreenQuestion:
		return []key.Binding{s.keys.Up, s.keys.Down, s.keys.Toggle, s.keys.Next, s.keys.Help}
	default:
		return []key.Binding{s.keys.Restart, s.keys.Edit, s.keys.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (s screenKeys) FullHelp() [][]key.Binding {
	if s.screen == ScreenQuestion {
		return [][]key.Binding{
			{s.keys.Up, s.keys.Down, s.keys.Toggle, s.keys.Next},
			{s.keys.Convert, s.keys.Edit, s.keys.Help, s.keys.Quit},
		}
	}
	return [][]key.Binding{s.ShortHelp()}
}

// quitOnly narrows quit to ctrl+c while typing, since q is text.
func quitOnly(b key.Binding) key.Binding {
	return key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", b.Help().Desc))
}
