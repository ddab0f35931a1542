package play

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdown/internal/quiz"
)

// Options configures the player model.
type Options struct {
	// Text preloads the editor. With AutoStart it is converted immediately.
	Text      string
	AutoStart bool
	Convert   quiz.ConvertOptions
	NoColor   bool
	// OnFinish runs in a command whenever a session reaches its score screen.
	OnFinish func(source string, session quiz.Session)
}

// Model is the Bubble Tea model of the interactive player.
type Model struct {
	state  State
	editor textarea.Model
	help   help.Model
	keys   keyMap
	opts   Options
	width  int

	// reported is the conversion count last passed to OnFinish.
	reported int
}

// NewModel constructs a player model.
func NewModel(opts Options) Model {
	editor := textarea.New()
	editor.Placeholder = "Enter your questions here\n\nQuestion?\nwrong answer\nright answer##"
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetWidth(72)
	editor.SetHeight(16)
	editor.SetValue(opts.Text)
	editor.Focus()

	m := Model{
		editor: editor,
		help:   help.New(),
		keys:   defaultKeyMap(),
		opts:   opts,
		width:  80,
	}
	if opts.AutoStart {
		m = m.apply(Action{Kind: ActionConvert, Text: opts.Text})
	}
	return m
}

// State returns the current player state.
func (m Model) State() State {
	return m.state
}

// Init starts the cursor blink of the editor.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update routes key presses to editor input or player actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.editor.SetWidth(max(typed.Width-4, 20))
		m.editor.SetHeight(max(typed.Height-8, 3))
		return m, nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.state.Screen == ScreenEditor {
			return m.updateEditor(typed)
		}
		return m.updatePlayer(typed)
	}
	if m.state.Screen == ScreenEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Convert):
		m = m.apply(Action{Kind: ActionConvert, Text: m.editor.Value()})
		return m.finishCmd()
	case key.Matches(msg, m.keys.Clear):
		m.editor.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updatePlayer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m = m.apply(Action{Kind: ActionMove, Delta: -1})
	case key.Matches(msg, m.keys.Down):
		m = m.apply(Action{Kind: ActionMove, Delta: 1})
	case key.Matches(msg, m.keys.Toggle):
		m = m.apply(Action{Kind: ActionToggle})
	case key.Matches(msg, m.keys.Next):
		m = m.apply(Action{Kind: ActionNext})
		return m.finishCmd()
	case key.Matches(msg, m.keys.Convert):
		m = m.apply(Action{Kind: ActionConvert, Text: m.editor.Value()})
		return m.finishCmd()
	case key.Matches(msg, m.keys.Restart) && m.state.Screen == ScreenScore:
		m = m.apply(Action{Kind: ActionConvert, Text: m.state.Source})
		return m.finishCmd()
	case key.Matches(msg, m.keys.Edit):
		m = m.apply(Action{Kind: ActionEdit})
		return m, m.editor.Focus()
	}
	return m, nil
}

// apply runs the reducer and keeps editor focus in sync with the screen.
func (m Model) apply(action Action) Model {
	m.state = Reduce(m.state, action, m.opts.Convert)
	if m.state.Screen == ScreenEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
	return m
}

// finishCmd reports each converted session at most once, the first time it
// is seen on the score screen.
func (m Model) finishCmd() (Model, tea.Cmd) {
	if m.opts.OnFinish == nil || m.state.Screen != ScreenScore || m.reported == m.state.Conversions {
		return m, nil
	}
	m.reported = m.state.Conversions
	source, session := m.state.Source, m.state.Session
	return m, func() tea.Msg {
		m.opts.OnFinish(source, session)
		return nil
	}
}

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.state.Screen {
	case ScreenEditor:
		body = renderEditor(m.editor.View(), m.opts.NoColor)
	case ScreenQuestion:
		body = renderQuestion(m.state, m.opts.NoColor)
	default:
		body = renderScore(m.state.Session, m.opts.NoColor)
	}
	footer := renderFooter(m.state.LastEvent, m.opts.NoColor)
	helpView := m.help.View(screenKeys{keys: m.keys, screen: m.state.Screen})
	return lipgloss.JoinVertical(lipgloss.Left, body, footer, helpView)
}
