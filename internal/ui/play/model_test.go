package play

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quizdown/internal/quiz"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		typed, ok := next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		m = typed
	}
	return m, cmd
}

// TestModelAutoStartPlaysToScore verifies key handling through a whole quiz.
func TestModelAutoStartPlaysToScore(t *testing.T) {
	var finished []quiz.Session
	m := NewModel(Options{
		Text:      scenario,
		AutoStart: true,
		Convert:   ordered,
		NoColor:   true,
		OnFinish: func(_ string, session quiz.Session) {
			finished = append(finished, session)
		},
	})
	if !strings.Contains(m.View(), "Question 1/2") {
		t.Fatalf("expected first question, got %q", m.View())
	}

	m, _ = send(t, m, keyRunes("x"), tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, keyRunes("j"), keyRunes("x"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().Screen != ScreenScore {
		t.Fatalf("expected score screen, got %v", m.State().Screen)
	}
	if !strings.Contains(m.View(), "You scored 2 out of 2") {
		t.Fatalf("expected score line, got %q", m.View())
	}
	if cmd == nil {
		t.Fatalf("expected finish command")
	}
	cmd()
	if len(finished) != 1 || finished[0].Score() != 2 {
		t.Fatalf("expected one finished session, got %d", len(finished))
	}
}

// TestModelEditorConvert verifies typing and converting from the editor.
func TestModelEditorConvert(t *testing.T) {
	m := NewModel(Options{Convert: ordered, NoColor: true})
	m, _ = send(t, m, keyRunes("Q"), tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("A##"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.State().Screen != ScreenQuestion {
		t.Fatalf("expected question screen, got %v", m.State().Screen)
	}
	if !strings.Contains(m.View(), "[ ] A") {
		t.Fatalf("expected unchecked option, got %q", m.View())
	}
	m, _ = send(t, m, keyRunes(" "))
	if !strings.Contains(m.View(), "[x] A") {
		t.Fatalf("expected checked option, got %q", m.View())
	}
}

// TestModelScoreReview verifies wrong answers list the correct ones.
func TestModelScoreReview(t *testing.T) {
	m := NewModel(Options{Text: "Q\nA\nB##", AutoStart: true, Convert: ordered, NoColor: true})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	if !strings.Contains(view, "You scored 0 out of 1") || !strings.Contains(view, "correct: B") {
		t.Fatalf("unexpected review: %q", view)
	}
	m, _ = send(t, m, keyRunes("r"))
	if m.State().Screen != ScreenQuestion || m.State().Conversions != 2 {
		t.Fatalf("expected restart, got %+v", m.State())
	}
}

// TestModelQuit verifies q quits outside the editor.
func TestModelQuit(t *testing.T) {
	m := NewModel(Options{Text: scenario, AutoStart: true, Convert: ordered, NoColor: true})
	_, cmd := send(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

// TestModelReportsFinishOncePerSession verifies keys on the score screen do
// not report the same session again, while a restart does.
func TestModelReportsFinishOncePerSession(t *testing.T) {
	calls := 0
	m := NewModel(Options{
		Text:      "Q\nA##\nB",
		AutoStart: true,
		Convert:   ordered,
		NoColor:   true,
		OnFinish: func(string, quiz.Session) {
			calls++
		},
	})
	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if cmd != nil {
			cmd()
		}
	}
	if m.State().Screen != ScreenScore {
		t.Fatalf("expected score screen, got %v", m.State().Screen)
	}
	if calls != 1 {
		t.Fatalf("expected one finish report, got %d", calls)
	}

	m, cmd := send(t, m, keyRunes("r"))
	if cmd != nil {
		cmd()
	}
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected finish command after restart")
	}
	cmd()
	if calls != 2 {
		t.Fatalf("expected second report after restart, got %d", calls)
	}
}
