package play

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive player and blocks until the user quits or ctx
// is cancelled. It returns the final player state.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) (State, error) {
	program := tea.NewProgram(
		NewModel(opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return State{}, fmt.Errorf("run player: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return State{}, fmt.Errorf("run player: unexpected model %T", final)
	}
	return model.State(), nil
}
