package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskhero/internal/engine"
)

// RunBoard opens the dashboard. The rules are re-evaluated every interval.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer, interval time.Duration) error {
	m := newBoardModel(ctx, svc, interval)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
