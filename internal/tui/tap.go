package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"resmigul/internal/engine"
)

// RunTap runs the interactive counter screen until the user quits.
func RunTap(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newTapModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
