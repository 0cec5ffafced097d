package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
