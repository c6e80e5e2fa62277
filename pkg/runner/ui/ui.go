package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/nongtrai/farmcal/pkg/store"
	"github.com/nongtrai/farmcal/pkg/tui/app"
)

// UI launches the calendar terminal interface.
type UI struct {
	Persistence store.Persistence
}

// Do runs the Bubble Tea program until the user quits.
func (u *UI) Do(ctx context.Context) error {
	model := app.New(ctx, u.Persistence)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
