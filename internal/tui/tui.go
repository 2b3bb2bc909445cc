// Package tui is the terminal desktop client. It drives the session daemon
// through an [adapter.ServerAdapter] and never holds the master key beyond
// the command that sends it.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: logger}
}

// Run shows the UI until the user quits. An open session is closed on the
// way out.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.adapter, t.buildInfo)
	_, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	if err := t.adapter.CloseSession(context.WithoutCancel(ctx)); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("error closing session on exit")
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI: %w", runErr)
	}
	return nil
}
