package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp connects the terminal UI to the session daemon named in
// cfg.Adapter.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return NewAppWithUI(tui.New(serverAdapter, buildInfo, logger), logger), nil
}

// NewAppWithUI wraps an already built UI.
func NewAppWithUI(ui UI, logger *logger.Logger) *App {
	return &App{ui: ui, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "*App.Run").Msg("client started")
	defer a.logger.Info().Str("func", "*App.Run").Msg("client stopped")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
