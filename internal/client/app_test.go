package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func TestApp_Run(t *testing.T) {
	ui := &stubUI{}
	app := NewAppWithUI(ui, logger.Nop())

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_RunWrapsError(t *testing.T) {
	boom := errors.New("boom")
	app := NewAppWithUI(&stubUI{err: boom}, logger.Nop())

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestNewApp_InvalidAdapterConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Adapter.HTTPAddress = ""

	_, err := NewApp(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Error(t, err)
}
