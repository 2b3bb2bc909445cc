// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

const defaultSweepInterval = time.Minute

// SessionJanitor destroys expired sessions so their key enclaves do not
// outlive the token.
type SessionJanitor struct {
	sessions service.SessionService
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionJanitor(sessions service.SessionService, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			if removed := j.sessions.Sweep(ctx); removed > 0 {
				j.logger.Info().Int("removed", removed).Msg("expired sessions destroyed")
			}
		}
	}
}
