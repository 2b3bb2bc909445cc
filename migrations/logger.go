package migrations

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// gooseLogger sends goose progress lines to the vault log instead of stderr.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf is only reached by goose commands this package never runs. It
// logs at error level and leaves the process alive.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
