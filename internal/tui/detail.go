package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

type detailModel struct {
	secret   models.Secret
	revealed bool
	status   string
}

func (m detailModel) View() string {
	var b strings.Builder
	b.WriteString("Name     │ ")
	b.WriteString(m.secret.Name)
	b.WriteString("\nPassword │ ")
	if m.revealed {
		b.WriteString(secretStyle.Render(m.secret.Value))
	} else {
		b.WriteString(mask(m.secret.Value))
	}

	if m.secret.Lossy {
		b.WriteString("\n\nThe stored password is not valid text; invalid bytes are shown as �.")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("PASSWORD", b.String(), "s: show/hide │ c: copy │ d: delete │ esc: back")
}
