package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

type unlockModel struct {
	input      textinput.Model
	submitting bool
	notice     string
}

func newUnlockModel(notice string) unlockModel {
	in := newMaskedInput("master key", crypto.KeySize)
	in.Focus()
	return unlockModel{input: in, notice: notice}
}

func (m unlockModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}
	b.WriteString("Master key │ ")
	b.WriteString(m.input.View())

	if m.submitting {
		b.WriteString("\n\nChecking the master key...")
	}

	return renderPage("UNLOCK VAULT", b.String(), "enter: unlock │ esc: quit")
}
