package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// setupModel asks for a new master key twice on an uninitialized vault.
type setupModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newMaskedInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newSetupModel() setupModel {
	key := newMaskedInput("master key", crypto.KeySize)
	key.Focus()
	confirm := newMaskedInput("confirm master key", crypto.KeySize)

	return setupModel{inputs: []textinput.Model{key, confirm}}
}

func (m setupModel) focusNext() setupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m setupModel) View() string {
	var b strings.Builder
	b.WriteString("No master key is set yet. Choose one; it cannot be changed later.\n\n")
	b.WriteString("Master key │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nConfirm    │ ")
	b.WriteString(m.inputs[1].View())

	if m.submitting {
		b.WriteString("\n\nHashing the master key...")
	}

	return renderPage("SET MASTER KEY", b.String(), "tab: next field │ enter: confirm")
}
