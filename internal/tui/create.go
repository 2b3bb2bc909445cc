package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// createModel is the new password form. An empty password asks the daemon
// to generate one.
type createModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newCreateModel() createModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = validators.MaxSecretNameLength
	name.Width = 40
	name.Focus()

	secret := newMaskedInput("leave empty to generate", crypto.BlockSize)

	return createModel{inputs: []textinput.Model{name, secret}}
}

func (m createModel) name() string {
	return m.inputs[0].Value()
}

// secret returns nil when the password field is empty.
func (m createModel) secret() *string {
	v := m.inputs[1].Value()
	if v == "" {
		return nil
	}
	return &v
}

func (m createModel) focusNext() createModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m createModel) focusPrev() createModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m createModel) View() string {
	var b strings.Builder
	b.WriteString("Name     │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nPassword │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\nPasswords are at most 16 characters. Leave it empty to generate one.")

	if m.submitting {
		b.WriteString("\n\nSaving...")
	}

	return renderPage("NEW PASSWORD", b.String(), "tab: next field │ ctrl+g: generate │ enter: save │ esc: back")
}
