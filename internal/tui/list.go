package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
)

const maxListNameWidth = 48

type listModel struct {
	names   []string
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (string, bool) {
	if len(m.names) == 0 || m.idx < 0 || m.idx >= len(m.names) {
		return "", false
	}
	return m.names[m.idx], true
}

func (m listModel) withNames(names []string) listModel {
	m.loading = false
	m.names = names
	if m.idx >= len(m.names) {
		m.idx = len(m.names) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading passwords...")
	case len(m.names) == 0:
		b.WriteString("You have not saved any passwords yet.")
	default:
		b.WriteString("Here is the list of passwords that you have stored.\n\n")
		for i, name := range m.names {
			line := "  " + fitText(name, maxListNameWidth)
			if i == m.idx {
				line = selectedStyle.Render("> " + fitText(name, maxListNameWidth))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("PASSWORDS", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ d: delete │ r: reload │ l: lock │ v: version │ q: quit")
}
