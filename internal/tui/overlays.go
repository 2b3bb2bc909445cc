package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("[ERROR]") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}

type confirmModel struct {
	name string
}

func (m confirmModel) View() string {
	content := "Delete every password named '" + m.name + "'?\nThis is not reversible!\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}

func renderBuildInfoWindow(info models.AppBuildInfo, daemonVersion string) string {
	var b strings.Builder

	b.WriteString("Application: go-pass-vault\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nDate: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\nDaemon version: ")
	b.WriteString(valueOrNA(daemonVersion))

	return overlayBoxStyle.Render(b.String() + "\n\n" + helpStyle.Render("esc: close"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "N/A" {
		return "N/A"
	}
	return v
}
