package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

const statusTTL = 2 * time.Second

// copyToClipboard is swapped in tests; CI machines have no clipboard.
var copyToClipboard = clipboard.WriteAll

func (m appModel) cmdLoadStatus() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		initialized, err := a.Status(ctx)
		return statusLoadedMsg{initialized: initialized, err: err}
	}
}

// cmdSetup sets the master key and unlocks the vault with it right away.
func (m appModel) cmdSetup(key models.MasterKey) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		if err := a.SetMasterKey(ctx, key); err != nil {
			return sessionOpenedMsg{err: err}
		}
		_, err := a.OpenSession(ctx, key)
		return sessionOpenedMsg{err: err}
	}
}

func (m appModel) cmdOpenSession(key models.MasterKey) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		_, err := a.OpenSession(ctx, key)
		return sessionOpenedMsg{err: err}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		names, err := a.ListSecrets(ctx)
		return listLoadedMsg{names: names, err: err}
	}
}

func (m appModel) cmdReadSecret(name string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		secret, err := a.ReadSecret(ctx, name)
		return secretLoadedMsg{secret: secret, err: err}
	}
}

func (m appModel) cmdCreateSecret(name string, secret *string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		created, err := a.CreateSecret(ctx, name, secret)
		return secretCreatedMsg{secret: created, err: err}
	}
}

func (m appModel) cmdDeleteSecret(name string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		removed, err := a.DeleteSecret(ctx, name)
		return secretDeletedMsg{name: name, removed: removed, err: err}
	}
}

func (m appModel) cmdGenerate() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		password, err := a.GeneratePassword(ctx)
		return generatedMsg{password: password, err: err}
	}
}

func (m appModel) cmdLock() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		return lockedMsg{err: a.CloseSession(ctx)}
	}
}

func (m appModel) cmdVersion() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		version, err := a.Version(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(text); err != nil {
			return failedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
