package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type screen int

const (
	screenStart screen = iota
	screenSetup
	screenUnlock
	screenList
	screenDetail
	screenCreate
)

const msgLocked = "The vault is locked."

type appModel struct {
	ctx           context.Context
	adapter       adapter.ServerAdapter
	buildInfo     models.AppBuildInfo
	currentScreen screen

	starting bool
	setup    setupModel
	unlock   unlockModel
	list     listModel
	detail   detailModel
	create   createModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
	daemonVersion string
}

func newAppModel(ctx context.Context, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		adapter:       serverAdapter,
		buildInfo:     buildInfo,
		currentScreen: screenStart,
		starting:      true,
		setup:         newSetupModel(),
		unlock:        newUnlockModel(""),
		list:          newListModel(),
		create:        newCreateModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadStatus())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDeleteSecret(m.confirm.name)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm.name = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
				m.showBuildInfo = false
			}
			return m, nil
		}

	case spinner.TickMsg:
		if m.starting || m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case statusLoadedMsg:
		m.starting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.initialized {
			m.currentScreen = screenUnlock
		} else {
			m.currentScreen = screenSetup
		}
		return m, nil

	case sessionOpenedMsg:
		m.setup.submitting = false
		m.unlock.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrAlreadyInitialized) {
				m.currentScreen = screenUnlock
			}
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.unlock.notice = ""
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())

	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.list = m.list.withNames(msg.names)
		return m, nil

	case secretLoadedMsg:
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.detail = detailModel{secret: msg.secret}
		m.currentScreen = screenDetail
		return m, nil

	case secretCreatedMsg:
		m.create.submitting = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.create = newCreateModel()
		m.detail = detailModel{secret: msg.secret, revealed: msg.secret.Generated}
		if msg.secret.Generated {
			m.detail.status = "Generated a new password."
		} else {
			m.detail.status = "Saved."
		}
		m.currentScreen = screenDetail
		return m, cmdClearStatus()

	case secretDeletedMsg:
		m.confirm.name = ""
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		if msg.removed == 0 {
			m.list.status = fmt.Sprintf("There was no password named '%s', nothing was deleted", msg.name)
		} else {
			m.list.status = fmt.Sprintf("Deleted all the passwords named '%s'", msg.name)
		}
		m.detail = detailModel{}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList(), cmdClearStatus())

	case generatedMsg:
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.create.inputs[1].SetValue(msg.password)
		return m, nil

	case lockedMsg:
		m.lock(msgLocked)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil

	case versionLoadedMsg:
		if msg.err != nil {
			m.daemonVersion = ""
			return m, nil
		}
		m.daemonVersion = msg.version
		return m, nil

	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil

	case failedMsg:
		m.showErrorf(humanizeError(msg.err))
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenStart:
		return m.updateStart(msg)
	case screenSetup:
		return m.updateSetup(msg)
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenStart:
		body = m.startView()
	case screenSetup:
		body = m.setup.View()
	case screenUnlock:
		body = m.unlock.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenCreate:
		body = m.create.View()
	}

	if m.showBuildInfo {
		body += "\n\n" + renderBuildInfoWindow(m.buildInfo, m.daemonVersion)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) startView() string {
	if m.starting {
		return renderPage("VAULT", m.list.spinner.View()+" Connecting to the vault daemon...", "")
	}
	return renderPage("VAULT", "The vault daemon did not answer.", "r: retry │ q: quit")
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// handleError sends the user back to the unlock screen when the session is
// gone and shows the error overlay otherwise.
func (m appModel) handleError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrSessionNotFound) {
		m.lock(app.MessageFor(err))
		return m, nil
	}

	m.showErrorf(humanizeError(err))
	return m, nil
}

// lock drops everything read from the vault and shows the unlock screen.
func (m *appModel) lock(notice string) {
	m.list = newListModel()
	m.list.loading = false
	m.detail = detailModel{}
	m.create = newCreateModel()
	m.showConfirm = false
	m.unlock = newUnlockModel(notice)
	m.currentScreen = screenUnlock
}

func (m appModel) updateStart(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.reload):
		if m.starting {
			return m, nil
		}
		m.starting = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadStatus())
	}
	return m, nil
}

func (m appModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.setup.submitting {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.setup = m.setup.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.setup.focus == 0 {
				m.setup = m.setup.focusNext()
				return m, nil
			}

			first := m.setup.inputs[0].Value()
			second := m.setup.inputs[1].Value()
			m.setup = newSetupModel()
			if first != second {
				m.showErrorf(app.MessageFor(app.ErrKeysDoNotMatch))
				return m, nil
			}

			m.setup.submitting = true
			return m, m.cmdSetup(models.MasterKey(first))
		}
	}

	var cmd tea.Cmd
	m.setup.inputs[m.setup.focus], cmd = m.setup.inputs[m.setup.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.unlock.submitting {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			input := m.unlock.input.Value()
			m.unlock.input.Reset()
			m.unlock.submitting = true
			return m, m.cmdOpenSession(models.MasterKey(input))
		}
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.names)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		name, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdReadSecret(name)
	case key.Matches(keyMsg, keys.newItem):
		m.create = newCreateModel()
		m.currentScreen = screenCreate
	case key.Matches(keyMsg, keys.delete):
		name, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.askDelete(name)
	case key.Matches(keyMsg, keys.reload):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case key.Matches(keyMsg, keys.lock):
		return m, m.cmdLock()
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
		return m, m.cmdVersion()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case key.Matches(keyMsg, keys.reveal):
		m.detail.revealed = !m.detail.revealed
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.secret.Value)
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(m.detail.secret.Name)
	case key.Matches(keyMsg, keys.lock):
		return m, m.cmdLock()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.create.submitting {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.create = newCreateModel()
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.create = m.create.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.create = m.create.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			return m, m.cmdGenerate()
		case key.Matches(keyMsg, keys.enter):
			if m.create.focus == 0 {
				m.create = m.create.focusNext()
				return m, nil
			}
			m.create.submitting = true
			return m, m.cmdCreateSecret(m.create.name(), m.create.secret())
		}
	}

	var cmd tea.Cmd
	m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	return m, cmd
}

func (m *appModel) askDelete(name string) {
	m.confirm = confirmModel{name: name}
	m.showConfirm = true
}
