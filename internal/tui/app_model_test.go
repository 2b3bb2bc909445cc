package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	return newAppModel(context.Background(), a, models.NewAppBuildInfo("1.0.0", "", "")), a
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(appModel)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func listScreen(t *testing.T, m appModel, names ...string) appModel {
	t.Helper()
	m.currentScreen = screenList
	m.starting = false
	m, _ = update(t, m, listLoadedMsg{names: names})
	return m
}

func TestStatusLoaded_ChoosesScreen(t *testing.T) {
	tests := []struct {
		name        string
		initialized bool
		want        screen
	}{
		{name: "initialized", initialized: true, want: screenUnlock},
		{name: "uninitialized", initialized: false, want: screenSetup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)

			m, _ = update(t, m, statusLoadedMsg{initialized: tt.initialized})

			assert.Equal(t, tt.want, m.currentScreen)
			assert.False(t, m.starting)
		})
	}
}

func TestStatusLoaded_DaemonDown(t *testing.T) {
	m, a := newTestModel(t)

	m, _ = update(t, m, statusLoadedMsg{err: errors.New("dial tcp 127.0.0.1:8421: connect: connection refused")})
	assert.Equal(t, screenStart, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, msgDaemonUnavailable, m.errorOverlay.message)

	m, _ = update(t, m, enterKey)
	assert.False(t, m.showError)

	a.EXPECT().Status(gomock.Any()).Return(true, nil)
	m, cmd := update(t, m, runes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.starting)

	msg := m.cmdLoadStatus()()
	m, _ = update(t, m, msg)
	assert.Equal(t, screenUnlock, m.currentScreen)
}

func TestSetup_KeysMustMatch(t *testing.T) {
	m, _ := newTestModel(t)
	m.currentScreen = screenSetup

	m.setup.inputs[0].SetValue("hunter2")
	m, _ = update(t, m, enterKey)
	assert.Equal(t, 1, m.setup.focus)

	m.setup.inputs[1].SetValue("hunter3")
	m, cmd := update(t, m, enterKey)

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, app.MessageFor(app.ErrKeysDoNotMatch), m.errorOverlay.message)
	assert.Empty(t, m.setup.inputs[0].Value())
	assert.Empty(t, m.setup.inputs[1].Value())
}

func TestSetup_SetsKeyAndUnlocks(t *testing.T) {
	m, a := newTestModel(t)
	m.currentScreen = screenSetup

	gomock.InOrder(
		a.EXPECT().SetMasterKey(gomock.Any(), models.MasterKey("hunter2")).Return(nil),
		a.EXPECT().OpenSession(gomock.Any(), models.MasterKey("hunter2")).Return(models.SessionToken{Token: "t"}, nil),
	)

	m.setup.inputs[0].SetValue("hunter2")
	m.setup.inputs[1].SetValue("hunter2")
	m.setup.focus = 1
	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.setup.submitting)
	assert.Empty(t, m.setup.inputs[0].Value())

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenList, m.currentScreen)
	assert.True(t, m.list.loading)
}

func TestSetup_AlreadyInitializedGoesToUnlock(t *testing.T) {
	m, _ := newTestModel(t)
	m.currentScreen = screenSetup

	m, _ = update(t, m, sessionOpenedMsg{err: service.ErrAlreadyInitialized})

	assert.Equal(t, screenUnlock, m.currentScreen)
	assert.True(t, m.showError)
}

func TestUnlock(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantScreen screen
		wantError  string
	}{
		{name: "correct key", wantScreen: screenList},
		{name: "incorrect key", err: service.ErrIncorrectKey, wantScreen: screenUnlock, wantError: app.MsgIncorrectKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, a := newTestModel(t)
			m.currentScreen = screenUnlock
			a.EXPECT().OpenSession(gomock.Any(), models.MasterKey("hunter2")).Return(models.SessionToken{}, tt.err)

			m.unlock.input.SetValue("hunter2")
			m, cmd := update(t, m, enterKey)
			require.NotNil(t, cmd)
			assert.Empty(t, m.unlock.input.Value())

			m, _ = update(t, m, cmd())
			assert.Equal(t, tt.wantScreen, m.currentScreen)
			assert.False(t, m.unlock.submitting)
			assert.Equal(t, tt.wantError, m.errorOverlay.message)
		})
	}
}

func TestUnlock_TypingQDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m.currentScreen = screenUnlock

	m, _ = update(t, m, runes("q"))

	assert.Equal(t, "q", m.unlock.input.Value())
	assert.Equal(t, screenUnlock, m.currentScreen)
}

func TestList_Navigation(t *testing.T) {
	m, _ := newTestModel(t)
	m = listScreen(t, m, "bank", "email", "github")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 2, m.list.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	name, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, "email", name)

	m, _ = update(t, m, listLoadedMsg{names: []string{"bank"}})
	assert.Equal(t, 0, m.list.idx)
}

func TestList_OpenSecret(t *testing.T) {
	m, a := newTestModel(t)
	m = listScreen(t, m, "bank")
	a.EXPECT().ReadSecret(gomock.Any(), "bank").Return(models.Secret{Name: "bank", Value: "p@ss"}, nil)

	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenDetail, m.currentScreen)
	assert.Equal(t, "p@ss", m.detail.secret.Value)
	assert.False(t, m.detail.revealed)
	assert.NotContains(t, m.View(), "p@ss")

	m, _ = update(t, m, runes("s"))
	assert.True(t, m.detail.revealed)
	assert.Contains(t, m.View(), "p@ss")
}

func TestList_SessionExpiredLocks(t *testing.T) {
	m, _ := newTestModel(t)
	m = listScreen(t, m, "bank")

	m, _ = update(t, m, listLoadedMsg{err: service.ErrSessionExpired})

	assert.Equal(t, screenUnlock, m.currentScreen)
	assert.Equal(t, app.MsgSessionExpired, m.unlock.notice)
	assert.Empty(t, m.list.names)
	assert.False(t, m.showError)
}

func TestDelete_Confirmed(t *testing.T) {
	m, a := newTestModel(t)
	m = listScreen(t, m, "bank")
	a.EXPECT().DeleteSecret(gomock.Any(), "bank").Return(int64(2), nil)

	m, _ = update(t, m, runes("d"))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Delete every password named 'bank'?")

	m, cmd := update(t, m, runes("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenList, m.currentScreen)
	assert.Equal(t, "Deleted all the passwords named 'bank'", m.list.status)
	assert.True(t, m.list.loading)
}

func TestDelete_Cancelled(t *testing.T) {
	m, _ := newTestModel(t)
	m = listScreen(t, m, "bank")

	m, _ = update(t, m, runes("d"))
	m, cmd := update(t, m, runes("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Equal(t, screenList, m.currentScreen)
}

func TestCreate_GeneratedWhenEmpty(t *testing.T) {
	m, a := newTestModel(t)
	m = listScreen(t, m)
	a.EXPECT().CreateSecret(gomock.Any(), "bank", gomock.Nil()).
		Return(models.Secret{Name: "bank", Value: "Xy7#pQ2!mN9$kL4&", Generated: true}, nil)

	m, _ = update(t, m, runes("n"))
	require.Equal(t, screenCreate, m.currentScreen)

	m.create.inputs[0].SetValue("bank")
	m, _ = update(t, m, tabKey)
	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.True(t, m.detail.revealed)
	assert.Contains(t, m.View(), "Xy7#pQ2!mN9$kL4&")
}

func TestCreate_WithGenerateShortcut(t *testing.T) {
	m, a := newTestModel(t)
	m.currentScreen = screenCreate
	a.EXPECT().GeneratePassword(gomock.Any()).Return("abcdEFGH1234!@#$", nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	secret := m.create.secret()
	require.NotNil(t, secret)
	assert.Equal(t, "abcdEFGH1234!@#$", *secret)
}

func TestCreate_DuplicateName(t *testing.T) {
	m, _ := newTestModel(t)
	m.currentScreen = screenCreate
	m.create.submitting = true

	m, _ = update(t, m, secretCreatedMsg{err: service.ErrNameAlreadyExists})

	assert.Equal(t, screenCreate, m.currentScreen)
	assert.False(t, m.create.submitting)
	assert.Equal(t, app.MsgNameAlreadyExists, m.errorOverlay.message)
}

func TestDetail_Copy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ := newTestModel(t)
	m.currentScreen = screenDetail
	m.detail = detailModel{secret: models.Secret{Name: "bank", Value: "p@ss"}}

	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "p@ss", copied)
	assert.Equal(t, "Copied!", m.detail.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.detail.status)
}

func TestLock(t *testing.T) {
	m, a := newTestModel(t)
	m = listScreen(t, m, "bank")
	a.EXPECT().CloseSession(gomock.Any()).Return(nil)

	m, cmd := update(t, m, runes("l"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenUnlock, m.currentScreen)
	assert.Equal(t, msgLocked, m.unlock.notice)
	assert.Empty(t, m.list.names)
}

func TestBuildInfoWindow(t *testing.T) {
	m, a := newTestModel(t)
	m = listScreen(t, m)
	a.EXPECT().Version(gomock.Any()).Return("2.0.0", nil)

	m, cmd := update(t, m, runes("v"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Date: N/A")
	assert.Contains(t, view, "Daemon version: 2.0.0")

	m, _ = update(t, m, escKey)
	assert.False(t, m.showBuildInfo)
}

func TestErrorOverlayBlocksKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = listScreen(t, m, "bank")
	m.showErrorf("boom")

	m, cmd := update(t, m, runes("q"))
	assert.Nil(t, cmd)
	assert.True(t, m.showError)

	m, _ = update(t, m, escKey)
	assert.False(t, m.showError)
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, msgDaemonUnavailable, humanizeError(errors.New("Get \"http://127.0.0.1:8421\": dial tcp: i/o timeout")))
	assert.Equal(t, app.MsgIncorrectKey, humanizeError(service.ErrIncorrectKey))
	assert.Empty(t, humanizeError(nil))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "пароль-...", fitText("пароль-для-банка", 10))
	assert.Equal(t, "••••", mask("p@ss"))
}
