package tui

import "github.com/MKhiriev/go-pass-vault/models"

type statusLoadedMsg struct {
	initialized bool
	err         error
}

type sessionOpenedMsg struct {
	err error
}

type listLoadedMsg struct {
	names []string
	err   error
}

type secretLoadedMsg struct {
	secret models.Secret
	err    error
}

type secretCreatedMsg struct {
	secret models.Secret
	err    error
}

type secretDeletedMsg struct {
	name    string
	removed int64
	err     error
}

type generatedMsg struct {
	password string
	err      error
}

type lockedMsg struct {
	err error
}

type copiedMsg struct{}

type failedMsg struct {
	err error
}

type clearStatusMsg struct{}

type versionLoadedMsg struct {
	version string
	err     error
}
