package mobile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type countingCloser struct{ calls int }

func (c *countingCloser) Close() error {
	c.calls++
	return nil
}

func newMockVault(t *testing.T) (*Vault, *mock.MockVaultService, *countingCloser) {
	t.Helper()
	svc := mock.NewMockVaultService(gomock.NewController(t))
	closer := &countingCloser{}
	return newVault(svc, closer, logger.Nop()), svc, closer
}

func TestVault_IsMasterKeyCorrect(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "correct", want: true},
		{name: "incorrect", err: service.ErrIncorrectKey, want: false},
		{name: "storage failure", err: service.ErrStorage, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, svc, _ := newMockVault(t)
			svc.EXPECT().Authenticate(gomock.Any(), models.MasterKey("hunter2")).Return(models.MasterKey("hunter2"), tt.err)

			assert.Equal(t, tt.want, v.IsMasterKeyCorrect("hunter2"))
		})
	}
}

func TestVault_ErrorsCarryUserMessage(t *testing.T) {
	v, svc, _ := newMockVault(t)
	svc.EXPECT().ReadSecret(gomock.Any(), gomock.Any(), "github").
		Return(models.Secret{}, &service.SecretNotFoundError{Name: "github"})

	_, err := v.GetPassword("hunter2", "github")

	require.Error(t, err)
	assert.Equal(t, "There appears to be no password saved that is named github", err.Error())
	assert.ErrorIs(t, err, service.ErrSecretNotFound)

	var mobileErr *Error
	assert.True(t, errors.As(err, &mobileErr))
}

func TestVault_SavePassword(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		v, svc, _ := newMockVault(t)
		svc.EXPECT().CreateSecret(gomock.Any(), models.MasterKey("k"), "email", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ models.MasterKey, name string, plaintext *string) (models.Secret, error) {
				require.NotNil(t, plaintext)
				return models.Secret{Name: name, Value: *plaintext}, nil
			})

		saved, err := v.SavePassword("k", "email", "p@ssw0rd!")
		require.NoError(t, err)
		assert.Equal(t, "p@ssw0rd!", saved)
	})

	t.Run("generated", func(t *testing.T) {
		v, svc, _ := newMockVault(t)
		svc.EXPECT().CreateSecret(gomock.Any(), gomock.Any(), "bank", gomock.Nil()).
			Return(models.Secret{Name: "bank", Value: "abcdEFGH1234!@#$", Generated: true}, nil)

		saved, err := v.SavePassword("k", "bank", "")
		require.NoError(t, err)
		assert.Equal(t, "abcdEFGH1234!@#$", saved)
	})
}

func TestVault_GetPasswordList(t *testing.T) {
	v, svc, _ := newMockVault(t)
	svc.EXPECT().ListSecretNames(gomock.Any()).Return([]string{"bank", "email"}, nil)

	list, err := v.GetPasswordList()

	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, "bank", list.Get(0))
	assert.Equal(t, "email", list.Get(1))
	assert.Empty(t, list.Get(2))
	assert.Empty(t, list.Get(-1))
}

func TestVault_Close(t *testing.T) {
	v, _, closer := newMockVault(t)

	require.NoError(t, v.Close())
	require.NoError(t, v.Close())
	assert.Equal(t, 1, closer.calls)

	_, err := v.GeneratePassword()
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, v.IsMasterKeyCorrect("k"))
}

func TestStringList_Nil(t *testing.T) {
	var list *StringList
	assert.Equal(t, 0, list.Len())
	assert.Empty(t, list.Get(0))
}

func TestNewVault_EndToEnd(t *testing.T) {
	t.Setenv("VAULT_CRYPTO_ARGON2_MEMORY", "64")
	t.Setenv("VAULT_CRYPTO_ARGON2_ITERATIONS", "1")
	t.Setenv("VAULT_CRYPTO_ARGON2_PARALLELISM", "1")

	v, err := NewVault(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })

	initialized, err := v.IsInitialized()
	require.NoError(t, err)
	assert.False(t, initialized)

	require.NoError(t, v.SetMasterKey("hunter2"))
	err = v.SetMasterKey("hunter2")
	assert.EqualError(t, err, app.MsgAlreadyInitialized)

	assert.True(t, v.IsMasterKeyCorrect("hunter2"))
	assert.False(t, v.IsMasterKeyCorrect("hunter3"))

	_, err = v.SavePassword("hunter2", "email", "p@ssw0rd!")
	require.NoError(t, err)

	password, err := v.GetPassword("hunter2", "email")
	require.NoError(t, err)
	assert.Equal(t, "p@ssw0rd!", password)

	list, err := v.GetPasswordList()
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())

	removed, err := v.DeletePassword("email")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = v.DeletePassword("email")
	require.NoError(t, err)
	assert.Zero(t, removed)
}
