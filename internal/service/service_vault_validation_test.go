package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestVaultValidationService_CreateSecret(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		wantCause error
	}{
		{name: "", wantCause: validators.ErrEmptySecretName},
		{name: strings.Repeat("n", validators.MaxSecretNameLength+1), wantCause: validators.ErrSecretNameTooLong},
		{name: "tab\tname", wantCause: validators.ErrSecretNameControlChars},
		{name: string([]byte{0xff}), wantCause: validators.ErrSecretNameInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.wantCause.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockVaultService(ctrl)
			svc := service.NewVaultValidationService().Wrap(inner)

			_, err := svc.CreateSecret(context.Background(), "k", tt.name, nil)
			assert.ErrorIs(t, err, service.ErrInvalidSecretName)
			assert.ErrorIs(t, err, tt.wantCause)
		})
	}
}

func TestVaultValidationService_DelegatesValidNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockVaultService(ctrl)
	svc := service.NewVaultValidationService().Wrap(inner)

	want := models.Secret{Name: "email", Value: "x"}
	inner.EXPECT().CreateSecret(gomock.Any(), models.MasterKey("k"), "email", gomock.Nil()).Return(want, nil)
	inner.EXPECT().ListSecretNames(gomock.Any()).Return([]string{"email"}, nil)

	got, err := svc.CreateSecret(context.Background(), "k", "email", nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	names, err := svc.ListSecretNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, names)
}
