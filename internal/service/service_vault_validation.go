package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultValidationService checks secret names before they reach the wrapped
// [VaultService].
type VaultValidationService struct {
	VaultService
	validator validators.Validator
}

// NewVaultValidationService returns a wrapper that validates names on create.
func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewSecretValidator(),
	}
}

func (v *VaultValidationService) CreateSecret(ctx context.Context, key models.MasterKey, name string, plaintext *string) (models.Secret, error) {
	if err := v.validator.Validate(ctx, name, validators.FieldName); err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrInvalidSecretName, err)
	}

	return v.VaultService.CreateSecret(ctx, key, name, plaintext)
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.VaultService = inner
	return v
}
