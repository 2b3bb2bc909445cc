package validators

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the secret name.
	FieldName = "name"
)

// MaxSecretNameLength bounds names in bytes. Names are shown in lists and
// passed on command lines, nothing longer is useful.
const MaxSecretNameLength = 255

// SecretValidator implements [Validator] for secret names and create
// requests.
type SecretValidator struct {
}

// NewSecretValidator returns a [Validator] for secret-related input.
func NewSecretValidator() Validator {
	return &SecretValidator{}
}

// Validate accepts a bare name (string), a [models.CreateSecretRequest] or a
// pointer to one.
func (v *SecretValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	for _, field := range fields {
		if field != FieldName {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	switch value := obj.(type) {
	case string:
		return validateSecretName(value)
	case models.CreateSecretRequest:
		return validateSecretName(value.Name)
	case *models.CreateSecretRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return validateSecretName(value.Name)
	default:
		return ErrUnsupportedType
	}
}

// validateSecretName rejects names that cannot be listed or typed back:
// empty, over-long, invalid UTF-8 or containing control characters.
func validateSecretName(name string) error {
	if name == "" {
		return ErrEmptySecretName
	}
	if len(name) > MaxSecretNameLength {
		return ErrSecretNameTooLong
	}
	if !utf8.ValidString(name) {
		return ErrSecretNameInvalidUTF8
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return ErrSecretNameControlChars
		}
	}

	return nil
}
