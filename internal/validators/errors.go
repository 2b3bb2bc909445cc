package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySecretName        = errors.New("secret name is empty")
	ErrSecretNameTooLong      = errors.New("secret name is too long")
	ErrSecretNameInvalidUTF8  = errors.New("secret name is not valid UTF-8")
	ErrSecretNameControlChars = errors.New("secret name contains control characters")
)
