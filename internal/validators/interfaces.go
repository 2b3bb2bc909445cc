// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the vault.
//
// The vault stores names verbatim, so the only rules live here: a secret
// name must be non-empty, at most [MaxSecretNameLength] bytes of valid UTF-8
// and free of control characters. Secret values are bounded by the cipher,
// not by this package.
package validators

import "context"

// Validator checks one input value. fields narrows the check to the named
// parts of a composite value; unknown field names are an error.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
