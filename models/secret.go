package models

// Secret is a decrypted vault entry returned to a front end.
type Secret struct {
	// Name is the unique entry name.
	Name string `json:"name"`

	// Value is the plaintext with padding stripped, decoded as UTF-8.
	// When the decrypted bytes are not valid UTF-8 the invalid sequences are
	// replaced with U+FFFD and Lossy is set.
	Value string `json:"secret"`

	// Lossy reports that Value is a lossy decoding of Raw.
	Lossy bool `json:"lossy,omitempty"`

	// Raw holds the decrypted bytes exactly as stored, padding stripped.
	// Raw-mode output writes these bytes and nothing else.
	Raw []byte `json:"-"`

	// Generated reports that Value was produced by the password generator.
	Generated bool `json:"generated,omitempty"`
}

// CreateSecretRequest is the body of a create call. A nil Secret asks the
// vault to generate one.
type CreateSecretRequest struct {
	Name   string  `json:"name"`
	Secret *string `json:"secret,omitempty"`
}

// SecretNamesResponse lists the stored names.
type SecretNamesResponse struct {
	Names []string `json:"names"`
}

// DeleteSecretResponse reports how many rows a delete removed.
type DeleteSecretResponse struct {
	Removed int64 `json:"removed"`
}

// GeneratedPasswordResponse carries a freshly generated password.
type GeneratedPasswordResponse struct {
	Secret string `json:"secret"`
}
