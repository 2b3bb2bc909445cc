// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// redacted is what every formatting path prints instead of a master key.
const redacted = "[REDACTED]"

// MasterKey is the plaintext master key a caller hands to the vault for the
// duration of one operation.
//
// The type never renders its value: fmt verbs, JSON, text marshalling and
// zerolog's Any all print [REDACTED]. Use Reveal at the single point where
// the raw bytes are needed for hashing or key padding.
type MasterKey string

// Reveal returns the raw key.
func (k MasterKey) Reveal() string {
	return string(k)
}

// Len returns the key length in bytes.
func (k MasterKey) Len() int {
	return len(k)
}

// String implements fmt.Stringer.
func (k MasterKey) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v does not leak the key either.
func (k MasterKey) GoString() string {
	return redacted
}

// MarshalText implements encoding.TextMarshaler.
func (k MasterKey) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// MarshalJSON implements json.Marshaler.
func (k MasterKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}
