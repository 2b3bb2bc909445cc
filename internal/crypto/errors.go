// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedVerifier is returned by [KeyHasher.Verify] when the stored
	// verifier is not a well-formed argon2 PHC string.
	ErrMalformedVerifier = errors.New("malformed master key verifier")

	// ErrKeyTooLong is returned by [PadKey] for keys longer than [KeySize] bytes.
	ErrKeyTooLong = errors.New("master key is too long")

	// ErrBlockTooLong is returned by [PadBlock] for plaintexts longer than
	// [BlockSize] bytes.
	ErrBlockTooLong = errors.New("plaintext does not fit in one block")
)
