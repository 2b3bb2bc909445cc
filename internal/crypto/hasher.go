// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	algorithmArgon2id = "argon2id"
	algorithmArgon2i  = "argon2i"
)

// Upper bounds for costs read from a stored verifier. Verify refuses to
// derive anything beyond them.
const (
	MaxMemoryCost   = 1 << 22 // KiB, 4 GiB
	MaxTimeCost     = 64
	maxSaltLength   = 1024
	maxDigestLength = 1024
)

// phcEncoding is the unpadded standard base64 used by PHC strings.
var phcEncoding = base64.RawStdEncoding

// Argon2Params are the cost parameters written into every new verifier.
// Verification always uses the parameters stored in the verifier itself.
type Argon2Params struct {
	// Memory is the memory cost in KiB.
	Memory uint32
	// Iterations is the time cost.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
	// SaltLength is the random salt size in bytes.
	SaltLength uint32
	// KeyLength is the digest size in bytes.
	KeyLength uint32
}

// DefaultArgon2Params is the OWASP minimum for argon2id: 19 MiB, 2
// iterations, 1 lane, 16-byte salt, 32-byte digest.
var DefaultArgon2Params = Argon2Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// argon2Hasher is the argon2id implementation of [KeyHasher].
type argon2Hasher struct {
	params Argon2Params
	rand   io.Reader
}

// NewKeyHasher returns an argon2id [KeyHasher]. Zero fields of params fall
// back to [DefaultArgon2Params].
func NewKeyHasher(params Argon2Params) KeyHasher {
	return &argon2Hasher{
		params: params.withDefaults(),
		rand:   rand.Reader,
	}
}

func (p Argon2Params) withDefaults() Argon2Params {
	if p.Memory == 0 {
		p.Memory = DefaultArgon2Params.Memory
	}
	if p.Iterations == 0 {
		p.Iterations = DefaultArgon2Params.Iterations
	}
	if p.Parallelism == 0 {
		p.Parallelism = DefaultArgon2Params.Parallelism
	}
	if p.SaltLength == 0 {
		p.SaltLength = DefaultArgon2Params.SaltLength
	}
	if p.KeyLength == 0 {
		p.KeyLength = DefaultArgon2Params.KeyLength
	}
	return p
}

// Hash implements [KeyHasher].
func (h *argon2Hasher) Hash(masterKey string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	v := phcVerifier{
		algorithm:   algorithmArgon2id,
		version:     argon2.Version,
		memory:      h.params.Memory,
		iterations:  h.params.Iterations,
		parallelism: h.params.Parallelism,
		salt:        salt,
	}
	v.digest = v.derive([]byte(masterKey), h.params.KeyLength)

	return v.String(), nil
}

// Verify implements [KeyHasher].
func (h *argon2Hasher) Verify(verifier, candidate string) (bool, error) {
	v, err := parseVerifier(verifier)
	if err != nil {
		return false, err
	}

	digest := v.derive([]byte(candidate), uint32(len(v.digest)))
	return subtle.ConstantTimeCompare(digest, v.digest) == 1, nil
}

// phcVerifier is a decoded argon2 PHC string:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<digest>
type phcVerifier struct {
	algorithm   string
	version     int
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	digest      []byte
}

func (v phcVerifier) derive(password []byte, keyLen uint32) []byte {
	if v.algorithm == algorithmArgon2i {
		return argon2.Key(password, v.salt, v.iterations, v.memory, v.parallelism, keyLen)
	}
	return argon2.IDKey(password, v.salt, v.iterations, v.memory, v.parallelism, keyLen)
}

func (v phcVerifier) String() string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		v.algorithm,
		v.version,
		v.memory,
		v.iterations,
		v.parallelism,
		phcEncoding.EncodeToString(v.salt),
		phcEncoding.EncodeToString(v.digest),
	)
}

func parseVerifier(s string) (phcVerifier, error) {
	var v phcVerifier

	parts := strings.Split(strings.TrimSpace(s), "$")
	if len(parts) != 6 || parts[0] != "" {
		return v, fmt.Errorf("%w: expected 5 `$`-separated fields", ErrMalformedVerifier)
	}

	v.algorithm = parts[1]
	if v.algorithm != algorithmArgon2id && v.algorithm != algorithmArgon2i {
		return v, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedVerifier, v.algorithm)
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return v, fmt.Errorf("%w: missing version", ErrMalformedVerifier)
	}
	n, err := strconv.Atoi(version)
	if err != nil || n != argon2.Version {
		return v, fmt.Errorf("%w: unsupported version %q", ErrMalformedVerifier, version)
	}
	v.version = n

	if err = v.parseParams(parts[3]); err != nil {
		return v, err
	}

	if v.salt, err = phcEncoding.DecodeString(parts[4]); err != nil || len(v.salt) == 0 || len(v.salt) > maxSaltLength {
		return v, fmt.Errorf("%w: invalid salt", ErrMalformedVerifier)
	}
	if v.digest, err = phcEncoding.DecodeString(parts[5]); err != nil || len(v.digest) == 0 || len(v.digest) > maxDigestLength {
		return v, fmt.Errorf("%w: invalid digest", ErrMalformedVerifier)
	}

	return v, nil
}

func (v *phcVerifier) parseParams(s string) error {
	var seenM, seenT, seenP bool

	for _, field := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("%w: invalid parameter %q", ErrMalformedVerifier, field)
		}

		switch name {
		case "m":
			m, err := strconv.ParseUint(value, 10, 32)
			if err != nil || m > MaxMemoryCost {
				return fmt.Errorf("%w: invalid memory cost", ErrMalformedVerifier)
			}
			v.memory, seenM = uint32(m), true
		case "t":
			t, err := strconv.ParseUint(value, 10, 32)
			if err != nil || t == 0 || t > MaxTimeCost {
				return fmt.Errorf("%w: invalid time cost", ErrMalformedVerifier)
			}
			v.iterations, seenT = uint32(t), true
		case "p":
			p, err := strconv.ParseUint(value, 10, 8)
			if err != nil || p == 0 {
				return fmt.Errorf("%w: invalid parallelism", ErrMalformedVerifier)
			}
			v.parallelism, seenP = uint8(p), true
		default:
			return fmt.Errorf("%w: unknown parameter %q", ErrMalformedVerifier, name)
		}
	}

	if !seenM || !seenT || !seenP {
		return fmt.Errorf("%w: m, t and p are required", ErrMalformedVerifier)
	}
	// argon2 needs at least 8 KiB per lane.
	if v.memory < 8*uint32(v.parallelism) {
		return fmt.Errorf("%w: memory cost below 8*p", ErrMalformedVerifier)
	}

	return nil
}
