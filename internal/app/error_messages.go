// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by every go-pass-vault
// front end: the CLI, the desktop daemon and its terminal client, and the
// mobile binding.
//
// All Msg* constants are one-line messages. MessageFor picks the message for
// an error returned by the service layer, so the same failure reads the same
// way everywhere.
package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

const (
	// MsgIncorrectKey is shown when the master key does not match the
	// stored verifier.
	MsgIncorrectKey = "The password is incorrect."

	// MsgCorruptedVerifier is shown when the stored verifier cannot be
	// parsed at all.
	MsgCorruptedVerifier = "The password is incorrect. The stored master key record also looks corrupted."

	// MsgKeyTooLong is shown for master keys over the padded key size.
	MsgKeyTooLong = "Your master key is too long! Master keys can only be up to %d characters long."

	// MsgAlreadyInitialized is shown when set-master runs a second time.
	MsgAlreadyInitialized = "The master key has already been set. Don't try to set it again, as it will break stuff."

	// MsgUninitialized is shown when no master key exists yet.
	MsgUninitialized = "It looks like you didn't set a master key yet! Use the set-master command to do so."

	// MsgNameAlreadyExists is shown on a duplicate secret name.
	MsgNameAlreadyExists = "A password with that name already exists!"

	// MsgSecretNotFound is shown when no secret has the requested name.
	MsgSecretNotFound = "There appears to be no password saved that is named %s"

	// MsgSecretTooLong is shown for explicit secrets over one block.
	MsgSecretTooLong = "Your password is too long! Passwords can only be up to %d characters long."

	// MsgInvalidSecretName is shown when a name fails validation.
	MsgInvalidSecretName = "That name can't be used for a password: %s."

	// MsgEncoding is shown when stored text is not valid UTF-8.
	MsgEncoding = "Some stored data is not valid text."

	// MsgStorage is shown for database and file failures.
	MsgStorage = "Could not access the vault storage."

	// MsgSessionExpired is shown when a desktop session timed out.
	MsgSessionExpired = "Your session has expired. Unlock the vault again."

	// MsgSessionNotFound is shown for unknown or closed sessions.
	MsgSessionNotFound = "You are not logged in. Unlock the vault first."

	// MsgKeysDoNotMatch is shown when a confirmation prompt differs.
	MsgKeysDoNotMatch = "the keys you entered do not match"

	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnknown is the fallback for everything else.
	MsgUnknown = "Sorry, but something went wrong."
)

// ErrKeysDoNotMatch is returned by prompts that ask for a value twice.
var ErrKeysDoNotMatch = errors.New(MsgKeysDoNotMatch)

// UserMessager is implemented by errors that already carry the message to
// show, such as errors decoded from a daemon response.
type UserMessager interface {
	UserMessage() string
}

// MessageFor returns the one-line user message for err. A nil error yields
// an empty string.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}

	var messager UserMessager
	if errors.As(err, &messager) && messager.UserMessage() != "" {
		return messager.UserMessage()
	}

	var notFound *service.SecretNotFoundError

	switch {
	case errors.Is(err, service.ErrMalformedVerifier):
		return MsgCorruptedVerifier
	case errors.Is(err, service.ErrIncorrectKey):
		return MsgIncorrectKey
	case errors.Is(err, service.ErrKeyTooLong):
		return fmt.Sprintf(MsgKeyTooLong, crypto.KeySize)
	case errors.Is(err, service.ErrAlreadyInitialized):
		return MsgAlreadyInitialized
	case errors.Is(err, service.ErrUninitialized):
		return MsgUninitialized
	case errors.Is(err, service.ErrNameAlreadyExists):
		return MsgNameAlreadyExists
	case errors.As(err, &notFound):
		return fmt.Sprintf(MsgSecretNotFound, notFound.Name)
	case errors.Is(err, service.ErrSecretNotFound):
		return fmt.Sprintf(MsgSecretNotFound, "like that")
	case errors.Is(err, service.ErrSecretTooLong):
		return fmt.Sprintf(MsgSecretTooLong, crypto.BlockSize)
	case errors.Is(err, service.ErrInvalidSecretName):
		return fmt.Sprintf(MsgInvalidSecretName, innermost(err))
	case errors.Is(err, service.ErrEncoding):
		return MsgEncoding
	case errors.Is(err, service.ErrStorage):
		return MsgStorage
	case errors.Is(err, service.ErrSessionExpired):
		return MsgSessionExpired
	case errors.Is(err, service.ErrSessionNotFound):
		return MsgSessionNotFound
	case errors.Is(err, ErrKeysDoNotMatch):
		return MsgKeysDoNotMatch
	default:
		return MsgUnknown
	}
}

// innermost returns the text of the last error in a %w chain with two
// operands, which is the validator's reason.
func innermost(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		if len(errs) > 0 {
			return innermost(errs[len(errs)-1])
		}
	}
	if next := errors.Unwrap(err); next != nil {
		return innermost(next)
	}
	return err.Error()
}
