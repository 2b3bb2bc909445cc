// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side view of an unlocked desktop session. The
// verified master key itself lives in a memory enclave owned by the session
// service and is never part of this value.
type Session struct {
	// ID is the random session identifier carried as the JWT subject.
	ID string

	// ExpiresAt is the moment after which the session is rejected and swept.
	ExpiresAt time.Time
}

// Expired reports whether the session is past its deadline at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionToken is returned to the client when a session is opened.
type SessionToken struct {
	// Token is the signed bearer token. It is sent in the Authorization header
	// and is not part of the JSON body.
	Token string `json:"-"`

	// ExpiresAt mirrors the token's exp claim.
	ExpiresAt time.Time `json:"expires_at"`
}
