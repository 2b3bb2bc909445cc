// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the desktop client runtime.
//
// It connects the terminal UI to the session daemon and owns the process
// lifecycle of the vault-client binary.
package client
