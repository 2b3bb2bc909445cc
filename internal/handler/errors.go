// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the daemon has
// neither a HTTP nor a gRPC address. The vault would be unreachable, so
// startup fails.
var errNoHandlersAreCreated = errors.New("no handlers are created")
