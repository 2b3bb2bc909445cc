// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means neither a HTTP nor a gRPC handler was
	// configured, so the daemon would have nothing to serve.
	errNoServersAreCreated = errors.New("no servers are created")

	errListenGRPC = errors.New("error listening on grpc address")
)
