// Package server runs the session daemon's listeners.
//
// The HTTP API and the optional gRPC API share one lifecycle: both start
// together, and a signal or a cancelled context shuts both down before the
// daemon destroys its sessions.
package server
