// Package http implements the HTTP transport of the desktop session daemon.
//
// It exposes route wiring, request handlers, and middleware for the local
// REST API used by the terminal client. Request tracing, access logging,
// panic recovery and bearer session authentication are handled in this
// package before requests are delegated to the service layer. Error bodies
// are the same one-line messages the CLI prints.
package http
