// Package cli implements the vault command-line front end.
//
// Commands are built with cobra and call straight into the vault service;
// the CLI never keeps the master key beyond the command that prompted for
// it. Human output goes to stdout, diagnostics and prompts go to stderr, and
// every failure ends as one "[ERROR]: <message>" line on stderr with exit
// status 1.
package cli
