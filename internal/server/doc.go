// Package server wires and runs the application's inbound transport and
// background workers.
//
// It owns the process lifecycle from bind to graceful shutdown: the listening
// socket is opened at construction time so an occupied or malformed address
// fails fast, and a SIGTERM/SIGINT/SIGQUIT drains in-flight requests and
// stops the workers before the process exits.
package server
