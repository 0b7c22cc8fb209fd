// Package server wires and runs the service's inbound HTTP transport.
//
// It owns the server lifecycle in serve mode: startup, OS signal handling,
// and graceful shutdown.
package server
