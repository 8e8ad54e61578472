// Package server wires and runs the document manager's HTTP server.
//
// It owns the server lifecycle: startup, background workers running next
// to the server, signal handling and graceful shutdown.
package server
