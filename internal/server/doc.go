// Package server wires and runs the application's transport servers.
//
// It provides the HTTP and gRPC server lifecycles: listening, serving until
// the context is cancelled, and graceful shutdown of all enabled
// transports. Signal handling belongs to the caller.
package server
