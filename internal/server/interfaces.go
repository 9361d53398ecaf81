package server

import "context"

// Server defines the lifecycle contract of the transport servers managed
// by this package.
//
// Run serves until ctx is cancelled, then shuts down gracefully. It
// satisfies workers.Worker, so the servers run in the same group as the
// background workers.
type Server interface {
	Run(ctx context.Context) error
}
