package server

// Server is the lifecycle contract for the transports the registry exposes.
//
// RunServer blocks until the listener stops; Shutdown drains in-flight
// requests and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
