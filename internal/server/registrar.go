package server

import "google.golang.org/grpc"

// Registrar is implemented by every service package: it registers the
// service on s.
type Registrar interface {
	Register(s *grpc.Server)
}
