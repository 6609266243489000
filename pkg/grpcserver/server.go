// pkg/grpcserver/server.go
package grpcserver

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server is a gRPC server carrying only the standard health service. It lets
// orchestrators probe readiness over gRPC next to the HTTP /api/health route.
type Server struct {
	addr   string
	lis    net.Listener
	health *health.Server
	Server *grpc.Server
}

// New creates a Server for addr. Every service starts out NOT_SERVING.
func New(addr string, services ...string) *Server {
	s := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)

	srv := &Server{
		addr:   addr,
		health: hs,
		Server: s,
	}
	srv.SetServing(false, services...)
	return srv
}

// SetServing updates the overall status ("") and the named services.
func (s *Server) SetServing(serving bool, services ...string) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	for _, name := range services {
		s.health.SetServingStatus(name, status)
	}
}

// Addr is the configured listen address. Empty means the server is not exposed.
func (s *Server) Addr() string {
	return s.addr
}

// Health exposes the health implementation, mostly for in-process checks.
func (s *Server) Health() healthpb.HealthServer {
	return s.health
}

// Start listens on the configured address and serves until Stop is called.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener.
func (s *Server) Serve(lis net.Listener) error {
	s.lis = lis
	return s.Server.Serve(lis)
}

// Stop marks everything NOT_SERVING and drains in-flight RPCs.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
