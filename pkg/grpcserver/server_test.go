// pkg/grpcserver/server_test.go
package grpcserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func check(t *testing.T, s *Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := s.Health().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestServer_Readiness(t *testing.T) {
	s := New("127.0.0.1:0", "sales-analytics")

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, s, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, s, "sales-analytics"))

	s.SetServing(true, "sales-analytics")
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, s, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, s, "sales-analytics"))

	s.SetServing(false, "sales-analytics")
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, s, "sales-analytics"))
}

func TestServer_UnknownService(t *testing.T) {
	s := New("127.0.0.1:0")
	_, err := s.Health().Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Error(t, err)
}

func TestServer_StopWithoutStart(t *testing.T) {
	s := New("127.0.0.1:0", "sales-analytics")
	s.SetServing(true, "sales-analytics")
	s.Stop()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, s, "sales-analytics"))
}
