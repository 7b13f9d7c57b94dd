// Package grpchealth serves the standard grpc.health.v1 service so gRPC-aware
// load balancers and orchestrators can probe the process alongside /api/health.
package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the fully qualified name reported for the HTTP API.
const ServiceName = "welcome.v1.API"

// Server wraps a grpc.Server exposing only the health service.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	logger *zap.Logger
}

// New creates a server whose services all report SERVING.
func New(logger *zap.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		grpc:   grpc.NewServer(opts...),
		health: health.NewServer(),
		logger: logger,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.SetServing(true)
	return s
}

// SetServing flips the overall ("") and API service status.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve blocks serving lis until Shutdown is called.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("grpc health listening", zap.String("addr", lis.Addr().String()))
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve grpc: %w", err)
	}
	return nil
}

// Shutdown marks every service NOT_SERVING, then drains in-flight RPCs.
// Watch streams never finish on their own, so when ctx expires first the
// server is stopped hard and ctx.Err() is returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("grpc health stopped")
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		<-done
		s.logger.Warn("grpc health forced stop", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}
