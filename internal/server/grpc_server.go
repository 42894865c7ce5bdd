package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/barchat/internal/app"
)

// ShutdownGrace is how long GracefulStop may wait for open calls and
// streams before the server is stopped hard.
const ShutdownGrace = 5 * time.Second

// GRPCServer is the barchat gRPC server with its health service.
type GRPCServer struct {
	*grpc.Server
	Health *health.Server
	log    *slog.Logger
}

// NewGRPCServer builds the server, chains the interceptors and registers
// all provided services plus health and reflection.
func NewGRPCServer(appCtx *app.AppContext, registrars ...Registrar) *GRPCServer {
	log := appCtx.Logger.With("component", "grpc")

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			RecoverUnary(log),
			LoggingUnary(log),
			MetricsUnary(appCtx.Metrics),
			AdminAuthUnary(appCtx.Admin),
		),
		grpc.ChainStreamInterceptor(
			RecoverStream(log),
			LoggingStream(log),
			MetricsStream(appCtx.Metrics),
		),
	)

	// register all services
	for _, r := range registrars {
		r.Register(s)
	}

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	for name := range s.GetServiceInfo() {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	// enable reflection for easier debugging with grpcurl
	reflection.Register(s)

	return &GRPCServer{Server: s, Health: hs, log: log}
}

// Serve serves on lis until ctx ends, then drains and stops.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Server.Serve(lis) }()

	select {
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down gRPC server")
	s.Health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(ShutdownGrace):
		s.log.Warn("graceful stop timed out, forcing")
		s.Stop()
	}
	return nil
}

// StartGRPCServer listens on the configured address and serves the
// registered services until ctx ends.
func StartGRPCServer(ctx context.Context, appCtx *app.AppContext, registrars ...Registrar) error {
	cfg := appCtx.Config
	addr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := NewGRPCServer(appCtx, registrars...)
	s.log.Info("gRPC server listening", "addr", lis.Addr().String())
	return s.Serve(ctx, lis)
}
