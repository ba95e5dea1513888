// Package grpc exposes the service health over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/electric-cars/pkg/logger"
)

// ServiceName is the health service name reported next to the overall status
const ServiceName = "electric-cars"

const defaultProbeInterval = 15 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server serves grpc.health.v1 backed by a database probe
type Server struct {
	server   *grpc.Server
	health   *health.Server
	pinger   Pinger
	interval time.Duration
}

// NewServer builds the server. metrics may be nil.
func NewServer(pinger Pinger, interval time.Duration, metrics *Metrics) *Server {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	interceptors := []grpc.UnaryServerInterceptor{RecoveryInterceptor, LoggingInterceptor}
	if metrics != nil {
		interceptors = append(interceptors, metrics.UnaryInterceptor)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	// Register reflection service (for grpcurl and grpc tools)
	reflection.Register(srv)

	return &Server{
		server:   srv,
		health:   hs,
		pinger:   pinger,
		interval: interval,
	}
}

// Serve blocks until ctx is cancelled or lis fails. The first probe runs
// before the listener accepts connections.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.probe(ctx)
	go s.watch(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx).Str("addr", lis.Addr().String()).Msg("gRPC server starting")
		errCh <- s.server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.server.GracefulStop()
		logger.Info(context.Background()).Msg("gRPC server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

func (s *Server) probe(ctx context.Context) {
	servingStatus := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.PingContext(ctx); err != nil {
		logger.Warn(ctx).Err(err).Msg("Database probe failed")
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", servingStatus)
	s.health.SetServingStatus(ServiceName, servingStatus)
}
