package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/vibast-solutions/gym-console/app/factory"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UpstreamService is the health service name that tracks the gym API.
const UpstreamService = "gym.api"

// Probe checks the gym API; any error marks it NOT_SERVING.
type Probe func(ctx context.Context) error

// HealthMonitor serves grpc.health.v1. The overall status follows the process
// lifecycle while UpstreamService follows the last probe result.
type HealthMonitor struct {
	server   *health.Server
	probe    Probe
	interval time.Duration
	timeout  time.Duration
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewHealthMonitor(probe Probe, interval, timeout time.Duration) *HealthMonitor {
	return &HealthMonitor{
		server:   health.NewServer(),
		probe:    probe,
		interval: interval,
		timeout:  timeout,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (m *HealthMonitor) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, m.server)
}

// Check runs the probe once and records the result.
func (m *HealthMonitor) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	l := factory.NewModuleLogger("grpc-health")
	servingStatus := healthpb.HealthCheckResponse_SERVING

	probeCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	if err := m.probe(probeCtx); err != nil {
		l.WithError(err).Warn("Gym API probe failed")
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}

	m.server.SetServingStatus(UpstreamService, servingStatus)
	return servingStatus
}

// Start marks the process SERVING and probes the API every interval until
// Shutdown. A non-positive interval probes once.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	m.Check(ctx)

	if m.interval <= 0 {
		close(m.done)
		return
	}

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}

// Shutdown flips every service to NOT_SERVING and stops probing.
func (m *HealthMonitor) Shutdown() {
	m.stopOnce.Do(func() {
		close(m.stop)
		m.server.Shutdown()
	})
	<-m.done
}
