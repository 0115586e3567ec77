package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestHealthMonitorCheckTracksProbe(t *testing.T) {
	var probeErr error
	monitor := NewHealthMonitor(func(context.Context) error { return probeErr }, 0, time.Second)

	if got := monitor.Check(context.Background()); got != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("expected SERVING, got %v", got)
	}

	probeErr = errors.New("connection refused")
	if got := monitor.Check(context.Background()); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("expected NOT_SERVING, got %v", got)
	}

	resp, err := monitor.server.Check(context.Background(), &healthpb.HealthCheckRequest{Service: UpstreamService})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("expected recorded NOT_SERVING, got %v", resp.GetStatus())
	}
}

func TestHealthMonitorProbeHonoursTimeout(t *testing.T) {
	monitor := NewHealthMonitor(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			return errors.New("expected deadline")
		}
		return nil
	}, 0, 50*time.Millisecond)

	if got := monitor.Check(context.Background()); got != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("expected SERVING, got %v", got)
	}
}

func TestHealthMonitorLifecycle(t *testing.T) {
	monitor := NewHealthMonitor(func(context.Context) error { return nil }, 10*time.Millisecond, 0)
	monitor.Start(context.Background())

	resp, err := monitor.server.Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("expected SERVING, got %v", resp.GetStatus())
	}

	monitor.Shutdown()
	monitor.Shutdown()

	resp, err = monitor.server.Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("expected NOT_SERVING after shutdown, got %v", resp.GetStatus())
	}
}
