// Package app wires the launch preparation engine together: storage, the
// progression engine, the delegation workflow, the sync tracker, and the
// event loop that keeps fuel levels honest.
package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	launchprepv1 "github.com/louisbranch/liftoff.space/api/launchprep/v1"
	launchprepapi "github.com/louisbranch/liftoff.space/internal/services/launchprep/api/grpc/launchprep"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/delegation"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/flowstate"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/fuel"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/ingest"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/progress"
	launchprepsqlite "github.com/louisbranch/liftoff.space/internal/services/launchprep/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// RuntimeConfig controls launch preparation startup and loop behavior.
type RuntimeConfig struct {
	Port            int
	DBPath          string
	RefreshInterval time.Duration
	CounterCacheTTL time.Duration
	InviteTTL       time.Duration

	// External dependencies supplied by the host process.
	Counters fuel.CounterSource
	Users    delegation.UserDirectory
	Invites  delegation.InviteSender
	Notifier delegation.Notifier
}

const (
	defaultPort   = 8094
	defaultDBPath = "data/launchprep.db"
)

// Runtime holds the wired service components.
type Runtime struct {
	Store      *launchprepsqlite.Store
	Engine     *progress.Engine
	Workflow   *delegation.Workflow
	Tracker    *ingest.Tracker
	Flows      *flowstate.Manager
	Reconciler *Reconciler
	Loop       *Loop
}

// Build opens storage and assembles the service components.
func Build(cfg RuntimeConfig) (*Runtime, error) {
	if cfg.Counters == nil {
		return nil, fmt.Errorf("counter source is required")
	}
	if cfg.Users == nil {
		return nil, fmt.Errorf("user directory is required")
	}
	if cfg.Invites == nil {
		return nil, fmt.Errorf("invite sender is required")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = defaultDBPath
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create launchprep storage dir: %w", err)
		}
	}
	store, err := launchprepsqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open launchprep sqlite store: %w", err)
	}

	engine := progress.NewEngine(store, store, nil)
	workflowOpts := []delegation.WorkflowOption{}
	if cfg.InviteTTL > 0 {
		workflowOpts = append(workflowOpts, delegation.WithInviteTTL(cfg.InviteTTL))
	}
	if cfg.Notifier != nil {
		workflowOpts = append(workflowOpts, delegation.WithNotifier(cfg.Notifier))
	}
	workflow := delegation.NewWorkflow(store, cfg.Users, cfg.Invites, store, workflowOpts...)
	tracker := ingest.NewTracker(store, nil)
	flows := flowstate.NewManager(store, nil)
	reconciler := NewReconciler(cfg.Counters, engine, cfg.CounterCacheTTL, nil)
	loop := NewLoop(reconciler, cfg.RefreshInterval)

	return &Runtime{
		Store:      store,
		Engine:     engine,
		Workflow:   workflow,
		Tracker:    tracker,
		Flows:      flows,
		Reconciler: reconciler,
		Loop:       loop,
	}, nil
}

// Close releases runtime resources.
func (r *Runtime) Close() error {
	if r == nil || r.Store == nil {
		return nil
	}
	return r.Store.Close()
}

// Run builds the runtime and serves the launchprep.v1 API until the context
// ends. The event loop runs alongside the server and stops it on exit.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}

	runtime, err := Build(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := runtime.Close(); closeErr != nil {
			log.Printf("close launchprep sqlite store: %v", closeErr)
		}
	}()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on launchprep port %d: %w", cfg.Port, err)
	}
	defer listener.Close()

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	service := launchprepapi.NewService(
		runtime.Engine,
		runtime.Workflow,
		runtime.Tracker,
		runtime.Flows,
		runtime.Reconciler,
		runtime.Loop,
	)
	launchprepv1.RegisterLaunchPrepServiceServer(grpcServer, service)
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("launchprep.runtime", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(launchprepv1.LaunchPrepService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return grpcServer.Serve(listener)
	})
	group.Go(func() error {
		defer func() {
			healthServer.Shutdown()
			grpcServer.GracefulStop()
		}()
		return runtime.Loop.Run(groupCtx)
	})

	log.Printf("launchprep server listening at %v", listener.Addr())
	return group.Wait()
}
