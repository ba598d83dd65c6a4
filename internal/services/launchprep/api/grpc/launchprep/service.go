// Package launchprep exposes the launchprep.v1 gRPC operations over the
// progression engine, the delegation workflow, the sync tracker, and the
// flow checkpoint manager.
package launchprep

import (
	"context"
	"time"

	launchprepv1 "github.com/louisbranch/liftoff.space/api/launchprep/v1"
	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/delegation"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/flowstate"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/fuel"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/ingest"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/progress"
)

// FuelReconciler recomputes and reads the counter-derived fuel level.
type FuelReconciler interface {
	Refresh(ctx context.Context, teamID, userID string, force bool) (progress.StageProgress, error)
	Snapshot(ctx context.Context, teamID string, force bool) (fuel.Counters, error)
}

// EventSink accepts change notifications for the background refresh loop.
type EventSink interface {
	NotifyChange(kind, teamID, userID string) (bool, error)
}

// Service exposes launchprep.v1 gRPC operations.
type Service struct {
	launchprepv1.UnimplementedLaunchPrepServiceServer
	engine     *progress.Engine
	workflow   *delegation.Workflow
	tracker    *ingest.Tracker
	flows      *flowstate.Manager
	reconciler FuelReconciler
	events     EventSink
	clock      func() time.Time
}

// NewService creates a launchprep service over the wired domain components.
func NewService(engine *progress.Engine, workflow *delegation.Workflow, tracker *ingest.Tracker, flows *flowstate.Manager, reconciler FuelReconciler, events EventSink) *Service {
	return &Service{
		engine:     engine,
		workflow:   workflow,
		tracker:    tracker,
		flows:      flows,
		reconciler: reconciler,
		events:     events,
		clock:      time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.clock != nil {
		return s.clock().UTC()
	}
	return time.Now().UTC()
}

// handleDomainError converts domain errors to localized gRPC status errors.
func handleDomainError(err error) error {
	return apperrors.HandleError(err, apperrors.DefaultLocale)
}
