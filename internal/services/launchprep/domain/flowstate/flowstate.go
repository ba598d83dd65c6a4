// Package flowstate persists multi-step flow position for a user and
// stage, such as the data-connection flow that bounces through an external
// authorization redirect. The persisted record replaces ambient session
// flags: every transition writes or clears an explicit row.
package flowstate

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
)

var (
	// ErrEmptyUserID indicates a missing user ID.
	ErrEmptyUserID = apperrors.New(apperrors.CodeProgressEmptyUserID, "user id is required")
	// ErrEmptyStep indicates a missing flow step.
	ErrEmptyStep = apperrors.New(apperrors.CodeFlowStateEmptyStep, "flow step is required")
	// ErrStageUnknown indicates an unrecognized stage.
	ErrStageUnknown = apperrors.New(apperrors.CodeStageUnknown, "unknown stage")
	// ErrNotFound indicates no flow is in progress for the user and stage.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "flow state not found")
)

// Flows older than this are treated as abandoned: the user left for an
// external redirect and never came back.
const staleAfter = time.Hour

// State is the persisted position within one flow.
type State struct {
	UserID    string
	Stage     stage.Stage
	Step      string
	Provider  string
	Payload   string
	UpdatedAt time.Time
}

// Stale reports whether the flow has been idle long enough to discard.
func (s State) Stale(now time.Time) bool {
	return now.Sub(s.UpdatedAt) > staleAfter
}

// Store persists flow states, one row per (user, stage).
type Store interface {
	// FlowState returns the current row, or ErrNotFound.
	FlowState(ctx context.Context, userID string, s stage.Stage) (State, error)
	// PutFlowState inserts or replaces the row.
	PutFlowState(ctx context.Context, state State) error
	// DeleteFlowState removes the row. Deleting a missing row is a no-op.
	DeleteFlowState(ctx context.Context, userID string, s stage.Stage) error
}

// Manager owns flow state transitions.
type Manager struct {
	store Store
	clock func() time.Time
}

// NewManager constructs a flow state manager.
func NewManager(store Store, clock func() time.Time) *Manager {
	if clock == nil {
		clock = time.Now
	}
	return &Manager{store: store, clock: clock}
}

// Begin records the user entering a flow at its first step. Beginning a
// flow that already has a row restarts it.
func (m *Manager) Begin(ctx context.Context, userID string, s stage.Stage, step, provider string) (State, error) {
	return m.write(ctx, userID, s, step, provider, "")
}

// Advance moves the flow to its next step, carrying an opaque payload for
// the step to resume from (e.g. the authorization state token).
func (m *Manager) Advance(ctx context.Context, userID string, s stage.Stage, step, payload string) (State, error) {
	current, err := m.Resume(ctx, userID, s)
	if err != nil {
		return State{}, err
	}
	return m.write(ctx, userID, s, step, current.Provider, payload)
}

// Resume returns the flow the user should land back in. Stale rows are
// cleared and reported as not found so the flow restarts cleanly.
func (m *Manager) Resume(ctx context.Context, userID string, s stage.Stage) (State, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return State{}, ErrEmptyUserID
	}
	if !s.Valid() {
		return State{}, ErrStageUnknown
	}

	current, err := m.store.FlowState(ctx, userID, s)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return State{}, err
		}
		return State{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "load flow state", err)
	}
	if current.Stale(m.clock().UTC()) {
		if err := m.store.DeleteFlowState(ctx, userID, s); err != nil {
			return State{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "clear stale flow state", err)
		}
		return State{}, ErrNotFound
	}
	return current, nil
}

// Clear ends the flow, removing its row.
func (m *Manager) Clear(ctx context.Context, userID string, s stage.Stage) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrEmptyUserID
	}
	if !s.Valid() {
		return ErrStageUnknown
	}
	if err := m.store.DeleteFlowState(ctx, userID, s); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageUnavailable, "clear flow state", err)
	}
	return nil
}

func (m *Manager) write(ctx context.Context, userID string, s stage.Stage, step, provider, payload string) (State, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return State{}, ErrEmptyUserID
	}
	if !s.Valid() {
		return State{}, ErrStageUnknown
	}
	step = strings.TrimSpace(step)
	if step == "" {
		return State{}, ErrEmptyStep
	}

	state := State{
		UserID:    userID,
		Stage:     s,
		Step:      step,
		Provider:  strings.TrimSpace(provider),
		Payload:   payload,
		UpdatedAt: m.clock().UTC(),
	}
	if err := m.store.PutFlowState(ctx, state); err != nil {
		return State{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist flow state", err)
	}
	return state, nil
}
