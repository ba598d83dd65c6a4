package ingest

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/platform/id"
)

// Tracker manages the at-most-one-active-session-per-team lifecycle. The
// tracker never times a session out; a run stuck in progress is the
// ingestion system's problem to resolve.
type Tracker struct {
	store Store
	clock func() time.Time
	newID func() (string, error)
}

// NewTracker constructs a sync session tracker.
func NewTracker(store Store, clock func() time.Time) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{
		store: store,
		clock: clock,
		newID: id.NewID,
	}
}

// Start opens a new session with all counters at zero. It is rejected while
// another session for the team is still in progress.
func (t *Tracker) Start(ctx context.Context, teamID string, syncType SyncType) (Session, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return Session{}, ErrEmptyTeamID
	}
	if !syncType.Valid() {
		return Session{}, apperrors.WithMetadata(
			apperrors.CodeSyncInvalidType,
			"invalid sync type",
			map[string]string{"SyncType": syncType.Label()},
		)
	}

	if existing, err := t.store.ActiveSyncSession(ctx, teamID); err == nil {
		return Session{}, apperrors.WithMetadata(
			apperrors.CodeSyncActiveExists,
			"a sync session is already in progress for the team",
			map[string]string{"SessionID": existing.ID},
		)
	} else if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return Session{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "check active sync session", err)
	}

	sessionID, err := t.newID()
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeUnknown, "generate session id", err)
	}

	now := t.clock().UTC()
	session := Session{
		ID:        sessionID,
		TeamID:    teamID,
		Type:      syncType,
		Status:    StatusInProgress,
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := t.store.PutSyncSession(ctx, session); err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist sync session", err)
	}
	return session, nil
}

// UpdateCounters merges a counter snapshot into the session. Terminal
// sessions are immutable.
func (t *Tracker) UpdateCounters(ctx context.Context, sessionID string, update Counters) (Session, error) {
	session, err := t.load(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if session.Status.Terminal() {
		return Session{}, terminalError(session)
	}

	session.Counters = session.Counters.Merge(update)
	session.UpdatedAt = t.clock().UTC()
	if err := t.store.PutSyncSession(ctx, session); err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist sync session", err)
	}
	return session, nil
}

// Complete ends the session successfully. A final counter snapshot, when
// provided, merges in before the status flips.
func (t *Tracker) Complete(ctx context.Context, sessionID string, final *Counters) (Session, error) {
	session, err := t.load(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if session.Status.Terminal() {
		return Session{}, terminalError(session)
	}

	if final != nil {
		session.Counters = session.Counters.Merge(*final)
	}
	now := t.clock().UTC()
	session.Status = StatusCompleted
	session.UpdatedAt = now
	session.EndedAt = now
	if err := t.store.PutSyncSession(ctx, session); err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist sync session", err)
	}
	return session, nil
}

// Fail ends the session with a reason, keeping whatever counters were
// reported before the failure.
func (t *Tracker) Fail(ctx context.Context, sessionID, reason string) (Session, error) {
	session, err := t.load(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if session.Status.Terminal() {
		return Session{}, terminalError(session)
	}

	now := t.clock().UTC()
	session.Status = StatusFailed
	session.Reason = strings.TrimSpace(reason)
	session.UpdatedAt = now
	session.EndedAt = now
	if err := t.store.PutSyncSession(ctx, session); err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist sync session", err)
	}
	return session, nil
}

// Current returns the team's in-progress session, or ErrNotFound.
func (t *Tracker) Current(ctx context.Context, teamID string) (Session, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return Session{}, ErrEmptyTeamID
	}
	return t.store.ActiveSyncSession(ctx, teamID)
}

func (t *Tracker) load(ctx context.Context, sessionID string) (Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Session{}, ErrNotFound
	}
	session, err := t.store.SyncSession(ctx, sessionID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return Session{}, err
		}
		return Session{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "load sync session", err)
	}
	return session, nil
}

func terminalError(session Session) error {
	return apperrors.WithMetadata(
		apperrors.CodeSyncSessionTerminal,
		"sync session already ended",
		map[string]string{"SessionID": session.ID, "Status": session.Status.Label()},
	)
}
