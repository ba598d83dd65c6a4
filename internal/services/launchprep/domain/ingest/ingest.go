// Package ingest tracks data sync sessions: long-running document ingestion
// runs whose counters feed the fuel level calculator.
package ingest

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
)

var (
	// ErrEmptyTeamID indicates a missing team ID.
	ErrEmptyTeamID = apperrors.New(apperrors.CodeSyncEmptyTeamID, "team id is required")
	// ErrNotFound indicates a sync session record is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "sync session not found")
)

// SyncType classifies what triggered an ingestion run.
type SyncType int

const (
	SyncTypeUnspecified SyncType = iota
	SyncTypeInitial
	SyncTypeIncremental
	SyncTypeManual
)

// Valid reports whether the sync type is one of the known triggers.
func (t SyncType) Valid() bool {
	switch t {
	case SyncTypeInitial, SyncTypeIncremental, SyncTypeManual:
		return true
	}
	return false
}

// Label returns the wire identifier for the sync type.
func (t SyncType) Label() string {
	switch t {
	case SyncTypeInitial:
		return "initial"
	case SyncTypeIncremental:
		return "incremental"
	case SyncTypeManual:
		return "manual"
	default:
		return "unspecified"
	}
}

// SyncTypeFromLabel parses a wire identifier into a SyncType.
func SyncTypeFromLabel(label string) SyncType {
	switch label {
	case "initial":
		return SyncTypeInitial
	case "incremental":
		return SyncTypeIncremental
	case "manual":
		return SyncTypeManual
	default:
		return SyncTypeUnspecified
	}
}

// Status is the lifecycle state of a sync session.
type Status int

const (
	StatusUnspecified Status = iota
	StatusInProgress
	StatusCompleted
	StatusFailed
)

// Terminal reports whether the session can no longer change.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Label returns the wire identifier for the status.
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unspecified"
	}
}

// StatusFromLabel parses a wire identifier into a Status.
func StatusFromLabel(label string) Status {
	switch label {
	case "in_progress":
		return StatusInProgress
	case "completed":
		return StatusCompleted
	case "failed":
		return StatusFailed
	default:
		return StatusUnspecified
	}
}

// Counters are the pipeline counts reported by the external ingestion
// system. Updates arrive out of order, so they merge as a high-water mark.
type Counters struct {
	TotalFilesDiscovered int
	FilesStored          int
	FilesClassified      int
}

// Merge returns the element-wise maximum of the two counter sets. A stale
// or partial update can never move a counter backwards.
func (c Counters) Merge(update Counters) Counters {
	if update.TotalFilesDiscovered > c.TotalFilesDiscovered {
		c.TotalFilesDiscovered = update.TotalFilesDiscovered
	}
	if update.FilesStored > c.FilesStored {
		c.FilesStored = update.FilesStored
	}
	if update.FilesClassified > c.FilesClassified {
		c.FilesClassified = update.FilesClassified
	}
	return c
}

// Session is one ingestion run for a team.
type Session struct {
	ID        string
	TeamID    string
	Type      SyncType
	Status    Status
	Counters  Counters
	Reason    string
	StartedAt time.Time
	UpdatedAt time.Time
	EndedAt   time.Time
}

// Weights of the pipeline phases: discovery finishes quickly, storage and
// classification dominate the run. The ordering mirrors the pipeline and
// must not be reordered.
const (
	discoveryWeight      = 10
	storageWeight        = 40
	classificationWeight = 50
)

// Progress returns the overall completion percentage in [0, 100].
// Discovery counts as done the moment any file is discovered; the storage
// ratio is against discovered files and the classification ratio against
// stored files, each clamped to [0, 100].
func (s Session) Progress() int {
	var discovery, storage, classification int
	if s.Counters.TotalFilesDiscovered > 0 {
		discovery = 100
		storage = clampPercent(s.Counters.FilesStored * 100 / s.Counters.TotalFilesDiscovered)
	}
	if s.Counters.FilesStored > 0 {
		classification = clampPercent(s.Counters.FilesClassified * 100 / s.Counters.FilesStored)
	}
	total := discoveryWeight*discovery + storageWeight*storage + classificationWeight*classification
	return clampPercent(total / 100)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Store persists sync sessions.
type Store interface {
	// SyncSession returns the session by ID, or ErrNotFound.
	SyncSession(ctx context.Context, sessionID string) (Session, error)
	// ActiveSyncSession returns the team's most recently started
	// in-progress session, or ErrNotFound when none is running.
	ActiveSyncSession(ctx context.Context, teamID string) (Session, error)
	// PutSyncSession inserts or replaces the session row.
	PutSyncSession(ctx context.Context, session Session) error
}
