package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/ingest"
)

func scanSyncSession(row interface{ Scan(...any) error }) (ingest.Session, error) {
	var session ingest.Session
	var typeLabel string
	var statusLabel string
	var startedAt int64
	var updatedAt int64
	var endedAt int64
	err := row.Scan(
		&session.ID,
		&session.TeamID,
		&typeLabel,
		&statusLabel,
		&session.Counters.TotalFilesDiscovered,
		&session.Counters.FilesStored,
		&session.Counters.FilesClassified,
		&session.Reason,
		&startedAt,
		&updatedAt,
		&endedAt,
	)
	if err != nil {
		return ingest.Session{}, err
	}
	session.Type = ingest.SyncTypeFromLabel(typeLabel)
	session.Status = ingest.StatusFromLabel(statusLabel)
	session.StartedAt = fromMillis(startedAt)
	session.UpdatedAt = fromMillis(updatedAt)
	if endedAt != 0 {
		session.EndedAt = fromMillis(endedAt)
	}
	return session, nil
}

// SyncSession returns one sync session by ID.
func (s *Store) SyncSession(ctx context.Context, sessionID string) (ingest.Session, error) {
	if err := ctx.Err(); err != nil {
		return ingest.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return ingest.Session{}, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ingest.Session{}, ingest.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, team_id, sync_type, status,
		        total_files_discovered, files_stored, files_classified,
		        reason, started_at, updated_at, ended_at
		   FROM sync_sessions
		  WHERE id = ?`,
		sessionID,
	)
	session, err := scanSyncSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ingest.Session{}, ingest.ErrNotFound
		}
		return ingest.Session{}, fmt.Errorf("get sync session: %w", err)
	}
	return session, nil
}

// ActiveSyncSession returns the team's in-progress session. The partial
// unique index guarantees at most one exists.
func (s *Store) ActiveSyncSession(ctx context.Context, teamID string) (ingest.Session, error) {
	if err := ctx.Err(); err != nil {
		return ingest.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return ingest.Session{}, fmt.Errorf("storage is not configured")
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return ingest.Session{}, ingest.ErrEmptyTeamID
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, team_id, sync_type, status,
		        total_files_discovered, files_stored, files_classified,
		        reason, started_at, updated_at, ended_at
		   FROM sync_sessions
		  WHERE team_id = ? AND status = 'in_progress'`,
		teamID,
	)
	session, err := scanSyncSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ingest.Session{}, ingest.ErrNotFound
		}
		return ingest.Session{}, fmt.Errorf("get active sync session: %w", err)
	}
	return session, nil
}

// PutSyncSession inserts or replaces one sync session row.
func (s *Store) PutSyncSession(ctx context.Context, session ingest.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(session.ID)
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	teamID := strings.TrimSpace(session.TeamID)
	if teamID == "" {
		return ingest.ErrEmptyTeamID
	}

	var endedAt int64
	if !session.EndedAt.IsZero() {
		endedAt = toMillis(session.EndedAt)
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sync_sessions (
		   id, team_id, sync_type, status,
		   total_files_discovered, files_stored, files_classified,
		   reason, started_at, updated_at, ended_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   status = excluded.status,
		   total_files_discovered = excluded.total_files_discovered,
		   files_stored = excluded.files_stored,
		   files_classified = excluded.files_classified,
		   reason = excluded.reason,
		   updated_at = excluded.updated_at,
		   ended_at = excluded.ended_at`,
		id,
		teamID,
		session.Type.Label(),
		session.Status.Label(),
		session.Counters.TotalFilesDiscovered,
		session.Counters.FilesStored,
		session.Counters.FilesClassified,
		session.Reason,
		toMillis(session.StartedAt),
		toMillis(session.UpdatedAt),
		endedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Wrap(apperrors.CodeSyncActiveExists, "active sync session exists for team", err)
		}
		return fmt.Errorf("put sync session: %w", err)
	}
	return nil
}
