package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/delegation"
)

func scanDelegation(row interface{ Scan(...any) error }) (delegation.Delegation, error) {
	var record delegation.Delegation
	var statusLabel string
	var createdAt int64
	var updatedAt int64
	var expiresAt int64
	err := row.Scan(
		&record.ID,
		&record.TeamID,
		&record.DelegatingUserID,
		&record.DelegatedToEmail,
		&statusLabel,
		&createdAt,
		&updatedAt,
		&expiresAt,
	)
	if err != nil {
		return delegation.Delegation{}, err
	}
	record.Status = delegation.StatusFromLabel(statusLabel)
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	if expiresAt != 0 {
		record.ExpiresAt = fromMillis(expiresAt)
	}
	return record, nil
}

// Delegation returns one delegation by ID.
func (s *Store) Delegation(ctx context.Context, id string) (delegation.Delegation, error) {
	if err := ctx.Err(); err != nil {
		return delegation.Delegation{}, err
	}
	if s == nil || s.sqlDB == nil {
		return delegation.Delegation{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return delegation.Delegation{}, delegation.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, team_id, delegating_user_id, delegated_to_email, status,
		        created_at, updated_at, expires_at
		   FROM setup_delegations
		  WHERE id = ?`,
		id,
	)
	record, err := scanDelegation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return delegation.Delegation{}, delegation.ErrNotFound
		}
		return delegation.Delegation{}, fmt.Errorf("get delegation: %w", err)
	}
	return record, nil
}

// ActiveDelegation returns the team's single non-terminal delegation. The
// partial unique index guarantees at most one exists.
func (s *Store) ActiveDelegation(ctx context.Context, teamID string) (delegation.Delegation, error) {
	if err := ctx.Err(); err != nil {
		return delegation.Delegation{}, err
	}
	if s == nil || s.sqlDB == nil {
		return delegation.Delegation{}, fmt.Errorf("storage is not configured")
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return delegation.Delegation{}, delegation.ErrEmptyTeamID
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, team_id, delegating_user_id, delegated_to_email, status,
		        created_at, updated_at, expires_at
		   FROM setup_delegations
		  WHERE team_id = ?
		    AND status IN ('pending_invite', 'accepted', 'in_progress')`,
		teamID,
	)
	record, err := scanDelegation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return delegation.Delegation{}, delegation.ErrNotFound
		}
		return delegation.Delegation{}, fmt.Errorf("get active delegation: %w", err)
	}
	return record, nil
}

// PutDelegation inserts or replaces one delegation row.
func (s *Store) PutDelegation(ctx context.Context, record delegation.Delegation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return fmt.Errorf("delegation id is required")
	}
	teamID := strings.TrimSpace(record.TeamID)
	if teamID == "" {
		return delegation.ErrEmptyTeamID
	}

	var expiresAt int64
	if !record.ExpiresAt.IsZero() {
		expiresAt = toMillis(record.ExpiresAt)
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO setup_delegations (
		   id, team_id, delegating_user_id, delegated_to_email, status,
		   created_at, updated_at, expires_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   status = excluded.status,
		   delegated_to_email = excluded.delegated_to_email,
		   updated_at = excluded.updated_at,
		   expires_at = excluded.expires_at`,
		id,
		teamID,
		strings.TrimSpace(record.DelegatingUserID),
		strings.TrimSpace(record.DelegatedToEmail),
		record.Status.Label(),
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
		expiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Wrap(apperrors.CodeDelegationActiveExists, "active delegation exists for team", err)
		}
		return fmt.Errorf("put delegation: %w", err)
	}
	return nil
}
