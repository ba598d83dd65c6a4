// Package delegation manages handing stage setup responsibility to an
// invited admin and bringing the delegator back once setup finishes.
package delegation

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
)

var (
	// ErrEmptyTeamID indicates a missing team ID.
	ErrEmptyTeamID = apperrors.New(apperrors.CodeDelegationEmptyTeamID, "team id is required")
	// ErrEmptyEmail indicates a missing delegate email.
	ErrEmptyEmail = apperrors.New(apperrors.CodeDelegationEmptyEmail, "delegate email is required")
	// ErrNotFound indicates a delegation record is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "delegation not found")
)

// Status represents the lifecycle status of a setup delegation.
type Status int

const (
	// StatusUnspecified represents an invalid delegation status.
	StatusUnspecified Status = iota
	// StatusPendingInvite indicates the invite was sent and not yet accepted.
	StatusPendingInvite
	// StatusAccepted indicates the delegate accepted and created an account.
	StatusAccepted
	// StatusInProgress indicates the delegate started working through setup.
	StatusInProgress
	// StatusCompleted indicates the delegate finished setup.
	StatusCompleted
	// StatusCancelled indicates the delegator withdrew the delegation.
	StatusCancelled
)

// Terminal reports whether the status ends the delegation. A new delegation
// may only be created once the previous one is terminal.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Label returns the string label for a delegation status.
func (s Status) Label() string {
	switch s {
	case StatusPendingInvite:
		return "pending_invite"
	case StatusAccepted:
		return "accepted"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unspecified"
	}
}

// StatusFromLabel converts a status label to a Status value.
func StatusFromLabel(label string) Status {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "pending_invite":
		return StatusPendingInvite
	case "accepted":
		return StatusAccepted
	case "in_progress":
		return StatusInProgress
	case "completed":
		return StatusCompleted
	case "cancelled":
		return StatusCancelled
	default:
		return StatusUnspecified
	}
}

// CanTransition reports whether the state machine allows moving from one
// status to another. Cancellation is allowed from every non-terminal state;
// forward movement is strictly ordered.
func CanTransition(from, to Status) bool {
	switch to {
	case StatusAccepted:
		return from == StatusPendingInvite
	case StatusInProgress:
		return from == StatusAccepted
	case StatusCompleted:
		return from == StatusInProgress
	case StatusCancelled:
		return from == StatusPendingInvite || from == StatusAccepted || from == StatusInProgress
	default:
		return false
	}
}

// Delegation represents one transfer of stage setup responsibility.
type Delegation struct {
	ID               string
	TeamID           string
	DelegatingUserID string
	DelegatedToEmail string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ExpiresAt        time.Time
}

// Expired reports whether a pending invite outlived its expiry window. An
// expired invite is surfaced for resend or cancel; the engine never
// auto-transitions it.
func (d Delegation) Expired(now time.Time) bool {
	if d.Status != StatusPendingInvite || d.ExpiresAt.IsZero() {
		return false
	}
	return now.After(d.ExpiresAt)
}

// Store is the persistence boundary for delegation lifecycle state.
type Store interface {
	// ActiveDelegation returns the team's single non-terminal delegation,
	// or ErrNotFound when none exists.
	ActiveDelegation(ctx context.Context, teamID string) (Delegation, error)
	Delegation(ctx context.Context, id string) (Delegation, error)
	PutDelegation(ctx context.Context, d Delegation) error
}

// User identifies an existing account in the external user directory.
type User struct {
	ID    string
	Email string
	Name  string
}

// UserDirectory looks up accounts by email. Implementations live outside
// the engine.
type UserDirectory interface {
	// LookupUserByEmail returns ErrNotFound when no account exists for the
	// email.
	LookupUserByEmail(ctx context.Context, email string) (User, error)
}

// InviteSender delivers the delegation invite email.
type InviteSender interface {
	SendDelegationInvite(ctx context.Context, email, teamName string) error
}

// ProgressResetter adjusts the delegator's progression state around
// delegation transitions.
type ProgressResetter interface {
	ResetStageProgress(ctx context.Context, userID string) error
	SetAwaitingSetup(ctx context.Context, userID string, awaiting bool) error
}

// Notifier informs the delegator about delegation outcomes. Optional.
type Notifier interface {
	DelegationCompleted(ctx context.Context, delegatorUserID, delegateName string) error
}
