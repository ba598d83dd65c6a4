// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Stage errors
	CodeStageUnknown Code = "STAGE_UNKNOWN"
	CodeStageLocked  Code = "STAGE_LOCKED"

	// Progress errors
	CodeProgressEmptyUserID     Code = "PROGRESS_EMPTY_USER_ID"
	CodeProgressLevelOutOfRange Code = "PROGRESS_LEVEL_OUT_OF_RANGE"
	CodeProgressStageCapped     Code = "PROGRESS_STAGE_CAPPED"
	CodeProgressAchievementKey  Code = "PROGRESS_INVALID_ACHIEVEMENT_KEY"
	CodeProgressDelegationHeld  Code = "PROGRESS_DELEGATION_HELD"

	// Fuel errors
	CodeFuelCountersUnavailable Code = "FUEL_COUNTERS_UNAVAILABLE"

	// Delegation errors
	CodeDelegationEmptyTeamID             Code = "DELEGATION_EMPTY_TEAM_ID"
	CodeDelegationEmptyEmail              Code = "DELEGATION_EMPTY_EMAIL"
	CodeDelegationSelfEmail               Code = "DELEGATION_SELF_EMAIL"
	CodeDelegationEmailTaken              Code = "DELEGATION_EMAIL_TAKEN"
	CodeDelegationActiveExists            Code = "DELEGATION_ACTIVE_EXISTS"
	CodeDelegationInvalidStatusTransition Code = "DELEGATION_INVALID_STATUS_TRANSITION"
	CodeDelegationExpired                 Code = "DELEGATION_EXPIRED"

	// Sync session errors
	CodeSyncEmptyTeamID     Code = "SYNC_EMPTY_TEAM_ID"
	CodeSyncInvalidType     Code = "SYNC_INVALID_TYPE"
	CodeSyncActiveExists    Code = "SYNC_ACTIVE_SESSION_EXISTS"
	CodeSyncSessionTerminal Code = "SYNC_SESSION_TERMINAL"

	// Flow state errors
	CodeFlowStateEmptyStep Code = "FLOW_STATE_EMPTY_STEP"

	// Event errors
	CodeEventKindUnknown Code = "EVENT_KIND_UNKNOWN"

	// Storage errors
	CodeNotFound           Code = "NOT_FOUND"
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeStageUnknown,
		CodeProgressEmptyUserID,
		CodeProgressLevelOutOfRange,
		CodeProgressAchievementKey,
		CodeDelegationEmptyTeamID,
		CodeDelegationEmptyEmail,
		CodeSyncEmptyTeamID,
		CodeSyncInvalidType,
		CodeFlowStateEmptyStep,
		CodeEventKindUnknown:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeStageLocked,
		CodeProgressStageCapped,
		CodeProgressDelegationHeld,
		CodeDelegationSelfEmail,
		CodeDelegationEmailTaken,
		CodeDelegationActiveExists,
		CodeDelegationInvalidStatusTransition,
		CodeDelegationExpired,
		CodeSyncActiveExists,
		CodeSyncSessionTerminal:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// Unavailable - transient I/O failures the caller should retry
	case CodeFuelCountersUnavailable,
		CodeStorageUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
