package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeStageUnknown                      = "STAGE_UNKNOWN"
	CodeStageLocked                       = "STAGE_LOCKED"
	CodeProgressEmptyUserID               = "PROGRESS_EMPTY_USER_ID"
	CodeProgressLevelOutOfRange           = "PROGRESS_LEVEL_OUT_OF_RANGE"
	CodeProgressStageCapped               = "PROGRESS_STAGE_CAPPED"
	CodeProgressAchievementKey            = "PROGRESS_INVALID_ACHIEVEMENT_KEY"
	CodeProgressDelegationHeld            = "PROGRESS_DELEGATION_HELD"
	CodeFuelCountersUnavailable           = "FUEL_COUNTERS_UNAVAILABLE"
	CodeDelegationEmptyTeamID             = "DELEGATION_EMPTY_TEAM_ID"
	CodeDelegationEmptyEmail              = "DELEGATION_EMPTY_EMAIL"
	CodeDelegationSelfEmail               = "DELEGATION_SELF_EMAIL"
	CodeDelegationEmailTaken              = "DELEGATION_EMAIL_TAKEN"
	CodeDelegationActiveExists            = "DELEGATION_ACTIVE_EXISTS"
	CodeDelegationInvalidStatusTransition = "DELEGATION_INVALID_STATUS_TRANSITION"
	CodeDelegationExpired                 = "DELEGATION_EXPIRED"
	CodeSyncEmptyTeamID                   = "SYNC_EMPTY_TEAM_ID"
	CodeSyncInvalidType                   = "SYNC_INVALID_TYPE"
	CodeSyncActiveExists                  = "SYNC_ACTIVE_SESSION_EXISTS"
	CodeSyncSessionTerminal               = "SYNC_SESSION_TERMINAL"
	CodeFlowStateEmptyStep                = "FLOW_STATE_EMPTY_STEP"
	CodeEventKindUnknown                  = "EVENT_KIND_UNKNOWN"
	CodeNotFound                          = "NOT_FOUND"
	CodeStorageUnavailable                = "STORAGE_UNAVAILABLE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Stage errors
		CodeStageUnknown: "Unknown stage: {{.Stage}}",
		CodeStageLocked:  "Stage {{.Stage}} is locked until earlier stages reach level 1",

		// Progress errors
		CodeProgressEmptyUserID:     "User ID is required",
		CodeProgressLevelOutOfRange: "Level {{.Level}} is outside the valid range 0 to 5",
		CodeProgressStageCapped:     "Stage {{.Stage}} is already at the maximum level",
		CodeProgressAchievementKey:  "Invalid achievement key: {{.Key}}",
		CodeProgressDelegationHeld:  "Progress updates are paused while setup is delegated",

		// Fuel errors
		CodeFuelCountersUnavailable: "Document counters are temporarily unavailable, try again",

		// Delegation errors
		CodeDelegationEmptyTeamID:             "Team ID is required",
		CodeDelegationEmptyEmail:              "Delegate email is required",
		CodeDelegationSelfEmail:               "You cannot delegate setup to yourself",
		CodeDelegationEmailTaken:              "{{.Email}} already has an account, delegation only invites new admins",
		CodeDelegationActiveExists:            "A setup delegation is already in progress, cancel it first",
		CodeDelegationInvalidStatusTransition: "Cannot move delegation from {{.FromStatus}} to {{.ToStatus}}",
		CodeDelegationExpired:                 "The delegation invite expired, resend or cancel it",

		// Sync session errors
		CodeSyncEmptyTeamID:     "Team ID is required",
		CodeSyncInvalidType:     "Invalid sync type: {{.SyncType}}",
		CodeSyncActiveExists:    "A data sync is already running for this team",
		CodeSyncSessionTerminal: "The sync session already finished and cannot change",

		// Flow state errors
		CodeFlowStateEmptyStep: "Flow step is required",

		// Event errors
		CodeEventKindUnknown: "Unknown change notification kind: {{.Kind}}",

		// Storage errors
		CodeNotFound:           "The requested record was not found",
		CodeStorageUnavailable: "Storage is temporarily unavailable, try again",
	},
}
