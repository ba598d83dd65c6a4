package launchprepv1

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// StageProgress is one per-user, per-stage progression record. Stage labels
// are "fuel", "boosters", and "guidance".
type StageProgress struct {
	UserId       string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TeamId       string                 `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	Stage        string                 `protobuf:"bytes,3,opt,name=stage,proto3" json:"stage,omitempty"`
	Level        int32                  `protobuf:"varint,4,opt,name=level,proto3" json:"level,omitempty"`
	Achievements []string               `protobuf:"bytes,5,rep,name=achievements,proto3" json:"achievements,omitempty"`
	PointsEarned int32                  `protobuf:"varint,6,opt,name=points_earned,json=pointsEarned,proto3" json:"points_earned,omitempty"`
	CreatedAt    *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt    *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *StageProgress) Reset()         { *m = StageProgress{} }
func (m *StageProgress) String() string { return fmt.Sprintf("%+v", *m) }
func (m *StageProgress) ProtoMessage()  {}

// Delegation is one transfer of setup responsibility. Status labels are
// "pending_invite", "accepted", "in_progress", "completed", and "cancelled".
type Delegation struct {
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TeamId           string                 `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	DelegatingUserId string                 `protobuf:"bytes,3,opt,name=delegating_user_id,json=delegatingUserId,proto3" json:"delegating_user_id,omitempty"`
	DelegateEmail    string                 `protobuf:"bytes,4,opt,name=delegate_email,json=delegateEmail,proto3" json:"delegate_email,omitempty"`
	Status           string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Expired          bool                   `protobuf:"varint,6,opt,name=expired,proto3" json:"expired,omitempty"`
	CreatedAt        *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	ExpiresAt        *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
}

func (m *Delegation) Reset()         { *m = Delegation{} }
func (m *Delegation) String() string { return fmt.Sprintf("%+v", *m) }
func (m *Delegation) ProtoMessage()  {}

// SyncCounters are the high-water-mark pipeline counts for one sync session.
type SyncCounters struct {
	TotalFilesDiscovered int64 `protobuf:"varint,1,opt,name=total_files_discovered,json=totalFilesDiscovered,proto3" json:"total_files_discovered,omitempty"`
	FilesStored          int64 `protobuf:"varint,2,opt,name=files_stored,json=filesStored,proto3" json:"files_stored,omitempty"`
	FilesClassified      int64 `protobuf:"varint,3,opt,name=files_classified,json=filesClassified,proto3" json:"files_classified,omitempty"`
}

func (m *SyncCounters) Reset()         { *m = SyncCounters{} }
func (m *SyncCounters) String() string { return fmt.Sprintf("%+v", *m) }
func (m *SyncCounters) ProtoMessage()  {}

// SyncSession is one ingestion run. Sync type labels are "initial",
// "incremental", and "manual"; status labels are "in_progress", "completed",
// and "failed".
type SyncSession struct {
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TeamId          string                 `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	SyncType        string                 `protobuf:"bytes,3,opt,name=sync_type,json=syncType,proto3" json:"sync_type,omitempty"`
	Status          string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Counters        *SyncCounters          `protobuf:"bytes,5,opt,name=counters,proto3" json:"counters,omitempty"`
	ProgressPercent int32                  `protobuf:"varint,6,opt,name=progress_percent,json=progressPercent,proto3" json:"progress_percent,omitempty"`
	Reason          string                 `protobuf:"bytes,7,opt,name=reason,proto3" json:"reason,omitempty"`
	StartedAt       *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	EndedAt         *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=ended_at,json=endedAt,proto3" json:"ended_at,omitempty"`
}

func (m *SyncSession) Reset()         { *m = SyncSession{} }
func (m *SyncSession) String() string { return fmt.Sprintf("%+v", *m) }
func (m *SyncSession) ProtoMessage()  {}

// FlowState is the persisted position within one multi-step flow.
type FlowState struct {
	UserId    string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Stage     string                 `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	Step      string                 `protobuf:"bytes,3,opt,name=step,proto3" json:"step,omitempty"`
	Provider  string                 `protobuf:"bytes,4,opt,name=provider,proto3" json:"provider,omitempty"`
	Payload   string                 `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
	UpdatedAt *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *FlowState) Reset()         { *m = FlowState{} }
func (m *FlowState) String() string { return fmt.Sprintf("%+v", *m) }
func (m *FlowState) ProtoMessage()  {}

// DimensionProgress reports one counter dimension's movement toward the next
// fuel level threshold.
type DimensionProgress struct {
	Current  int32 `protobuf:"varint,1,opt,name=current,proto3" json:"current,omitempty"`
	Required int32 `protobuf:"varint,2,opt,name=required,proto3" json:"required,omitempty"`
	Percent  int32 `protobuf:"varint,3,opt,name=percent,proto3" json:"percent,omitempty"`
}

func (m *DimensionProgress) Reset()         { *m = DimensionProgress{} }
func (m *DimensionProgress) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DimensionProgress) ProtoMessage()  {}

type GetStageProgressRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TeamId string `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	Stage  string `protobuf:"bytes,3,opt,name=stage,proto3" json:"stage,omitempty"`
}

func (m *GetStageProgressRequest) Reset()         { *m = GetStageProgressRequest{} }
func (m *GetStageProgressRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetStageProgressRequest) ProtoMessage()  {}

// StageProgressResponse carries the updated record for every progression
// mutation. NewlyGranted reports whether a grant was applied by this call.
type StageProgressResponse struct {
	Progress     *StageProgress `protobuf:"bytes,1,opt,name=progress,proto3" json:"progress,omitempty"`
	NewlyGranted bool           `protobuf:"varint,2,opt,name=newly_granted,json=newlyGranted,proto3" json:"newly_granted,omitempty"`
}

func (m *StageProgressResponse) Reset()         { *m = StageProgressResponse{} }
func (m *StageProgressResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *StageProgressResponse) ProtoMessage()  {}

type GetLaunchStatusRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TeamId string `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
}

func (m *GetLaunchStatusRequest) Reset()         { *m = GetLaunchStatusRequest{} }
func (m *GetLaunchStatusRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetLaunchStatusRequest) ProtoMessage()  {}

type GetLaunchStatusResponse struct {
	Stages             []*StageProgress `protobuf:"bytes,1,rep,name=stages,proto3" json:"stages,omitempty"`
	PointsTotal        int32            `protobuf:"varint,2,opt,name=points_total,json=pointsTotal,proto3" json:"points_total,omitempty"`
	ReadyForFinalStage bool             `protobuf:"varint,3,opt,name=ready_for_final_stage,json=readyForFinalStage,proto3" json:"ready_for_final_stage,omitempty"`
	AwaitingSetup      bool             `protobuf:"varint,4,opt,name=awaiting_setup,json=awaitingSetup,proto3" json:"awaiting_setup,omitempty"`
	BoostersUnlocked   bool             `protobuf:"varint,5,opt,name=boosters_unlocked,json=boostersUnlocked,proto3" json:"boosters_unlocked,omitempty"`
	GuidanceUnlocked   bool             `protobuf:"varint,6,opt,name=guidance_unlocked,json=guidanceUnlocked,proto3" json:"guidance_unlocked,omitempty"`
}

func (m *GetLaunchStatusResponse) Reset()         { *m = GetLaunchStatusResponse{} }
func (m *GetLaunchStatusResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetLaunchStatusResponse) ProtoMessage()  {}

type RefreshFuelLevelRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TeamId string `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	Force  bool   `protobuf:"varint,3,opt,name=force,proto3" json:"force,omitempty"`
}

func (m *RefreshFuelLevelRequest) Reset()         { *m = RefreshFuelLevelRequest{} }
func (m *RefreshFuelLevelRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *RefreshFuelLevelRequest) ProtoMessage()  {}

type GetFuelProgressRequest struct {
	TeamId string `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
}

func (m *GetFuelProgressRequest) Reset()         { *m = GetFuelProgressRequest{} }
func (m *GetFuelProgressRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetFuelProgressRequest) ProtoMessage()  {}

type GetFuelProgressResponse struct {
	CurrentLevel int32              `protobuf:"varint,1,opt,name=current_level,json=currentLevel,proto3" json:"current_level,omitempty"`
	NextLevel    int32              `protobuf:"varint,2,opt,name=next_level,json=nextLevel,proto3" json:"next_level,omitempty"`
	Documents    *DimensionProgress `protobuf:"bytes,3,opt,name=documents,proto3" json:"documents,omitempty"`
	Categories   *DimensionProgress `protobuf:"bytes,4,opt,name=categories,proto3" json:"categories,omitempty"`
}

func (m *GetFuelProgressResponse) Reset()         { *m = GetFuelProgressResponse{} }
func (m *GetFuelProgressResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetFuelProgressResponse) ProtoMessage()  {}

type CompleteAchievementRequest struct {
	UserId         string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TeamId         string `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	Stage          string `protobuf:"bytes,3,opt,name=stage,proto3" json:"stage,omitempty"`
	AchievementKey string `protobuf:"bytes,4,opt,name=achievement_key,json=achievementKey,proto3" json:"achievement_key,omitempty"`
}

func (m *CompleteAchievementRequest) Reset()         { *m = CompleteAchievementRequest{} }
func (m *CompleteAchievementRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CompleteAchievementRequest) ProtoMessage()  {}

type AdvanceStageLevelRequest struct {
	UserId      string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TeamId      string `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	Stage       string `protobuf:"bytes,3,opt,name=stage,proto3" json:"stage,omitempty"`
	TargetLevel int32  `protobuf:"varint,4,opt,name=target_level,json=targetLevel,proto3" json:"target_level,omitempty"`
}

func (m *AdvanceStageLevelRequest) Reset()         { *m = AdvanceStageLevelRequest{} }
func (m *AdvanceStageLevelRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *AdvanceStageLevelRequest) ProtoMessage()  {}

type InheritGuidanceRequest struct {
	MemberId   string `protobuf:"bytes,1,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	TeamId     string `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	AdminLevel int32  `protobuf:"varint,3,opt,name=admin_level,json=adminLevel,proto3" json:"admin_level,omitempty"`
}

func (m *InheritGuidanceRequest) Reset()         { *m = InheritGuidanceRequest{} }
func (m *InheritGuidanceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *InheritGuidanceRequest) ProtoMessage()  {}

type CreateDelegationRequest struct {
	TeamId           string `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	TeamName         string `protobuf:"bytes,2,opt,name=team_name,json=teamName,proto3" json:"team_name,omitempty"`
	DelegatingUserId string `protobuf:"bytes,3,opt,name=delegating_user_id,json=delegatingUserId,proto3" json:"delegating_user_id,omitempty"`
	DelegatorEmail   string `protobuf:"bytes,4,opt,name=delegator_email,json=delegatorEmail,proto3" json:"delegator_email,omitempty"`
	DelegateEmail    string `protobuf:"bytes,5,opt,name=delegate_email,json=delegateEmail,proto3" json:"delegate_email,omitempty"`
}

func (m *CreateDelegationRequest) Reset()         { *m = CreateDelegationRequest{} }
func (m *CreateDelegationRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CreateDelegationRequest) ProtoMessage()  {}

type AcceptDelegationRequest struct {
	DelegationId string `protobuf:"bytes,1,opt,name=delegation_id,json=delegationId,proto3" json:"delegation_id,omitempty"`
}

func (m *AcceptDelegationRequest) Reset()         { *m = AcceptDelegationRequest{} }
func (m *AcceptDelegationRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *AcceptDelegationRequest) ProtoMessage()  {}

type BeginDelegationRequest struct {
	DelegationId string `protobuf:"bytes,1,opt,name=delegation_id,json=delegationId,proto3" json:"delegation_id,omitempty"`
}

func (m *BeginDelegationRequest) Reset()         { *m = BeginDelegationRequest{} }
func (m *BeginDelegationRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *BeginDelegationRequest) ProtoMessage()  {}

type CompleteDelegationRequest struct {
	DelegationId string `protobuf:"bytes,1,opt,name=delegation_id,json=delegationId,proto3" json:"delegation_id,omitempty"`
	DelegateName string `protobuf:"bytes,2,opt,name=delegate_name,json=delegateName,proto3" json:"delegate_name,omitempty"`
}

func (m *CompleteDelegationRequest) Reset()         { *m = CompleteDelegationRequest{} }
func (m *CompleteDelegationRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CompleteDelegationRequest) ProtoMessage()  {}

type CancelDelegationRequest struct {
	DelegationId string `protobuf:"bytes,1,opt,name=delegation_id,json=delegationId,proto3" json:"delegation_id,omitempty"`
}

func (m *CancelDelegationRequest) Reset()         { *m = CancelDelegationRequest{} }
func (m *CancelDelegationRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CancelDelegationRequest) ProtoMessage()  {}

type ResendDelegationInviteRequest struct {
	DelegationId string `protobuf:"bytes,1,opt,name=delegation_id,json=delegationId,proto3" json:"delegation_id,omitempty"`
	TeamName     string `protobuf:"bytes,2,opt,name=team_name,json=teamName,proto3" json:"team_name,omitempty"`
}

func (m *ResendDelegationInviteRequest) Reset()         { *m = ResendDelegationInviteRequest{} }
func (m *ResendDelegationInviteRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ResendDelegationInviteRequest) ProtoMessage()  {}

type GetActiveDelegationRequest struct {
	TeamId string `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
}

func (m *GetActiveDelegationRequest) Reset()         { *m = GetActiveDelegationRequest{} }
func (m *GetActiveDelegationRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetActiveDelegationRequest) ProtoMessage()  {}

type DelegationResponse struct {
	Delegation *Delegation `protobuf:"bytes,1,opt,name=delegation,proto3" json:"delegation,omitempty"`
}

func (m *DelegationResponse) Reset()         { *m = DelegationResponse{} }
func (m *DelegationResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *DelegationResponse) ProtoMessage()  {}

type StartSyncSessionRequest struct {
	TeamId   string `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	SyncType string `protobuf:"bytes,2,opt,name=sync_type,json=syncType,proto3" json:"sync_type,omitempty"`
}

func (m *StartSyncSessionRequest) Reset()         { *m = StartSyncSessionRequest{} }
func (m *StartSyncSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *StartSyncSessionRequest) ProtoMessage()  {}

type UpdateSyncCountersRequest struct {
	SessionId string        `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Counters  *SyncCounters `protobuf:"bytes,2,opt,name=counters,proto3" json:"counters,omitempty"`
}

func (m *UpdateSyncCountersRequest) Reset()         { *m = UpdateSyncCountersRequest{} }
func (m *UpdateSyncCountersRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *UpdateSyncCountersRequest) ProtoMessage()  {}

// CompleteSyncSessionRequest ends a session. FinalCounters is optional; when
// set it merges as a last high-water-mark snapshot before completion.
type CompleteSyncSessionRequest struct {
	SessionId     string        `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	FinalCounters *SyncCounters `protobuf:"bytes,2,opt,name=final_counters,json=finalCounters,proto3" json:"final_counters,omitempty"`
}

func (m *CompleteSyncSessionRequest) Reset()         { *m = CompleteSyncSessionRequest{} }
func (m *CompleteSyncSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *CompleteSyncSessionRequest) ProtoMessage()  {}

type FailSyncSessionRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Reason    string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (m *FailSyncSessionRequest) Reset()         { *m = FailSyncSessionRequest{} }
func (m *FailSyncSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *FailSyncSessionRequest) ProtoMessage()  {}

type GetCurrentSyncSessionRequest struct {
	TeamId string `protobuf:"bytes,1,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
}

func (m *GetCurrentSyncSessionRequest) Reset()         { *m = GetCurrentSyncSessionRequest{} }
func (m *GetCurrentSyncSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *GetCurrentSyncSessionRequest) ProtoMessage()  {}

type SyncSessionResponse struct {
	Session *SyncSession `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
}

func (m *SyncSessionResponse) Reset()         { *m = SyncSessionResponse{} }
func (m *SyncSessionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *SyncSessionResponse) ProtoMessage()  {}

type BeginFlowRequest struct {
	UserId   string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Stage    string `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	Step     string `protobuf:"bytes,3,opt,name=step,proto3" json:"step,omitempty"`
	Provider string `protobuf:"bytes,4,opt,name=provider,proto3" json:"provider,omitempty"`
}

func (m *BeginFlowRequest) Reset()         { *m = BeginFlowRequest{} }
func (m *BeginFlowRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *BeginFlowRequest) ProtoMessage()  {}

type AdvanceFlowRequest struct {
	UserId  string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Stage   string `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	Step    string `protobuf:"bytes,3,opt,name=step,proto3" json:"step,omitempty"`
	Payload string `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *AdvanceFlowRequest) Reset()         { *m = AdvanceFlowRequest{} }
func (m *AdvanceFlowRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *AdvanceFlowRequest) ProtoMessage()  {}

type ResumeFlowRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Stage  string `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
}

func (m *ResumeFlowRequest) Reset()         { *m = ResumeFlowRequest{} }
func (m *ResumeFlowRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ResumeFlowRequest) ProtoMessage()  {}

type ClearFlowRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Stage  string `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
}

func (m *ClearFlowRequest) Reset()         { *m = ClearFlowRequest{} }
func (m *ClearFlowRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ClearFlowRequest) ProtoMessage()  {}

type FlowStateResponse struct {
	Flow *FlowState `protobuf:"bytes,1,opt,name=flow,proto3" json:"flow,omitempty"`
}

func (m *FlowStateResponse) Reset()         { *m = FlowStateResponse{} }
func (m *FlowStateResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *FlowStateResponse) ProtoMessage()  {}

type ClearFlowResponse struct{}

func (m *ClearFlowResponse) Reset()         { *m = ClearFlowResponse{} }
func (m *ClearFlowResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *ClearFlowResponse) ProtoMessage()  {}

// NotifyChangeRequest pushes one change notification into the refresh loop.
// Kind labels are "counters", "delegation", and "sync".
type NotifyChangeRequest struct {
	Kind   string `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	TeamId string `protobuf:"bytes,2,opt,name=team_id,json=teamId,proto3" json:"team_id,omitempty"`
	UserId string `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *NotifyChangeRequest) Reset()         { *m = NotifyChangeRequest{} }
func (m *NotifyChangeRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (m *NotifyChangeRequest) ProtoMessage()  {}

// NotifyChangeResponse reports whether the event was buffered. A dropped
// event is not an error; the periodic refresh covers it.
type NotifyChangeResponse struct {
	Accepted bool `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
}

func (m *NotifyChangeResponse) Reset()         { *m = NotifyChangeResponse{} }
func (m *NotifyChangeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (m *NotifyChangeResponse) ProtoMessage()  {}
