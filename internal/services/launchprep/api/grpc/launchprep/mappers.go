package launchprep

import (
	"time"

	launchprepv1 "github.com/louisbranch/liftoff.space/api/launchprep/v1"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/delegation"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/flowstate"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/fuel"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/ingest"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/progress"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toProtoTime(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toProtoStageProgress(p progress.StageProgress) *launchprepv1.StageProgress {
	return &launchprepv1.StageProgress{
		UserId:       p.UserID,
		TeamId:       p.TeamID,
		Stage:        p.Stage.Label(),
		Level:        int32(p.Level),
		Achievements: append([]string(nil), p.Achievements...),
		PointsEarned: int32(p.Points),
		CreatedAt:    toProtoTime(p.CreatedAt),
		UpdatedAt:    toProtoTime(p.UpdatedAt),
	}
}

func toProtoDelegation(d delegation.Delegation, now time.Time) *launchprepv1.Delegation {
	return &launchprepv1.Delegation{
		Id:               d.ID,
		TeamId:           d.TeamID,
		DelegatingUserId: d.DelegatingUserID,
		DelegateEmail:    d.DelegatedToEmail,
		Status:           d.Status.Label(),
		Expired:          d.Expired(now),
		CreatedAt:        toProtoTime(d.CreatedAt),
		UpdatedAt:        toProtoTime(d.UpdatedAt),
		ExpiresAt:        toProtoTime(d.ExpiresAt),
	}
}

func toProtoSyncCounters(c ingest.Counters) *launchprepv1.SyncCounters {
	return &launchprepv1.SyncCounters{
		TotalFilesDiscovered: int64(c.TotalFilesDiscovered),
		FilesStored:          int64(c.FilesStored),
		FilesClassified:      int64(c.FilesClassified),
	}
}

func fromProtoSyncCounters(c *launchprepv1.SyncCounters) ingest.Counters {
	if c == nil {
		return ingest.Counters{}
	}
	return ingest.Counters{
		TotalFilesDiscovered: int(c.TotalFilesDiscovered),
		FilesStored:          int(c.FilesStored),
		FilesClassified:      int(c.FilesClassified),
	}
}

func toProtoSyncSession(s ingest.Session) *launchprepv1.SyncSession {
	return &launchprepv1.SyncSession{
		Id:              s.ID,
		TeamId:          s.TeamID,
		SyncType:        s.Type.Label(),
		Status:          s.Status.Label(),
		Counters:        toProtoSyncCounters(s.Counters),
		ProgressPercent: int32(s.Progress()),
		Reason:          s.Reason,
		StartedAt:       toProtoTime(s.StartedAt),
		UpdatedAt:       toProtoTime(s.UpdatedAt),
		EndedAt:         toProtoTime(s.EndedAt),
	}
}

func toProtoFlowState(s flowstate.State) *launchprepv1.FlowState {
	return &launchprepv1.FlowState{
		UserId:    s.UserID,
		Stage:     s.Stage.Label(),
		Step:      s.Step,
		Provider:  s.Provider,
		Payload:   s.Payload,
		UpdatedAt: toProtoTime(s.UpdatedAt),
	}
}

func toProtoDimension(d fuel.DimensionProgress) *launchprepv1.DimensionProgress {
	return &launchprepv1.DimensionProgress{
		Current:  int32(d.Current),
		Required: int32(d.Required),
		Percent:  int32(d.Percent),
	}
}
