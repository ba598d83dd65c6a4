package launchprep

import (
	"testing"

	launchprepv1 "github.com/louisbranch/liftoff.space/api/launchprep/v1"
)

func TestProtoContract_LaunchPrepServiceSymbolsExist(t *testing.T) {
	var _ launchprepv1.LaunchPrepServiceServer = (*Service)(nil)
	if got := launchprepv1.LaunchPrepService_ServiceDesc.ServiceName; got != "launchprep.v1.LaunchPrepService" {
		t.Fatalf("service name = %q", got)
	}
	if got := len(launchprepv1.LaunchPrepService_ServiceDesc.Methods); got != 24 {
		t.Fatalf("method count = %d, want 24", got)
	}
}
