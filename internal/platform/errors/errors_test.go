package errors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	t.Parallel()

	base := New(CodeDelegationActiveExists, "delegation already active")
	wrapped := fmt.Errorf("create delegation: %w", base)

	if !errors.Is(wrapped, New(CodeDelegationActiveExists, "other message")) {
		t.Fatal("expected code match through wrapping")
	}
	if errors.Is(wrapped, New(CodeNotFound, "not found")) {
		t.Fatal("expected mismatch for different code")
	}
}

func TestGetCodeFallsBackToUnknown(t *testing.T) {
	t.Parallel()

	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("code = %q, want %q", got, CodeUnknown)
	}
	if got := GetCode(Wrap(CodeStorageUnavailable, "write failed", errors.New("io"))); got != CodeStorageUnavailable {
		t.Fatalf("code = %q, want %q", got, CodeStorageUnavailable)
	}
}

func TestHandleErrorMapsGRPCCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code Code
		want codes.Code
	}{
		{CodeDelegationEmailTaken, codes.FailedPrecondition},
		{CodeSyncActiveExists, codes.FailedPrecondition},
		{CodeProgressEmptyUserID, codes.InvalidArgument},
		{CodeFuelCountersUnavailable, codes.Unavailable},
		{CodeNotFound, codes.NotFound},
		{Code("SOMETHING_ELSE"), codes.Internal},
	}
	for _, tc := range cases {
		err := HandleError(New(tc.code, "boom"), "")
		st, ok := status.FromError(err)
		if !ok {
			t.Fatalf("expected grpc status for %s", tc.code)
		}
		if st.Code() != tc.want {
			t.Fatalf("grpc code for %s = %v, want %v", tc.code, st.Code(), tc.want)
		}
	}
}

func TestHandleErrorNil(t *testing.T) {
	t.Parallel()

	if err := HandleError(nil, "en-US"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
