package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
)

func TestDocumentsClientFuelCounters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/teams/team-1/fuel-counters" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"fully_synced_documents": 42,
			"pending_classification": 3,
			"category_count":         2,
			"categories":             []string{"contracts", "invoices"},
			"drive_connected":        true,
		})
	}))
	t.Cleanup(server.Close)

	client, err := NewDocumentsClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new documents client: %v", err)
	}
	counters, err := client.FuelCounters(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("fuel counters: %v", err)
	}
	if counters.FullySyncedDocuments != 42 || counters.CategoryCount != 2 || !counters.DriveConnected {
		t.Fatalf("counters = %+v", counters)
	}
	if len(counters.Categories) != 2 {
		t.Fatalf("categories = %v", counters.Categories)
	}
}

func TestDocumentsClientRejectsBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, err := NewDocumentsClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new documents client: %v", err)
	}
	if _, err := client.FuelCounters(context.Background(), "team-1"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestAccountsClientLookup(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("email") != "admin@x.com" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":    "user-7",
			"email": "admin@x.com",
			"name":  "Admin",
		})
	}))
	t.Cleanup(server.Close)

	client, err := NewAccountsClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new accounts client: %v", err)
	}

	user, err := client.LookupUserByEmail(context.Background(), "admin@x.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if user.ID != "user-7" || user.Name != "Admin" {
		t.Fatalf("user = %+v", user)
	}

	_, err = client.LookupUserByEmail(context.Background(), "missing@x.com")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInvitesClientPostsPayloads(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	client, err := NewInvitesClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new invites client: %v", err)
	}

	if err := client.SendDelegationInvite(context.Background(), "new@x.com", "Acme"); err != nil {
		t.Fatalf("send invite: %v", err)
	}
	if gotPath != "/v1/delegation-invites" || gotBody["email"] != "new@x.com" || gotBody["team_name"] != "Acme" {
		t.Fatalf("path = %q body = %v", gotPath, gotBody)
	}

	if err := client.DelegationCompleted(context.Background(), "user-1", "New Admin"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if gotPath != "/v1/notifications" || gotBody["delegate_name"] != "New Admin" {
		t.Fatalf("path = %q body = %v", gotPath, gotBody)
	}
}

func TestClientsRequireBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewDocumentsClient(Config{}); err == nil {
		t.Fatal("expected base url requirement")
	}
	if _, err := NewAccountsClient(Config{BaseURL: "  "}); err == nil {
		t.Fatal("expected base url requirement")
	}
	if _, err := NewInvitesClient(Config{}); err == nil {
		t.Fatal("expected base url requirement")
	}
}
