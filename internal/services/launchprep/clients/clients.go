// Package clients provides HTTP adapters for the external systems the
// launch preparation engine depends on: the documents API for counters, the
// accounts API for the user directory, and the invites API for delegation
// mail and notifications.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/platform/timeouts"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/delegation"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/fuel"
)

// Config configures one HTTP client adapter.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c Config) normalized() (Config, error) {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return Config{}, fmt.Errorf("base url is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: timeouts.HTTPRequest}
	}
	return c, nil
}

// DocumentsClient reads team counter snapshots from the documents API.
type DocumentsClient struct {
	cfg Config
}

// NewDocumentsClient builds a documents API adapter.
func NewDocumentsClient(cfg Config) (*DocumentsClient, error) {
	normalized, err := cfg.normalized()
	if err != nil {
		return nil, fmt.Errorf("documents client: %w", err)
	}
	return &DocumentsClient{cfg: normalized}, nil
}

type countersPayload struct {
	FullySyncedDocuments  int      `json:"fully_synced_documents"`
	PendingClassification int      `json:"pending_classification"`
	CategoryCount         int      `json:"category_count"`
	Categories            []string `json:"categories"`
	DriveConnected        bool     `json:"drive_connected"`
}

// FuelCounters returns the team's latest counter snapshot.
func (c *DocumentsClient) FuelCounters(ctx context.Context, teamID string) (fuel.Counters, error) {
	var payload countersPayload
	endpoint := fmt.Sprintf("%s/v1/teams/%s/fuel-counters", c.cfg.BaseURL, url.PathEscape(teamID))
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return fuel.Counters{}, err
	}
	return fuel.Counters{
		FullySyncedDocuments:  payload.FullySyncedDocuments,
		PendingClassification: payload.PendingClassification,
		CategoryCount:         payload.CategoryCount,
		Categories:            payload.Categories,
		DriveConnected:        payload.DriveConnected,
	}, nil
}

type categoriesPayload struct {
	Categories []string `json:"categories"`
}

// TeamCategories returns the team's discovered category names.
func (c *DocumentsClient) TeamCategories(ctx context.Context, teamID string) ([]string, error) {
	var payload categoriesPayload
	endpoint := fmt.Sprintf("%s/v1/teams/%s/categories", c.cfg.BaseURL, url.PathEscape(teamID))
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Categories, nil
}

func (c *DocumentsClient) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build documents request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("documents request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("documents request: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode documents response: %w", err)
	}
	return nil
}

// AccountsClient looks up user accounts in the accounts API.
type AccountsClient struct {
	cfg Config
}

// NewAccountsClient builds an accounts API adapter.
func NewAccountsClient(cfg Config) (*AccountsClient, error) {
	normalized, err := cfg.normalized()
	if err != nil {
		return nil, fmt.Errorf("accounts client: %w", err)
	}
	return &AccountsClient{cfg: normalized}, nil
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LookupUserByEmail returns the account registered for the email, or a
// not-found error when no account exists.
func (c *AccountsClient) LookupUserByEmail(ctx context.Context, email string) (delegation.User, error) {
	endpoint := fmt.Sprintf("%s/v1/users?email=%s", c.cfg.BaseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return delegation.User{}, fmt.Errorf("build accounts request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return delegation.User{}, fmt.Errorf("accounts request: %w", err)
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return delegation.User{}, apperrors.New(apperrors.CodeNotFound, "no account for email")
	default:
		return delegation.User{}, fmt.Errorf("accounts request: unexpected status %d", resp.StatusCode)
	}

	var payload userPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return delegation.User{}, fmt.Errorf("decode accounts response: %w", err)
	}
	return delegation.User{ID: payload.ID, Email: payload.Email, Name: payload.Name}, nil
}

// InvitesClient sends delegation invites and delegator notifications
// through the invites API.
type InvitesClient struct {
	cfg Config
}

// NewInvitesClient builds an invites API adapter.
func NewInvitesClient(cfg Config) (*InvitesClient, error) {
	normalized, err := cfg.normalized()
	if err != nil {
		return nil, fmt.Errorf("invites client: %w", err)
	}
	return &InvitesClient{cfg: normalized}, nil
}

// SendDelegationInvite delivers the delegation invite email.
func (c *InvitesClient) SendDelegationInvite(ctx context.Context, email, teamName string) error {
	return c.postJSON(ctx, c.cfg.BaseURL+"/v1/delegation-invites", map[string]string{
		"email":     email,
		"team_name": teamName,
	})
}

// DelegationCompleted notifies the delegator that setup finished.
func (c *InvitesClient) DelegationCompleted(ctx context.Context, delegatorUserID, delegateName string) error {
	return c.postJSON(ctx, c.cfg.BaseURL+"/v1/notifications", map[string]string{
		"user_id":       delegatorUserID,
		"delegate_name": delegateName,
		"type":          "delegation_completed",
	})
}

func (c *InvitesClient) postJSON(ctx context.Context, endpoint string, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal invites payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build invites request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("invites request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("invites request: unexpected status %d", resp.StatusCode)
	}
	return nil
}

var (
	_ fuel.CounterSource       = (*DocumentsClient)(nil)
	_ delegation.UserDirectory = (*AccountsClient)(nil)
	_ delegation.InviteSender  = (*InvitesClient)(nil)
	_ delegation.Notifier      = (*InvitesClient)(nil)
)
