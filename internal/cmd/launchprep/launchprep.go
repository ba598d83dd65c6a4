// Package launchprep parses launch preparation command flags and launches
// the service runtime.
package launchprep

import (
	"context"
	"flag"
	"net/http"
	"time"

	entrypoint "github.com/louisbranch/liftoff.space/internal/platform/cmd"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/app"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/clients"
)

// Config holds launch preparation command configuration.
type Config struct {
	Port            int           `env:"LIFTOFF_SPACE_LAUNCHPREP_PORT" envDefault:"8094"`
	DBPath          string        `env:"LIFTOFF_SPACE_LAUNCHPREP_DB_PATH" envDefault:"data/launchprep.db"`
	DocumentsURL    string        `env:"LIFTOFF_SPACE_LAUNCHPREP_DOCUMENTS_URL"`
	AccountsURL     string        `env:"LIFTOFF_SPACE_LAUNCHPREP_ACCOUNTS_URL"`
	InvitesURL      string        `env:"LIFTOFF_SPACE_LAUNCHPREP_INVITES_URL"`
	RefreshInterval time.Duration `env:"LIFTOFF_SPACE_LAUNCHPREP_REFRESH_INTERVAL" envDefault:"1m"`
	CounterCacheTTL time.Duration `env:"LIFTOFF_SPACE_LAUNCHPREP_COUNTER_CACHE_TTL" envDefault:"30s"`
	InviteTTL       time.Duration `env:"LIFTOFF_SPACE_LAUNCHPREP_INVITE_TTL" envDefault:"168h"`
	HTTPTimeout     time.Duration `env:"LIFTOFF_SPACE_LAUNCHPREP_HTTP_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The launchprep health gRPC server port")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The launchprep SQLite database path")
	fs.StringVar(&cfg.DocumentsURL, "documents-url", cfg.DocumentsURL, "The documents API base URL")
	fs.StringVar(&cfg.AccountsURL, "accounts-url", cfg.AccountsURL, "The accounts API base URL")
	fs.StringVar(&cfg.InvitesURL, "invites-url", cfg.InvitesURL, "The invites API base URL")
	fs.DurationVar(&cfg.RefreshInterval, "refresh-interval", cfg.RefreshInterval, "Periodic counter refresh interval")
	fs.DurationVar(&cfg.CounterCacheTTL, "counter-cache-ttl", cfg.CounterCacheTTL, "Counter snapshot cache TTL")
	fs.DurationVar(&cfg.InviteTTL, "invite-ttl", cfg.InviteTTL, "Delegation invite expiry window")
	fs.DurationVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "External API request timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the launch preparation runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLaunchPrep, func(context.Context) error {
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		documents, err := clients.NewDocumentsClient(clients.Config{BaseURL: cfg.DocumentsURL, HTTPClient: httpClient})
		if err != nil {
			return err
		}
		accounts, err := clients.NewAccountsClient(clients.Config{BaseURL: cfg.AccountsURL, HTTPClient: httpClient})
		if err != nil {
			return err
		}
		invites, err := clients.NewInvitesClient(clients.Config{BaseURL: cfg.InvitesURL, HTTPClient: httpClient})
		if err != nil {
			return err
		}

		return app.Run(ctx, app.RuntimeConfig{
			Port:            cfg.Port,
			DBPath:          cfg.DBPath,
			RefreshInterval: cfg.RefreshInterval,
			CounterCacheTTL: cfg.CounterCacheTTL,
			InviteTTL:       cfg.InviteTTL,
			Counters:        documents,
			Users:           accounts,
			Invites:         invites,
			Notifier:        invites,
		})
	})
}
