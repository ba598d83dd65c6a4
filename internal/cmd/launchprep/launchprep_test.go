package launchprep

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfig_ParsesDefaultsAndFlags(t *testing.T) {
	fs := flag.NewFlagSet("launchprep", flag.ContinueOnError)
	t.Setenv("LIFTOFF_SPACE_LAUNCHPREP_PORT", "9094")
	t.Setenv("LIFTOFF_SPACE_LAUNCHPREP_DOCUMENTS_URL", "http://documents:8080")

	cfg, err := ParseConfig(fs, []string{"-invites-url", "http://invites:8081", "-refresh-interval", "30s"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9094 {
		t.Fatalf("port = %d, want 9094", cfg.Port)
	}
	if cfg.DocumentsURL != "http://documents:8080" {
		t.Fatalf("documents url = %q", cfg.DocumentsURL)
	}
	if cfg.InvitesURL != "http://invites:8081" {
		t.Fatalf("invites url = %q", cfg.InvitesURL)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Fatalf("refresh interval = %v, want 30s", cfg.RefreshInterval)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	fs := flag.NewFlagSet("launchprep", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8094 {
		t.Fatalf("port = %d, want 8094", cfg.Port)
	}
	if cfg.DBPath != "data/launchprep.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if cfg.CounterCacheTTL != 30*time.Second {
		t.Fatalf("counter cache ttl = %v, want 30s", cfg.CounterCacheTTL)
	}
	if cfg.InviteTTL != 168*time.Hour {
		t.Fatalf("invite ttl = %v, want 168h", cfg.InviteTTL)
	}
}
