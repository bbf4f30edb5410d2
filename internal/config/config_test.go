package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.ServerURL == "" {
		t.Error("expected a default server URL")
	}
	if cfg.FallbackLogoURL == "" || cfg.FallbackFooterText == "" {
		t.Error("fallback defaults must never be empty")
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.Timeout())
	}
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != DefaultConfig().ServerURL {
		t.Errorf("ServerURL=%q", cfg.ServerURL)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brandkit.yaml")
	data := []byte("server_url: https://branding.example.com\nfallback_footer_text: \"© Example Corp\"\ntimeout_seconds: 3\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "https://branding.example.com" {
		t.Errorf("ServerURL=%q", cfg.ServerURL)
	}
	if cfg.FallbackFooterText != "© Example Corp" {
		t.Errorf("FallbackFooterText=%q", cfg.FallbackFooterText)
	}
	// Untouched keys keep their defaults.
	if cfg.FallbackLogoURL != DefaultConfig().FallbackLogoURL {
		t.Errorf("FallbackLogoURL=%q", cfg.FallbackLogoURL)
	}
	if cfg.Timeout() != 3*time.Second {
		t.Errorf("Timeout=%v", cfg.Timeout())
	}

	d := cfg.Defaults()
	if d.FooterText != "© Example Corp" {
		t.Errorf("Defaults()=%+v", d)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server_url: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestToken(t *testing.T) {
	t.Setenv(TokenEnv, "tok-42")
	if Token() != "tok-42" {
		t.Fatalf("Token()=%q", Token())
	}
	t.Setenv(TokenEnv, "")
	if Token() != "" {
		t.Fatalf("Token()=%q", Token())
	}
}
