package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.AutoConfirm {
		t.Error("AutoConfirm should default to false")
	}
	if !cfg.Output.Color {
		t.Error("Color should default to true")
	}
	if cfg.Sources.MangoRepo != "" {
		t.Errorf("MangoRepo should default to empty, got %q", cfg.Sources.MangoRepo)
	}
	if cfg.Sources.NoctaliaRelease == "" {
		t.Error("NoctaliaRelease should have a default URL")
	}
	if cfg.AUR.Helper != "yay" {
		t.Errorf("AUR helper = %q, want yay", cfg.AUR.Helper)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.AUR.Helper != "yay" {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[general]
auto_confirm = true

[output]
color = false

[sources]
mango_repo = "https://example.com/mangowc.git"

[aur]
helper = "paru"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if !cfg.General.AutoConfirm {
		t.Error("AutoConfirm should be true")
	}
	if cfg.Output.Color {
		t.Error("Color should be false")
	}
	if cfg.Sources.MangoRepo != "https://example.com/mangowc.git" {
		t.Errorf("MangoRepo = %q", cfg.Sources.MangoRepo)
	}
	// Unset keys keep defaults.
	if cfg.Sources.NoctaliaRelease == "" {
		t.Error("NoctaliaRelease default should survive a partial file")
	}
	if cfg.AUR.Helper != "paru" {
		t.Errorf("AUR helper = %q, want paru", cfg.AUR.Helper)
	}
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvMangoRepo, "https://example.com/mango-fork.git")
	t.Setenv(EnvNoctaliaRepo, "https://example.com/noctalia-fork.git")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Sources.MangoRepo != "https://example.com/mango-fork.git" {
		t.Errorf("MangoRepo = %q", cfg.Sources.MangoRepo)
	}
	if cfg.Sources.NoctaliaRepo != "https://example.com/noctalia-fork.git" {
		t.Errorf("NoctaliaRepo = %q", cfg.Sources.NoctaliaRepo)
	}
}

func TestShouldUseColor(t *testing.T) {
	cfg := Default()

	t.Setenv("NO_COLOR", "")
	if !cfg.ShouldUseColor() {
		t.Error("color should be on by default")
	}

	t.Setenv("NO_COLOR", "1")
	if cfg.ShouldUseColor() {
		t.Error("NO_COLOR should disable color")
	}
}

func TestPathsRespectXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := ConfigPath(); got != "/tmp/xdg-config/mango-titus/config.toml" {
		t.Errorf("ConfigPath() = %q", got)
	}
	if got := JournalPath(); got != "/tmp/xdg-data/mango-titus/journal.db" {
		t.Errorf("JournalPath() = %q", got)
	}
	if got := MangoConfigPath(); got != "/tmp/xdg-config/mango/config.conf" {
		t.Errorf("MangoConfigPath() = %q", got)
	}
	if got := NoctaliaDir(); got != "/tmp/xdg-config/quickshell/noctalia-shell" {
		t.Errorf("NoctaliaDir() = %q", got)
	}
}
