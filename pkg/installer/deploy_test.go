package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harshv5094/mango-titus/internal/config"
	"github.com/harshv5094/mango-titus/pkg/manager"
)

func testInstaller(t *testing.T, dryRun bool) *Installer {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(config.Default(), nil, nil, nil, manager.InstallOpts{DryRun: dryRun})
}

func TestDeployConfigWritesDefault(t *testing.T) {
	inst := testInstaller(t, false)

	written, err := inst.DeployConfig(false)
	if err != nil {
		t.Fatalf("DeployConfig() error: %v", err)
	}
	if !written {
		t.Fatal("expected config to be written")
	}

	data, err := os.ReadFile(config.MangoConfigPath())
	if err != nil {
		t.Fatalf("reading deployed config: %v", err)
	}
	if !strings.Contains(string(data), "noctalia-shell") {
		t.Error("deployed config should launch the shell")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(config.MangoConfigPath()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the config file, found %d entries", len(entries))
	}
}

func TestDeployConfigKeepsExisting(t *testing.T) {
	inst := testInstaller(t, false)

	dest := config.MangoConfigPath()
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dest, []byte("# user config\n"), 0644); err != nil {
		t.Fatal(err)
	}

	written, err := inst.DeployConfig(false)
	if err != nil {
		t.Fatalf("DeployConfig() error: %v", err)
	}
	if written {
		t.Error("existing config must not be overwritten without force")
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "# user config\n" {
		t.Error("existing config was modified")
	}
}

func TestDeployConfigForceOverwrites(t *testing.T) {
	inst := testInstaller(t, false)

	dest := config.MangoConfigPath()
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dest, []byte("# user config\n"), 0644); err != nil {
		t.Fatal(err)
	}

	written, err := inst.DeployConfig(true)
	if err != nil {
		t.Fatalf("DeployConfig() error: %v", err)
	}
	if !written {
		t.Fatal("force should overwrite")
	}

	data, _ := os.ReadFile(dest)
	if string(data) == "# user config\n" {
		t.Error("force did not replace the config")
	}
}

func TestDeployConfigDryRun(t *testing.T) {
	inst := testInstaller(t, true)

	written, err := inst.DeployConfig(false)
	if err != nil {
		t.Fatalf("DeployConfig() error: %v", err)
	}
	if written {
		t.Error("dry run must not write")
	}
	if _, err := os.Stat(config.MangoConfigPath()); !os.IsNotExist(err) {
		t.Error("dry run created a file")
	}
}

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "config.conf")

	if err := writeFileAtomic(dest, []byte("data"), 0644); err != nil {
		t.Fatalf("writeFileAtomic() error: %v", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}
}
