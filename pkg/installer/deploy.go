package installer

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harshv5094/mango-titus/internal/config"
	"github.com/harshv5094/mango-titus/internal/ui"
)

//go:embed mango.conf
var defaultCompositorConfig []byte

// DeployConfig writes the default compositor configuration to the per-user
// destination. The write goes through a temp file in the destination
// directory followed by a rename, so the destination is either absent or
// complete, never partially written. An existing config is kept unless
// force is set. Returns true when a file was written.
func (i *Installer) DeployConfig(force bool) (bool, error) {
	dest := config.MangoConfigPath()

	if !force {
		if _, err := os.Stat(dest); err == nil {
			ui.InfoMsg("Keeping existing config at %s", dest)
			return false, nil
		}
	}

	if i.opts.DryRun {
		ui.MutedMsg("[dry-run] Would write %s", dest)
		return false, nil
	}

	if err := writeFileAtomic(dest, defaultCompositorConfig, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// writeFileAtomic writes data to path via a same-directory temp file and
// rename.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".deploy-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
