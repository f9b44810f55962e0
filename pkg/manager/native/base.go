// Package native implements the supported system package manager backends.
package native

import (
	"os/exec"

	"github.com/harshv5094/mango-titus/internal/executor"
)

// BaseManager provides common functionality for all native package managers.
type BaseManager struct {
	name        string
	displayName string
	binary      string
	needsSudo   bool
	exec        *executor.Executor
}

// NewBaseManager creates a new BaseManager with the given parameters.
func NewBaseManager(name, displayName, binary string, needsSudo bool) *BaseManager {
	return &BaseManager{
		name:        name,
		displayName: displayName,
		binary:      binary,
		needsSudo:   needsSudo,
		exec:        executor.New(false, false),
	}
}

// Name returns the short identifier for this manager.
func (b *BaseManager) Name() string {
	return b.name
}

// DisplayName returns the human-readable name.
func (b *BaseManager) DisplayName() string {
	return b.displayName
}

// Binary returns the control executable for this manager.
func (b *BaseManager) Binary() string {
	return b.binary
}

// IsAvailable returns true if the control executable is on the search path.
func (b *BaseManager) IsAvailable() bool {
	_, err := exec.LookPath(b.binary)
	return err == nil
}

// NeedsSudo returns true if this manager requires root privileges.
func (b *BaseManager) NeedsSudo() bool {
	return b.needsSudo
}

// Executor returns the executor instance.
func (b *BaseManager) Executor() *executor.Executor {
	return b.exec
}

// SetExecutor sets the executor instance.
func (b *BaseManager) SetExecutor(exec *executor.Executor) {
	b.exec = exec
}
