// Package executor handles command execution with privilege escalation support.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Executor runs external commands with optional sudo elevation. Dry-run
// mode skips the mutating Run variants; the Output query variants always
// execute, so existence probes keep answering and a dry run can still show
// a real plan.
type Executor struct {
	dryRun  bool
	verbose bool
}

// New creates a new Executor with the given options.
func New(dryRun, verbose bool) *Executor {
	return &Executor{
		dryRun:  dryRun,
		verbose: verbose,
	}
}

// Run executes a command without elevation, streaming output to the terminal.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	return e.RunDir(ctx, "", name, args...)
}

// RunDir executes a command in the given working directory.
func (e *Executor) RunDir(ctx context.Context, dir, name string, args ...string) error {
	if e.dryRun {
		e.printDryRun(name, args)
		return nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	return cmd.Run()
}

// RunSudo executes a command with sudo if not already root. When neither
// root nor sudo is available the command runs unelevated; whether that
// succeeds is up to the environment.
func (e *Executor) RunSudo(ctx context.Context, name string, args ...string) error {
	return e.RunSudoDir(ctx, "", name, args...)
}

// RunSudoDir executes a privileged command in the given working directory.
func (e *Executor) RunSudoDir(ctx context.Context, dir, name string, args ...string) error {
	if e.dryRun {
		e.printDryRunSudo(name, args)
		return nil
	}

	cmd := e.elevated(ctx, name, args)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing (%s): %s %s\n", elevationMode(), name, strings.Join(args, " "))
	}

	return cmd.Run()
}

// Output runs a read-only query command and returns its stdout. Queries
// execute even in dry-run mode.
func (e *Executor) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), err
}

// OutputQuiet runs a read-only query command and returns its stdout,
// suppressing stderr. Used for existence probes where "not found" noise is
// expected. Queries execute even in dry-run mode.
func (e *Executor) OutputQuiet(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), err
}

// elevated builds the command with the appropriate privilege prefix.
func (e *Executor) elevated(ctx context.Context, name string, args []string) *exec.Cmd {
	if isRoot() || !hasSudo() {
		return exec.CommandContext(ctx, name, args...)
	}
	sudoArgs := append([]string{name}, args...)
	return exec.CommandContext(ctx, "sudo", sudoArgs...)
}

func elevationMode() string {
	switch {
	case isRoot():
		return "as root"
	case hasSudo():
		return "with sudo"
	default:
		return "unelevated"
	}
}

func (e *Executor) printDryRun(name string, args []string) {
	fmt.Printf("[dry-run] Would execute: %s %s\n", name, strings.Join(args, " "))
}

func (e *Executor) printDryRunSudo(name string, args []string) {
	if isRoot() || !hasSudo() {
		fmt.Printf("[dry-run] Would execute (%s): %s %s\n", elevationMode(), name, strings.Join(args, " "))
	} else {
		fmt.Printf("[dry-run] Would execute (with sudo): sudo %s %s\n", name, strings.Join(args, " "))
	}
}
