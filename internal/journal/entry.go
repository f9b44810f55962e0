// Package journal records install run outcomes with BoltDB.
package journal

import (
	"time"
)

// Target identifies one installable unit of the pipeline.
type Target string

const (
	TargetDependencies Target = "dependencies"
	TargetCompositor   Target = "compositor"
	TargetConfig       Target = "config"
	TargetShell        Target = "shell"
)

// Entry records the outcome of one target in one run.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Target    Target    `json:"target"`
	Outcome   string    `json:"outcome"` // e.g. "repo package", "built from source"
	Detail    string    `json:"detail,omitempty"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewEntry creates a journal entry for a target.
func NewEntry(target Target) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Target:    target,
	}
}

// MarkSuccess marks the entry as successful with the given outcome.
func (e *Entry) MarkSuccess(outcome, detail string) {
	e.Success = true
	e.Outcome = outcome
	e.Detail = detail
}

// MarkFailed marks the entry as failed with an error message.
func (e *Entry) MarkFailed(err error) {
	e.Success = false
	e.Outcome = "failed"
	if err != nil {
		e.Error = err.Error()
	}
}

// Summary returns a brief one-line summary of the entry.
func (e *Entry) Summary() string {
	status := "ok"
	if !e.Success {
		status = "failed"
	}

	line := e.Timestamp.Format("2006-01-02 15:04:05") + " " + string(e.Target) + " " + e.Outcome + " (" + status + ")"
	if e.Detail != "" {
		line += " " + e.Detail
	}
	return line
}
