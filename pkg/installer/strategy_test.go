package installer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunChainStopsAtFirstSuccess(t *testing.T) {
	var ran []string
	step := func(name string, outcome Outcome, err error) Strategy {
		return Strategy{
			Name: name,
			Run: func(ctx context.Context) (Outcome, error) {
				ran = append(ran, name)
				return outcome, err
			},
		}
	}

	outcome, err := RunChain(context.Background(), "mangowc", []Strategy{
		step("presence", OutcomeSkipped, nil),
		step("repo", OutcomeRepoPackage, nil),
		step("source", OutcomeSourceBuild, nil),
	})
	if err != nil {
		t.Fatalf("RunChain() error: %v", err)
	}
	if outcome != OutcomeRepoPackage {
		t.Errorf("outcome = %v, want %v", outcome, OutcomeRepoPackage)
	}
	if len(ran) != 2 {
		t.Errorf("strategies after a success must not run, ran %v", ran)
	}
}

func TestRunChainContinuesPastErrors(t *testing.T) {
	outcome, err := RunChain(context.Background(), "mangowc", []Strategy{
		{Name: "repo", Run: func(ctx context.Context) (Outcome, error) {
			return OutcomeSkipped, errors.New("not in repos")
		}},
		{Name: "source", Run: func(ctx context.Context) (Outcome, error) {
			return OutcomeSourceBuild, nil
		}},
	})
	if err != nil {
		t.Fatalf("RunChain() error: %v", err)
	}
	if outcome != OutcomeSourceBuild {
		t.Errorf("outcome = %v, want %v", outcome, OutcomeSourceBuild)
	}
}

func TestRunChainExhaustion(t *testing.T) {
	_, err := RunChain(context.Background(), "noctalia-shell", []Strategy{
		{Name: "repo", Run: func(ctx context.Context) (Outcome, error) {
			return OutcomeSkipped, nil
		}},
		{Name: "source", Run: func(ctx context.Context) (Outcome, error) {
			return OutcomeSkipped, errors.New("clone failed")
		}},
	})
	if err == nil {
		t.Fatal("expected exhaustion error")
	}
	if !strings.Contains(err.Error(), "noctalia-shell") {
		t.Errorf("error should name the target: %v", err)
	}
}

func TestRunChainEmpty(t *testing.T) {
	if _, err := RunChain(context.Background(), "mangowc", nil); err == nil {
		t.Fatal("empty chain should be exhaustion")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeSkipped, "skipped"},
		{OutcomeAlreadyPresent, "already present"},
		{OutcomeRepoPackage, "repository package"},
		{OutcomeAURPackage, "AUR package"},
		{OutcomeSourceBuild, "built from source"},
		{OutcomeManualInstall, "manual install"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}
