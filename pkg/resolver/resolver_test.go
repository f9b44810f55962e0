package resolver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/harshv5094/mango-titus/pkg/manager"
)

// fakeManager is a scripted backend for resolver tests.
type fakeManager struct {
	available   map[string]bool
	installed   map[string]bool
	searchNames []string

	refreshCalls int
	refreshErr   error
	existsErr    error
	installCalls [][]string
	installErr   error
}

func (f *fakeManager) Name() string        { return "fake" }
func (f *fakeManager) DisplayName() string { return "Fake" }
func (f *fakeManager) Binary() string      { return "fake" }
func (f *fakeManager) IsAvailable() bool   { return true }
func (f *fakeManager) NeedsSudo() bool     { return false }

func (f *fakeManager) Refresh(ctx context.Context) error {
	f.refreshCalls++
	return f.refreshErr
}

func (f *fakeManager) Exists(ctx context.Context, pkg string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.available[pkg], nil
}

func (f *fakeManager) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	return f.installed[pkg], nil
}

func (f *fakeManager) Install(ctx context.Context, packages []string, opts manager.InstallOpts) error {
	f.installCalls = append(f.installCalls, packages)
	return f.installErr
}

func (f *fakeManager) SearchNames(ctx context.Context, prefix string) ([]string, error) {
	return f.searchNames, nil
}

func TestEnsureFreshRefreshesOnce(t *testing.T) {
	fake := &fakeManager{}
	r := New(fake)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := r.EnsureFresh(ctx); err != nil {
			t.Fatalf("EnsureFresh() error: %v", err)
		}
	}
	if fake.refreshCalls != 1 {
		t.Errorf("expected 1 refresh call, got %d", fake.refreshCalls)
	}
	if r.Stale() {
		t.Error("resolver should not be stale after successful refresh")
	}
}

func TestEnsureFreshFailureMarksStale(t *testing.T) {
	fake := &fakeManager{
		refreshErr: errors.New("network unreachable"),
		available:  map[string]bool{"git": true},
	}
	r := New(fake)
	ctx := context.Background()

	if err := r.EnsureFresh(ctx); err == nil {
		t.Fatal("expected refresh error")
	}
	if !r.Stale() {
		t.Error("resolver should be stale after failed refresh")
	}

	// The failure is reported once; later calls are no-ops.
	if err := r.EnsureFresh(ctx); err != nil {
		t.Errorf("second EnsureFresh() should be a no-op, got: %v", err)
	}
	if fake.refreshCalls != 1 {
		t.Errorf("expected 1 refresh call, got %d", fake.refreshCalls)
	}

	// Queries still proceed against stale metadata.
	if !r.Exists(ctx, "git") {
		t.Error("Exists() should still answer from stale metadata")
	}
}

func TestExistsQueryFailureReadsAsMissing(t *testing.T) {
	fake := &fakeManager{existsErr: errors.New("cache corrupt")}
	r := New(fake)

	if r.Exists(context.Background(), "git") {
		t.Error("query failure should read as not found")
	}
}

func TestChooseFirstAvailable(t *testing.T) {
	tests := []struct {
		name       string
		available  map[string]bool
		candidates []string
		want       string
		wantErr    bool
	}{
		{
			name:       "first candidate exists",
			available:  map[string]bool{"libseat-dev": true, "seatd": true},
			candidates: []string{"libseat-dev", "seatd"},
			want:       "libseat-dev",
		},
		{
			name:       "falls through to later candidate",
			available:  map[string]bool{"seatd": true},
			candidates: []string{"libseat-dev", "seatd"},
			want:       "seatd",
		},
		{
			name:       "none exist",
			available:  map[string]bool{},
			candidates: []string{"libseat-dev", "seatd"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeManager{available: tt.available})
			got, err := r.ChooseFirstAvailable(context.Background(), tt.candidates)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var nf *NotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("expected NotFoundError, got %T", err)
				}
				if len(nf.Candidates) != len(tt.candidates) {
					t.Errorf("NotFoundError should carry all candidates, got %v", nf.Candidates)
				}
				return
			}
			if err != nil {
				t.Fatalf("ChooseFirstAvailable() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectVersioned(t *testing.T) {
	tests := []struct {
		name      string
		available map[string]bool
		search    []string
		want      string
		wantErr   bool
	}{
		{
			name:      "unversioned name wins outright",
			available: map[string]bool{"wlroots": true},
			search:    []string{"wlroots0.17", "wlroots0.18"},
			want:      "wlroots",
		},
		{
			name:   "highest version among suffixed variants",
			search: []string{"wlroots0.17", "wlroots0.18", "wlroots0.16"},
			want:   "wlroots0.18",
		},
		{
			name:   "non-version suffixes ignored",
			search: []string{"wlroots-devel", "wlroots0.18", "wlroots-examples"},
			want:   "wlroots0.18",
		},
		{
			name:    "nothing matches",
			search:  []string{"wlroots-devel"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeManager{available: tt.available, searchNames: tt.search})
			got, err := r.SelectVersioned(context.Background(), "wlroots")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectVersioned() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstallRequiredBatchesOnce(t *testing.T) {
	fake := &fakeManager{}
	r := New(fake)

	names := []string{"git", "meson", "ninja"}
	if err := r.InstallRequired(context.Background(), names, manager.InstallOpts{}); err != nil {
		t.Fatalf("InstallRequired() error: %v", err)
	}
	if len(fake.installCalls) != 1 {
		t.Fatalf("expected 1 install call, got %d", len(fake.installCalls))
	}
	if fmt.Sprint(fake.installCalls[0]) != fmt.Sprint(names) {
		t.Errorf("install call got %v, want %v", fake.installCalls[0], names)
	}
}

func TestInstallRequiredEmptyIsNoop(t *testing.T) {
	fake := &fakeManager{}
	r := New(fake)

	if err := r.InstallRequired(context.Background(), nil, manager.InstallOpts{}); err != nil {
		t.Fatalf("InstallRequired() error: %v", err)
	}
	if len(fake.installCalls) != 0 {
		t.Errorf("expected no install calls, got %d", len(fake.installCalls))
	}
}

func TestInstallOptionalPartitions(t *testing.T) {
	fake := &fakeManager{
		available: map[string]bool{"swaybg": true, "foot": true},
	}
	r := New(fake)

	installed, missing, err := r.InstallOptional(context.Background(),
		[]string{"swaybg", "wmenu", "foot"}, manager.InstallOpts{})
	if err != nil {
		t.Fatalf("InstallOptional() error: %v", err)
	}
	if fmt.Sprint(installed) != fmt.Sprint([]string{"swaybg", "foot"}) {
		t.Errorf("installed = %v", installed)
	}
	if fmt.Sprint(missing) != fmt.Sprint([]string{"wmenu"}) {
		t.Errorf("missing = %v", missing)
	}
	if len(fake.installCalls) != 1 {
		t.Fatalf("expected 1 batched install call, got %d", len(fake.installCalls))
	}
}

func TestInstallOptionalNoneAvailable(t *testing.T) {
	fake := &fakeManager{}
	r := New(fake)

	installed, missing, err := r.InstallOptional(context.Background(),
		[]string{"swaybg", "wmenu"}, manager.InstallOpts{})
	if err != nil {
		t.Fatalf("InstallOptional() error: %v", err)
	}
	if installed != nil {
		t.Errorf("installed = %v, want nil", installed)
	}
	if len(missing) != 2 {
		t.Errorf("missing = %v", missing)
	}
	if len(fake.installCalls) != 0 {
		t.Errorf("expected no install calls, got %d", len(fake.installCalls))
	}
}

func TestInstallOptionalFailureIsReportingOnly(t *testing.T) {
	fake := &fakeManager{
		available:  map[string]bool{"swaybg": true},
		installErr: errors.New("mirror timeout"),
	}
	r := New(fake)

	_, missing, err := r.InstallOptional(context.Background(),
		[]string{"swaybg", "wmenu"}, manager.InstallOpts{})
	if err == nil {
		t.Fatal("expected install error to be surfaced")
	}
	if fmt.Sprint(missing) != fmt.Sprint([]string{"wmenu"}) {
		t.Errorf("missing = %v", missing)
	}
}
