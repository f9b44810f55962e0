// Package resolver maps logical dependency names to concrete packages for
// the detected package manager backend.
package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/harshv5094/mango-titus/pkg/manager"
)

// NotFoundError is returned when none of the candidate packages exists in
// the repository metadata. It carries the full candidate list for diagnostics.
type NotFoundError struct {
	Candidates []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no matching package found (tried: %s)", strings.Join(e.Candidates, ", "))
}

// Resolver answers package existence queries against one backend, keeping
// repository metadata fresh at most once per run.
type Resolver struct {
	mgr       manager.Manager
	refreshed bool
	stale     bool
}

// New creates a resolver for the given backend. Construct one per run and
// pass it to everything that needs metadata freshness.
func New(mgr manager.Manager) *Resolver {
	return &Resolver{mgr: mgr}
}

// Manager returns the backend this resolver queries.
func (r *Resolver) Manager() manager.Manager {
	return r.mgr
}

// EnsureFresh refreshes the package metadata exactly once per run. Repeat
// calls are no-ops regardless of whether the first refresh succeeded; a
// failed refresh marks the resolver stale and queries proceed against
// whatever metadata is on disk.
func (r *Resolver) EnsureFresh(ctx context.Context) error {
	if r.refreshed {
		return nil
	}
	r.refreshed = true

	if err := r.mgr.Refresh(ctx); err != nil {
		r.stale = true
		return fmt.Errorf("refreshing %s metadata: %w", r.mgr.Name(), err)
	}
	return nil
}

// Stale reports whether the one metadata refresh for this run failed.
func (r *Resolver) Stale() bool {
	return r.stale
}

// Exists reports whether the named package exists in the repository
// metadata. Query failures read as "does not exist".
func (r *Resolver) Exists(ctx context.Context, name string) bool {
	_ = r.EnsureFresh(ctx)

	ok, err := r.mgr.Exists(ctx, name)
	if err != nil {
		return false
	}
	return ok
}

// ChooseFirstAvailable returns the first candidate, in list order, that
// exists in the repository metadata. Distributions name the same library
// differently (libseat vs seatd), so callers pass every known spelling.
func (r *Resolver) ChooseFirstAvailable(ctx context.Context, candidates []string) (string, error) {
	for _, name := range candidates {
		if r.Exists(ctx, name) {
			return name, nil
		}
	}
	return "", &NotFoundError{Candidates: candidates}
}

// versionSuffix matches a purely numeric version suffix like "0.18" in
// "wlroots0.18".
var versionSuffix = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)*)$`)

// SelectVersioned resolves packages that repositories publish either under
// a plain name or with an embedded version suffix (wlroots vs wlroots0.18).
// The unversioned name wins outright when it exists; otherwise the variant
// with the highest parsed version is chosen.
func (r *Resolver) SelectVersioned(ctx context.Context, base string) (string, error) {
	if r.Exists(ctx, base) {
		return base, nil
	}

	names, err := r.mgr.SearchNames(ctx, base)
	if err != nil {
		return "", fmt.Errorf("enumerating %s packages: %w", base, err)
	}

	var bestName string
	var bestVersion *goversion.Version
	for _, name := range names {
		suffix := strings.TrimPrefix(name, base)
		if !versionSuffix.MatchString(suffix) {
			continue
		}
		v, err := goversion.NewVersion(suffix)
		if err != nil {
			continue
		}
		if bestVersion == nil || v.GreaterThan(bestVersion) {
			bestName = name
			bestVersion = v
		}
	}

	if bestName == "" {
		return "", &NotFoundError{Candidates: []string{base, base + "<version>"}}
	}
	return bestName, nil
}

// InstallRequired installs the mandatory package set as one batched call.
// A single failing package fails the whole call; there is no per-package
// retry.
func (r *Resolver) InstallRequired(ctx context.Context, names []string, opts manager.InstallOpts) error {
	if len(names) == 0 {
		return nil
	}
	if err := r.mgr.Install(ctx, names, opts); err != nil {
		return fmt.Errorf("installing required packages: %w", err)
	}
	return nil
}

// InstallOptional partitions candidates into available and missing,
// installs the available set in one batched call, and returns the missing
// names. Optional packages never abort the run: the returned error is for
// reporting only.
func (r *Resolver) InstallOptional(ctx context.Context, candidates []string, opts manager.InstallOpts) (installed, missing []string, err error) {
	for _, name := range candidates {
		if r.Exists(ctx, name) {
			installed = append(installed, name)
		} else {
			missing = append(missing, name)
		}
	}

	if len(installed) == 0 {
		return nil, missing, nil
	}

	if err := r.mgr.Install(ctx, installed, opts); err != nil {
		return nil, missing, fmt.Errorf("installing optional packages: %w", err)
	}
	return installed, missing, nil
}
