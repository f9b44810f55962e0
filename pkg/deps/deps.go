// Package deps holds the per-backend build dependency tables for MangoWC.
package deps

import (
	"context"
	"fmt"

	"github.com/harshv5094/mango-titus/pkg/resolver"
)

// Entry is one required dependency. Exactly one of the resolution rules
// applies: a plain ordered candidate list, or versioned-name selection on
// VersionedBase (wlroots vs wlroots0.18).
type Entry struct {
	Candidates    []string
	VersionedBase string
}

// Spec is the fixed dependency set for one package manager backend.
type Spec struct {
	Required []Entry
	Optional []string
}

// specs is keyed by manager name. The lists are static configuration, fixed
// at build time.
var specs = map[string]Spec{
	"apt": {
		Required: []Entry{
			{Candidates: []string{"git"}},
			{Candidates: []string{"meson"}},
			{Candidates: []string{"ninja-build"}},
			{Candidates: []string{"build-essential"}},
			{Candidates: []string{"pkg-config", "pkgconf"}},
			{Candidates: []string{"libwayland-dev"}},
			{Candidates: []string{"wayland-protocols"}},
			{Candidates: []string{"libwlroots-0.18-dev", "libwlroots-dev"}},
			{Candidates: []string{"libinput-dev"}},
			{Candidates: []string{"libxkbcommon-dev"}},
			{Candidates: []string{"libpixman-1-dev"}},
			{Candidates: []string{"libseat-dev", "seatd"}},
			{Candidates: []string{"xwayland"}},
		},
		Optional: []string{
			"xdg-desktop-portal-wlr",
			"swaybg",
			"wl-clipboard",
			"foot",
			"wmenu",
		},
	},
	"dnf": {
		Required: []Entry{
			{Candidates: []string{"git"}},
			{Candidates: []string{"meson"}},
			{Candidates: []string{"ninja-build"}},
			{Candidates: []string{"gcc"}},
			{Candidates: []string{"pkgconf"}},
			{Candidates: []string{"wayland-devel"}},
			{Candidates: []string{"wayland-protocols-devel"}},
			{VersionedBase: "wlroots"},
			{Candidates: []string{"libinput-devel"}},
			{Candidates: []string{"libxkbcommon-devel"}},
			{Candidates: []string{"pixman-devel"}},
			{Candidates: []string{"libseat-devel", "seatd"}},
			{Candidates: []string{"xorg-x11-server-Xwayland"}},
		},
		Optional: []string{
			"xdg-desktop-portal-wlr",
			"swaybg",
			"wl-clipboard",
			"foot",
			"wmenu",
		},
	},
	"pacman": {
		Required: []Entry{
			{Candidates: []string{"git"}},
			{Candidates: []string{"meson"}},
			{Candidates: []string{"ninja"}},
			{Candidates: []string{"gcc"}},
			{Candidates: []string{"pkgconf"}},
			{Candidates: []string{"wayland"}},
			{Candidates: []string{"wayland-protocols"}},
			{VersionedBase: "wlroots"},
			{Candidates: []string{"libinput"}},
			{Candidates: []string{"libxkbcommon"}},
			{Candidates: []string{"pixman"}},
			{Candidates: []string{"seatd", "libseat"}},
			{Candidates: []string{"xorg-xwayland"}},
		},
		Optional: []string{
			"xdg-desktop-portal-wlr",
			"swaybg",
			"wl-clipboard",
			"foot",
			"wmenu",
		},
	},
	"zypper": {
		Required: []Entry{
			{Candidates: []string{"git"}},
			{Candidates: []string{"meson"}},
			{Candidates: []string{"ninja"}},
			{Candidates: []string{"gcc"}},
			{Candidates: []string{"pkgconf"}},
			{Candidates: []string{"wayland-devel"}},
			{Candidates: []string{"wayland-protocols-devel"}},
			{VersionedBase: "wlroots"},
			{Candidates: []string{"libinput-devel"}},
			{Candidates: []string{"libxkbcommon-devel"}},
			{Candidates: []string{"pixman-devel", "libpixman-1-0-devel"}},
			{Candidates: []string{"libseat-devel", "seatd"}},
			{Candidates: []string{"xwayland"}},
		},
		Optional: []string{
			"xdg-desktop-portal-wlr",
			"swaybg",
			"wl-clipboard",
			"foot",
			"wmenu",
		},
	},
}

// For returns the dependency spec for the named backend.
func For(managerName string) (Spec, bool) {
	spec, ok := specs[managerName]
	return spec, ok
}

// ResolveRequired maps the required entries to concrete package names using
// the resolver's naming rules, preserving order.
func (s Spec) ResolveRequired(ctx context.Context, r *resolver.Resolver) ([]string, error) {
	var names []string
	for _, entry := range s.Required {
		var name string
		var err error
		if entry.VersionedBase != "" {
			name, err = r.SelectVersioned(ctx, entry.VersionedBase)
		} else {
			name, err = r.ChooseFirstAvailable(ctx, entry.Candidates)
		}
		if err != nil {
			return nil, fmt.Errorf("resolving required dependency: %w", err)
		}
		names = append(names, name)
	}
	return names, nil
}
