// Package detector handles distribution detection for diagnostics.
package detector

import (
	"bufio"
	"os"
	"runtime"
	"strings"
)

// SystemInfo contains information about the detected system.
type SystemInfo struct {
	Arch         string
	Distribution string   // Linux distribution ID (e.g., "ubuntu", "arch")
	DistroFamily []string // Related distributions (from ID_LIKE)
	PrettyName   string   // Human-readable name
	VersionID    string   // Distribution version
}

// Detect reads the current system's distribution information.
func Detect() *SystemInfo {
	info := &SystemInfo{
		Arch:         runtime.GOARCH,
		Distribution: "unknown",
		PrettyName:   "Unknown Linux",
	}
	parseOSRelease(info, "/etc/os-release")
	return info
}

// MatchesDistro checks if the system matches any of the given distribution
// identifiers, checking both the direct ID and the ID_LIKE family.
func (s *SystemInfo) MatchesDistro(distros ...string) bool {
	for _, d := range distros {
		if s.Distribution == d {
			return true
		}
		for _, family := range s.DistroFamily {
			if family == d {
				return true
			}
		}
	}
	return false
}

// parseOSRelease parses an os-release style file into info. Missing files
// leave the defaults in place.
func parseOSRelease(info *SystemInfo, path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"")

		switch key {
		case "ID":
			info.Distribution = value
		case "ID_LIKE":
			info.DistroFamily = strings.Fields(value)
		case "VERSION_ID":
			info.VersionID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}
}
