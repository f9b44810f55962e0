// Package installer sequences the install strategies for the MangoWC
// compositor and the Noctalia shell.
package installer

// Outcome is the tagged result of one install strategy.
type Outcome int

const (
	// OutcomeSkipped means the strategy did not apply; the chain continues.
	OutcomeSkipped Outcome = iota
	OutcomeAlreadyPresent
	OutcomeRepoPackage
	OutcomeAURPackage
	OutcomeSourceBuild
	OutcomeManualInstall
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyPresent:
		return "already present"
	case OutcomeRepoPackage:
		return "repository package"
	case OutcomeAURPackage:
		return "AUR package"
	case OutcomeSourceBuild:
		return "built from source"
	case OutcomeManualInstall:
		return "manual install"
	default:
		return "skipped"
	}
}
