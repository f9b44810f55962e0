package installer

import (
	"context"
	"fmt"

	"github.com/harshv5094/mango-titus/internal/ui"
)

// Strategy is one ordered attempt at installing a target. Run returns
// OutcomeSkipped when the strategy does not apply; an error downgrades to a
// warning and the chain continues.
type Strategy struct {
	Name string
	Run  func(ctx context.Context) (Outcome, error)
}

// RunChain walks the strategies top to bottom and stops at the first
// success. Only exhaustion of every strategy is an error.
func RunChain(ctx context.Context, target string, strategies []Strategy) (Outcome, error) {
	for _, s := range strategies {
		outcome, err := s.Run(ctx)
		if err != nil {
			ui.WarningMsg("%s: %s: %v", target, s.Name, err)
			continue
		}
		if outcome != OutcomeSkipped {
			return outcome, nil
		}
	}
	return OutcomeSkipped, fmt.Errorf("could not install %s: all strategies exhausted", target)
}
