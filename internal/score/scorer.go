package score

import (
	"fmt"

	"github.com/trucite/trucite/internal/model"
)

// Input is the report context handed to a scorer: the trimmed full text and
// the classified claims extracted from it.
type Input struct {
	Text   string
	Claims []model.Claim
}

// Scorer turns a report context into a credibility score and verdict label.
// Implementations must keep the score within [0, 100] and be safe for
// concurrent use. Swapping the strategy never touches the pipeline, the
// classifier, or the matcher.
type Scorer interface {
	Score(in Input) (index int, verdict string)
}

// New returns the scorer registered under name: "constant" (the default
// placeholder) or "heuristic".
func New(name string) (Scorer, error) {
	switch name {
	case "", "constant":
		return ConstantScorer{}, nil
	case "heuristic":
		return HeuristicScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer %q", name)
	}
}

// clamp bounds a score to the documented [0, 100] range.
func clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index > 100 {
		return 100
	}
	return index
}
