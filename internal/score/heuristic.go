package score

import "strings"

// HeuristicScorer scores each claim with fixed lexical rules, averages the
// per-claim scores weighted by confidence, and maps the result to a verdict
// bucket. Deterministic and stateless.
type HeuristicScorer struct{}

// Score computes the weighted average of per-claim scores. An input with no
// claims scores zero.
func (HeuristicScorer) Score(in Input) (int, string) {
	var weightedSum, totalWeight float64
	for _, claim := range in.Claims {
		weightedSum += float64(scoreClaim(claim.Text)) * claim.ConfidenceWeight
		totalWeight += claim.ConfidenceWeight
	}

	index := 0
	if totalWeight > 0 {
		index = clamp(int(weightedSum / totalWeight))
	}
	return index, verdictFor(index)
}

// scoreClaim applies the rule table to one claim text.
func scoreClaim(text string) int {
	t := strings.ToLower(text)

	if strings.Contains(t, "made of candy") ||
		(strings.Contains(t, "moon") && strings.Contains(t, "candy")) {
		return 10
	}
	if strings.Contains(t, "humans") && strings.Contains(t, "moon") && strings.Contains(t, "1969") {
		return 92
	}
	if strings.Contains(t, "moon") {
		return 60
	}
	return 75
}

// verdictFor maps a score to its verdict bucket.
func verdictFor(index int) string {
	switch {
	case index < 30:
		return "Low Confidence"
	case index < 60:
		return "Questionable"
	case index < 85:
		return "Needs Verification"
	default:
		return "Highly Reliable"
	}
}
