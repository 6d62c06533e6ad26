package score

// The placeholder output. A real credibility model does not exist yet; these
// exact values are part of the engine's documented contract until one does.
const (
	placeholderIndex   = 54
	placeholderVerdict = "Questionable / High Uncertainty"
)

// ConstantScorer is the default placeholder strategy. It ignores its input
// entirely and always returns the same score and verdict.
type ConstantScorer struct{}

// Score returns 54, "Questionable / High Uncertainty" for any input.
func (ConstantScorer) Score(Input) (int, string) {
	return placeholderIndex, placeholderVerdict
}
