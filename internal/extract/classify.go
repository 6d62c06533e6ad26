package extract

import (
	"strings"

	"github.com/trucite/trucite/internal/model"
)

// factualKeywords are the copula/possession markers that flag a sentence as a
// factual assertion. Boundary spaces make the match whole-word.
var factualKeywords = []string{
	" is ", " are ", " was ", " were ", " has ", " have ", " will ", " contains ",
}

// Classifier labels sentence fragments with a claim type using fixed lexical
// heuristics. It holds no state and is safe for concurrent use.
type Classifier struct {
	keywords []string
}

// NewClassifier creates a classifier with the built-in keyword set.
func NewClassifier() *Classifier {
	return &Classifier{keywords: factualKeywords}
}

// Classify returns ClaimTypeFactual when any keyword occurs in the sentence,
// ClaimTypeUnknown otherwise. Matching is case-insensitive.
func (c *Classifier) Classify(sentence string) model.ClaimType {
	padded := " " + strings.ToLower(strings.TrimSpace(sentence)) + " "
	for _, keyword := range c.keywords {
		if strings.Contains(padded, keyword) {
			return model.ClaimTypeFactual
		}
	}
	return model.ClaimTypeUnknown
}
