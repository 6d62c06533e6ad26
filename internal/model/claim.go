package model

// Claim represents a single sentence-level assertion extracted from the input
type Claim struct {
	ID               string    `json:"id"`                // Position-based token ("c1", "c2", ...), unique within one report
	Text             string    `json:"text"`              // The claim text itself
	Type             ClaimType `json:"type"`              // Classification result
	ConfidenceWeight float64   `json:"confidence_weight"` // Relative weight used by weighted scorers
}

// ClaimType categorizes the nature of the claim
type ClaimType string

const (
	ClaimTypeFactual ClaimType = "factual" // Matched a factual keyword pattern
	ClaimTypeUnknown ClaimType = "unknown" // No keyword matched
)

// Reference links a claim to an external source via topic-keyword matching.
// References are not deduplicated: a claim matching several topics, or several
// claims matching the same topic, each yield their own entry.
type Reference struct {
	Claim  string `json:"claim"`
	Source string `json:"source"`
	URL    string `json:"url"`
}
