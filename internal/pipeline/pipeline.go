package pipeline

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/trucite/trucite/internal/audit"
	"github.com/trucite/trucite/internal/extract"
	"github.com/trucite/trucite/internal/match"
	"github.com/trucite/trucite/internal/model"
	"github.com/trucite/trucite/internal/score"
)

// ValidationError rejects unusable input before any work happens. It is the
// only caller-visible error the pipeline produces and must never reach
// persistence.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// IDGenerator produces fresh unique event identifiers. Must be safe for
// concurrent use.
type IDGenerator func() string

// Pipeline orchestrates the verification core: normalize, segment, classify,
// fingerprint, score, match, assemble. It is the only component holding
// non-pure dependencies (clock via the fingerprint generator, ID generator);
// every Run invocation is independent, so a single Pipeline may serve
// arbitrarily many concurrent callers.
type Pipeline struct {
	classifier   *extract.Classifier
	fingerprints *audit.Generator
	matcher      *match.Matcher
	scorer       score.Scorer
	newEventID   IDGenerator
}

// New wires a pipeline from its parts. A nil ID generator falls back to
// random UUIDs; a nil scorer falls back to the constant placeholder.
func New(fingerprints *audit.Generator, matcher *match.Matcher, scorer score.Scorer, newEventID IDGenerator) *Pipeline {
	if scorer == nil {
		scorer = score.ConstantScorer{}
	}
	if newEventID == nil {
		newEventID = uuid.NewString
	}
	return &Pipeline{
		classifier:   extract.NewClassifier(),
		fingerprints: fingerprints,
		matcher:      matcher,
		scorer:       scorer,
		newEventID:   newEventID,
	}
}

// EngineVersion returns the version label the pipeline stamps into fingerprints.
func (p *Pipeline) EngineVersion() string {
	return p.fingerprints.EngineVersion()
}

// Run verifies one text and returns the assembled report. suppliedEventID is
// used as-is when non-empty, otherwise a fresh unique id is generated.
// Empty or whitespace-only text fails with *ValidationError.
func (p *Pipeline) Run(rawText, suppliedEventID string) (*model.VerificationReport, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, &ValidationError{Reason: "text is empty"}
	}

	normalized := extract.Normalize(trimmed)

	fragments := extract.Segment(trimmed)
	claims := make([]model.Claim, 0, len(fragments))
	claimTexts := make([]string, 0, len(fragments))
	for i, fragment := range fragments {
		claims = append(claims, model.Claim{
			ID:               fmt.Sprintf("c%d", i+1),
			Text:             fragment,
			Type:             p.classifier.Classify(fragment),
			ConfidenceWeight: 1.0,
		})
		claimTexts = append(claimTexts, fragment)
	}

	fingerprint := p.fingerprints.Generate(normalized)

	index, verdict := p.scorer.Score(score.Input{Text: trimmed, Claims: claims})

	references := p.matcher.Match(claimTexts)

	eventID := suppliedEventID
	if eventID == "" {
		eventID = p.newEventID()
	}

	return &model.VerificationReport{
		EventID:          eventID,
		Claims:           claims,
		References:       references,
		AuditFingerprint: fingerprint,
		Score:            index,
		Verdict:          verdict,
	}, nil
}
