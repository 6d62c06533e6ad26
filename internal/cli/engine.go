package cli

import (
	"github.com/rotisserie/eris"

	"github.com/trucite/trucite/internal/audit"
	"github.com/trucite/trucite/internal/match"
	"github.com/trucite/trucite/internal/model"
	"github.com/trucite/trucite/internal/pipeline"
	"github.com/trucite/trucite/internal/score"
)

// newPipeline is the single composition point for the verification core:
// every non-pure dependency (clock, event id generator) and every strategy
// (scorer, reference index) is resolved here, once, from configuration.
func newPipeline(cfg *model.Config) (*pipeline.Pipeline, error) {
	scorer, err := score.New(cfg.Engine.Scorer)
	if err != nil {
		return nil, eris.Wrap(err, "engine: select scorer")
	}

	index := match.IndexFromConfig(cfg.References)
	matcher := match.NewMatcher(index) // nil index falls back to the built-in table

	fingerprints := audit.NewGenerator(cfg.Engine.Version, audit.SystemClock)

	return pipeline.New(fingerprints, matcher, scorer, nil), nil
}
