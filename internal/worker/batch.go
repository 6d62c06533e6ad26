package worker

import (
	"sync"

	"github.com/trucite/trucite/internal/model"
)

// Verifier runs one document through the verification pipeline.
type Verifier interface {
	Run(rawText, suppliedEventID string) (*model.VerificationReport, error)
}

// Result pairs one input document with its report or error. Index is the
// document's position in the input.
type Result struct {
	Index  int
	Report *model.VerificationReport
	Err    error
}

// BatchProcessor verifies many documents concurrently through a bounded pool
// of workers. The pipeline is stateless, so documents need no coordination
// beyond bounding concurrency.
type BatchProcessor struct {
	verifier    Verifier
	concurrency int
}

// NewBatchProcessor creates a batch processor running at most concurrency
// verifications at once.
func NewBatchProcessor(verifier Verifier, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchProcessor{
		verifier:    verifier,
		concurrency: concurrency,
	}
}

// Process verifies every document and returns results in input order.
func (b *BatchProcessor) Process(texts []string) []Result {
	results := make([]Result, len(texts))
	if len(texts) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := b.concurrency
	if workers > len(texts) {
		workers = len(texts)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				report, err := b.verifier.Run(texts[idx], "")
				results[idx] = Result{Index: idx, Report: report, Err: err}
			}
		}()
	}

	for idx := range texts {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}
