package worker

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/trucite/trucite/internal/model"
	"github.com/trucite/trucite/internal/pipeline"
)

// countingVerifier echoes the input back as the event id so order is checkable.
type countingVerifier struct {
	calls atomic.Int64
}

func (v *countingVerifier) Run(rawText, _ string) (*model.VerificationReport, error) {
	v.calls.Add(1)
	if strings.TrimSpace(rawText) == "" {
		return nil, &pipeline.ValidationError{Reason: "text is empty"}
	}
	return &model.VerificationReport{EventID: rawText, Score: 54}, nil
}

func TestBatchProcessor_PreservesInputOrder(t *testing.T) {
	verifier := &countingVerifier{}
	processor := NewBatchProcessor(verifier, 4)

	texts := make([]string, 20)
	for i := range texts {
		texts[i] = fmt.Sprintf("document %d", i)
	}

	results := processor.Process(texts)
	if len(results) != len(texts) {
		t.Fatalf("Expected %d results, got %d", len(texts), len(results))
	}

	for i, result := range results {
		if result.Index != i {
			t.Errorf("Expected result %d at position %d, got index %d", i, i, result.Index)
		}
		if result.Err != nil {
			t.Errorf("Expected no error at %d, got %v", i, result.Err)
			continue
		}
		if result.Report.EventID != texts[i] {
			t.Errorf("Expected report for %q at position %d, got %q", texts[i], i, result.Report.EventID)
		}
	}

	if got := verifier.calls.Load(); got != int64(len(texts)) {
		t.Errorf("Expected %d verifier calls, got %d", len(texts), got)
	}
}

func TestBatchProcessor_FailedDocumentsKeepTheirSlot(t *testing.T) {
	processor := NewBatchProcessor(&countingVerifier{}, 2)

	results := processor.Process([]string{"good one", "   ", "another good one"})

	if results[0].Err != nil || results[2].Err != nil {
		t.Error("Expected surrounding documents to succeed")
	}
	if results[1].Err == nil {
		t.Error("Expected the blank document to fail")
	}
	if results[1].Report != nil {
		t.Error("Expected no report for the failed document")
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(&countingVerifier{}, 4)

	results := processor.Process(nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestBatchProcessor_ConcurrencyClamped(t *testing.T) {
	// Zero concurrency must not deadlock.
	processor := NewBatchProcessor(&countingVerifier{}, 0)

	results := processor.Process([]string{"one", "two"})
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
}
