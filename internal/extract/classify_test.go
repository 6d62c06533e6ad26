package extract

import (
	"strings"
	"testing"

	"github.com/trucite/trucite/internal/model"
)

func TestClassifier_FactualSentence(t *testing.T) {
	classifier := NewClassifier()

	got := classifier.Classify("The Moon is a satellite.")
	if got != model.ClaimTypeFactual {
		t.Errorf("Expected factual, got %s", got)
	}
}

func TestClassifier_UnknownSentence(t *testing.T) {
	classifier := NewClassifier()

	got := classifier.Classify("It orbits Earth.")
	if got != model.ClaimTypeUnknown {
		t.Errorf("Expected unknown, got %s", got)
	}
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	classifier := NewClassifier()

	got := classifier.Classify("THE MOON IS A SATELLITE.")
	if got != model.ClaimTypeFactual {
		t.Errorf("Expected factual for upper-case input, got %s", got)
	}
}

func TestClassifier_AllKeywords(t *testing.T) {
	classifier := NewClassifier()

	for _, keyword := range factualKeywords {
		sentence := "something" + keyword + "something."
		if got := classifier.Classify(sentence); got != model.ClaimTypeFactual {
			t.Errorf("Expected factual for keyword '%s', got %s", strings.TrimSpace(keyword), got)
		}
	}
}

func TestClassifier_KeywordNeedsWordBoundaries(t *testing.T) {
	classifier := NewClassifier()

	// "is" embedded in a word must not match.
	got := classifier.Classify("Crisis management.")
	if got != model.ClaimTypeUnknown {
		t.Errorf("Expected unknown for embedded keyword, got %s", got)
	}
}

func TestClassifier_KeywordAtSentenceEdges(t *testing.T) {
	classifier := NewClassifier()

	// Boundary padding lets a leading keyword match as a whole word.
	if got := classifier.Classify("is this factual"); got != model.ClaimTypeFactual {
		t.Errorf("Expected factual for leading keyword, got %s", got)
	}
}
