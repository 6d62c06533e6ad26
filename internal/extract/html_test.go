package extract

import (
	"strings"
	"testing"
)

func TestVisibleText_SkipsInvisibleElements(t *testing.T) {
	doc := `
	<html>
	<head>
		<script>var x = "script content";</script>
		<style>body { color: red; }</style>
	</head>
	<body>
		<p>The Moon is a satellite.</p>
		<noscript>Noscript content</noscript>
		<p>It orbits Earth.</p>
	</body>
	</html>
	`

	text, err := VisibleText(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(text, "The Moon is a satellite.") {
		t.Error("Expected to extract first paragraph")
	}
	if !strings.Contains(text, "It orbits Earth.") {
		t.Error("Expected to extract second paragraph")
	}
	if strings.Contains(text, "script content") {
		t.Error("Should not extract script content")
	}
	if strings.Contains(text, "color: red") {
		t.Error("Should not extract style content")
	}
	if strings.Contains(text, "Noscript content") {
		t.Error("Should not extract noscript content")
	}
}

func TestVisibleText_EmptyDocument(t *testing.T) {
	text, err := VisibleText(`<html><body></body></html>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}

func TestVisibleText_FeedsSegmenter(t *testing.T) {
	doc := `<html><body><p>First claim is here.</p><p>Second claim is here.</p></body></html>`

	text, err := VisibleText(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	fragments := Segment(text)
	if len(fragments) != 2 {
		t.Errorf("Expected 2 fragments from stripped HTML, got %d: %v", len(fragments), fragments)
	}
}
