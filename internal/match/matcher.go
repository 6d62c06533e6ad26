package match

import (
	"strings"

	"github.com/trucite/trucite/internal/model"
)

// Source is one external source attached to a topic keyword.
type Source struct {
	Source string
	URL    string
}

// Topic binds a keyword to the sources that cover it.
type Topic struct {
	Keyword string
	Sources []Source
}

// Index is the known-fact lookup table. It is ordered: for a given claim,
// references come out in table order, so the index is a slice rather than a
// map. New topics extend the table without touching the matching logic.
type Index []Topic

// DefaultIndex returns the built-in seed index.
func DefaultIndex() Index {
	return Index{
		{
			Keyword: "moon",
			Sources: []Source{
				{Source: "NASA Lunar Science", URL: "https://science.nasa.gov/moon/"},
			},
		},
	}
}

// IndexFromConfig builds an index from configuration, preserving entry order.
// Returns nil when the configuration has no entries.
func IndexFromConfig(entries []model.ReferenceConfig) Index {
	var index Index
	for _, entry := range entries {
		topic := Topic{Keyword: entry.Keyword}
		for _, src := range entry.Sources {
			topic.Sources = append(topic.Sources, Source{Source: src.Source, URL: src.URL})
		}
		index = append(index, topic)
	}
	return index
}

// Matcher looks claims up against a fixed topic index. It holds no mutable
// state and is safe for concurrent use.
type Matcher struct {
	index Index
}

// NewMatcher creates a matcher over the given index. A nil index falls back
// to the built-in default.
func NewMatcher(index Index) *Matcher {
	if index == nil {
		index = DefaultIndex()
	}
	return &Matcher{index: index}
}

// Match returns one Reference per (claim, topic source) hit. Matching is a
// case-insensitive substring search; results keep claim order first, then
// index table order within a claim. Claims matching no topic contribute
// nothing. Entries are never deduplicated.
func (m *Matcher) Match(claimTexts []string) []model.Reference {
	var refs []model.Reference
	for _, claim := range claimTexts {
		lower := strings.ToLower(claim)
		for _, topic := range m.index {
			if !strings.Contains(lower, strings.ToLower(topic.Keyword)) {
				continue
			}
			for _, src := range topic.Sources {
				refs = append(refs, model.Reference{
					Claim:  claim,
					Source: src.Source,
					URL:    src.URL,
				})
			}
		}
	}
	return refs
}
