package extract

import "strings"

// Segment splits raw text into ordered sentence fragments. A boundary is a
// sentence-terminal mark ('.', '!', '?') immediately followed by whitespace;
// the trailing remainder is kept as a final fragment. Fragments are trimmed
// and empty ones dropped. Single pass, no backtracking.
//
// Known limitation: abbreviations followed by a space mis-split
// ("Dr. Smith" becomes two fragments). Quotation marks are not handled.
func Segment(rawText string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range rawText {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(rawText) && isSpace(rawText[i+1]) {
				flush()
			}
		}
	}
	flush()

	return sentences
}

// isSpace reports whether b is an ASCII whitespace byte. Sentence terminators
// are single-byte runes, so byte lookahead is safe in UTF-8 text.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
