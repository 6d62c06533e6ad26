package extract

import "strings"

// Normalize canonicalizes raw text for hashing and classification: lowercase,
// every whitespace run (spaces, tabs, newlines) collapsed to a single space,
// leading and trailing whitespace trimmed. Total and idempotent; the empty
// string maps to the empty string.
func Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
