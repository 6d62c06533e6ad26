package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/trucite/trucite/internal/model"
)

// Clock supplies the current time. Injected rather than read from ambient
// state so fingerprints are testable; implementations must be safe for
// concurrent use.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// HashText returns the SHA-256 digest of the UTF-8 bytes of text as 64
// lowercase hex characters.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Generator produces deterministic audit fingerprints for normalized input text.
type Generator struct {
	engineVersion string
	clock         Clock
}

// NewGenerator creates a fingerprint generator. A nil clock falls back to the
// system clock.
func NewGenerator(engineVersion string, clock Clock) *Generator {
	if clock == nil {
		clock = SystemClock
	}
	return &Generator{
		engineVersion: engineVersion,
		clock:         clock,
	}
}

// EngineVersion returns the version label stamped into fingerprints.
func (g *Generator) EngineVersion() string {
	return g.engineVersion
}

// Generate fingerprints the normalized text. The hash depends only on the
// text; the timestamp comes from the injected clock, rendered as ISO-8601 UTC
// with a literal 'Z' suffix.
func (g *Generator) Generate(normalizedText string) model.AuditFingerprint {
	return model.AuditFingerprint{
		EngineVersion: g.engineVersion,
		Hash:          HashText(normalizedText),
		TimestampUTC:  g.clock().UTC().Format(time.RFC3339),
	}
}
