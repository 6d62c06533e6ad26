package model

import "time"

// AuditFingerprint identifies one verification input for audit and dedup purposes.
// Hash is a pure function of the normalized input text: identical normalized
// text always yields the same hash.
type AuditFingerprint struct {
	EngineVersion string `json:"engine_version"` // Engine logic version embedded for auditability
	Hash          string `json:"hash"`           // SHA-256 of the normalized text, 64 lowercase hex chars
	TimestampUTC  string `json:"timestamp_utc"`  // ISO-8601 with literal 'Z' suffix
}

// VerificationReport is the complete result of one pipeline run.
// It is a value object: built once, never mutated, owned by the caller.
type VerificationReport struct {
	EventID          string           `json:"event_id"`
	Claims           []Claim          `json:"claims"`
	References       []Reference      `json:"references"`
	AuditFingerprint AuditFingerprint `json:"audit_fingerprint"`
	Score            int              `json:"score"`   // Always within [0, 100]
	Verdict          string           `json:"verdict"` // Human-readable credibility label
}

// AuditRecord is the flat per-claim row handed to the persistence sink.
// It is derived from a report after the fact; losing it never alters the report.
type AuditRecord struct {
	ID            string    `json:"id"`       // Fresh unique id, distinct from the claim id
	EventID       string    `json:"event_id"` // Report the claim came from
	ClaimText     string    `json:"claim_text"`
	ClaimHash     string    `json:"claim_hash"` // SHA-256 of the normalized claim text
	Score         int       `json:"score"`
	Verdict       string    `json:"verdict"`
	EngineVersion string    `json:"engine_version"`
	CreatedAt     time.Time `json:"created_at"`
}
