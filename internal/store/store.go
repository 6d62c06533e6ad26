package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/trucite/trucite/internal/audit"
	"github.com/trucite/trucite/internal/extract"
	"github.com/trucite/trucite/internal/model"
)

// Store persists flat audit records. Implementations must be safe for
// concurrent use.
type Store interface {
	Migrate(ctx context.Context) error
	SaveRecord(ctx context.Context, rec model.AuditRecord) error
	RecordsByEvent(ctx context.Context, eventID string) ([]model.AuditRecord, error)
	Close() error
}

// Open creates a store for the configured driver ("sqlite" or "postgres").
func Open(cfg model.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return NewSQLite(cfg.DSN)
	case "postgres":
		return NewPostgres(cfg.DSN)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}

// RecordsFromReport flattens a report into one audit record per claim. Each
// record gets a fresh unique id; the claim hash is the digest of the claim's
// normalized text so re-submissions of the same claim are linkable.
func RecordsFromReport(report *model.VerificationReport, at time.Time) []model.AuditRecord {
	records := make([]model.AuditRecord, 0, len(report.Claims))
	for _, claim := range report.Claims {
		records = append(records, model.AuditRecord{
			ID:            uuid.NewString(),
			EventID:       report.EventID,
			ClaimText:     claim.Text,
			ClaimHash:     audit.HashText(extract.Normalize(claim.Text)),
			Score:         report.Score,
			Verdict:       report.Verdict,
			EngineVersion: report.AuditFingerprint.EngineVersion,
			CreatedAt:     at.UTC(),
		})
	}
	return records
}
