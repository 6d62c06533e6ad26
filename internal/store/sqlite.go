package store

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/trucite/trucite/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS audit_records (
	id             TEXT PRIMARY KEY,
	event_id       TEXT NOT NULL,
	claim_text     TEXT NOT NULL,
	claim_hash     TEXT NOT NULL,
	score          INTEGER NOT NULL,
	verdict        TEXT NOT NULL,
	engine_version TEXT NOT NULL,
	created_at     DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_records_event_id ON audit_records(event_id);
CREATE INDEX IF NOT EXISTS idx_audit_records_claim_hash ON audit_records(claim_hash);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, rec model.AuditRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_records (id, event_id, claim_text, claim_hash, score, verdict, engine_version, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.EventID, rec.ClaimText, rec.ClaimHash, rec.Score, rec.Verdict, rec.EngineVersion, rec.CreatedAt,
	)
	return eris.Wrapf(err, "sqlite: insert audit record %s", rec.ID)
}

func (s *SQLiteStore) RecordsByEvent(ctx context.Context, eventID string) ([]model.AuditRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, claim_text, claim_hash, score, verdict, engine_version, created_at
		 FROM audit_records WHERE event_id = ? ORDER BY created_at, id`,
		eventID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: query records for event %s", eventID)
	}
	defer rows.Close()

	var records []model.AuditRecord
	for rows.Next() {
		var rec model.AuditRecord
		if err := rows.Scan(&rec.ID, &rec.EventID, &rec.ClaimText, &rec.ClaimHash,
			&rec.Score, &rec.Verdict, &rec.EngineVersion, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan audit record")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: iterate audit records")
}
