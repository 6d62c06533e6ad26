package store

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rotisserie/eris"

	"github.com/trucite/trucite/internal/model"
)

// PostgresStore implements Store using the pgx stdlib driver.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres opens a connection pool to the given database URL.
func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: open")
	}
	return &PostgresStore{db: db}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS audit_records (
	id             TEXT PRIMARY KEY,
	event_id       TEXT NOT NULL,
	claim_text     TEXT NOT NULL,
	claim_hash     TEXT NOT NULL,
	score          INTEGER NOT NULL,
	verdict        TEXT NOT NULL,
	engine_version TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_records_event_id ON audit_records(event_id);
CREATE INDEX IF NOT EXISTS idx_audit_records_claim_hash ON audit_records(claim_hash);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) SaveRecord(ctx context.Context, rec model.AuditRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_records (id, event_id, claim_text, claim_hash, score, verdict, engine_version, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.EventID, rec.ClaimText, rec.ClaimHash, rec.Score, rec.Verdict, rec.EngineVersion, rec.CreatedAt,
	)
	return eris.Wrapf(err, "postgres: insert audit record %s", rec.ID)
}

func (s *PostgresStore) RecordsByEvent(ctx context.Context, eventID string) ([]model.AuditRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, claim_text, claim_hash, score, verdict, engine_version, created_at
		 FROM audit_records WHERE event_id = $1 ORDER BY created_at, id`,
		eventID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: query records for event %s", eventID)
	}
	defer rows.Close()

	var records []model.AuditRecord
	for rows.Next() {
		var rec model.AuditRecord
		if err := rows.Scan(&rec.ID, &rec.EventID, &rec.ClaimText, &rec.ClaimHash,
			&rec.Score, &rec.Verdict, &rec.EngineVersion, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan audit record")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "postgres: iterate audit records")
}
