package override

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"caredocs/pkg/domain"
)

// PostgresStore persists overrides in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed override store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const overridesSchema = `
CREATE TABLE IF NOT EXISTS compliance_overrides (
    client_id    UUID NOT NULL,
    doc_type     TEXT NOT NULL,
    not_required BOOLEAN NOT NULL,
    reason       TEXT NOT NULL DEFAULT '',
    updated_at   TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (client_id, doc_type)
);
CREATE TABLE IF NOT EXISTS folder_overrides (
    client_id   UUID NOT NULL,
    folder_id   TEXT NOT NULL,
    custom_name TEXT NOT NULL DEFAULT '',
    hidden      BOOLEAN,
    updated_at  TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (client_id, folder_id)
);
`

// EnsureSchema creates the override tables if missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, overridesSchema); err != nil {
		return fmt.Errorf("ensure overrides schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) ComplianceOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.DocumentType]ComplianceOverride, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doc_type, not_required, reason, updated_at
		  FROM compliance_overrides
		 WHERE client_id = $1`,
		uuid.UUID(clientID),
	)
	if err != nil {
		return nil, fmt.Errorf("list compliance overrides: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.DocumentType]ComplianceOverride)
	for rows.Next() {
		ov := ComplianceOverride{ClientID: clientID}
		var docType string
		if err := rows.Scan(&docType, &ov.NotRequired, &ov.Reason, &ov.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan compliance override: %w", err)
		}
		ov.Type = domain.DocumentType(docType)
		out[ov.Type] = ov
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list compliance overrides: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpsertComplianceOverride(ctx context.Context, ov ComplianceOverride) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO compliance_overrides (client_id, doc_type, not_required, reason, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (client_id, doc_type) DO UPDATE
		   SET not_required = EXCLUDED.not_required,
		       reason = EXCLUDED.reason,
		       updated_at = EXCLUDED.updated_at`,
		uuid.UUID(ov.ClientID), string(ov.Type), ov.NotRequired, ov.Reason, ov.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert compliance override: %w", err)
	}
	return nil
}

func (s *PostgresStore) FolderOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.FolderID]FolderOverride, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT folder_id, custom_name, hidden, updated_at
		  FROM folder_overrides
		 WHERE client_id = $1`,
		uuid.UUID(clientID),
	)
	if err != nil {
		return nil, fmt.Errorf("list folder overrides: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.FolderID]FolderOverride)
	for rows.Next() {
		ov := FolderOverride{ClientID: clientID}
		var folderID string
		var hidden sql.NullBool
		if err := rows.Scan(&folderID, &ov.CustomName, &hidden, &ov.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan folder override: %w", err)
		}
		ov.FolderID = domain.FolderID(folderID)
		if hidden.Valid {
			v := hidden.Bool
			ov.Hidden = &v
		}
		out[ov.FolderID] = ov
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list folder overrides: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpsertFolderOverride(ctx context.Context, ov FolderOverride) error {
	var hidden sql.NullBool
	if ov.Hidden != nil {
		hidden = sql.NullBool{Bool: *ov.Hidden, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO folder_overrides (client_id, folder_id, custom_name, hidden, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (client_id, folder_id) DO UPDATE
		   SET custom_name = EXCLUDED.custom_name,
		       hidden = EXCLUDED.hidden,
		       updated_at = EXCLUDED.updated_at`,
		uuid.UUID(ov.ClientID), string(ov.FolderID), ov.CustomName, hidden, ov.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert folder override: %w", err)
	}
	return nil
}
