package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"caredocs/pkg/domain"
)

// PostgresStore appends audit events to an ordered table. Events are written
// in the same request that performed the mutation; a serial position keeps
// read-back order stable even within one timestamp.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const auditSchema = `
CREATE TABLE IF NOT EXISTS audit_events (
    position   BIGSERIAL PRIMARY KEY,
    id         UUID NOT NULL UNIQUE,
    client_id  UUID NOT NULL,
    action     TEXT NOT NULL,
    subject    TEXT NOT NULL,
    reason     TEXT NOT NULL DEFAULT '',
    actor_id   TEXT NOT NULL DEFAULT '',
    occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS audit_events_client ON audit_events (client_id, position);
`

// EnsureSchema creates the audit table if missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, auditSchema); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, client_id, action, subject, reason, actor_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, uuid.UUID(event.ClientID), string(event.Action),
		event.Subject, event.Reason, event.ActorID, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByClient(ctx context.Context, clientID domain.ClientID) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, action, subject, reason, actor_id, occurred_at
		  FROM audit_events
		 WHERE client_id = $1
		 ORDER BY position`,
		uuid.UUID(clientID),
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		event := Event{ClientID: clientID}
		var action string
		if err := rows.Scan(&event.ID, &action, &event.Subject, &event.Reason, &event.ActorID, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Action = Action(action)
		out = append(out, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return out, nil
}
