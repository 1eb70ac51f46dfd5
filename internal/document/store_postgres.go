package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"caredocs/pkg/domain"
	"caredocs/pkg/platform/sentinel"

	"github.com/google/uuid"
)

// PostgresStore persists documents in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed document store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// The partial unique index enforces the one-current-document-per-obligation
// invariant at the store boundary, not just in service code.
const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
    id                 UUID PRIMARY KEY,
    client_id          UUID NOT NULL,
    doc_type           TEXT NOT NULL,
    source             TEXT NOT NULL,
    file_name          TEXT NOT NULL,
    storage_ref        TEXT NOT NULL,
    upload_date        TIMESTAMPTZ NOT NULL,
    expiry_date        TIMESTAMPTZ,
    custom_title       TEXT NOT NULL DEFAULT '',
    folder_id          TEXT NOT NULL DEFAULT '',
    archived           BOOLEAN NOT NULL DEFAULT FALSE,
    original_folder_id TEXT NOT NULL DEFAULT '',
    created_at         TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS documents_current_obligation
    ON documents (client_id, doc_type) WHERE NOT archived;
CREATE INDEX IF NOT EXISTS documents_client ON documents (client_id);
`

// EnsureSchema creates the documents table and indexes if missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, documentsSchema); err != nil {
		return fmt.Errorf("ensure documents schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, doc *Document) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (
			id, client_id, doc_type, source, file_name, storage_ref,
			upload_date, expiry_date, custom_title, folder_id,
			archived, original_folder_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		uuid.UUID(doc.ID), uuid.UUID(doc.ClientID), string(doc.Type), string(doc.Source),
		doc.FileName, doc.StorageRef, doc.UploadDate, nullTime(doc.ExpiryDate),
		doc.CustomTitle, string(doc.FolderID), doc.Archived,
		string(doc.OriginalFolderID), doc.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id domain.DocumentID) (*Document, error) {
	row := s.db.QueryRowContext(ctx, selectDocument+` WHERE id = $1`, uuid.UUID(id))
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (s *PostgresStore) ListByClient(ctx context.Context, clientID domain.ClientID) ([]*Document, error) {
	rows, err := s.db.QueryContext(ctx,
		selectDocument+` WHERE client_id = $1 ORDER BY created_at`, uuid.UUID(clientID))
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, doc *Document) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE documents
		   SET upload_date = $2, expiry_date = $3, custom_title = $4
		 WHERE id = $1`,
		uuid.UUID(doc.ID), doc.UploadDate, nullTime(doc.ExpiryDate), doc.CustomTitle,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) Archive(ctx context.Context, id domain.DocumentID) (*Document, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE documents
		   SET archived = TRUE, original_folder_id = folder_id
		 WHERE id = $1 AND NOT archived
		 RETURNING `+documentColumns,
		uuid.UUID(id),
	)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.archiveStateError(ctx, id)
		}
		return nil, fmt.Errorf("archive document: %w", err)
	}
	return doc, nil
}

func (s *PostgresStore) Unarchive(ctx context.Context, id domain.DocumentID) (*Document, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE documents
		   SET archived = FALSE, folder_id = original_folder_id, original_folder_id = ''
		 WHERE id = $1 AND archived
		 RETURNING `+documentColumns,
		uuid.UUID(id),
	)
	doc, err := scanDocument(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, sentinel.ErrConflict
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.unarchiveStateError(ctx, id)
		}
		return nil, fmt.Errorf("unarchive document: %w", err)
	}
	return doc, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id domain.DocumentID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return requireRow(res)
}

// archiveStateError distinguishes a missing row from an already-archived one.
func (s *PostgresStore) archiveStateError(ctx context.Context, id domain.DocumentID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return sentinel.ErrInvalidState
}

func (s *PostgresStore) unarchiveStateError(ctx context.Context, id domain.DocumentID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return sentinel.ErrInvalidState
}

const documentColumns = `
	id, client_id, doc_type, source, file_name, storage_ref,
	upload_date, expiry_date, custom_title, folder_id,
	archived, original_folder_id, created_at`

const selectDocument = `SELECT ` + documentColumns + ` FROM documents`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var (
		doc              Document
		id, clientID     uuid.UUID
		docType, source  string
		folderID         string
		originalFolderID string
		expiry           sql.NullTime
	)
	err := row.Scan(
		&id, &clientID, &docType, &source, &doc.FileName, &doc.StorageRef,
		&doc.UploadDate, &expiry, &doc.CustomTitle, &folderID,
		&doc.Archived, &originalFolderID, &doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	doc.ID = domain.DocumentID(id)
	doc.ClientID = domain.ClientID(clientID)
	doc.Type = domain.DocumentType(docType)
	doc.Source = Source(source)
	doc.FolderID = domain.FolderID(folderID)
	doc.OriginalFolderID = domain.FolderID(originalFolderID)
	if expiry.Valid {
		t := expiry.Time
		doc.ExpiryDate = &t
	}
	return &doc, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
