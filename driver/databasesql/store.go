package databasesql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/docpg/docpg/driver"
)

const documentColumns = `id, collection, title, source_type, content, summary, metadata, created_at, updated_at`

// Store implements driver.Store using database/sql.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store directly from a database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateDocument inserts a new document.
func (s *Store) CreateDocument(ctx context.Context, params driver.CreateDocumentParams) (*driver.Document, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if params.Collection == "" {
		params.Collection = "default"
	}
	if params.SourceType == "" {
		params.SourceType = "note"
	}

	metadataJSON, err := marshalMetadata(params.Metadata)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO docpg_documents (id, collection, title, source_type, content, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + documentColumns

	row := s.db.QueryRowContext(ctx, query,
		uuid.New(), params.Collection, params.Title, params.SourceType, params.Content, metadataJSON)

	doc, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*driver.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM docpg_documents WHERE id = $1`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, driver.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// UpdateDocument applies the non-nil fields of params. A content change
// clears the stored summary since it no longer describes the document.
func (s *Store) UpdateDocument(ctx context.Context, id uuid.UUID, params driver.UpdateDocumentParams) (*driver.Document, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	if params.Collection != nil {
		args = append(args, *params.Collection)
		sets = append(sets, fmt.Sprintf("collection = $%d", len(args)))
	}
	if params.Title != nil {
		args = append(args, *params.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if params.Content != nil {
		args = append(args, *params.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
		sets = append(sets, "summary = NULL")
	}
	if params.Metadata != nil {
		metadataJSON, err := marshalMetadata(params.Metadata)
		if err != nil {
			return nil, err
		}
		args = append(args, metadataJSON)
		sets = append(sets, fmt.Sprintf("metadata = $%d", len(args)))
	}

	query := `UPDATE docpg_documents SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + documentColumns

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, driver.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

// DeleteDocument removes a document.
func (s *Store) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM docpg_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if affected == 0 {
		return driver.ErrNotFound
	}
	return nil
}

// ListDocuments returns a filtered page ordered by most recently updated.
func (s *Store) ListDocuments(ctx context.Context, params driver.ListDocumentsParams) ([]*driver.Document, int, error) {
	var where []string
	var args []any

	if params.Collection != "" {
		args = append(args, params.Collection)
		where = append(where, fmt.Sprintf("collection = $%d", len(args)))
	}
	if params.SourceType != "" {
		args = append(args, params.SourceType)
		where = append(where, fmt.Sprintf("source_type = $%d", len(args)))
	}
	if params.Query != "" {
		args = append(args, "%"+params.Query+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", n, n))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM docpg_documents` + clause
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	limitPos := len(args)
	args = append(args, params.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`SELECT %s FROM docpg_documents%s ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`,
		documentColumns, clause, limitPos, offsetPos)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []*driver.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read documents: %w", err)
	}
	return docs, total, nil
}

// SetDocumentSummary stores a generated summary.
func (s *Store) SetDocumentSummary(ctx context.Context, id uuid.UUID, summary string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE docpg_documents SET summary = $2, updated_at = NOW() WHERE id = $1`, id, summary)
	if err != nil {
		return fmt.Errorf("failed to set summary: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set summary: %w", err)
	}
	if affected == 0 {
		return driver.ErrNotFound
	}
	return nil
}

// ListCollections returns per-collection counts ordered by name.
func (s *Store) ListCollections(ctx context.Context) ([]*driver.CollectionStats, error) {
	query := `
		SELECT collection, COUNT(*), MAX(updated_at)
		FROM docpg_documents
		GROUP BY collection
		ORDER BY collection
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var collections []*driver.CollectionStats
	for rows.Next() {
		var c driver.CollectionStats
		if err := rows.Scan(&c.Name, &c.DocumentCount, &c.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read collections: %w", err)
	}
	return collections, nil
}

// GetStats returns the dashboard counters.
func (s *Store) GetStats(ctx context.Context) (*driver.Stats, error) {
	stats := &driver.Stats{BySourceType: make(map[string]int)}

	query := `
		SELECT COUNT(*),
		       COUNT(DISTINCT collection),
		       COUNT(summary),
		       COUNT(*) FILTER (WHERE updated_at >= date_trunc('day', NOW()))
		FROM docpg_documents
	`
	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalDocuments, &stats.TotalCollections, &stats.Summarized, &stats.UpdatedToday)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT source_type, COUNT(*) FROM docpg_documents GROUP BY source_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to query source type counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sourceType string
		var count int
		if err := rows.Scan(&sourceType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan source type count: %w", err)
		}
		stats.BySourceType[sourceType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source type counts: %w", err)
	}
	return stats, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*driver.Document, error) {
	var doc driver.Document
	var metadataJSON []byte

	err := row.Scan(
		&doc.ID,
		&doc.Collection,
		&doc.Title,
		&doc.SourceType,
		&doc.Content,
		&doc.Summary,
		&metadataJSON,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &doc.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}
	return &doc, nil
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return b, nil
}
