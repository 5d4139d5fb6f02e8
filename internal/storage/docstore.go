package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "serenity/internal/errors"
)

// Collection names, one per record kind.
const (
	CollectionJournalEntries = "journal_entries"
	CollectionChatMessages   = "chat_messages"
	CollectionMoodCheckins   = "mood_checkins"
)

// SortOrder selects how Find orders records by creation time.
type SortOrder int

const (
	SortNewestFirst SortOrder = iota
	SortOldestFirst
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id BIGSERIAL PRIMARY KEY,
	collection TEXT NOT NULL,
	doc JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS records_collection_created_at_idx
	ON records (collection, created_at);
CREATE INDEX IF NOT EXISTS records_doc_idx
	ON records USING GIN (doc jsonb_path_ops);
`

// DocStore keeps schemaless record maps in a single JSONB table. Records
// carry their creation time inside the doc as an ISO-8601 string; a typed
// column mirrors it so the database can order and index reads.
type DocStore struct {
	pool *pgxpool.Pool
}

func NewDocStore(pool *pgxpool.Pool) *DocStore {
	return &DocStore{pool: pool}
}

// EnsureSchema creates the records table and indexes if missing.
func (s *DocStore) EnsureSchema(ctx context.Context) error {
	op := "storage.EnsureSchema"

	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return apperrors.NewStore(op, err)
	}
	return nil
}

// Insert appends one record to a collection. The doc must carry a
// "created_at" ISO-8601 string; it is mirrored into the sortable column.
func (s *DocStore) Insert(ctx context.Context, collection string, doc map[string]any) error {
	op := "storage.Insert"

	createdAt, err := docCreatedAt(doc)
	if err != nil {
		return apperrors.NewStore(op, err)
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return apperrors.NewStore(op, err)
	}

	sqlQuery := `
	INSERT INTO records (collection, doc, created_at)
	VALUES ($1, $2, $3);
	`

	if _, err := s.pool.Exec(ctx, sqlQuery, collection, docJSON, createdAt); err != nil {
		return apperrors.NewStore(op, err)
	}
	return nil
}

// Find returns up to limit records whose doc contains all filter fields,
// ordered by creation time.
func (s *DocStore) Find(ctx context.Context, collection string, filter map[string]any, sort SortOrder, limit int) ([]map[string]any, error) {
	op := "storage.Find"

	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, apperrors.NewStore(op, err)
	}

	order := "DESC"
	if sort == SortOldestFirst {
		order = "ASC"
	}

	sqlQuery := `
	SELECT doc FROM records
	WHERE collection = $1 AND doc @> $2
	ORDER BY created_at ` + order + `
	LIMIT $3;
	`

	rows, err := s.pool.Query(ctx, sqlQuery, collection, filterJSON, limit)
	if err != nil {
		return nil, apperrors.NewStore(op, err)
	}
	defer rows.Close()

	docs := []map[string]any{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, apperrors.NewStore(op, err)
		}
		doc := map[string]any{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, apperrors.NewStore(op, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStore(op, err)
	}
	return docs, nil
}

// Count returns how many records in a collection match the filter.
func (s *DocStore) Count(ctx context.Context, collection string, filter map[string]any) (int64, error) {
	op := "storage.Count"

	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return 0, apperrors.NewStore(op, err)
	}

	sqlQuery := `
	SELECT COUNT(*) FROM records
	WHERE collection = $1 AND doc @> $2;
	`

	var count int64
	if err := s.pool.QueryRow(ctx, sqlQuery, collection, filterJSON).Scan(&count); err != nil {
		return 0, apperrors.NewStore(op, err)
	}
	return count, nil
}

func docCreatedAt(doc map[string]any) (time.Time, error) {
	raw, ok := doc["created_at"].(string)
	if !ok {
		return time.Time{}, errors.New("doc missing created_at")
	}
	return parseTimestamp(raw)
}
