package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-renderer/internal/model"
)

var (
	ErrNotFound = errors.New("document not found")
	ErrNoPool   = errors.New("document store is not configured")
)

// DocumentsRepo stores document records as JSONB.
type DocumentsRepo struct {
	pool *pgxpool.Pool
}

func NewDocumentsRepo(pool *pgxpool.Pool) *DocumentsRepo {
	return &DocumentsRepo{pool: pool}
}

func (r *DocumentsRepo) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	if r.pool == nil {
		return nil, ErrNoPool
	}
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT document FROM resume_documents WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	doc.ID = id
	return &doc, nil
}

// Save upserts a document. A document without an id is assigned one.
func (r *DocumentsRepo) Save(ctx context.Context, doc *model.Document) (uuid.UUID, error) {
	if r.pool == nil {
		return uuid.Nil, ErrNoPool
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resume_documents (id, document) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`, doc.ID, raw)
	if err != nil {
		return uuid.Nil, err
	}
	return doc.ID, nil
}
