package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-renderer/internal/domain"
)

type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

// Save upserts a render job. Without a pool, jobs are not recorded.
func (r *JobsRepo) Save(ctx context.Context, j *domain.RenderJob) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO render_jobs (id, document_id, status, mode, filename, page_size, pages, artifact_key, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, filename = EXCLUDED.filename, pages = EXCLUDED.pages, artifact_key = EXCLUDED.artifact_key, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		j.ID, j.DocumentID, j.Status, j.Mode, nullable(j.Filename), j.PageSize, j.Pages, nullable(j.ArtifactKey), nullable(j.Error), j.CreatedAt, j.UpdatedAt)
	return err
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
