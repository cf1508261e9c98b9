package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgconn"
)

// Execer is satisfied by *pgxpool.Pool and *pgx.Conn.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

// Migrations are idempotent and run in order on every start.
var Migrations = []Migration{
	{
		Name: "create_resume_documents",
		SQL: `
		CREATE TABLE IF NOT EXISTS resume_documents (
			id UUID PRIMARY KEY,
			document JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	},
	{
		Name: "create_render_jobs",
		SQL: `
		CREATE TABLE IF NOT EXISTS render_jobs (
			id UUID PRIMARY KEY,
			document_id UUID REFERENCES resume_documents(id) ON DELETE SET NULL,
			status TEXT NOT NULL,
			mode TEXT NOT NULL,
			filename TEXT,
			page_size TEXT NOT NULL,
			pages INT NOT NULL DEFAULT 0,
			artifact_key TEXT,
			error TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	},
	{
		Name: "index_render_jobs_document",
		SQL:  `CREATE INDEX IF NOT EXISTS render_jobs_document_id_idx ON render_jobs (document_id);`,
	},
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, db Execer) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations {
		if _, err := db.Exec(ctx, m.SQL); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}
