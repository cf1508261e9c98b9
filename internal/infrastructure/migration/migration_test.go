package migration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	stmts  []string
	failOn int
}

func (r *recorder) Exec(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	r.stmts = append(r.stmts, sql)
	if r.failOn > 0 && len(r.stmts) == r.failOn {
		return nil, errors.New("relation does not exist")
	}
	return pgconn.CommandTag("CREATE TABLE"), nil
}

func TestRunMigrationsInOrder(t *testing.T) {
	r := &recorder{}
	require.NoError(t, RunMigrations(context.Background(), r))
	require.Len(t, r.stmts, len(Migrations))
	assert.True(t, strings.Contains(r.stmts[0], "resume_documents"))
	assert.True(t, strings.Contains(r.stmts[1], "render_jobs"))
}

func TestRunMigrationsStopsOnFailure(t *testing.T) {
	r := &recorder{failOn: 2}
	err := RunMigrations(context.Background(), r)
	assert.Error(t, err)
	assert.Len(t, r.stmts, 2)
}
