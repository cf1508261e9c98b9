package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"resume-renderer/internal/domain"
	"resume-renderer/internal/model"
)

func TestReposWithoutPool(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, NewJobsRepo(nil).Save(ctx, &domain.RenderJob{ID: uuid.New()}))

	docs := NewDocumentsRepo(nil)
	_, err := docs.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNoPool)
	_, err = docs.Save(ctx, &model.Document{})
	assert.ErrorIs(t, err, ErrNoPool)
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	if s := nullable("x"); assert.NotNil(t, s) {
		assert.Equal(t, "x", *s)
	}
}
