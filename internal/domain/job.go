package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// RenderJob records one render request and its outcome.
type RenderJob struct {
	ID          uuid.UUID  `json:"id"`
	DocumentID  *uuid.UUID `json:"document_id,omitempty"`
	Status      string     `json:"status"`
	Mode        string     `json:"mode"`
	Filename    string     `json:"filename,omitempty"`
	PageSize    string     `json:"page_size"`
	Pages       int        `json:"pages"`
	ArtifactKey string     `json:"artifact_key,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
