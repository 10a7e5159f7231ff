package app

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store interface {
	// Insert a render job
	InsertRenderJob(*RenderJob) error

	// Update a render job
	UpdateRenderJob(*RenderJob) error

	// List render jobs
	ListRenderJobs(ListOptions) ([]RenderJob, error)

	// Get a render job
	GetRenderJob(id uuid.UUID) (*RenderJob, error)

	// DB returns the underlying database handle, for the worker, which
	// needs row-locking transactions the narrow Store interface does
	// not expose.
	DB() *gorm.DB
}

type ListOptions struct {
	Limit  int
	Offset int
}

const DefaultLimit = 1000

func ParseListOptions(limit, offset int) ListOptions {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 {
		limit = -1
		offset = 0
	}
	if offset < 0 {
		offset = 0
	}
	return ListOptions{Limit: limit, Offset: offset}
}
