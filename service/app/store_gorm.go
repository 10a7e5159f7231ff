package app

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	db.AutoMigrate(&RenderJob{})
	return &GormStore{db}
}

// Insert a render job
func (s *GormStore) InsertRenderJob(j *RenderJob) error {
	return s.db.Create(j).Error
}

// Update a render job
func (s *GormStore) UpdateRenderJob(j *RenderJob) error {
	return s.db.Save(j).Error
}

// List render jobs
func (s *GormStore) ListRenderJobs(opt ListOptions) ([]RenderJob, error) {
	list := []RenderJob{}
	if err := s.db.Order("created_at desc").Limit(opt.Limit).Offset(opt.Offset).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Get a render job
func (s *GormStore) GetRenderJob(id uuid.UUID) (*RenderJob, error) {
	job := RenderJob{}
	if err := s.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// DB exposes the underlying handle for the worker's locking queries.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}
