package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oppenprint/docpress/pretty"
	"github.com/oppenprint/docpress/service/common"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func handleWorkerError(err error) {
	// Ignore db lock errors, print others
	if err != nil && !strings.Contains(err.Error(), "could not obtain lock on row") {
		log.Printf("error while listing pending render jobs: %s", err)
	}
}

func listRenderJobsByState(db *gorm.DB, state common.RenderJobState, limit int) ([]RenderJob, error) {
	list := []RenderJob{}
	// Explicit column condition, not a struct literal: RenderJobStatePending
	// is the zero value, which gorm's struct-based Where silently ignores.
	return list, db.
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		Where("state = ?", state).
		Order("updated_at asc").
		Limit(limit).
		Find(&list).Error
}

func handlePending(db *gorm.DB, batchSize int, decode func(raw []byte) (pretty.Document, error), cache RenderCache) error {
	return db.Transaction(func(tx *gorm.DB) error {
		pending, err := listRenderJobsByState(tx, common.RenderJobStatePending, batchSize)
		if err != nil {
			return err
		}

		for i := range pending {
			job := &pending[i]
			job.State = common.RenderJobStateRendering
			if err := tx.Save(job).Error; err != nil {
				return err
			}

			render(tx, job, decode, cache)
		}

		return nil
	})
}

// Worker periodically claims Pending render jobs and runs them through
// the engine.
type Worker struct {
	db           *gorm.DB
	batchSize    int
	pollInterval time.Duration
	decode       func(raw []byte) (pretty.Document, error)
	cache        RenderCache
}

func NewWorker(db *gorm.DB, batchSize int, pollInterval time.Duration, decode func(raw []byte) (pretty.Document, error), cache RenderCache) *Worker {
	if cache == nil {
		cache = noopRenderCache{}
	}
	return &Worker{db, batchSize, pollInterval, decode, cache}
}

// Run blocks, polling until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			handleWorkerError(handlePending(w.db, w.batchSize, w.decode, w.cache))
		}
	}
}

// render runs the engine against a single claimed job and persists the
// outcome. A panic from the engine (a programmatic contract violation,
// not a user-input error) is converted to a failed job rather than
// taking the worker down.
func render(tx *gorm.DB, job *RenderJob, decode func(raw []byte) (pretty.Document, error), cache RenderCache) {
	defer func() {
		if r := recover(); r != nil {
			job.State = common.RenderJobStateFailed
			job.Error = fmt.Sprintf("internal error: %v", r)
			tx.Save(job)
		}
	}()

	if out, ok := cache.Get(context.Background(), job.PageWidth, job.Document); ok {
		job.Output = out
		job.State = common.RenderJobStateDone
		tx.Save(job)
		return
	}

	doc, err := decode(job.Document)
	if err != nil {
		job.State = common.RenderJobStateFailed
		job.Error = err.Error()
		tx.Save(job)
		return
	}

	job.Output = pretty.Print(job.PageWidth, doc)
	job.State = common.RenderJobStateDone
	tx.Save(job)

	cache.Set(context.Background(), job.PageWidth, job.Document, job.Output)
}
