package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oppenprint/docpress/pretty"
	apperrors "github.com/oppenprint/docpress/service/errors"
	log "github.com/sirupsen/logrus"

	"github.com/oppenprint/docpress/service/common"
	"github.com/oppenprint/docpress/service/config"
)

// Decoder turns a stored document-algebra JSON tree into a pretty.Document.
// Injected from service/http so this package never imports encoding/json
// for the wire format; the engine stays reachable only through Print.
type Decoder func(raw []byte) (pretty.Document, error)

type App struct {
	cfg    *config.Config
	logger *log.Logger
	db     Store
	cache  RenderCache
	decode Decoder
}

func New(cfg *config.Config, logger *log.Logger, db Store, cache RenderCache, decode Decoder) *App {
	if cache == nil {
		cache = noopRenderCache{}
	}
	return &App{cfg, logger, db, cache, decode}
}

// SubmitRenderJob validates and queues a document for asynchronous
// rendering.
func (app *App) SubmitRenderJob(ctx context.Context, job *RenderJob) error {
	if job.PageWidth == 0 {
		job.PageWidth = app.cfg.DefaultPageWidth
	}

	if err := job.Validate(); err != nil {
		return err
	}

	job.State = common.RenderJobStatePending

	if err := app.db.InsertRenderJob(job); err != nil {
		return err
	}

	return nil
}

// RenderSync decodes and renders a document immediately, bypassing the
// queue, for callers that want a synchronous response. It still
// consults and populates the cache.
func (app *App) RenderSync(ctx context.Context, width uint, document []byte) (string, error) {
	if width == 0 {
		width = app.cfg.DefaultPageWidth
	}

	if out, ok := app.cache.Get(ctx, width, document); ok {
		return out, nil
	}

	doc, err := app.decode(document)
	if err != nil {
		return "", err
	}

	out := pretty.Print(width, doc)
	app.cache.Set(ctx, width, document, out)

	return out, nil
}

func (app *App) ListRenderJobs(ctx context.Context, limit, offset int) ([]RenderJob, error) {
	opt := ParseListOptions(limit, offset)
	return app.db.ListRenderJobs(opt)
}

func (app *App) GetRenderJob(ctx context.Context, id uuid.UUID) (*RenderJob, error) {
	return app.db.GetRenderJob(id)
}

// CancelRenderJob cancels a job that has not started rendering yet.
func (app *App) CancelRenderJob(ctx context.Context, id uuid.UUID) error {
	job, err := app.db.GetRenderJob(id)
	if err != nil {
		return err
	}

	if job.State != common.RenderJobStatePending {
		return &apperrors.InvalidJobStateError{}
	}

	job.State = common.RenderJobStateCancelled

	return app.db.UpdateRenderJob(job)
}

// StartWorker launches the background render queue worker, polling
// every RenderQueuePollIntervalMS, and blocks until ctx is cancelled.
func (app *App) StartWorker(ctx context.Context) {
	interval := time.Duration(app.cfg.RenderQueuePollIntervalMS) * time.Millisecond
	worker := NewWorker(app.db.DB(), app.cfg.RenderBatchSize, interval, app.decode, app.cache)
	worker.Run(ctx)
}
