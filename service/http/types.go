package http

import (
	"encoding/json"
	"time"

	"github.com/oppenprint/docpress/service/app"
	"github.com/oppenprint/docpress/service/common"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReqSubmitRender struct {
	PageWidth uint            `json:"pageWidth"`
	Profile   string          `json:"profile"`
	Document  json.RawMessage `json:"document"`
}

type ResSubmitRender struct {
	ID    uuid.UUID `json:"id"`
	State string    `json:"state"`
}

type ResRenderJob struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	State     string    `json:"state"`
	PageWidth uint      `json:"pageWidth"`
	Profile   string    `json:"profile,omitempty"`
	Output    string    `json:"output,omitempty"`
	Error     string    `json:"error,omitempty"`
}

type ResRenderSync struct {
	Output string `json:"output"`
}

func stateName(s common.RenderJobState) string {
	switch s {
	case common.RenderJobStatePending:
		return "pending"
	case common.RenderJobStateRendering:
		return "rendering"
	case common.RenderJobStateDone:
		return "done"
	case common.RenderJobStateFailed:
		return "failed"
	case common.RenderJobStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func ResRenderJobFromApp(j *app.RenderJob) ResRenderJob {
	return ResRenderJob{
		ID:        j.ID,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
		State:     stateName(j.State),
		PageWidth: j.PageWidth,
		Profile:   j.Profile,
		Output:    j.Output,
		Error:     j.Error,
	}
}

func ResRenderJobListFromApp(jj []app.RenderJob) []ResRenderJob {
	res := make([]ResRenderJob, len(jj))
	for i, j := range jj {
		res[i] = ResRenderJobFromApp(&j)
	}
	return res
}

func (req ReqSubmitRender) ToApp() app.RenderJob {
	return app.RenderJob{
		PageWidth: req.PageWidth,
		Profile:   req.Profile,
		Document:  datatypes.JSON(req.Document),
	}
}
