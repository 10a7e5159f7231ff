package app

import (
	"github.com/google/uuid"
	"github.com/oppenprint/docpress/service/common"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RenderJob is a submitted document queued for, in progress with, or
// finished by the rendering worker.
type RenderJob struct {
	gorm.Model
	ID uuid.UUID `gorm:"column:id;primary_key;type:uuid;"`

	State common.RenderJobState `gorm:"column:state;index"`

	PageWidth uint   `gorm:"column:page_width"`
	Profile   string `gorm:"column:profile"` // optional profile name; stored and returned as given, not used to pick PageWidth

	Document datatypes.JSON `gorm:"column:document"` // document-algebra JSON tree, see docjson.go

	Output string `gorm:"column:output"` // set once State == Done
	Error  string `gorm:"column:error"`  // set once State == Failed
}

func (RenderJob) TableName() string {
	return "render_jobs"
}

func (j *RenderJob) BeforeCreate(tx *gorm.DB) (err error) {
	j.ID = uuid.New()
	return nil
}
