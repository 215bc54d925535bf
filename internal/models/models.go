package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/justsurfingit/job-canvas/internal/canvas"
	"github.com/justsurfingit/job-canvas/internal/diagram"
)

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"company_name"`

	// omitempty stops Job -> Company -> Jobs recursion in responses.
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint `json:"company_id"`
	// Filled only with Preload("Company").
	Company Company `json:"company"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	JobLink     string `json:"job_link"`
	Location    string `json:"location"`
	Status      string `gorm:"default:'APPLIED'" json:"status"`
	ResumeLink  string `json:"resume_link"`

	Events []JobEvent `gorm:"constraint:OnDelete:CASCADE" json:"events,omitempty"`
}

const EventDiagramGenerated = "DIAGRAM_GENERATED"

// JobEvent is an entry in a job's activity history.
type JobEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     uint      `gorm:"index" json:"job_id"`
	EventType string    `json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}

// DiagramRun is one pass of the generation pipeline and what it put on the canvas.
type DiagramRun struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID       *uint        `gorm:"index" json:"job_id,omitempty"`
	RequestText string       `gorm:"type:text;not null" json:"request_text"`
	Kind        diagram.Kind `gorm:"type:varchar(32);not null" json:"kind"`
	Topic       string       `json:"topic"`
	Confidence  float64      `json:"confidence"`
	Provider    string       `json:"provider"`

	Prompt     string `gorm:"type:text" json:"-"`
	Completion string `gorm:"type:text" json:"-"`

	// Fallback is set when the completion could not be used as-is.
	Fallback       bool   `json:"fallback"`
	FallbackReason string `json:"fallback_reason,omitempty"`
	Dropped        int    `json:"dropped_connections"`

	Content        diagram.Content    `gorm:"serializer:json" json:"content"`
	Primitives     []canvas.Primitive `gorm:"serializer:json" json:"primitives"`
	FrameID        string             `json:"frame_id"`
	ContainmentIDs []string           `gorm:"serializer:json" json:"containment_ids"`
	ViewportFitIDs []string           `gorm:"serializer:json" json:"viewport_fit_ids"`
	Grouped        bool               `json:"grouped"`
	Viewport       canvas.Viewport    `gorm:"serializer:json" json:"viewport"`
}
