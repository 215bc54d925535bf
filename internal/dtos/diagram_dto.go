package dtos

import (
	"time"

	"github.com/justsurfingit/job-canvas/internal/canvas"
	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/models"
)

type IntentRequest struct {
	Text string `json:"text" binding:"required"`
}

type IntentResponse struct {
	Intent            diagram.Intent `json:"intent"`
	IsCreationRequest bool           `json:"is_creation_request"`
}

type DiagramRequest struct {
	Text           string            `json:"text" binding:"required"`
	JobID          *uint             `json:"job_id"`
	ProfileSummary string            `json:"profile_summary"`
	Facts          []string          `json:"facts"`
	Anchor         *diagram.Position `json:"anchor"`
}

type DiagramResponse struct {
	ID             string             `json:"id"`
	CreatedAt      time.Time          `json:"created_at"`
	JobID          *uint              `json:"job_id,omitempty"`
	Kind           diagram.Kind       `json:"kind"`
	Topic          string             `json:"topic"`
	Confidence     float64            `json:"confidence"`
	Provider       string             `json:"provider"`
	Fallback       bool               `json:"fallback"`
	Dropped        int                `json:"dropped_connections"`
	FrameID        string             `json:"frame_id"`
	Primitives     []canvas.Primitive `json:"primitives"`
	ContainmentIDs []string           `json:"containment_ids"`
	ViewportFitIDs []string           `json:"viewport_fit_ids"`
	Grouped        bool               `json:"grouped"`
	Viewport       canvas.Viewport    `json:"viewport"`
	Content        diagram.Content    `json:"content"`
}

// DiagramSummary is the list view of a run.
type DiagramSummary struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Kind      diagram.Kind `json:"kind"`
	Topic     string       `json:"topic"`
	Fallback  bool         `json:"fallback"`
}

func NewDiagramResponse(run *models.DiagramRun) DiagramResponse {
	return DiagramResponse{
		ID:             run.ID,
		CreatedAt:      run.CreatedAt,
		JobID:          run.JobID,
		Kind:           run.Kind,
		Topic:          run.Topic,
		Confidence:     run.Confidence,
		Provider:       run.Provider,
		Fallback:       run.Fallback,
		Dropped:        run.Dropped,
		FrameID:        run.FrameID,
		Primitives:     run.Primitives,
		ContainmentIDs: run.ContainmentIDs,
		ViewportFitIDs: run.ViewportFitIDs,
		Grouped:        run.Grouped,
		Viewport:       run.Viewport,
		Content:        run.Content,
	}
}

func NewDiagramSummary(run models.DiagramRun) DiagramSummary {
	return DiagramSummary{ID: run.ID, CreatedAt: run.CreatedAt, Kind: run.Kind, Topic: run.Topic, Fallback: run.Fallback}
}
