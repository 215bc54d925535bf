package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/justsurfingit/job-canvas/internal/database"
	"github.com/justsurfingit/job-canvas/internal/dtos"
	"github.com/justsurfingit/job-canvas/internal/llm"
	"github.com/justsurfingit/job-canvas/internal/models"
	"github.com/justsurfingit/job-canvas/internal/parser"
	"github.com/justsurfingit/job-canvas/internal/prompts"
)

var (
	ErrJobNotFound = errors.New("job not found")
	// ErrExtractionFailed means the completion held no usable job JSON.
	ErrExtractionFailed = errors.New("job extraction failed")
)

const maxSummaryDescription = 600

type JobService struct {
	Store     database.JobRepository
	Completer llm.Completer
	Logger    *zap.Logger
}

func NewJobService(store database.JobRepository, completer llm.Completer, logger *zap.Logger) *JobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{Store: store, Completer: completer, Logger: logger}
}

func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		JobLink:     req.JobLink,
		Location:    req.Location,
		ResumeLink:  req.ResumeLink,
		Status:      req.Status,
	}
	if err := s.Store.CreateJob(ctx, req.CompanyName, job); err != nil {
		return nil, err
	}
	s.Logger.Info("Job created", zap.Uint("job_id", job.ID), zap.String("company", req.CompanyName))
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.Store.FindJob(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

func (s *JobService) Events(ctx context.Context, id uint) ([]models.JobEvent, error) {
	if _, err := s.GetJob(ctx, id); err != nil {
		return nil, err
	}
	return s.Store.ListEvents(ctx, id)
}

// JobSummary renders a job as one line of prompt context.
func (s *JobService) JobSummary(ctx context.Context, id uint) (string, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(job.Title)
	if job.Company.Name != "" {
		fmt.Fprintf(&b, " at %s", job.Company.Name)
	}
	if job.Location != "" {
		fmt.Fprintf(&b, " (%s)", job.Location)
	}
	if d := strings.TrimSpace(job.Description); d != "" {
		if len([]rune(d)) > maxSummaryDescription {
			d = string([]rune(d)[:maxSummaryDescription]) + "…"
		}
		b.WriteString(": " + d)
	}
	return b.String(), nil
}

func (s *JobService) RecordDiagram(ctx context.Context, jobID uint, runID string) error {
	return s.Store.AddEvent(ctx, &models.JobEvent{
		JobID:     jobID,
		EventType: models.EventDiagramGenerated,
		Details:   runID,
	})
}

// ExtractJobDetails asks the completion service for structured fields of a
// raw posting and returns the JSON object it answered with.
func (s *JobService) ExtractJobDetails(ctx context.Context, rawHTML string) (json.RawMessage, error) {
	resp, err := s.Completer.Complete(ctx, prompts.BuildJobExtraction(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompletionUnavailable, err)
	}
	obj, ok := parser.ExtractObject(resp)
	if !ok || !json.Valid([]byte(obj)) {
		s.Logger.Warn("Job extraction returned no JSON", zap.Int("response_bytes", len(resp)))
		return nil, ErrExtractionFailed
	}
	return json.RawMessage(obj), nil
}
