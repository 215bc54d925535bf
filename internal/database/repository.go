// Package database persists jobs and diagram runs, in Postgres through gorm
// or in memory when no database is configured.
package database

import (
	"context"
	"errors"

	"github.com/justsurfingit/job-canvas/internal/models"
)

var ErrNotFound = errors.New("database: record not found")

type DiagramRepository interface {
	SaveRun(ctx context.Context, run *models.DiagramRun) error
	FindRun(ctx context.Context, id string) (*models.DiagramRun, error)
	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]models.DiagramRun, error)
}

type JobRepository interface {
	// CreateJob stores job under the named company, creating the company if needed.
	CreateJob(ctx context.Context, companyName string, job *models.Job) error
	// FindJob loads a job with its company.
	FindJob(ctx context.Context, id uint) (*models.Job, error)
	AddEvent(ctx context.Context, event *models.JobEvent) error
	ListEvents(ctx context.Context, jobID uint) ([]models.JobEvent, error)
}

// Store is everything the services need from persistence.
type Store interface {
	DiagramRepository
	JobRepository
}

const DefaultListLimit = 20

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return DefaultListLimit
	}
	return limit
}
