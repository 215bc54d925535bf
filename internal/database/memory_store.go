package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/justsurfingit/job-canvas/internal/models"
)

// MemoryStore implements Store in process memory. It backs the service when
// DATABASE_URL is empty and the CLI.
type MemoryStore struct {
	mu        sync.RWMutex
	runs      map[string]models.DiagramRun
	companies map[string]models.Company
	jobs      map[uint]models.Job
	events    map[uint][]models.JobEvent
	nextID    uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:      make(map[string]models.DiagramRun),
		companies: make(map[string]models.Company),
		jobs:      make(map[uint]models.Job),
		events:    make(map[uint][]models.JobEvent),
	}
}

func (m *MemoryStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *MemoryStore) SaveRun(_ context.Context, run *models.DiagramRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	run.UpdatedAt = now
	m.runs[run.ID] = *run
	return nil
}

func (m *MemoryStore) FindRun(_ context.Context, id string) (*models.DiagramRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	run, ok := m.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &run, nil
}

func (m *MemoryStore) ListRuns(_ context.Context, limit int) ([]models.DiagramRun, error) {
	m.mu.RLock()
	runs := make([]models.DiagramRun, 0, len(m.runs))
	for _, r := range m.runs {
		runs = append(runs, r)
	}
	m.mu.RUnlock()

	sort.Slice(runs, func(i, j int) bool { return runs[i].CreatedAt.After(runs[j].CreatedAt) })
	if n := normalizeLimit(limit); len(runs) > n {
		runs = runs[:n]
	}
	return runs, nil
}

func (m *MemoryStore) CreateJob(_ context.Context, companyName string, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()

	company, ok := m.companies[companyName]
	if !ok {
		company = models.Company{ID: m.id(), Name: companyName, CreatedAt: now, UpdatedAt: now}
		m.companies[companyName] = company
	}
	job.ID = m.id()
	job.CompanyID = company.ID
	job.Company = company
	job.CreatedAt, job.UpdatedAt = now, now
	if job.Status == "" {
		job.Status = "APPLIED"
	}
	m.jobs[job.ID] = *job
	return nil
}

func (m *MemoryStore) FindJob(_ context.Context, id uint) (*models.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &job, nil
}

func (m *MemoryStore) AddEvent(_ context.Context, event *models.JobEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[event.JobID]; !ok {
		return ErrNotFound
	}
	event.ID = m.id()
	event.CreatedAt = time.Now()
	m.events[event.JobID] = append(m.events[event.JobID], *event)
	return nil
}

func (m *MemoryStore) ListEvents(_ context.Context, jobID uint) ([]models.JobEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.JobEvent(nil), m.events[jobID]...), nil
}
