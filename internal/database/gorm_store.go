package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/justsurfingit/job-canvas/internal/models"
)

// GormStore implements Store on a gorm connection.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) SaveRun(ctx context.Context, run *models.DiagramRun) error {
	return s.DB.WithContext(ctx).Save(run).Error
}

func (s *GormStore) FindRun(ctx context.Context, id string) (*models.DiagramRun, error) {
	var run models.DiagramRun
	err := s.DB.WithContext(ctx).First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *GormStore) ListRuns(ctx context.Context, limit int) ([]models.DiagramRun, error) {
	var runs []models.DiagramRun
	err := s.DB.WithContext(ctx).
		Order("created_at desc").
		Limit(normalizeLimit(limit)).
		Find(&runs).Error
	return runs, err
}

func (s *GormStore) CreateJob(ctx context.Context, companyName string, job *models.Job) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company models.Company
		// Creates the company only if it does not exist yet.
		if err := tx.Where(models.Company{Name: companyName}).FirstOrCreate(&company).Error; err != nil {
			return err
		}
		job.CompanyID = company.ID
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		job.Company = company
		return nil
	})
}

func (s *GormStore) FindJob(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).Preload("Company").First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// AddEvent fails with ErrNotFound when the job does not exist.
func (s *GormStore) AddEvent(ctx context.Context, event *models.JobEvent) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Job{}).Where("id = ?", event.JobID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Create(event).Error
	})
}

func (s *GormStore) ListEvents(ctx context.Context, jobID uint) ([]models.JobEvent, error) {
	var events []models.JobEvent
	err := s.DB.WithContext(ctx).Where("job_id = ?", jobID).Order("created_at asc").Find(&events).Error
	return events, err
}
