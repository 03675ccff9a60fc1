package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillsenselab/recruitd/internal/database"
	"github.com/skillsenselab/recruitd/internal/models"
)

// Applications provides access to application records.
type Applications struct {
	db *gorm.DB
}

// NewApplications creates an application repository.
func NewApplications(db *database.DB) *Applications {
	return &Applications{db: db.GormDB}
}

// Create inserts a new application and loads its applicant and recruitment
// associations for the response body.
func (r *Applications) Create(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return database.FromDatabase(err, "application")
	}
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Recruitment").
		First(app, app.ID).Error
	if err != nil {
		return database.FromDatabase(err, "application")
	}
	return nil
}

// ListByRecruitment returns all applications for a recruitment with their
// applicants loaded, newest first.
func (r *Applications) ListByRecruitment(ctx context.Context, recruitmentID uint) ([]models.Application, error) {
	var list []models.Application
	err := r.db.WithContext(ctx).
		Where("recruitment_id = ?", recruitmentID).
		Preload("Applicant").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, database.FromDatabase(err, "application")
	}
	return list, nil
}
