package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillsenselab/recruitd/internal/database"
	apperrors "github.com/skillsenselab/recruitd/internal/errors"
	"github.com/skillsenselab/recruitd/internal/models"
)

// Recruitments provides access to recruitment records.
type Recruitments struct {
	db *gorm.DB
}

// NewRecruitments creates a recruitment repository.
func NewRecruitments(db *database.DB) *Recruitments {
	return &Recruitments{db: db.GormDB}
}

// List returns all recruitments, newest first.
func (r *Recruitments) List(ctx context.Context) ([]models.Recruitment, error) {
	var list []models.Recruitment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, database.FromDatabase(err, "recruitment")
	}
	return list, nil
}

// Create inserts a new recruitment.
func (r *Recruitments) Create(ctx context.Context, rec *models.Recruitment) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return database.FromDatabase(err, "recruitment")
	}
	return nil
}

// ByID finds a recruitment by primary key.
func (r *Recruitments) ByID(ctx context.Context, id uint) (*models.Recruitment, error) {
	var rec models.Recruitment
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, database.FromDatabase(err, "recruitment")
	}
	return &rec, nil
}

// SetStatus updates a recruitment's status and returns the updated record.
func (r *Recruitments) SetStatus(ctx context.Context, id uint, status models.RecruitmentStatus) (*models.Recruitment, error) {
	res := r.db.WithContext(ctx).Model(&models.Recruitment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, database.FromDatabase(res.Error, "recruitment")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("recruitment", "")
	}
	return r.ByID(ctx, id)
}
