package service

import (
	"context"
	"time"

	apperrors "github.com/skillsenselab/recruitd/internal/errors"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/models"
	"github.com/skillsenselab/recruitd/internal/repository"
	"github.com/skillsenselab/recruitd/internal/validation"
)

// CreateRecruitmentInput is the create-recruitment request body.
type CreateRecruitmentInput struct {
	Title          string      `json:"title" validate:"required"`
	Deadline       string      `json:"deadline" validate:"required"`
	Posts          []string    `json:"posts" validate:"required,min=1"`
	Questions      models.JSON `json:"questions"`
	WhatsappLink   string      `json:"whatsappLink"`
	OrganizationID uint        `json:"organizationId" validate:"required"`
}

// SetStatusInput is the change-status request body.
type SetStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// RecruitmentService manages recruitment drives.
//
// Any authenticated subject may create a recruitment or change its status;
// there is deliberately no role check here. Tightening this to organizers
// only would change observable behavior the clients rely on.
type RecruitmentService struct {
	recruitments *repository.Recruitments
	log          *logger.Logger
}

// NewRecruitmentService constructs a RecruitmentService.
func NewRecruitmentService(recruitments *repository.Recruitments, log *logger.Logger) *RecruitmentService {
	return &RecruitmentService{
		recruitments: recruitments,
		log:          log.WithComponent("recruitment"),
	}
}

// List returns all recruitments, newest first.
func (s *RecruitmentService) List(ctx context.Context) ([]models.Recruitment, error) {
	return s.recruitments.List(ctx)
}

// Create opens a new recruitment drive in ACTIVE status.
func (s *RecruitmentService) Create(ctx context.Context, in CreateRecruitmentInput) (*models.Recruitment, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(in.Deadline)
	if err != nil {
		return nil, apperrors.Validation("deadline: must be an RFC3339 timestamp or YYYY-MM-DD date")
	}

	rec := &models.Recruitment{
		Title:          in.Title,
		Deadline:       deadline,
		Posts:          models.StringSlice(in.Posts),
		Questions:      in.Questions,
		OrganizationID: in.OrganizationID,
		Status:         models.StatusActive,
	}
	if in.WhatsappLink != "" {
		rec.WhatsappLink = &in.WhatsappLink
	}

	if err := s.recruitments.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("Recruitment created", logger.Fields(
		"recruitment_id", rec.ID,
		"organization_id", rec.OrganizationID,
	))
	return rec, nil
}

// SetStatus moves a recruitment to a new lifecycle state.
func (s *RecruitmentService) SetStatus(ctx context.Context, id uint, in SetStatusInput) (*models.Recruitment, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}

	status := models.RecruitmentStatus(in.Status)
	if !status.Valid() {
		return nil, apperrors.Validation("status: must be one of ACTIVE, PAUSED, CLOSED")
	}

	rec, err := s.recruitments.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.log.Info("Recruitment status changed", logger.Fields(
		"recruitment_id", id,
		logger.FieldStatus, status,
	))
	return rec, nil
}

// parseDeadline accepts RFC3339 timestamps and plain dates.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
