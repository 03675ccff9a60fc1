package service

import (
	"context"
	"strconv"
	"time"

	"github.com/skillsenselab/recruitd/internal/auth"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/models"
	"github.com/skillsenselab/recruitd/internal/repository"
	"github.com/skillsenselab/recruitd/internal/validation"
)

// ApplyInput is the submit-application request body. The applicant is taken
// from the authenticated identity, never from the body.
type ApplyInput struct {
	RecruitmentID uint        `json:"recruitmentId" validate:"required"`
	SelectedPost  string      `json:"selectedPost" validate:"required"`
	Answers       models.JSON `json:"answers"`
}

// ApplicantRow is the per-application view shown to organizers.
type ApplicantRow struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Registration string      `json:"registration"`
	SelectedPost string      `json:"selectedPost"`
	Answers      models.JSON `json:"answers"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// ApplicationService manages application submissions.
type ApplicationService struct {
	applications *repository.Applications
	log          *logger.Logger
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(applications *repository.Applications, log *logger.Logger) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		log:          log.WithComponent("application"),
	}
}

// Apply submits an application under the authenticated subject's id.
func (s *ApplicationService) Apply(ctx context.Context, identity auth.Identity, in ApplyInput) (*models.Application, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}

	answers := in.Answers
	if len(answers) == 0 {
		answers = models.JSON("{}")
	}

	app := &models.Application{
		ApplicantID:   identity.SubjectID,
		RecruitmentID: in.RecruitmentID,
		SelectedPost:  in.SelectedPost,
		Answers:       answers,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info("Application submitted", logger.Fields(
		logger.FieldUserID, identity.SubjectID,
		"recruitment_id", in.RecruitmentID,
		"post", in.SelectedPost,
	))
	return app, nil
}

// ListByRecruitment returns applicant rows for a recruitment, newest first.
func (s *ApplicationService) ListByRecruitment(ctx context.Context, recruitmentID uint) ([]ApplicantRow, error) {
	apps, err := s.applications.ListByRecruitment(ctx, recruitmentID)
	if err != nil {
		return nil, err
	}

	rows := make([]ApplicantRow, 0, len(apps))
	for _, a := range apps {
		row := ApplicantRow{
			ID:           a.ID,
			SelectedPost: a.SelectedPost,
			Answers:      a.Answers,
			CreatedAt:    a.CreatedAt,
		}
		if a.Applicant != nil {
			row.Name = a.Applicant.Name
			row.Email = a.Applicant.Email
			row.Registration = strconv.FormatUint(uint64(a.Applicant.ID), 10)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
