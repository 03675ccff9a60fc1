package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/skillsenselab/recruitd/internal/auth"
	apperrors "github.com/skillsenselab/recruitd/internal/errors"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/models"
	"github.com/skillsenselab/recruitd/internal/repository"
)

func TestApplicationService_ApplyAndList(t *testing.T) {
	db := newTestDB(t)
	authSvc := newAuthService(t, db)
	recSvc := NewRecruitmentService(repository.NewRecruitments(db), logger.NewDefault("test"))
	appSvc := NewApplicationService(repository.NewApplications(db), logger.NewDefault("test"))
	ctx := context.Background()

	student, err := authSvc.SignUp(ctx, SignUpInput{Email: "s@x.edu", Password: "pw", Name: "Stu"})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	rec, err := recSvc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("Create recruitment failed: %v", err)
	}

	identity := auth.Identity{SubjectID: student.User.ID, Role: string(student.User.Role)}
	submitted, err := appSvc.Apply(ctx, identity, ApplyInput{
		RecruitmentID: rec.ID,
		SelectedPost:  "Backend",
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if submitted.ApplicantID != student.User.ID {
		t.Errorf("applicant id = %d, want %d", submitted.ApplicantID, student.User.ID)
	}
	if string(submitted.Answers) != "{}" {
		t.Errorf("answers = %s, want empty object default", submitted.Answers)
	}
	if submitted.Applicant == nil || submitted.Applicant.Email != "s@x.edu" {
		t.Error("expected applicant association to be loaded")
	}

	rows, err := appSvc.ListByRecruitment(ctx, rec.ID)
	if err != nil {
		t.Fatalf("ListByRecruitment failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.Registration != strconv.FormatUint(uint64(student.User.ID), 10) {
		t.Errorf("registration = %q, want applicant id as string", row.Registration)
	}
	if row.SelectedPost != "Backend" {
		t.Errorf("selectedPost = %q, want Backend", row.SelectedPost)
	}
}

func TestApplicationService_Apply_MissingPost(t *testing.T) {
	db := newTestDB(t)
	appSvc := NewApplicationService(repository.NewApplications(db), logger.NewDefault("test"))

	_, err := appSvc.Apply(context.Background(), auth.Identity{SubjectID: 1}, ApplyInput{
		RecruitmentID: 1,
	})
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.HTTPStatus != 400 {
		t.Fatalf("expected 400 for missing selectedPost, got %v", err)
	}
}

func TestApplicationService_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewApplications(db)
	svc := NewApplicationService(repo, logger.NewDefault("test"))
	ctx := context.Background()

	// Insertion order deliberately disagrees with creation time so the
	// assertion can only pass on a created_at sort.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []*models.Application{
		{ApplicantID: 1, RecruitmentID: 7, SelectedPost: "middle", Answers: models.JSON("{}"), CreatedAt: base.Add(time.Hour)},
		{ApplicantID: 1, RecruitmentID: 7, SelectedPost: "newest", Answers: models.JSON("{}"), CreatedAt: base.Add(2 * time.Hour)},
		{ApplicantID: 1, RecruitmentID: 7, SelectedPost: "oldest", Answers: models.JSON("{}"), CreatedAt: base},
	}
	for _, app := range rows {
		if err := repo.Create(ctx, app); err != nil {
			t.Fatalf("Create(%s) failed: %v", app.SelectedPost, err)
		}
	}

	list, err := svc.ListByRecruitment(ctx, 7)
	if err != nil {
		t.Fatalf("ListByRecruitment failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, post := range want {
		if list[i].SelectedPost != post {
			t.Errorf("list[%d] = %s, want %s", i, list[i].SelectedPost, post)
		}
	}
}

func TestApplicationService_List_Empty(t *testing.T) {
	db := newTestDB(t)
	appSvc := NewApplicationService(repository.NewApplications(db), logger.NewDefault("test"))

	rows, err := appSvc.ListByRecruitment(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListByRecruitment failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len = %d, want 0", len(rows))
	}
}
