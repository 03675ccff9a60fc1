package service

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/skillsenselab/recruitd/internal/errors"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/models"
	"github.com/skillsenselab/recruitd/internal/repository"
)

func newRecruitmentService(t *testing.T) *RecruitmentService {
	t.Helper()
	db := newTestDB(t)
	return NewRecruitmentService(repository.NewRecruitments(db), logger.NewDefault("test"))
}

func validCreateInput() CreateRecruitmentInput {
	return CreateRecruitmentInput{
		Title:          "Winter Batch",
		Deadline:       "2026-12-31",
		Posts:          []string{"Backend", "Design"},
		OrganizationID: 1,
	}
}

func TestRecruitmentService_Create(t *testing.T) {
	svc := newRecruitmentService(t)

	rec, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.Status != models.StatusActive {
		t.Errorf("status = %s, want ACTIVE", rec.Status)
	}
	if rec.ID == 0 {
		t.Error("expected a persisted id")
	}
	if rec.WhatsappLink != nil {
		t.Error("empty whatsapp link should persist as null")
	}
}

func TestRecruitmentService_Create_BadDeadline(t *testing.T) {
	svc := newRecruitmentService(t)

	in := validCreateInput()
	in.Deadline = "next tuesday"
	_, err := svc.Create(context.Background(), in)
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.HTTPStatus != 400 {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRecruitmentService_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewRecruitments(db)
	svc := NewRecruitmentService(repo, logger.NewDefault("test"))
	ctx := context.Background()

	// Insertion order deliberately disagrees with creation time so the
	// assertion can only pass on a created_at sort.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []*models.Recruitment{
		{Title: "middle", Posts: models.StringSlice{"P"}, OrganizationID: 1, Status: models.StatusActive, CreatedAt: base.Add(time.Hour)},
		{Title: "newest", Posts: models.StringSlice{"P"}, OrganizationID: 1, Status: models.StatusActive, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "oldest", Posts: models.StringSlice{"P"}, OrganizationID: 1, Status: models.StatusActive, CreatedAt: base},
	}
	for _, rec := range rows {
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create(%s) failed: %v", rec.Title, err)
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, title := range want {
		if list[i].Title != title {
			t.Errorf("list[%d] = %s, want %s", i, list[i].Title, title)
		}
	}
}

func TestRecruitmentService_SetStatus(t *testing.T) {
	svc := newRecruitmentService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.SetStatus(ctx, rec.ID, SetStatusInput{Status: "PAUSED"})
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if updated.Status != models.StatusPaused {
		t.Errorf("status = %s, want PAUSED", updated.Status)
	}
}

func TestRecruitmentService_SetStatus_Invalid(t *testing.T) {
	svc := newRecruitmentService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.SetStatus(ctx, rec.ID, SetStatusInput{Status: "ARCHIVED"})
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.HTTPStatus != 400 {
		t.Fatalf("expected 400 for unknown status, got %v", err)
	}
}

func TestRecruitmentService_SetStatus_NotFound(t *testing.T) {
	svc := newRecruitmentService(t)

	_, err := svc.SetStatus(context.Background(), 999, SetStatusInput{Status: "CLOSED"})
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.HTTPStatus != 404 {
		t.Fatalf("expected 404 for missing recruitment, got %v", err)
	}
}
