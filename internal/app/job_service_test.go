package app

import (
	"context"
	"testing"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/application"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/job"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
)

func validPosting() job.Job {
	return job.Job{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Company:     "Acme",
		Location:    "Kathmandu",
		Salary:      "100000",
	}
}

func employerAccount() *user.User {
	return &user.User{ID: common.NewUUID(), Name: "Owner", Role: user.RoleEmployer}
}

func adminAccount() *user.User {
	return &user.User{ID: common.NewUUID(), Name: "Admin", Role: user.RoleAdmin}
}

func TestJobServiceCreate_Success(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewJobService(jobRepo, newFakeApplicationRepo(jobRepo, nil), nil)
	owner := employerAccount()

	posting := validPosting()
	posting.Status = job.StatusClosed

	created, err := service.Create(context.Background(), owner.ID, posting)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected id to be assigned")
	}
	if created.PostedBy != owner.ID {
		t.Fatalf("expected owner %s, got %s", owner.ID, created.PostedBy)
	}
	if created.Status != job.StatusActive {
		t.Fatalf("expected new postings to start Active, got %q", created.Status)
	}
}

func TestJobServiceCreate_MissingFields(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewJobService(jobRepo, newFakeApplicationRepo(jobRepo, nil), nil)

	posting := validPosting()
	posting.Salary = ""

	_, err := service.Create(context.Background(), common.NewUUID(), posting)
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJobServiceList_OnlyActivePostings(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewJobService(jobRepo, newFakeApplicationRepo(jobRepo, nil), nil)
	owner := employerAccount()

	created, err := service.Create(context.Background(), owner.ID, validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second := validPosting()
	second.Title = "Data Engineer"
	closed, err := service.Create(context.Background(), owner.ID, second)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), owner, closed.ID, job.StatusClosed); err != nil {
		t.Fatalf("expected status update to succeed, got %v", err)
	}

	listed, err := service.List(context.Background(), job.Filter{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected only the active posting, got %d", len(listed))
	}
	if listed[0].ID != created.ID {
		t.Fatalf("expected posting %s, got %s", created.ID, listed[0].ID)
	}
}

func TestJobServiceUpdate_PartialMerge(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewJobService(jobRepo, newFakeApplicationRepo(jobRepo, nil), nil)
	owner := employerAccount()

	created, err := service.Create(context.Background(), owner.ID, validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	title := "Senior Backend Engineer"
	updated, err := service.Update(context.Background(), owner, created.ID, job.Update{Title: &title})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Title != title {
		t.Fatalf("expected title %q, got %q", title, updated.Title)
	}
	if updated.Description != created.Description {
		t.Fatalf("expected description untouched, got %q", updated.Description)
	}
	if updated.Salary != created.Salary {
		t.Fatalf("expected salary untouched, got %q", updated.Salary)
	}
}

func TestJobServiceUpdate_NotOwner(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewJobService(jobRepo, newFakeApplicationRepo(jobRepo, nil), nil)

	created, err := service.Create(context.Background(), common.NewUUID(), validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	title := "Hijacked"
	_, err = service.Update(context.Background(), employerAccount(), created.ID, job.Update{Title: &title})
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestJobServiceUpdate_AdminOverride(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewJobService(jobRepo, newFakeApplicationRepo(jobRepo, nil), nil)

	created, err := service.Create(context.Background(), common.NewUUID(), validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	title := "Moderated"
	updated, err := service.Update(context.Background(), adminAccount(), created.ID, job.Update{Title: &title})
	if err != nil {
		t.Fatalf("expected admin update to succeed, got %v", err)
	}
	if updated.Title != title {
		t.Fatalf("expected title %q, got %q", title, updated.Title)
	}
}

func TestJobServiceDelete_RemovesApplications(t *testing.T) {
	jobRepo := newFakeJobRepo()
	applicationRepo := newFakeApplicationRepo(jobRepo, nil)
	service := NewJobService(jobRepo, applicationRepo, nil)
	owner := employerAccount()

	created, err := service.Create(context.Background(), owner.ID, validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := applicationRepo.Create(context.Background(), application.Application{
			JobID:       created.ID,
			ApplicantID: common.NewUUID(),
			Status:      application.StatusApplied,
		}); err != nil {
			t.Fatalf("expected application to persist, got %v", err)
		}
	}

	if err := service.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if _, err := jobRepo.GetByID(context.Background(), created.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected job to be gone, got %v", err)
	}
	count, err := applicationRepo.CountByJob(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected count to succeed, got %v", err)
	}
	if count != 0 {
		t.Fatalf("expected applications removed with the job, got %d remaining", count)
	}
}

func TestJobServiceDelete_NotOwner(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewJobService(jobRepo, newFakeApplicationRepo(jobRepo, nil), nil)

	created, err := service.Create(context.Background(), common.NewUUID(), validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	err = service.Delete(context.Background(), employerAccount(), created.ID)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestJobServiceListByOwner_Counts(t *testing.T) {
	jobRepo := newFakeJobRepo()
	applicationRepo := newFakeApplicationRepo(jobRepo, nil)
	service := NewJobService(jobRepo, applicationRepo, nil)
	owner := employerAccount()

	created, err := service.Create(context.Background(), owner.ID, validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := applicationRepo.Create(context.Background(), application.Application{
			JobID:       created.ID,
			ApplicantID: common.NewUUID(),
			Status:      application.StatusApplied,
		}); err != nil {
			t.Fatalf("expected application to persist, got %v", err)
		}
	}

	items, err := service.ListByOwner(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one posting, got %d", len(items))
	}
	if items[0].ApplicationCount != 2 {
		t.Fatalf("expected application count 2, got %d", items[0].ApplicationCount)
	}
}

func TestJobServiceListWithApplicationStatus(t *testing.T) {
	jobRepo := newFakeJobRepo()
	applicationRepo := newFakeApplicationRepo(jobRepo, nil)
	service := NewJobService(jobRepo, applicationRepo, nil)
	owner := employerAccount()
	applicant := &user.User{ID: common.NewUUID(), Role: user.RoleApplicant}

	applied, err := service.Create(context.Background(), owner.ID, validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	fresh := validPosting()
	fresh.Title = "Data Engineer"
	unapplied, err := service.Create(context.Background(), owner.ID, fresh)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := applicationRepo.Create(context.Background(), application.Application{
		JobID:       applied.ID,
		ApplicantID: applicant.ID,
		Status:      application.StatusInterview,
	}); err != nil {
		t.Fatalf("expected application to persist, got %v", err)
	}

	items, err := service.ListWithApplicationStatus(context.Background(), job.Filter{}, applicant)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two postings, got %d", len(items))
	}
	for _, item := range items {
		switch item.ID {
		case applied.ID:
			if !item.HasApplied {
				t.Fatal("expected hasApplied for the applied posting")
			}
			if item.ApplicationStatus == nil || *item.ApplicationStatus != string(application.StatusInterview) {
				t.Fatalf("expected Interview status, got %v", item.ApplicationStatus)
			}
		case unapplied.ID:
			if item.HasApplied {
				t.Fatal("expected hasApplied to be false")
			}
			if item.ApplicationStatus != nil {
				t.Fatalf("expected nil status, got %v", item.ApplicationStatus)
			}
		default:
			t.Fatalf("unexpected posting %s", item.ID)
		}
	}
}

func TestJobServiceListWithApplicationStatus_Anonymous(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewJobService(jobRepo, newFakeApplicationRepo(jobRepo, nil), nil)

	if _, err := service.Create(context.Background(), common.NewUUID(), validPosting()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	items, err := service.ListWithApplicationStatus(context.Background(), job.Filter{}, nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one posting, got %d", len(items))
	}
	if items[0].HasApplied || items[0].ApplicationStatus != nil {
		t.Fatal("expected zero-value annotations without a caller")
	}
}
