package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/application"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/job"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
)

type ApplicationService struct {
	applications application.Repository
	jobs         job.Repository
	logger       Logger
}

func NewApplicationService(applications application.Repository, jobs job.Repository, logger Logger) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, logger: logger}
}

type Submission struct {
	JobID       common.UUID
	ResumeURL   string
	ResumeName  string
	CoverLetter string
	Email       string
	Phone       string
}

// Apply submits one application per (job, applicant) pair. Duplicates are
// rejected by the storage layer's unique index, so two concurrent submissions
// cannot both land.
func (s *ApplicationService) Apply(ctx context.Context, applicantID common.UUID, sub Submission) (*application.Application, error) {
	if _, err := s.jobs.GetByID(ctx, sub.JobID); err != nil {
		return nil, err
	}
	fields := map[string]string{}
	if sub.ResumeURL == "" {
		fields["resume"] = "Please upload your resume"
	}
	if strings.TrimSpace(sub.Email) == "" {
		fields["email"] = "Email is required"
	}
	if strings.TrimSpace(sub.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}
	created, err := s.applications.Create(ctx, application.Application{
		JobID:       sub.JobID,
		ApplicantID: applicantID,
		ResumeURL:   sub.ResumeURL,
		ResumeName:  sub.ResumeName,
		CoverLetter: sub.CoverLetter,
		Email:       strings.TrimSpace(sub.Email),
		Phone:       strings.TrimSpace(sub.Phone),
		Status:      application.StatusApplied,
	})
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("application created application_id=%s job_id=%s applicant=%s", created.ID, sub.JobID, applicantID))
	return created, nil
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.WithJob, error) {
	return s.applications.ListByApplicant(ctx, applicantID)
}

// ListForJob returns a posting's applications to its owner (or an admin).
func (s *ApplicationService) ListForJob(ctx context.Context, actor *user.User, jobID common.UUID) ([]application.WithApplicant, error) {
	posting, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !ownsOrAdmin(actor, posting.PostedBy) {
		return nil, common.NewError(common.CodeForbidden, "Not authorized to view applications for this job", nil)
	}
	return s.applications.ListByJob(ctx, jobID)
}

func (s *ApplicationService) ListByOwner(ctx context.Context, ownerID common.UUID) ([]application.Detailed, error) {
	return s.applications.ListByOwner(ctx, ownerID)
}

type StatusUpdate struct {
	Status            application.Status
	InterviewDate     *time.Time
	InterviewTime     string
	InterviewLocation string
}

// UpdateStatus moves an application to any known status. Employer callers
// must own the parent posting; admins may update any application. Interview
// scheduling fields are recorded only when moving to Interview with a date.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *user.User, id common.UUID, update StatusUpdate) (*application.Application, error) {
	if !application.IsKnownStatus(update.Status) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be Applied, Interview, Rejected, or Accepted"})
	}
	current, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, current.JobID)
	if err != nil {
		return nil, err
	}
	if !ownsOrAdmin(actor, posting.PostedBy) {
		return nil, common.NewError(common.CodeForbidden, "Not authorized to update this application", nil)
	}
	next := *current
	next.Status = update.Status
	if update.Status == application.StatusInterview && update.InterviewDate != nil {
		next.InterviewDate = update.InterviewDate
		next.InterviewTime = update.InterviewTime
		next.InterviewLocation = update.InterviewLocation
	}
	updated, err := s.applications.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("application status changed application_id=%s status=%s actor=%s", id, update.Status, actor.ID))
	return updated, nil
}

func (s *ApplicationService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
