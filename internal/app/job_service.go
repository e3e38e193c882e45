package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/application"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/job"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
)

type JobService struct {
	jobs         job.Repository
	applications application.Repository
	logger       Logger
}

func NewJobService(jobs job.Repository, applications application.Repository, logger Logger) *JobService {
	return &JobService{jobs: jobs, applications: applications, logger: logger}
}

func (s *JobService) Create(ctx context.Context, owner common.UUID, posting job.Job) (*job.Job, error) {
	fields := map[string]string{}
	if strings.TrimSpace(posting.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(posting.Description) == "" {
		fields["description"] = "description is required"
	}
	if strings.TrimSpace(posting.Company) == "" {
		fields["company"] = "company is required"
	}
	if strings.TrimSpace(posting.Location) == "" {
		fields["location"] = "location is required"
	}
	if strings.TrimSpace(posting.Salary) == "" {
		fields["salary"] = "salary is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("All fields are required", fields)
	}
	posting.PostedBy = owner
	posting.Status = job.StatusActive
	created, err := s.jobs.Create(ctx, posting)
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("job created job_id=%s owner=%s", created.ID, owner))
	return created, nil
}

func (s *JobService) List(ctx context.Context, filter job.Filter) ([]job.WithPoster, error) {
	return s.jobs.List(ctx, filter)
}

// ListWithApplicationStatus resolves, per posting, whether the caller already
// applied and with what status. Without a caller identity the annotations stay
// at their zero values.
func (s *JobService) ListWithApplicationStatus(ctx context.Context, filter job.Filter, caller *user.User) ([]job.WithApplication, error) {
	postings, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]job.WithApplication, 0, len(postings))
	for _, posting := range postings {
		item := job.WithApplication{WithPoster: posting}
		if caller != nil {
			app, err := s.applications.FindByJobAndApplicant(ctx, posting.ID, caller.ID)
			if err != nil && !common.Is(err, common.CodeNotFound) {
				return nil, err
			}
			if app != nil {
				status := string(app.Status)
				item.HasApplied = true
				item.ApplicationStatus = &status
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.WithPoster, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) Update(ctx context.Context, actor *user.User, id common.UUID, update job.Update) (*job.Job, error) {
	current, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownsOrAdmin(actor, current.PostedBy) {
		return nil, common.NewError(common.CodeForbidden, "Not authorized to update this job", nil)
	}
	posting := current.Job
	if update.Title != nil {
		posting.Title = *update.Title
	}
	if update.Description != nil {
		posting.Description = *update.Description
	}
	if update.Company != nil {
		posting.Company = *update.Company
	}
	if update.Location != nil {
		posting.Location = *update.Location
	}
	if update.Salary != nil {
		posting.Salary = *update.Salary
	}
	if update.Status != nil {
		posting.Status = *update.Status
	}
	updated, err := s.jobs.Update(ctx, posting)
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("job updated job_id=%s actor=%s", id, actor.ID))
	return updated, nil
}

func (s *JobService) UpdateStatus(ctx context.Context, actor *user.User, id common.UUID, status job.Status) (*job.Job, error) {
	if strings.TrimSpace(string(status)) == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"status": "status is required"})
	}
	return s.Update(ctx, actor, id, job.Update{Status: &status})
}

// Delete removes a posting and every application referencing it.
func (s *JobService) Delete(ctx context.Context, actor *user.User, id common.UUID) error {
	current, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ownsOrAdmin(actor, current.PostedBy) {
		return common.NewError(common.CodeForbidden, "Not authorized to delete this job", nil)
	}
	if err := s.applications.DeleteByJob(ctx, id); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.logInfo(fmt.Sprintf("job deleted job_id=%s actor=%s", id, actor.ID))
	return nil
}

// ListByOwner annotates each posting with its application count, one count
// query per posting.
func (s *JobService) ListByOwner(ctx context.Context, ownerID common.UUID) ([]job.WithCount, error) {
	postings, err := s.jobs.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]job.WithCount, 0, len(postings))
	for _, posting := range postings {
		count, err := s.applications.CountByJob(ctx, posting.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, job.WithCount{WithPoster: posting, ApplicationCount: count})
	}
	return items, nil
}

func (s *JobService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
