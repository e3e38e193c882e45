package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/application"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/job"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[common.UUID]*user.User
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[common.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.NewError(common.CodeConflict, "User already exists", nil)
	}
	account.ID = common.NewUUID()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	stored := account
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored
	return cloneUser(&stored), nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	return cloneUser(account), nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byEmail[email]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	return cloneUser(account), nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]user.User, 0, len(r.byID))
	for _, account := range r.byID {
		items = append(items, *account)
	}
	return items, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.byID[account.ID]
	if current == nil {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	if other, ok := r.byEmail[account.Email]; ok && other.ID != account.ID {
		return nil, common.NewError(common.CodeConflict, "User already exists", nil)
	}
	delete(r.byEmail, current.Email)
	account.UpdatedAt = time.Now().UTC()
	stored := account
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored
	return cloneUser(&stored), nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return common.NewError(common.CodeNotFound, "User not found", nil)
	}
	delete(r.byEmail, account.Email)
	delete(r.byID, id)
	return nil
}

func cloneUser(account *user.User) *user.User {
	clone := *account
	return &clone
}

type fakeJobRepo struct {
	mu          sync.Mutex
	jobs        map[common.UUID]*job.Job
	posterNames map[common.UUID]string
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:        make(map[common.UUID]*job.Job),
		posterNames: make(map[common.UUID]string),
	}
}

func (r *fakeJobRepo) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	stored := posting
	r.jobs[stored.ID] = &stored
	return &posting, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.WithPoster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting := r.jobs[id]
	if posting == nil {
		return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
	}
	return &job.WithPoster{Job: *posting, PosterName: r.posterNames[posting.PostedBy]}, nil
}

func (r *fakeJobRepo) List(ctx context.Context, filter job.Filter) ([]job.WithPoster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]job.WithPoster, 0, len(r.jobs))
	for _, posting := range r.jobs {
		if posting.Status != job.StatusActive {
			continue
		}
		if !matchesFilter(posting, filter) {
			continue
		}
		items = append(items, job.WithPoster{Job: *posting, PosterName: r.posterNames[posting.PostedBy]})
	}
	return items, nil
}

func matchesFilter(posting *job.Job, filter job.Filter) bool {
	contains := func(value, needle string) bool {
		return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
	}
	if filter.Location != "" && !contains(posting.Location, filter.Location) {
		return false
	}
	if filter.Company != "" && !contains(posting.Company, filter.Company) {
		return false
	}
	if filter.Search != "" && !contains(posting.Title, filter.Search) && !contains(posting.Description, filter.Search) {
		return false
	}
	return true
}

func (r *fakeJobRepo) ListAll(ctx context.Context) ([]job.WithPoster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]job.WithPoster, 0, len(r.jobs))
	for _, posting := range r.jobs {
		items = append(items, job.WithPoster{Job: *posting, PosterName: r.posterNames[posting.PostedBy]})
	}
	return items, nil
}

func (r *fakeJobRepo) ListByOwner(ctx context.Context, ownerID common.UUID) ([]job.WithPoster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]job.WithPoster, 0)
	for _, posting := range r.jobs {
		if posting.PostedBy == ownerID {
			items = append(items, job.WithPoster{Job: *posting, PosterName: r.posterNames[ownerID]})
		}
	}
	return items, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.jobs[posting.ID] == nil {
		return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
	}
	posting.UpdatedAt = time.Now().UTC()
	stored := posting
	r.jobs[stored.ID] = &stored
	return &posting, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.jobs[id] == nil {
		return common.NewError(common.CodeNotFound, "Job not found", nil)
	}
	delete(r.jobs, id)
	return nil
}

type applicationKey struct {
	jobID       common.UUID
	applicantID common.UUID
}

type fakeApplicationRepo struct {
	mu     sync.Mutex
	byID   map[common.UUID]*application.Application
	byPair map[applicationKey]common.UUID
	jobs   *fakeJobRepo
	users  *fakeUserRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo, users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		byID:   make(map[common.UUID]*application.Application),
		byPair: make(map[applicationKey]common.UUID),
		jobs:   jobs,
		users:  users,
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := applicationKey{jobID: app.JobID, applicantID: app.ApplicantID}
	if _, ok := r.byPair[key]; ok {
		return nil, common.NewError(common.CodeConflict, "You have already applied for this job", nil)
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	stored := app
	r.byID[stored.ID] = &stored
	r.byPair[key] = stored.ID
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	clone := *app
	return &clone, nil
}

func (r *fakeApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byPair[applicationKey{jobID: jobID, applicantID: applicantID}]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	clone := *r.byID[id]
	return &clone, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.WithJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]application.WithJob, 0)
	for _, app := range r.byID {
		if app.ApplicantID == applicantID {
			items = append(items, application.WithJob{Application: *app, Job: r.jobSummary(app.JobID)})
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]application.WithApplicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]application.WithApplicant, 0)
	for _, app := range r.byID {
		if app.JobID == jobID {
			items = append(items, application.WithApplicant{Application: *app, Applicant: r.applicantSummary(app.ApplicantID)})
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByOwner(ctx context.Context, ownerID common.UUID) ([]application.Detailed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]application.Detailed, 0)
	for _, app := range r.byID {
		posting := r.jobs.jobs[app.JobID]
		if posting == nil || posting.PostedBy != ownerID {
			continue
		}
		items = append(items, application.Detailed{
			Application: *app,
			Job:         r.jobSummary(app.JobID),
			Applicant:   r.applicantSummary(app.ApplicantID),
		})
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListAll(ctx context.Context) ([]application.Detailed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]application.Detailed, 0, len(r.byID))
	for _, app := range r.byID {
		items = append(items, application.Detailed{
			Application: *app,
			Job:         r.jobSummary(app.JobID),
			Applicant:   r.applicantSummary(app.ApplicantID),
		})
	}
	return items, nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[app.ID] == nil {
		return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	app.UpdatedAt = time.Now().UTC()
	stored := app
	r.byID[stored.ID] = &stored
	return &app, nil
}

func (r *fakeApplicationRepo) CountByJob(ctx context.Context, jobID common.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, app := range r.byID {
		if app.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) DeleteByJob(ctx context.Context, jobID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, app := range r.byID {
		if app.JobID == jobID {
			delete(r.byPair, applicationKey{jobID: jobID, applicantID: app.ApplicantID})
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *fakeApplicationRepo) jobSummary(jobID common.UUID) application.JobSummary {
	if r.jobs == nil {
		return application.JobSummary{ID: jobID}
	}
	posting := r.jobs.jobs[jobID]
	if posting == nil {
		return application.JobSummary{ID: jobID}
	}
	return application.JobSummary{ID: posting.ID, Title: posting.Title, Company: posting.Company, Location: posting.Location}
}

func (r *fakeApplicationRepo) applicantSummary(applicantID common.UUID) application.ApplicantSummary {
	if r.users == nil {
		return application.ApplicantSummary{ID: applicantID}
	}
	account := r.users.byID[applicantID]
	if account == nil {
		return application.ApplicantSummary{ID: applicantID}
	}
	return application.ApplicantSummary{ID: account.ID, Name: account.Name, Email: account.Email}
}
