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

// AdminService backs the role-gated administration surface. The role check
// itself lives in the HTTP middleware; these calls are unrestricted.
type AdminService struct {
	users        user.Repository
	jobs         job.Repository
	applications application.Repository
	logger       Logger
}

func NewAdminService(users user.Repository, jobs job.Repository, applications application.Repository, logger Logger) *AdminService {
	return &AdminService{users: users, jobs: jobs, applications: applications, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

type UserUpdate struct {
	Name  *string
	Email *string
	Role  *user.Role
}

func (s *AdminService) UpdateUser(ctx context.Context, id common.UUID, update UserUpdate) (*user.User, error) {
	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account := *current
	if update.Name != nil {
		account.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		account.Email = normalizeEmail(*update.Email)
	}
	if update.Role != nil {
		if !user.IsKnownRole(*update.Role) {
			return nil, common.NewValidationError("invalid role", map[string]string{"role": "role must be applicant, employer, or admin"})
		}
		account.Role = *update.Role
	}
	updated, err := s.users.Update(ctx, account)
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("user updated user_id=%s", id))
	return updated, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id common.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logInfo(fmt.Sprintf("user deleted user_id=%s", id))
	return nil
}

func (s *AdminService) ListJobs(ctx context.Context) ([]job.WithPoster, error) {
	return s.jobs.ListAll(ctx)
}

// DeleteJob removes any posting and its applications, without an ownership check.
func (s *AdminService) DeleteJob(ctx context.Context, id common.UUID) error {
	if _, err := s.jobs.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.applications.DeleteByJob(ctx, id); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.logInfo(fmt.Sprintf("job deleted by admin job_id=%s", id))
	return nil
}

func (s *AdminService) ListApplications(ctx context.Context) ([]application.Detailed, error) {
	return s.applications.ListAll(ctx)
}

func (s *AdminService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
