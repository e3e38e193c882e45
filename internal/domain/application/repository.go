package application

import (
	"context"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

type Repository interface {
	// Create persists a new application. The (job_id, applicant_id) pair is
	// unique at the storage layer; a duplicate surfaces as a conflict error.
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID common.UUID) ([]WithJob, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]WithApplicant, error)
	ListByOwner(ctx context.Context, ownerID common.UUID) ([]Detailed, error)
	ListAll(ctx context.Context) ([]Detailed, error)
	Update(ctx context.Context, app Application) (*Application, error)
	CountByJob(ctx context.Context, jobID common.UUID) (int, error)
	DeleteByJob(ctx context.Context, jobID common.UUID) error
}
