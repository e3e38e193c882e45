package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, applicant_id, resume_url, resume_name, cover_letter, email, phone, status, interview_date, interview_time, interview_location, applied_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, job_id, applicant_id, resume_url, resume_name, cover_letter, email, phone, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		app.ID, app.JobID, app.ApplicantID, app.ResumeURL, app.ResumeName, app.CoverLetter, app.Email, app.Phone, app.Status, app.AppliedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "You have already applied for this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	var app application.Application
	if err := scanApplication(row.Scan, &app); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "Application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND applicant_id = $2`, jobID, applicantID)
	var app application.Application
	if err := scanApplication(row.Scan, &app); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "Application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.WithJob, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.job_id, a.applicant_id, a.resume_url, a.resume_name, a.cover_letter, a.email, a.phone, a.status, a.interview_date, a.interview_time, a.interview_location, a.applied_at, a.updated_at,
			j.id, j.title, j.company, j.location
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`, applicantID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.WithJob
	for rows.Next() {
		var item application.WithJob
		if err := scanApplication(func(dest ...interface{}) error {
			dest = append(dest, &item.Job.ID, &item.Job.Title, &item.Job.Company, &item.Job.Location)
			return rows.Scan(dest...)
		}, &item.Application); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]application.WithApplicant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.job_id, a.applicant_id, a.resume_url, a.resume_name, a.cover_letter, a.email, a.phone, a.status, a.interview_date, a.interview_time, a.interview_location, a.applied_at, a.updated_at,
			u.id, u.name, u.email
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.WithApplicant
	for rows.Next() {
		var item application.WithApplicant
		if err := scanApplication(func(dest ...interface{}) error {
			dest = append(dest, &item.Applicant.ID, &item.Applicant.Name, &item.Applicant.Email)
			return rows.Scan(dest...)
		}, &item.Application); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) ListByOwner(ctx context.Context, ownerID common.UUID) ([]application.Detailed, error) {
	return r.queryDetailed(ctx, `WHERE j.posted_by = $1`, ownerID)
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.Detailed, error) {
	return r.queryDetailed(ctx, ``)
}

func (r *ApplicationRepository) queryDetailed(ctx context.Context, where string, args ...interface{}) ([]application.Detailed, error) {
	query := `SELECT a.id, a.job_id, a.applicant_id, a.resume_url, a.resume_name, a.cover_letter, a.email, a.phone, a.status, a.interview_date, a.interview_time, a.interview_location, a.applied_at, a.updated_at,
			j.id, j.title, j.company, j.location,
			u.id, u.name, u.email
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.applicant_id `
	query += where + ` ORDER BY a.applied_at DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.Detailed
	for rows.Next() {
		var item application.Detailed
		if err := scanApplication(func(dest ...interface{}) error {
			dest = append(dest,
				&item.Job.ID, &item.Job.Title, &item.Job.Company, &item.Job.Location,
				&item.Applicant.ID, &item.Applicant.Name, &item.Applicant.Email)
			return rows.Scan(dest...)
		}, &item.Application); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app application.Application) (*application.Application, error) {
	app.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, interview_date = $2, interview_time = $3, interview_location = $4, updated_at = $5 WHERE id = $6`,
		app.Status, app.InterviewDate, app.InterviewTime, app.InterviewLocation, app.UpdatedAt, app.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "Application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, app.ID)
}

func (r *ApplicationRepository) CountByJob(ctx context.Context, jobID common.UUID) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return count, nil
}

func (r *ApplicationRepository) DeleteByJob(ctx context.Context, jobID common.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE job_id = $1`, jobID); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete applications", err)
	}
	return nil
}

func scanApplication(scan func(...interface{}) error, app *application.Application) error {
	var interviewDate sql.NullTime
	err := scan(&app.ID, &app.JobID, &app.ApplicantID, &app.ResumeURL, &app.ResumeName, &app.CoverLetter, &app.Email, &app.Phone, &app.Status, &interviewDate, &app.InterviewTime, &app.InterviewLocation, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		return err
	}
	if interviewDate.Valid {
		value := interviewDate.Time
		app.InterviewDate = &value
	}
	return nil
}
