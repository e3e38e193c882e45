package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobWithPosterColumns = `j.id, j.title, j.description, j.company, j.location, j.salary, j.status, j.posted_by, j.created_at, j.updated_at, u.name`

func (r *JobRepository) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, title, description, company, location, salary, status, posted_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		posting.ID, posting.Title, posting.Description, posting.Company, posting.Location, posting.Salary, posting.Status, posting.PostedBy, posting.CreatedAt, posting.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &posting, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.WithPoster, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobWithPosterColumns+`
		FROM jobs j JOIN users u ON u.id = j.posted_by WHERE j.id = $1`, id)
	var item job.WithPoster
	if err := scanJobWithPoster(row.Scan, &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "Job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &item, nil
}

// List returns postings visible on the public board: status Active, plus
// legacy rows whose status was never set.
func (r *JobRepository) List(ctx context.Context, filter job.Filter) ([]job.WithPoster, error) {
	query := `SELECT ` + jobWithPosterColumns + `
		FROM jobs j JOIN users u ON u.id = j.posted_by
		WHERE (j.status = $1 OR j.status = '')`
	args := []interface{}{job.StatusActive}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		query += fmt.Sprintf(" AND j.location ILIKE $%d", len(args))
	}
	if filter.Company != "" {
		args = append(args, "%"+filter.Company+"%")
		query += fmt.Sprintf(" AND j.company ILIKE $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (j.title ILIKE $%d OR j.description ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY j.created_at DESC"
	return r.queryJobs(ctx, query, args...)
}

func (r *JobRepository) ListAll(ctx context.Context) ([]job.WithPoster, error) {
	return r.queryJobs(ctx, `SELECT `+jobWithPosterColumns+`
		FROM jobs j JOIN users u ON u.id = j.posted_by ORDER BY j.created_at DESC`)
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID common.UUID) ([]job.WithPoster, error) {
	return r.queryJobs(ctx, `SELECT `+jobWithPosterColumns+`
		FROM jobs j JOIN users u ON u.id = j.posted_by WHERE j.posted_by = $1 ORDER BY j.created_at DESC`, ownerID)
}

func (r *JobRepository) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, description = $2, company = $3, location = $4, salary = $5, status = $6, updated_at = $7
		WHERE id = $8`,
		posting.Title, posting.Description, posting.Company, posting.Location, posting.Salary, posting.Status, posting.UpdatedAt, posting.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "Job not found", sql.ErrNoRows)
	}
	return &posting, nil
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "Job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) queryJobs(ctx context.Context, query string, args ...interface{}) ([]job.WithPoster, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.WithPoster
	for rows.Next() {
		var item job.WithPoster
		if err := scanJobWithPoster(rows.Scan, &item); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func scanJobWithPoster(scan func(...interface{}) error, item *job.WithPoster) error {
	var status string
	if err := scan(&item.ID, &item.Title, &item.Description, &item.Company, &item.Location, &item.Salary, &status, &item.PostedBy, &item.CreatedAt, &item.UpdatedAt, &item.PosterName); err != nil {
		return err
	}
	item.Status = job.Status(strings.TrimSpace(status))
	return nil
}
