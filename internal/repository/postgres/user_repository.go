package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, account user.User) (*user.User, error) {
	account.ID = common.NewUUID()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID, account.Name, account.Email, account.PasswordHash, account.Role, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "User already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &account, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, password_hash, role, created_at, updated_at FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list users", err)
	}
	defer rows.Close()
	var items []user.User
	for rows.Next() {
		var account user.User
		if err := rows.Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt, &account.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan user", err)
		}
		items = append(items, account)
	}
	return items, nil
}

func (r *UserRepository) Update(ctx context.Context, account user.User) (*user.User, error) {
	account.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE users SET name = $1, email = $2, role = $3, updated_at = $4 WHERE id = $5`,
		account.Name, account.Email, account.Role, account.UpdatedAt, account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "User already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to update user", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "User not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, account.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete user", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "User not found", sql.ErrNoRows)
	}
	return nil
}

func scanUser(row *sql.Row) (*user.User, error) {
	var account user.User
	if err := row.Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt, &account.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "User not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &account, nil
}
