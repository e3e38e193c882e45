package user

import (
	"context"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

type Repository interface {
	Create(ctx context.Context, account User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, account User) (*User, error)
	Delete(ctx context.Context, id common.UUID) error
}
