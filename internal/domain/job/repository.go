package job

import (
	"context"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

type Repository interface {
	Create(ctx context.Context, posting Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*WithPoster, error)
	List(ctx context.Context, filter Filter) ([]WithPoster, error)
	ListAll(ctx context.Context) ([]WithPoster, error)
	ListByOwner(ctx context.Context, ownerID common.UUID) ([]WithPoster, error)
	Update(ctx context.Context, posting Job) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
}
