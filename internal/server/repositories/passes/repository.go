package passes

import (
	"context"

	"github.com/fstr-project/pereval/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, pass *models.Pass) (*models.Pass, error)
	GetByID(ctx context.Context, id int64) (*models.Pass, error)
	ListByAccountID(ctx context.Context, accountID int64) ([]*models.Pass, error)
	Update(ctx context.Context, pass *models.Pass) error
}
