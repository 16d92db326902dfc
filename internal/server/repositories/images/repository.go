package images

import (
	"context"

	"github.com/fstr-project/pereval/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, image *models.Image) (*models.Image, error)
	ListByPassID(ctx context.Context, passID int64) ([]*models.Image, error)
}
