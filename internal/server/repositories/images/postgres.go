// Package images provides the PostgreSQL-backed repository for pass image
// attachments. Payloads are stored verbatim as text.
package images

import (
	"context"
	"fmt"

	"github.com/fstr-project/pereval/internal/dbx"
	"github.com/fstr-project/pereval/internal/server/models"
)

// PostgresRepository implements image storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an image attached to image.PassID and fills in its
// assigned id.
func (r *PostgresRepository) Create(ctx context.Context, image *models.Image) (*models.Image, error) {

	query :=
		`INSERT INTO images (pass_id, data, title)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		image.PassID, image.Data, image.Title).Scan(&image.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return image, nil
}

// ListByPassID returns the images of one pass in insertion order.
func (r *PostgresRepository) ListByPassID(ctx context.Context, passID int64) ([]*models.Image, error) {
	query :=
		`SELECT id, pass_id, data, title FROM images
		 WHERE pass_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, passID)
	if err != nil {
		return nil, fmt.Errorf("failed to select images: %w", err)
	}
	defer rows.Close()

	var result []*models.Image
	for rows.Next() {
		var item models.Image
		if err := rows.Scan(&item.ID, &item.PassID, &item.Data, &item.Title); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
