// Package passes provides the PostgreSQL-backed repository for pass records.
package passes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fstr-project/pereval/internal/common"
	"github.com/fstr-project/pereval/internal/dbx"
	"github.com/fstr-project/pereval/internal/server/models"
)

// PostgresRepository implements pass storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new pass record and fills in its assigned id. The status
// column is always written as "new"; whatever the caller put into
// pass.Status is ignored.
func (r *PostgresRepository) Create(ctx context.Context, pass *models.Pass) (*models.Pass, error) {

	query :=
		`INSERT INTO passes
		 (beauty_title, title, other_titles, connect, add_time, status, account_id,
		  latitude, longitude, height, level_winter, level_summer, level_autumn, level_spring)
		 VALUES ($1, $2, $3, $4, $5, 'new', $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		pass.BeautyTitle, pass.Title, pass.OtherTitles, pass.Connect, pass.AddTime, pass.AccountID,
		pass.Latitude, pass.Longitude, pass.Height,
		pass.LevelWinter, pass.LevelSummer, pass.LevelAutumn, pass.LevelSpring).Scan(&pass.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	pass.Status = models.StatusNew
	return pass, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Pass, error) {
	query :=
		`SELECT id, beauty_title, title, other_titles, connect, add_time, status, account_id,
		        latitude, longitude, height, level_winter, level_summer, level_autumn, level_spring
		 FROM passes
		 WHERE id = $1
		 `

	pass := &models.Pass{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pass.ID, &pass.BeautyTitle, &pass.Title, &pass.OtherTitles, &pass.Connect,
		&pass.AddTime, &pass.Status, &pass.AccountID,
		&pass.Latitude, &pass.Longitude, &pass.Height,
		&pass.LevelWinter, &pass.LevelSummer, &pass.LevelAutumn, &pass.LevelSpring)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return pass, nil
}

// ListByAccountID returns all pass records owned by the given account, in
// insertion order.
func (r *PostgresRepository) ListByAccountID(ctx context.Context, accountID int64) ([]*models.Pass, error) {
	query :=
		`SELECT id, beauty_title, title, other_titles, connect, add_time, status, account_id,
		        latitude, longitude, height, level_winter, level_summer, level_autumn, level_spring
		 FROM passes
		 WHERE account_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to select passes: %w", err)
	}
	defer rows.Close()

	var result []*models.Pass
	for rows.Next() {
		var item models.Pass
		if err := rows.Scan(
			&item.ID, &item.BeautyTitle, &item.Title, &item.OtherTitles, &item.Connect,
			&item.AddTime, &item.Status, &item.AccountID,
			&item.Latitude, &item.Longitude, &item.Height,
			&item.LevelWinter, &item.LevelSummer, &item.LevelAutumn, &item.LevelSpring,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update overwrites every editable field of the record identified by
// pass.ID. The status gate lives in the WHERE clause: a record that has
// left the "new" state matches no rows, so a racing status transition can
// never be overwritten. Status, owner and images are untouched.
// Returns common.ErrorEditNotAllowed when the gate rejects the update.
func (r *PostgresRepository) Update(ctx context.Context, pass *models.Pass) error {
	query := `
		UPDATE passes SET
			beauty_title = $2,
			title = $3,
			other_titles = $4,
			connect = $5,
			add_time = $6,
			latitude = $7,
			longitude = $8,
			height = $9,
			level_winter = $10,
			level_summer = $11,
			level_autumn = $12,
			level_spring = $13
		WHERE id = $1 AND status = 'new';
	`
	res, err := r.db.ExecContext(ctx, query,
		pass.ID, pass.BeautyTitle, pass.Title, pass.OtherTitles, pass.Connect, pass.AddTime,
		pass.Latitude, pass.Longitude, pass.Height,
		pass.LevelWinter, pass.LevelSummer, pass.LevelAutumn, pass.LevelSpring)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorEditNotAllowed
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
