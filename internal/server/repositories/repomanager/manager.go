package repomanager

import (
	"context"
	"database/sql"

	"github.com/fstr-project/pereval/internal/dbx"
	"github.com/fstr-project/pereval/internal/server/repositories/accounts"
	"github.com/fstr-project/pereval/internal/server/repositories/images"
	"github.com/fstr-project/pereval/internal/server/repositories/passes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Passes(db dbx.DBTX) passes.Repository
	Images(db dbx.DBTX) images.Repository
}
