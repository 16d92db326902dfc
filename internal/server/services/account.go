// Package services contains server-side business logic. This file implements
// AccountService, which resolves submitter identities by email.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fstr-project/pereval/internal/common"
	"github.com/fstr-project/pereval/internal/dbx"
	"github.com/fstr-project/pereval/internal/server/models"
	"github.com/fstr-project/pereval/internal/server/repositories/repomanager"
)

// AccountService resolves submitter accounts by email with find-or-create
// semantics: an existing account is returned as stored, profile fields from
// the current submission never overwrite it.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAccountService constructs an AccountService using repositories.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager) *AccountService {
	return &AccountService{db: db, repomanager: m}
}

// ResolveOrCreate returns the account stored under account.Email, creating
// it with the supplied profile fields when no such account exists. The
// operation runs against the provided DBTX, so it can join the caller's
// transaction.
//
// Two concurrent calls with the same new email race on the insert; the
// unique constraint on accounts.email is the authority. The loser observes
// common.ErrorAlreadyExists and re-resolves instead of failing. The
// repository reports the duplicate without raising a constraint error, so
// the re-lookup works even when db is a transaction.
func (s *AccountService) ResolveOrCreate(ctx context.Context, db dbx.DBTX, account *models.Account) (*models.Account, error) {
	if account == nil || account.Email == "" {
		return nil, fmt.Errorf("%w: owner email", common.ErrorValidation)
	}

	repo := s.repomanager.Accounts(db)

	existing, err := repo.GetByEmail(ctx, account.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error resolving account: %w", err)
	}

	created, err := repo.Create(ctx, account)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, common.ErrorAlreadyExists) {
		return repo.GetByEmail(ctx, account.Email)
	}
	return nil, fmt.Errorf("error creating account: %w", err)
}
