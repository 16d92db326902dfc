package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fstr-project/pereval/internal/common"
	"github.com/fstr-project/pereval/internal/dbx"
	"github.com/fstr-project/pereval/internal/server/models"
	"github.com/fstr-project/pereval/internal/server/repositories/repomanager"
)

// PassService owns the submission workflow: atomic creation of a pass
// record together with its owner account and images, status-gated edits,
// and nested reads.
type PassService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	accounts    *AccountService
}

// NewPassService constructs a PassService using repositories and the
// account resolver.
func NewPassService(db *sql.DB, m repomanager.RepositoryManager, accounts *AccountService) *PassService {
	return &PassService{db: db, repomanager: m, accounts: accounts}
}

// validateFields checks the submission fields every write operation
// requires. Coordinates stay strings; emptiness is the only rule here.
func validateFields(pass *models.Pass) error {
	if pass.Title == "" {
		return fmt.Errorf("%w: title", common.ErrorValidation)
	}
	if pass.Latitude == "" {
		return fmt.Errorf("%w: latitude", common.ErrorValidation)
	}
	if pass.Longitude == "" {
		return fmt.Errorf("%w: longitude", common.ErrorValidation)
	}
	return nil
}

// Submit stores a new pass submission. The owner account is resolved or
// created, the record inserted with status "new", and the images inserted
// in the supplied order, all inside one transaction: either everything
// becomes durable or nothing does. Parent ids are assigned before the
// dependent child inserts are issued.
func (s *PassService) Submit(ctx context.Context, pass *models.Pass) (*models.Pass, error) {
	if err := validateFields(pass); err != nil {
		return nil, err
	}
	if pass.Account == nil || pass.Account.Email == "" {
		return nil, fmt.Errorf("%w: owner email", common.ErrorValidation)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		owner, err := s.accounts.ResolveOrCreate(ctx, tx, pass.Account)
		if err != nil {
			return err
		}
		pass.Account = owner
		pass.AccountID = owner.ID

		if _, err := s.repomanager.Passes(tx).Create(ctx, pass); err != nil {
			return err
		}

		imageRepo := s.repomanager.Images(tx)
		for _, img := range pass.Images {
			img.PassID = pass.ID
			if _, err := imageRepo.Create(ctx, img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creating submission: %w", err)
	}

	return pass, nil
}

// Edit replaces every editable field of an existing record. The record must
// exist (common.ErrorNotFound otherwise) and still be in the "new" status
// (common.ErrorEditNotAllowed otherwise, with no mutation). Owner, status
// and images are never touched. Omitted fields overwrite with null: this is
// whole-record replace, not a patch.
func (s *PassService) Edit(ctx context.Context, id int64, pass *models.Pass) (*models.Pass, error) {
	if err := validateFields(pass); err != nil {
		return nil, err
	}

	passRepo := s.repomanager.Passes(s.db)

	if _, err := passRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	pass.ID = id
	if err := passRepo.Update(ctx, pass); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// GetByID returns one pass with its owner account and images attached.
func (s *PassService) GetByID(ctx context.Context, id int64) (*models.Pass, error) {
	pass, err := s.repomanager.Passes(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.repomanager.Accounts(s.db).GetByID(ctx, pass.AccountID)
	if err != nil {
		return nil, fmt.Errorf("error loading owner: %w", err)
	}
	pass.Account = owner

	imgs, err := s.repomanager.Images(s.db).ListByPassID(ctx, pass.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading images: %w", err)
	}
	pass.Images = imgs

	return pass, nil
}

// ListByOwnerEmail returns every pass owned by the account registered under
// email, each with nested images. An unknown email is common.ErrorNotFound.
func (s *PassService) ListByOwnerEmail(ctx context.Context, email string) ([]*models.Pass, error) {
	owner, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	list, err := s.repomanager.Passes(s.db).ListByAccountID(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing passes: %w", err)
	}

	imageRepo := s.repomanager.Images(s.db)
	for _, p := range list {
		p.Account = owner
		imgs, err := imageRepo.ListByPassID(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading images: %w", err)
		}
		p.Images = imgs
	}

	return list, nil
}
