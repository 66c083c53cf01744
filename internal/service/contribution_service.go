// internal/service/contribution_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"wishfund/internal/domain"
	"wishfund/internal/repository"
	"wishfund/internal/util"
	"wishfund/pkg/db"
)

// ContributionService accepts monetary pledges against wishes.
type ContributionService interface {
	// Contribute records a pledge of amount by contributorID toward wishID and
	// returns the created offer. Errors are always one of the util kinds:
	// validation, not found, transient or internal.
	Contribute(ctx context.Context, wishID, contributorID int64, amount decimal.Decimal, hidden bool) (*domain.Offer, error)
}

// ContributionOptions bounds a single contribution.
type ContributionOptions struct {
	// Timeout caps the whole transaction. It applies even when the caller's
	// context is cancelled, so an abandoned request still finishes or rolls back.
	Timeout time.Duration
	// LockTimeout bounds the wait for the wish row lock.
	LockTimeout time.Duration
}

// contributionService implements the ContributionService interface.
type contributionService struct {
	dbBeginner db.DBTxBeginner
	userRepo   repository.UserRepository
	wishRepo   repository.WishRepository
	offerRepo  repository.OfferRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
	opts       ContributionOptions
	logger     *slog.Logger
}

// NewContributionService creates a new instance of ContributionService.
func NewContributionService(
	dbBeginner db.DBTxBeginner,
	userRepo repository.UserRepository,
	wishRepo repository.WishRepository,
	offerRepo repository.OfferRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	opts ContributionOptions,
	logger *slog.Logger,
) ContributionService {
	return &contributionService{
		dbBeginner: dbBeginner,
		userRepo:   userRepo,
		wishRepo:   wishRepo,
		offerRepo:  offerRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
		opts:       opts,
		logger:     logger,
	}
}

func (s *contributionService) Contribute(ctx context.Context, wishID, contributorID int64, amount decimal.Decimal, hidden bool) (*domain.Offer, error) {
	if !domain.IsValidMoney(amount) {
		return nil, util.ErrInvalidAmount
	}

	txCtx := context.WithoutCancel(ctx)
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		txCtx, cancel = context.WithTimeout(txCtx, s.opts.Timeout)
		defer cancel()
	}

	offer, err := s.contribute(txCtx, wishID, contributorID, amount, hidden)
	if err != nil {
		return nil, s.classify(err, wishID, contributorID, amount)
	}

	s.logger.Info("Contribution accepted",
		"offer_id", offer.ID,
		"wish_id", wishID,
		"user_id", contributorID,
		"amount", amount.String(),
	)
	return offer, nil
}

// contribute runs lock, validate, increment and insert as one transaction.
// The deferred rollback is a no-op once commit has succeeded.
func (s *contributionService) contribute(ctx context.Context, wishID, contributorID int64, amount decimal.Decimal, hidden bool) (*domain.Offer, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner, db.TxOptions{LockTimeout: s.opts.LockTimeout})
	if err != nil {
		return nil, fmt.Errorf("contribute: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("contribute: transaction controller does not implement DBExecutor")
	}

	if _, err := s.userRepo.GetUserByID(ctx, txExecutor, contributorID); err != nil {
		return nil, fmt.Errorf("contribute: failed to load contributor %d: %w", contributorID, err)
	}

	wish, err := s.wishRepo.GetWishForUpdate(ctx, txExecutor, wishID)
	if err != nil {
		return nil, fmt.Errorf("contribute: failed to lock wish %d: %w", wishID, err)
	}

	if err := domain.ValidateContribution(contributorID, *wish, amount); err != nil {
		return nil, err
	}

	if err := s.wishRepo.IncrementRaised(ctx, txExecutor, wishID, amount); err != nil {
		return nil, fmt.Errorf("contribute: failed to increment raised for wish %d: %w", wishID, err)
	}

	offer := domain.NewOffer(contributorID, wishID, amount, hidden)
	if err := s.offerRepo.CreateOffer(ctx, txExecutor, offer); err != nil {
		return nil, fmt.Errorf("contribute: failed to create offer: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		if db.IsDefiniteAbort(err) {
			return nil, fmt.Errorf("contribute: transaction aborted on commit: %w", err)
		}
		// The commit may have been applied. Never report this as retryable.
		return nil, util.AsInternal(err, "contribute: commit outcome unknown")
	}

	return offer, nil
}

// classify turns any failure into one of the caller-visible kinds. Storage
// detail stays in the log.
func (s *contributionService) classify(err error, wishID, contributorID int64, amount decimal.Decimal) error {
	attrs := []any{"wish_id", wishID, "user_id", contributorID, "amount", amount.String(), "error", err}

	switch {
	case util.IsClientError(err):
		s.logger.Info("Contribution rejected", append(attrs, "code", util.Code(err))...)
		return err
	case util.IsError(err, util.ErrTransient):
		s.logger.Warn("Contribution hit a transient failure", attrs...)
		return err
	case util.IsError(err, util.ErrInternal):
		s.logger.Error("Contribution failed", attrs...)
		return err
	case db.IsRetryable(err):
		s.logger.Warn("Contribution hit a transient failure", attrs...)
		return util.AsTransient(err, "contribute")
	default:
		s.logger.Error("Contribution failed", attrs...)
		return util.AsInternal(err, "contribute")
	}
}
