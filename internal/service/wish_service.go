// internal/service/wish_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"wishfund/internal/domain"
	"wishfund/internal/repository"
	"wishfund/internal/util"
	"wishfund/pkg/db"
)

// CreateWishInput carries the owner-supplied fields of a new wish.
type CreateWishInput struct {
	Name        string
	Link        string
	Image       string
	Description string
	Price       decimal.Decimal
}

// WishService covers the wish operations the funding flow depends on.
type WishService interface {
	CreateWish(ctx context.Context, ownerID int64, input CreateWishInput) (*domain.Wish, error)
	GetWish(ctx context.Context, wishID int64) (*domain.Wish, error)
	// UpdateWishPrice changes the funding goal. Only the owner may do it, and
	// only while no offer exists against the wish.
	UpdateWishPrice(ctx context.Context, wishID, ownerID int64, price decimal.Decimal) (*domain.Wish, error)
}

type wishService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	wishRepo   repository.WishRepository
	offerRepo  repository.OfferRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
	txOptions  db.TxOptions
}

// NewWishService creates a new instance of WishService.
func NewWishService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	wishRepo repository.WishRepository,
	offerRepo repository.OfferRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	txOptions db.TxOptions,
) WishService {
	return &wishService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		wishRepo:   wishRepo,
		offerRepo:  offerRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
		txOptions:  txOptions,
	}
}

func (s *wishService) CreateWish(ctx context.Context, ownerID int64, input CreateWishInput) (*domain.Wish, error) {
	if strings.TrimSpace(input.Name) == "" || !domain.IsValidMoney(input.Price) {
		return nil, util.ErrInvalidInput
	}

	wish := domain.NewWish(ownerID, input.Name, input.Link, input.Image, input.Description, input.Price)
	if err := s.wishRepo.CreateWish(ctx, s.dbExecutor, wish); err != nil {
		return nil, fmt.Errorf("create wish: %w", err)
	}
	return wish, nil
}

func (s *wishService) GetWish(ctx context.Context, wishID int64) (*domain.Wish, error) {
	wish, err := s.wishRepo.GetWishByID(ctx, s.dbExecutor, wishID)
	if err != nil {
		return nil, fmt.Errorf("get wish: %w", err)
	}
	return wish, nil
}

// UpdateWishPrice takes the same row lock as a contribution, so a price change
// and a first pledge can never interleave.
func (s *wishService) UpdateWishPrice(ctx context.Context, wishID, ownerID int64, price decimal.Decimal) (*domain.Wish, error) {
	if !domain.IsValidMoney(price) {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner, s.txOptions)
	if err != nil {
		return nil, fmt.Errorf("update wish price: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("update wish price: transaction controller does not implement DBExecutor")
	}

	wish, err := s.wishRepo.GetWishForUpdate(ctx, txExecutor, wishID)
	if err != nil {
		return nil, fmt.Errorf("update wish price: failed to lock wish %d: %w", wishID, err)
	}
	if wish.OwnerID != ownerID {
		return nil, util.ErrNotWishOwner
	}

	count, err := s.offerRepo.CountOffersByWishID(ctx, txExecutor, wishID)
	if err != nil {
		return nil, fmt.Errorf("update wish price: failed to count offers: %w", err)
	}
	if count > 0 {
		return nil, util.ErrPriceLocked
	}

	if err := s.wishRepo.UpdateWishPrice(ctx, txExecutor, wishID, price); err != nil {
		return nil, fmt.Errorf("update wish price: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update wish price: failed to commit transaction: %w", err)
	}

	wish.Price = price
	return wish, nil
}
