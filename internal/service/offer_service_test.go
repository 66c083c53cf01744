// internal/service/offer_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wishfund/internal/domain"
	"wishfund/internal/util"
)

func TestListWishOffers(t *testing.T) {
	const viewerID = int64(5)

	t.Run("MasksHiddenContributors", func(t *testing.T) {
		executor, wishRepo, offerRepo := new(MockDBExecutor), new(MockWishRepository), new(MockOfferRepository)
		svc := NewOfferService(executor, wishRepo, offerRepo)

		stored := []domain.Offer{
			{ID: 3, UserID: 8, WishID: wishID, Amount: decimal.NewFromInt(10), Hidden: true},
			{ID: 2, UserID: viewerID, WishID: wishID, Amount: decimal.NewFromInt(20), Hidden: true},
			{ID: 1, UserID: 9, WishID: wishID, Amount: decimal.NewFromInt(30)},
		}
		wishRepo.On("GetWishByID", mock.Anything, executor, wishID).Return(fundedWish("100", "60"), nil).Once()
		offerRepo.On("GetOffersByWishID", mock.Anything, executor, wishID, 10, 0).Return(stored, int64(3), nil).Once()

		offers, total, err := svc.ListWishOffers(context.Background(), wishID, viewerID, 10, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		gotUsers := []int64{offers[0].UserID, offers[1].UserID, offers[2].UserID}
		if diff := cmp.Diff([]int64{0, viewerID, 9}, gotUsers); diff != "" {
			t.Errorf("visible contributors mismatch (-want +got):\n%s", diff)
		}
		mock.AssertExpectationsForObjects(t, wishRepo, offerRepo)
	})

	t.Run("UnknownWish", func(t *testing.T) {
		executor, wishRepo, offerRepo := new(MockDBExecutor), new(MockWishRepository), new(MockOfferRepository)
		svc := NewOfferService(executor, wishRepo, offerRepo)

		wishRepo.On("GetWishByID", mock.Anything, executor, wishID).Return(nil, util.ErrWishNotFound).Once()

		_, _, err := svc.ListWishOffers(context.Background(), wishID, viewerID, 10, 0)

		assert.ErrorIs(t, err, util.ErrWishNotFound)
		offerRepo.AssertNotCalled(t, "GetOffersByWishID", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetOffer(t *testing.T) {
	executor, wishRepo, offerRepo := new(MockDBExecutor), new(MockWishRepository), new(MockOfferRepository)
	svc := NewOfferService(executor, wishRepo, offerRepo)

	offerRepo.On("GetOfferByID", mock.Anything, executor, int64(4)).
		Return(&domain.Offer{ID: 4, UserID: 8, WishID: wishID, Amount: decimal.NewFromInt(1), Hidden: true}, nil).Twice()
	offerRepo.On("GetOfferByID", mock.Anything, executor, int64(99)).Return(nil, util.ErrOfferNotFound).Once()

	own, err := svc.GetOffer(context.Background(), 4, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(8), own.UserID)

	other, err := svc.GetOffer(context.Background(), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), other.UserID)

	_, err = svc.GetOffer(context.Background(), 99, 1)
	assert.ErrorIs(t, err, util.ErrOfferNotFound)

	mock.AssertExpectationsForObjects(t, offerRepo)
}
