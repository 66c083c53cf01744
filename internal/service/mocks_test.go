// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"wishfund/internal/domain"
	"wishfund/internal/repository"
)

var errNotUsed = errors.New("not used in tests: repositories are mocked")

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockWishRepository is a mock implementation of repository.WishRepository.
type MockWishRepository struct {
	mock.Mock
}

func (m *MockWishRepository) CreateWish(ctx context.Context, q repository.DBExecutor, wish *domain.Wish) error {
	args := m.Called(ctx, q, wish)
	return args.Error(0)
}

func (m *MockWishRepository) GetWishByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wish, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wish), args.Error(1)
}

func (m *MockWishRepository) GetWishForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wish, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wish), args.Error(1)
}

func (m *MockWishRepository) IncrementRaised(ctx context.Context, q repository.DBExecutor, id int64, delta decimal.Decimal) error {
	args := m.Called(ctx, q, id, delta)
	return args.Error(0)
}

func (m *MockWishRepository) UpdateWishPrice(ctx context.Context, q repository.DBExecutor, id int64, price decimal.Decimal) error {
	args := m.Called(ctx, q, id, price)
	return args.Error(0)
}

// MockOfferRepository is a mock implementation of repository.OfferRepository.
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) CreateOffer(ctx context.Context, q repository.DBExecutor, offer *domain.Offer) error {
	args := m.Called(ctx, q, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) GetOfferByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Offer, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetOffersByWishID(ctx context.Context, q repository.DBExecutor, wishID int64, limit, offset int) ([]domain.Offer, int64, error) {
	args := m.Called(ctx, q, wishID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Offer), args.Get(1).(int64), args.Error(2)
}

func (m *MockOfferRepository) CountOffersByWishID(ctx context.Context, q repository.DBExecutor, wishID int64) (int64, error) {
	args := m.Called(ctx, q, wishID)
	return args.Get(0).(int64), args.Error(1)
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
// Services never call it directly because beginTx is injected.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController. It also
// satisfies repository.DBExecutor so the services' type assertion succeeds;
// those methods are never reached because the repositories are mocked.
type MockTxController struct {
	mock.Mock
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) GetContext(context.Context, interface{}, string, ...interface{}) error {
	return errNotUsed
}

func (m *MockTxController) SelectContext(context.Context, interface{}, string, ...interface{}) error {
	return errNotUsed
}

func (m *MockTxController) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errNotUsed
}

func (m *MockTxController) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return &sql.Row{}
}
