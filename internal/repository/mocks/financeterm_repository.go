package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/premiafi/finance-terms/internal/domain"
)

type MockFinanceTermRepository struct {
	mock.Mock
}

func (m *MockFinanceTermRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFinanceTermRepository) Create(ctx context.Context, term *domain.FinanceTerm) error {
	args := m.Called(ctx, term)
	return args.Error(0)
}

func (m *MockFinanceTermRepository) GetByID(ctx context.Context, id int64) (*domain.FinanceTerm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceTerm), args.Error(1)
}

func (m *MockFinanceTermRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFinanceTermRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.FinanceTerm, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FinanceTerm), args.Error(1)
}

func (m *MockFinanceTermRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockFinanceTermRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
