package jobs

import (
	"context"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, input service.CreateRentalInput) (*domain.RentalRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) ReturnRental(ctx context.Context, id domain.RentalID) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) DeleteRecord(ctx context.Context, id domain.RentalID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRentalService) FindForReturn(ctx context.Context, name, phoneSuffix string, itemID domain.ItemID) (*domain.RentalRecord, error) {
	args := m.Called(ctx, name, phoneSuffix, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) QuickReturn(ctx context.Context, name, phoneSuffix string, itemID domain.ItemID) (*domain.RentalRecord, error) {
	args := m.Called(ctx, name, phoneSuffix, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalService) ListActive(ctx context.Context, order service.RentalSort) []service.RentalView {
	return m.Called(ctx, order).Get(0).([]service.RentalView)
}

func (m *MockRentalService) ListHistory(ctx context.Context, order service.RentalSort) []service.RentalView {
	return m.Called(ctx, order).Get(0).([]service.RentalView)
}

func (m *MockRentalService) ListOverdue(ctx context.Context) []service.RentalView {
	return m.Called(ctx).Get(0).([]service.RentalView)
}

func (m *MockRentalService) ClearReturnedHistory(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRentalService) PruneHistory(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
