package units

import (
	"context"
	"testing"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockUnitRepository) List(ctx context.Context) ([]domain.Unit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Unit), args.Error(1)
}

type MockUnitCache struct {
	mock.Mock
}

func (m *MockUnitCache) GetUnit(ctx context.Context, id int64) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockUnitCache) SetUnit(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func TestUnitService_GetByID_CacheHit(t *testing.T) {
	repo := &MockUnitRepository{}
	cache := &MockUnitCache{}
	service := NewUnitService(repo, cache)
	ctx := context.Background()

	cached := &domain.Unit{ID: 1, Name: "Sea view"}
	cache.On("GetUnit", ctx, int64(1)).Return(cached, nil).Once()

	unit, err := service.GetByID(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, cached, unit)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestUnitService_GetByID_CacheMiss(t *testing.T) {
	repo := &MockUnitRepository{}
	cache := &MockUnitCache{}
	service := NewUnitService(repo, cache)
	ctx := context.Background()

	stored := &domain.Unit{ID: 2, Name: "Garden"}
	cache.On("GetUnit", ctx, int64(2)).Return(nil, nil).Once()
	repo.On("GetByID", ctx, int64(2)).Return(stored, nil).Once()
	cache.On("SetUnit", ctx, stored).Return(nil).Once()

	unit, err := service.GetByID(ctx, 2)

	assert.NoError(t, err)
	assert.Equal(t, stored, unit)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUnitService_GetByID_NotFound(t *testing.T) {
	repo := &MockUnitRepository{}
	service := NewUnitService(repo, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(3)).Return(nil, domain.ErrNotFound).Once()

	_, err := service.GetByID(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnitService_List(t *testing.T) {
	repo := &MockUnitRepository{}
	service := NewUnitService(repo, nil)
	ctx := context.Background()

	repo.On("List", ctx).Return([]domain.Unit{{ID: 1}, {ID: 2}}, nil).Once()

	list, err := service.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}
