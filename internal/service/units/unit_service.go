package units

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
)

type UnitUseCase interface {
	List(ctx context.Context) ([]domain.Unit, error)
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
}

type UnitCache interface {
	GetUnit(ctx context.Context, id int64) (*domain.Unit, error)
	SetUnit(ctx context.Context, unit *domain.Unit) error
}

type UnitService struct {
	repo  repository.UnitRepository
	cache UnitCache
}

func NewUnitService(repo repository.UnitRepository, cache UnitCache) *UnitService {
	return &UnitService{repo: repo, cache: cache}
}

func (s *UnitService) List(ctx context.Context) ([]domain.Unit, error) {
	return s.repo.List(ctx)
}

func (s *UnitService) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetUnit(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	unit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetUnit(ctx, unit)
	}
	return unit, nil
}

var _ UnitUseCase = (*UnitService)(nil)
