package constraints

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/Domenick1991/roombooking/internal/summary"
)

type ConstraintsUseCase interface {
	Summary(ctx context.Context, unitType, acceptLanguage string) (*Summary, error)
	Update(ctx context.Context, settings domain.ConstraintSettings) (*domain.ConstraintSettings, error)
}

// Summary is the rendered fieldset caption of a unit type.
type Summary struct {
	UnitType string
	Lines    []string
	Caption  string
}

type ConstraintsService struct {
	repo repository.ConstraintRepository
}

func NewConstraintsService(repo repository.ConstraintRepository) *ConstraintsService {
	return &ConstraintsService{repo: repo}
}

// Summary treats a unit type without stored settings as having both
// constraints disabled.
func (s *ConstraintsService) Summary(ctx context.Context, unitType, acceptLanguage string) (*Summary, error) {
	unitType = strings.TrimSpace(unitType)
	if unitType == "" {
		return nil, fmt.Errorf("%w: unit type is required", domain.ErrValidation)
	}

	settings, err := s.repo.Get(ctx, unitType)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		settings = &domain.ConstraintSettings{UnitType: unitType}
	}

	view := summary.ConstraintSummary{
		UnitLevel: settings.RangeUnitEnabled,
		TypeLevel: settings.RangeTypeEnabled,
	}
	p := summary.Printer(acceptLanguage)
	return &Summary{
		UnitType: unitType,
		Lines:    view.Lines(p),
		Caption:  view.Caption(p),
	}, nil
}

func (s *ConstraintsService) Update(ctx context.Context, settings domain.ConstraintSettings) (*domain.ConstraintSettings, error) {
	settings.UnitType = strings.TrimSpace(settings.UnitType)
	if settings.UnitType == "" {
		return nil, fmt.Errorf("%w: unit type is required", domain.ErrValidation)
	}
	if err := s.repo.Upsert(ctx, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

var _ ConstraintsUseCase = (*ConstraintsService)(nil)
