package pricing

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/roombooking/config"
	"go.uber.org/zap"
)

const (
	TypeLongStayFlatRate   = "long_stay_flat_rate"
	TypeChildrenDiscount   = "children_discount"
	TypeOccupancySurcharge = "occupancy_surcharge"
)

// Used when a long_stay_flat_rate entry leaves min_days or flat_cents out.
const (
	DefaultLongStayMinDays   = 5
	DefaultLongStayFlatCents = 100_00
)

// NewRegistryFromConfig registers the configured adjusters in list order.
func NewRegistryFromConfig(cfg config.PricingConfig, logger *zap.Logger) (*Registry, error) {
	policy, err := ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry(
		WithFailurePolicy(policy),
		WithMaxAdjusters(cfg.MaxAdjusters),
		WithLogger(logger),
	)
	for i, ac := range cfg.Adjusters {
		adjuster, err := adjusterFromConfig(ac)
		if err != nil {
			return nil, fmt.Errorf("pricing adjuster #%d: %w", i, err)
		}
		name := ac.Name
		if name == "" {
			name = ac.Type
		}
		if err := registry.Register(name, adjuster); err != nil {
			return nil, fmt.Errorf("pricing adjuster #%d: %w", i, err)
		}
	}
	return registry, nil
}

func adjusterFromConfig(ac config.AdjusterConfig) (Adjuster, error) {
	switch ac.Type {
	case TypeLongStayFlatRate:
		adj := LongStayFlatRate{MinDays: DefaultLongStayMinDays, FlatCents: DefaultLongStayFlatCents}
		if ac.MinDays != nil {
			if *ac.MinDays < 0 {
				return nil, errors.New("min_days must not be negative")
			}
			adj.MinDays = *ac.MinDays
		}
		if ac.FlatCents != nil {
			if *ac.FlatCents < 0 {
				return nil, errors.New("flat_cents must not be negative")
			}
			adj.FlatCents = *ac.FlatCents
		}
		return adj, nil
	case TypeChildrenDiscount:
		if ac.Percent < 0 || ac.Percent > 100 {
			return nil, fmt.Errorf("percent must be within 0..100, got %d", ac.Percent)
		}
		return ChildrenDiscount{MaxAge: ac.MaxAge, Percent: ac.Percent}, nil
	case TypeOccupancySurcharge:
		return OccupancySurcharge{PerGuestNightCents: ac.PerGuestNightCents}, nil
	default:
		return nil, fmt.Errorf("unknown adjuster type %q", ac.Type)
	}
}
