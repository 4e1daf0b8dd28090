package pricing

import (
	"testing"

	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRegistryFromConfig(t *testing.T) {
	cfg := config.PricingConfig{
		FailurePolicy: "skip",
		Adjusters: []config.AdjusterConfig{
			{Type: TypeOccupancySurcharge, Name: "extra_guests", PerGuestNightCents: 10_00},
			{Type: TypeChildrenDiscount, MaxAge: 12, Percent: 50},
			{Type: TypeLongStayFlatRate, Name: "long_stay", MinDays: ptr(5), FlatCents: ptr[int64](100_00)},
		},
	}

	r, err := NewRegistryFromConfig(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"extra_guests", TypeChildrenDiscount, "long_stay"}, r.Names())
	assert.Equal(t, PolicySkip, r.Policy())

	unit := domain.Unit{BaseOccupancy: 2}
	params := domain.BookingParameters{GroupSize: 3, Children: 1, ChildrenAges: []int{4}}

	// 2 nights: 300.00 + 1 extra guest * 10.00 * 2 = 320.00, then a child at half of a 106.66 share
	res, err := r.Apply(300_00, bookingInfo(t, 2, unit, params))
	require.NoError(t, err)
	assert.Equal(t, int64(320_00-5333), res.FinalCents)

	res, err = r.Apply(300_00, bookingInfo(t, 6, unit, params))
	require.NoError(t, err)
	assert.Equal(t, int64(100_00), res.FinalCents)
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewRegistryFromConfig_LongStayDefaults(t *testing.T) {
	r, err := NewRegistryFromConfig(config.PricingConfig{
		Adjusters: []config.AdjusterConfig{{Type: TypeLongStayFlatRate}},
	}, nil)
	require.NoError(t, err)

	unit := domain.Unit{}
	params := domain.BookingParameters{GroupSize: 1}

	res, err := r.Apply(200_00, bookingInfo(t, 2, unit, params))
	require.NoError(t, err)
	assert.Equal(t, int64(200_00), res.FinalCents)

	res, err = r.Apply(200_00, bookingInfo(t, 5, unit, params))
	require.NoError(t, err)
	assert.Equal(t, int64(200_00), res.FinalCents)

	res, err = r.Apply(200_00, bookingInfo(t, 6, unit, params))
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultLongStayFlatCents), res.FinalCents)
}

func TestNewRegistryFromConfig_LongStayExplicitZero(t *testing.T) {
	r, err := NewRegistryFromConfig(config.PricingConfig{
		Adjusters: []config.AdjusterConfig{{Type: TypeLongStayFlatRate, MinDays: ptr(0), FlatCents: ptr[int64](0)}},
	}, nil)
	require.NoError(t, err)

	res, err := r.Apply(200_00, bookingInfo(t, 1, domain.Unit{}, domain.BookingParameters{GroupSize: 1}))
	require.NoError(t, err)
	assert.Zero(t, res.FinalCents)
}

func TestNewRegistryFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PricingConfig
	}{
		{"unknown type", config.PricingConfig{Adjusters: []config.AdjusterConfig{{Type: "coupon"}}}},
		{"bad percent", config.PricingConfig{Adjusters: []config.AdjusterConfig{{Type: TypeChildrenDiscount, Percent: 120}}}},
		{"negative flat", config.PricingConfig{Adjusters: []config.AdjusterConfig{{Type: TypeLongStayFlatRate, FlatCents: ptr[int64](-1)}}}},
		{"negative min days", config.PricingConfig{Adjusters: []config.AdjusterConfig{{Type: TypeLongStayFlatRate, MinDays: ptr(-1)}}}},
		{"duplicate name", config.PricingConfig{Adjusters: []config.AdjusterConfig{{Type: TypeLongStayFlatRate}, {Type: TypeLongStayFlatRate}}}},
		{"unknown policy", config.PricingConfig{FailurePolicy: "ignore"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistryFromConfig(tt.cfg, nil)
			assert.Error(t, err)
		})
	}
}
