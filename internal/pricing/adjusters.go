package pricing

import "github.com/Domenick1991/roombooking/internal/domain"

// LongStayFlatRate forces a flat price on bookings longer than MinDays.
// It replaces the price rather than discounting it.
type LongStayFlatRate struct {
	MinDays   int
	FlatCents int64
}

func (a LongStayFlatRate) Adjust(price *int64, info domain.BookingInfo) {
	if info.DaySpan() > a.MinDays {
		*price = a.FlatCents
	}
}

// ChildrenDiscount takes Percent off the per-person share for every child
// aged MaxAge or younger.
type ChildrenDiscount struct {
	MaxAge  int
	Percent int
}

func (a ChildrenDiscount) Adjust(price *int64, info domain.BookingInfo) {
	if info.Params.GroupSize <= 0 || a.Percent <= 0 {
		return
	}
	share := *price / int64(info.Params.GroupSize)
	var discount int64
	for _, age := range info.Params.ChildrenAges {
		if age <= a.MaxAge {
			discount += share * int64(a.Percent) / 100
		}
	}
	*price -= discount
}

// OccupancySurcharge charges every guest beyond the unit's base occupancy
// for each night of the stay.
type OccupancySurcharge struct {
	PerGuestNightCents int64
}

func (a OccupancySurcharge) Adjust(price *int64, info domain.BookingInfo) {
	base := info.Unit.BaseOccupancy
	if base <= 0 {
		return
	}
	extra := info.Params.GroupSize - base
	if extra <= 0 {
		return
	}
	*price += int64(extra) * a.PerGuestNightCents * int64(info.DaySpan())
}
