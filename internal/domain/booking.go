package domain

import (
	"fmt"
	"slices"
	"time"
)

const day = 24 * time.Hour

// MaxChildAge is the oldest age still counted as a child.
const MaxChildAge = 17

// MaxStayDays caps DaySpan regardless of configuration. Longer ranges would
// overflow time.Duration.
const MaxStayDays = 3650

// BookingParameters describes who is staying.
type BookingParameters struct {
	GroupSize    int   `json:"group_size"`
	Children     int   `json:"children"`
	ChildrenAges []int `json:"children_ages"`
}

func (p BookingParameters) Adults() int {
	return p.GroupSize - p.Children
}

func (p BookingParameters) Clone() BookingParameters {
	p.ChildrenAges = slices.Clone(p.ChildrenAges)
	return p
}

func (p BookingParameters) Validate() error {
	if p.GroupSize < 1 {
		return fmt.Errorf("%w: group size must be at least 1", ErrValidation)
	}
	if p.Children < 0 || p.Children >= p.GroupSize {
		return fmt.Errorf("%w: children must be between 0 and %d", ErrValidation, p.GroupSize-1)
	}
	if len(p.ChildrenAges) != p.Children {
		return fmt.Errorf("%w: expected %d children ages, got %d", ErrValidation, p.Children, len(p.ChildrenAges))
	}
	for _, age := range p.ChildrenAges {
		if age < 0 || age > MaxChildAge {
			return fmt.Errorf("%w: child age %d out of range", ErrValidation, age)
		}
	}
	return nil
}

// BookingInfo is the context handed to price adjusters. EndDate is the last
// night the unit is occupied, one day before checkout.
type BookingInfo struct {
	StartDate time.Time
	EndDate   time.Time
	Unit      Unit
	Params    BookingParameters
}

func NewBookingInfo(start, end time.Time, unit Unit, params BookingParameters) (BookingInfo, error) {
	start, end = TruncateDate(start), TruncateDate(end)
	if end.Before(start) {
		return BookingInfo{}, fmt.Errorf("%w: end date %s is before start date %s", ErrValidation, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	if end.After(start.AddDate(0, 0, MaxStayDays-1)) {
		return BookingInfo{}, fmt.Errorf("%w: stays are limited to %d days", ErrValidation, MaxStayDays)
	}
	if err := params.Validate(); err != nil {
		return BookingInfo{}, err
	}
	if unit.MaxOccupancy > 0 && params.GroupSize > unit.MaxOccupancy {
		return BookingInfo{}, fmt.Errorf("%w: unit %d sleeps at most %d", ErrValidation, unit.ID, unit.MaxOccupancy)
	}
	return BookingInfo{StartDate: start, EndDate: end, Unit: unit, Params: params.Clone()}, nil
}

// DaySpan is the inclusive number of days between StartDate and EndDate.
func (b BookingInfo) DaySpan() int {
	return int(b.EndDate.Sub(b.StartDate)/day) + 1
}

// Nights equals DaySpan because EndDate is itself an occupied night.
func (b BookingInfo) Nights() int {
	return b.DaySpan()
}

// Clone returns a copy that shares no mutable state with b.
func (b BookingInfo) Clone() BookingInfo {
	b.Params = b.Params.Clone()
	return b
}

// TruncateDate drops the clock part and moves the date to UTC.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
