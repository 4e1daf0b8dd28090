package domain

import "time"

// Unit is a rentable room.
type Unit struct {
	ID               int64
	Type             string
	Name             string
	BaseOccupancy    int
	MaxOccupancy     int
	NightlyRateCents int64
	Currency         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ConstraintSettings holds the availability range constraint switches of a unit type.
type ConstraintSettings struct {
	UnitType         string
	RangeUnitEnabled bool
	RangeTypeEnabled bool
	UpdatedAt        time.Time
}
