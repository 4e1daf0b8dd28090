package domain

import "time"

type QuoteStatus string

const (
	QuoteStatusActive  QuoteStatus = "ACTIVE"
	QuoteStatusExpired QuoteStatus = "EXPIRED"
)

type AdjustmentOutcome string

const (
	OutcomeApplied   AdjustmentOutcome = "applied"
	OutcomeUnchanged AdjustmentOutcome = "unchanged"
	OutcomeClamped   AdjustmentOutcome = "clamped"
	OutcomeSkipped   AdjustmentOutcome = "skipped"
)

// AppliedAdjustment records what one adjuster did to the price.
type AppliedAdjustment struct {
	Name        string            `json:"name"`
	BeforeCents int64             `json:"before_cents"`
	AfterCents  int64             `json:"after_cents"`
	Outcome     AdjustmentOutcome `json:"outcome"`
}

// Quote is the committed result of one pricing pass.
type Quote struct {
	ID              string
	UnitID          int64
	StartDate       time.Time
	EndDate         time.Time
	Nights          int
	Params          BookingParameters
	BasePriceCents  int64
	FinalPriceCents int64
	Currency        string
	Adjustments     []AppliedAdjustment
	Status          QuoteStatus
	ExpiresAt       time.Time
	CreatedAt       time.Time
}
