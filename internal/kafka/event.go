package kafka

import (
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
)

const (
	EventQuoteCreated = "quote_created"
	EventQuoteExpired = "quote_expired"
)

type QuoteEvent struct {
	Type            string    `json:"type"`
	QuoteID         string    `json:"quote_id"`
	UnitID          int64     `json:"unit_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	BasePriceCents  int64     `json:"base_price_cents"`
	FinalPriceCents int64     `json:"final_price_cents"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func NewQuoteEvent(eventType string, q *domain.Quote) QuoteEvent {
	return QuoteEvent{
		Type:            eventType,
		QuoteID:         q.ID,
		UnitID:          q.UnitID,
		StartDate:       q.StartDate.Format(time.DateOnly),
		EndDate:         q.EndDate.Format(time.DateOnly),
		BasePriceCents:  q.BasePriceCents,
		FinalPriceCents: q.FinalPriceCents,
		Currency:        q.Currency,
		Status:          string(q.Status),
		ExpiresAt:       q.ExpiresAt,
	}
}
