package notify

import (
	"context"

	"github.com/Domenick1991/roombooking/internal/kafka"
	"go.uber.org/zap"
)

// Sender reports quote lifecycle events to the operators' log.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.QuoteEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("quote notification",
		zap.String("type", event.Type),
		zap.String("quote_id", event.QuoteID),
		zap.Int64("unit_id", event.UnitID),
		zap.String("start_date", event.StartDate),
		zap.String("end_date", event.EndDate),
		zap.Int64("final_price_cents", event.FinalPriceCents),
		zap.String("currency", event.Currency))
	return nil
}
