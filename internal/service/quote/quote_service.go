package quote

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/kafka"
	"github.com/Domenick1991/roombooking/internal/pricing"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuoteUseCase interface {
	CreateQuote(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error)
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)
	ExpireQuotes(ctx context.Context) ([]domain.Quote, error)
}

type Cache interface {
	GetUnit(ctx context.Context, id int64) (*domain.Unit, error)
	SetUnit(ctx context.Context, unit *domain.Unit) error
	AcquireQuoteLock(ctx context.Context, unitID int64, start, end time.Time, ttl time.Duration) (string, bool, error)
	ReleaseQuoteLock(ctx context.Context, unitID int64, start, end time.Time, token string) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// Pricer runs the price adjustment extension point.
type Pricer interface {
	Apply(base int64, info domain.BookingInfo) (pricing.Result, error)
}

type QuoteService struct {
	quotes             repository.QuoteRepository
	units              repository.UnitRepository
	cache              Cache
	producer           Producer
	pricer             Pricer
	quotesTopic        string
	notificationsTopic string
	quoteTTL           time.Duration
	lockTTL            time.Duration
	defaultCurrency    string
	maxNights          int
	publishRetries     int
	logger             *zap.Logger
	now                func() time.Time
}

type CreateQuoteInput struct {
	UnitID    int64                    `json:"unit_id"`
	StartDate time.Time                `json:"start_date"`
	EndDate   time.Time                `json:"end_date"`
	Params    domain.BookingParameters `json:"params"`
}

type QuoteServiceOption func(*QuoteService)

func WithNotificationsTopic(topic string) QuoteServiceOption {
	return func(s *QuoteService) {
		s.notificationsTopic = topic
	}
}

func WithDefaultCurrency(currency string) QuoteServiceOption {
	return func(s *QuoteService) {
		s.defaultCurrency = currency
	}
}

// WithMaxNights rejects stays longer than n nights. Zero leaves only the
// domain.MaxStayDays cap.
func WithMaxNights(n int) QuoteServiceOption {
	return func(s *QuoteService) {
		s.maxNights = n
	}
}

func WithPublishRetries(n int) QuoteServiceOption {
	return func(s *QuoteService) {
		s.publishRetries = n
	}
}

func WithLogger(logger *zap.Logger) QuoteServiceOption {
	return func(s *QuoteService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) QuoteServiceOption {
	return func(s *QuoteService) {
		s.now = now
	}
}

func NewQuoteService(
	quotes repository.QuoteRepository,
	units repository.UnitRepository,
	cache Cache,
	producer Producer,
	pricer Pricer,
	quotesTopic string,
	quoteTTL, lockTTL time.Duration,
	opts ...QuoteServiceOption,
) *QuoteService {
	service := &QuoteService{
		quotes:          quotes,
		units:           units,
		cache:           cache,
		producer:        producer,
		pricer:          pricer,
		quotesTopic:     quotesTopic,
		quoteTTL:        quoteTTL,
		lockTTL:         lockTTL,
		defaultCurrency: "USD",
		publishRetries:  1,
		logger:          zap.NewNop(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *QuoteService) CreateQuote(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error) {
	if input.UnitID <= 0 {
		return nil, fmt.Errorf("%w: unit id must be positive", domain.ErrValidation)
	}

	unit, err := s.loadUnit(ctx, input.UnitID)
	if err != nil {
		return nil, err
	}

	info, err := domain.NewBookingInfo(input.StartDate, input.EndDate, *unit, input.Params)
	if err != nil {
		return nil, err
	}

	if s.maxNights > 0 && info.Nights() > s.maxNights {
		return nil, fmt.Errorf("%w: stays are limited to %d nights", domain.ErrValidation, s.maxNights)
	}

	if s.cache != nil {
		token, ok, err := s.cache.AcquireQuoteLock(ctx, unit.ID, info.StartDate, info.EndDate, s.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire quote lock: %w", err)
		}
		if !ok {
			return nil, domain.ErrQuoteInProgress
		}
		defer func() {
			if err := s.cache.ReleaseQuoteLock(context.WithoutCancel(ctx), unit.ID, info.StartDate, info.EndDate, token); err != nil {
				s.logger.Warn("release quote lock", zap.Int64("unit_id", unit.ID), zap.Error(err))
			}
		}()
	}

	base, err := baseCents(unit.NightlyRateCents, info.Nights())
	if err != nil {
		return nil, err
	}
	result, err := s.pricer.Apply(base, info)
	if err != nil {
		return nil, fmt.Errorf("price unit %d: %w", unit.ID, err)
	}

	currency := unit.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	quote := &domain.Quote{
		ID:              uuid.NewString(),
		UnitID:          unit.ID,
		StartDate:       info.StartDate,
		EndDate:         info.EndDate,
		Nights:          info.Nights(),
		Params:          info.Params,
		BasePriceCents:  result.BaseCents,
		FinalPriceCents: result.FinalCents,
		Currency:        currency,
		Adjustments:     result.Steps,
		Status:          domain.QuoteStatusActive,
		ExpiresAt:       s.now().Add(s.quoteTTL),
	}

	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}

	s.logger.Info("quote created",
		zap.String("quote_id", quote.ID),
		zap.Int64("unit_id", quote.UnitID),
		zap.Int("nights", quote.Nights),
		zap.Int64("base_price_cents", quote.BasePriceCents),
		zap.Int64("final_price_cents", quote.FinalPriceCents))

	if err := s.publish(ctx, kafka.EventQuoteCreated, quote); err != nil {
		s.logger.Warn("failed to publish quote event", zap.String("quote_id", quote.ID), zap.Error(err))
	}
	return quote, nil
}

func (s *QuoteService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed quote id", domain.ErrValidation)
	}
	return s.quotes.GetByID(ctx, id)
}

func (s *QuoteService) ExpireQuotes(ctx context.Context) ([]domain.Quote, error) {
	expired, err := s.quotes.ExpireActiveBefore(ctx, s.now())
	if err != nil {
		return nil, err
	}
	for i := range expired {
		if err := s.publish(ctx, kafka.EventQuoteExpired, &expired[i]); err != nil {
			s.logger.Warn("failed to publish quote event", zap.String("quote_id", expired[i].ID), zap.Error(err))
		}
	}
	return expired, nil
}

func (s *QuoteService) loadUnit(ctx context.Context, id int64) (*domain.Unit, error) {
	if s.cache != nil {
		cached, err := s.cache.GetUnit(ctx, id)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			s.logger.Debug("unit cache lookup failed", zap.Int64("unit_id", id), zap.Error(err))
		}
	}

	unit, err := s.units.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetUnit(ctx, unit); err != nil {
			s.logger.Debug("unit cache store failed", zap.Int64("unit_id", id), zap.Error(err))
		}
	}
	return unit, nil
}

func (s *QuoteService) publish(ctx context.Context, eventType string, quote *domain.Quote) error {
	if s.producer == nil || s.quotesTopic == "" {
		return nil
	}
	event := kafka.NewQuoteEvent(eventType, quote)
	err := s.producer.PublishWithRetry(ctx, s.quotesTopic, quote.ID, event, s.publishRetries)
	if s.notificationsTopic != "" {
		err = errors.Join(err, s.producer.PublishWithRetry(ctx, s.notificationsTopic, quote.ID, event, s.publishRetries))
	}
	return err
}

// baseCents multiplies the nightly rate by the stay length, refusing results
// that do not fit in int64.
func baseCents(rate int64, nights int) (int64, error) {
	n := int64(nights)
	if n > 0 && (rate > math.MaxInt64/n || rate < math.MinInt64/n) {
		return 0, fmt.Errorf("%w: %d nights at %d cents overflows the price", domain.ErrValidation, nights, rate)
	}
	return rate * n, nil
}

var _ QuoteUseCase = (*QuoteService)(nil)
