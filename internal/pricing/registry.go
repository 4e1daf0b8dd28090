// Package pricing implements the price adjustment extension point: an ordered
// list of adjusters that may rewrite a computed booking price before it is
// committed.
package pricing

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Domenick1991/roombooking/internal/domain"
	"go.uber.org/zap"
)

// ExtensionPoint names the hook adjusters are attached to.
const ExtensionPoint = "rooms_booking_amount_before_modifiers"

var (
	ErrInvalidAdjustment = errors.New("invalid price adjustment")
	ErrTooManyAdjusters  = errors.New("too many price adjusters")
	ErrDuplicateAdjuster = errors.New("price adjuster already registered")
	ErrNegativeBase      = errors.New("base price is negative")
)

// Adjuster may overwrite *price. It must not keep info or price after returning.
type Adjuster interface {
	Adjust(price *int64, info domain.BookingInfo)
}

type AdjusterFunc func(price *int64, info domain.BookingInfo)

func (f AdjusterFunc) Adjust(price *int64, info domain.BookingInfo) {
	f(price, info)
}

// FailurePolicy decides what happens when an adjuster leaves a negative
// price behind or panics.
type FailurePolicy string

const (
	// PolicyClamp raises negative prices to zero and discards panicking adjusters.
	PolicyClamp FailurePolicy = "clamp"
	// PolicySkip restores the price seen before the misbehaving adjuster.
	PolicySkip FailurePolicy = "skip"
	// PolicyReject aborts the whole pass.
	PolicyReject FailurePolicy = "reject"
)

const DefaultMaxAdjusters = 32

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch p := FailurePolicy(s); p {
	case PolicyClamp, PolicySkip, PolicyReject:
		return p, nil
	case "":
		return PolicyClamp, nil
	default:
		return "", fmt.Errorf("unknown failure policy %q", s)
	}
}

type entry struct {
	name     string
	adjuster Adjuster
}

// Registry runs adjusters in registration order, each one seeing the price
// left by the previous one. Apply is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	policy  FailurePolicy
	max     int
	logger  *zap.Logger
}

type Option func(*Registry)

func WithFailurePolicy(p FailurePolicy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

func WithMaxAdjusters(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.max = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		policy: PolicyClamp,
		max:    DefaultMaxAdjusters,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Register(name string, a Adjuster) error {
	if name == "" {
		return errors.New("adjuster name is required")
	}
	if a == nil {
		return fmt.Errorf("adjuster %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) >= r.max {
		return fmt.Errorf("%w: limit is %d", ErrTooManyAdjusters, r.max)
	}
	for _, e := range r.entries {
		if e.name == name {
			return fmt.Errorf("%w: %s", ErrDuplicateAdjuster, name)
		}
	}
	r.entries = append(r.entries, entry{name: name, adjuster: a})
	r.logger.Debug("price adjuster registered",
		zap.String("extension_point", ExtensionPoint),
		zap.String("adjuster", name),
		zap.Int("position", len(r.entries)))
	return nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func (r *Registry) Policy() FailurePolicy {
	return r.policy
}

// Result is the outcome of one pricing pass.
type Result struct {
	BaseCents  int64
	FinalCents int64
	Steps      []domain.AppliedAdjustment
}

// Apply runs every registered adjuster over base and returns the final price.
func (r *Registry) Apply(base int64, info domain.BookingInfo) (Result, error) {
	if base < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeBase, base)
	}

	r.mu.RLock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	res := Result{BaseCents: base, Steps: make([]domain.AppliedAdjustment, 0, len(entries))}
	price := base
	for _, e := range entries {
		before := price
		panicVal := invoke(e.adjuster, &price, info.Clone())

		step := domain.AppliedAdjustment{Name: e.name, BeforeCents: before}
		switch {
		case panicVal != nil:
			if r.policy == PolicyReject {
				return Result{}, fmt.Errorf("%w: adjuster %q panicked: %v", ErrInvalidAdjustment, e.name, panicVal)
			}
			r.logger.Warn("price adjuster panicked, discarding its change",
				zap.String("adjuster", e.name),
				zap.Any("panic", panicVal))
			price = before
			step.Outcome = domain.OutcomeSkipped
		case price < 0:
			switch r.policy {
			case PolicyReject:
				return Result{}, fmt.Errorf("%w: adjuster %q produced %d", ErrInvalidAdjustment, e.name, price)
			case PolicySkip:
				r.logger.Warn("price adjuster produced negative price, skipping",
					zap.String("adjuster", e.name),
					zap.Int64("price_cents", price))
				price = before
				step.Outcome = domain.OutcomeSkipped
			default:
				r.logger.Warn("price adjuster produced negative price, clamping to zero",
					zap.String("adjuster", e.name),
					zap.Int64("price_cents", price))
				price = 0
				step.Outcome = domain.OutcomeClamped
			}
		case price == before:
			step.Outcome = domain.OutcomeUnchanged
		default:
			step.Outcome = domain.OutcomeApplied
		}
		step.AfterCents = price
		res.Steps = append(res.Steps, step)
	}
	res.FinalCents = price
	return res, nil
}

func invoke(a Adjuster, price *int64, info domain.BookingInfo) (panicVal any) {
	defer func() {
		panicVal = recover()
	}()
	a.Adjust(price, info)
	return nil
}
