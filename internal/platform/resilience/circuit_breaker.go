package resilience

import (
	"errors"

	"github.com/riskibarqy/euroleague-dashboard/internal/platform/logging"
	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
	CircuitStateDisabled CircuitState = "disabled"
)

// Breaker guards one upstream dependency.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker
}

type BreakerOption func(*gobreaker.Settings)

// WithFailurePredicate decides which errors count against the breaker.
// Errors rejected by the predicate are returned but treated as successes.
func WithFailurePredicate(isFailure func(error) bool) BreakerOption {
	return func(s *gobreaker.Settings) {
		if isFailure == nil {
			return
		}
		s.IsSuccessful = func(err error) bool {
			return err == nil || !isFailure(err)
		}
	}
}

func WithStateLogger(logger *logging.Logger) BreakerOption {
	return func(s *gobreaker.Settings) {
		s.OnStateChange = func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"component", "circuit_breaker",
				"dependency", name,
				"from", from.String(),
				"to", to.String(),
			)
		}
	}
}

// NewBreaker returns a pass-through breaker when cfg is disabled.
func NewBreaker(name string, cfg CircuitBreakerConfig, opts ...BreakerOption) *Breaker {
	b := &Breaker{name: name}
	if !cfg.Enabled {
		return b
	}

	cfg = NormalizeCircuitBreakerConfig(cfg)
	threshold := uint32(cfg.FailureThreshold)
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(cfg.HalfOpenMaxReq),
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}
	for _, opt := range opts {
		opt(&settings)
	}

	b.cb = gobreaker.NewCircuitBreaker(settings)
	return b
}

// Execute runs fn through the breaker. Rejections wrap ErrCircuitOpen.
func (b *Breaker) Execute(fn func() error) error {
	if b == nil || b.cb == nil {
		return fn()
	}

	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrCircuitOpen, err)
	}
	return err
}

func (b *Breaker) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

func (b *Breaker) State() CircuitState {
	if b == nil || b.cb == nil {
		return CircuitStateDisabled
	}
	switch b.cb.State() {
	case gobreaker.StateOpen:
		return CircuitStateOpen
	case gobreaker.StateHalfOpen:
		return CircuitStateHalfOpen
	default:
		return CircuitStateClosed
	}
}
