package persistence

import (
	"context"
	"errors"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/pkg/circuitbreaker"
	"github.com/tabuddy/tabuddy/pkg/logger"
)

// Guarded routes repository calls through a circuit breaker. After repeated
// failures of a networked backend, saves fail at once instead of waiting on
// connection timeouts for every command.
type Guarded struct {
	repo    buddy.Repository
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuarded wraps repo with a breaker named after the backend.
func NewGuarded(backend string, repo buddy.Repository, cfg circuitbreaker.Config, log *logger.Logger) *Guarded {
	if log == nil {
		log = logger.Nop()
	}
	cfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		log.Warn("storage circuit changed state",
			logger.String("breaker", name),
			logger.String("from", from.String()),
			logger.String("to", to.String()),
		)
	}
	return &Guarded{repo: repo, breaker: circuitbreaker.New(backend, cfg)}
}

// Load implements buddy.Repository. ErrNoData does not count as a failure.
func (g *Guarded) Load(ctx context.Context) (*buddy.Buddy, error) {
	var b *buddy.Buddy
	var noData bool
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		b, err = g.repo.Load(ctx)
		if errors.Is(err, buddy.ErrNoData) {
			noData = true
			return nil
		}
		return err
	})
	if noData {
		return nil, buddy.ErrNoData
	}
	return b, err
}

// Save implements buddy.Repository.
func (g *Guarded) Save(ctx context.Context, b *buddy.Buddy) error {
	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.repo.Save(ctx, b)
	})
}

// State reports the breaker state.
func (g *Guarded) State() circuitbreaker.State {
	return g.breaker.State()
}

var _ buddy.Repository = (*Guarded)(nil)
