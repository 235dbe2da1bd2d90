package actor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/angeloszaimis/enemy-behavior/internal/behavior"
)

// Actor holds a name and exactly one active behavior strategy.
type Actor struct {
	name     string
	out      io.Writer
	logger   *slog.Logger
	strategy behavior.Strategy
	mutex    sync.RWMutex
}

// New creates an actor with its initial strategy.
// It panics if initial is nil: an actor without a behavior is a programming error.
func New(logger *slog.Logger, out io.Writer, name string, initial behavior.Strategy) *Actor {
	if initial == nil {
		panic(fmt.Sprintf("actor %q: initial behavior strategy is nil", name))
	}

	if logger == nil {
		logger = slog.Default()
	}

	if out == nil {
		out = os.Stdout
	}

	return &Actor{
		name:     name,
		out:      out,
		logger:   logger.With(slog.String("actor", name)),
		strategy: initial,
	}
}

// Name returns the actor's name.
func (a *Actor) Name() string {
	return a.name
}

// Behavior returns the strategy the actor currently holds.
func (a *Actor) Behavior() behavior.Strategy {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.strategy
}

// SetBehaviorStrategy swaps in next and announces the change.
// The previous strategy is kept if next is nil, and the call panics.
func (a *Actor) SetBehaviorStrategy(next behavior.Strategy) error {
	if next == nil {
		panic(fmt.Sprintf("actor %q: behavior strategy is nil", a.name))
	}

	a.mutex.Lock()
	previous := a.strategy
	a.strategy = next
	a.mutex.Unlock()

	a.logger.Debug("Behavior changed",
		slog.String("from", fmt.Sprintf("%T", previous)),
		slog.String("to", fmt.Sprintf("%T", next)))

	if _, err := fmt.Fprintf(a.out, "%s changed behavior.\n", a.name); err != nil {
		return fmt.Errorf("announce behavior change for %s: %w", a.name, err)
	}

	return nil
}

// PerformBehavior forwards to the current strategy.
func (a *Actor) PerformBehavior() error {
	strat := a.Behavior()

	if err := strat.ExecuteBehavior(a.out, a.name); err != nil {
		return fmt.Errorf("perform behavior for %s: %w", a.name, err)
	}

	return nil
}
