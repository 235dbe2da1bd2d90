package scenario

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/angeloszaimis/enemy-behavior/internal/actor"
	"github.com/angeloszaimis/enemy-behavior/internal/behavior"
)

const changeBanner = "\n-- Changing Behaviors --\n\n"

// Casting scripts a single actor: the behavior it starts with and the one
// it switches to halfway through.
type Casting struct {
	Name    string
	Initial behavior.Kind
	Next    behavior.Kind
}

// DefaultCast returns the goblin, golem and elf line-up.
func DefaultCast() []Casting {
	return []Casting{
		{Name: "Goblin", Initial: behavior.KindAggressive, Next: behavior.KindDefensive},
		{Name: "Golem", Initial: behavior.KindDefensive, Next: behavior.KindPassive},
		{Name: "Elf", Initial: behavior.KindPassive, Next: behavior.KindAggressive},
	}
}

type role struct {
	actor *actor.Actor
	next  behavior.Strategy
}

type Scenario struct {
	logger *slog.Logger
	out    io.Writer
	roles  []role
}

// New resolves every behavior in the cast up front, so an unknown kind is
// reported before any output is written.
func New(logger *slog.Logger, out io.Writer, cast []Casting) (*Scenario, error) {
	if logger == nil {
		logger = slog.Default()
	}

	roles := make([]role, 0, len(cast))

	for _, c := range cast {
		initial, err := behavior.New(c.Initial)
		if err != nil {
			return nil, fmt.Errorf("cast %s: initial behavior: %w", c.Name, err)
		}

		next, err := behavior.New(c.Next)
		if err != nil {
			return nil, fmt.Errorf("cast %s: next behavior: %w", c.Name, err)
		}

		roles = append(roles, role{
			actor: actor.New(logger, out, c.Name, initial),
			next:  next,
		})
	}

	return &Scenario{
		logger: logger,
		out:    out,
		roles:  roles,
	}, nil
}

// Actors returns the actors in cast order.
func (s *Scenario) Actors() []*actor.Actor {
	actors := make([]*actor.Actor, 0, len(s.roles))
	for _, r := range s.roles {
		actors = append(actors, r.actor)
	}
	return actors
}

func (s *Scenario) Run() error {
	s.logger.Info("Starting scenario", slog.Int("actors", len(s.roles)))

	if err := s.performAll(); err != nil {
		return err
	}

	if _, err := io.WriteString(s.out, changeBanner); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	for _, r := range s.roles {
		if err := r.actor.SetBehaviorStrategy(r.next); err != nil {
			return err
		}
	}

	if err := s.performAll(); err != nil {
		return err
	}

	s.logger.Info("Scenario completed")
	return nil
}

func (s *Scenario) performAll() error {
	for _, r := range s.roles {
		if err := r.actor.PerformBehavior(); err != nil {
			return err
		}
	}
	return nil
}
