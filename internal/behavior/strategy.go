package behavior

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Strategy executes a behavior on behalf of the named actor, writing the
// resulting line to w.
type Strategy interface {
	ExecuteBehavior(w io.Writer, actorName string) error
}

// Describer renders a behavior as text without writing it anywhere.
type Describer interface {
	Describe(actorName string) string
}

// Kind tags a behavior variant in configuration.
type Kind string

const (
	KindAggressive Kind = "aggressive"
	KindDefensive  Kind = "defensive"
	KindPassive    Kind = "passive"
)

var ErrUnknownKind = errors.New("unknown behavior kind")

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindAggressive, KindDefensive, KindPassive}
}

// ParseKind normalizes s and reports whether it names a known kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New returns the strategy for the given kind.
func New(kind Kind) (Strategy, error) {
	k, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	switch k {
	case KindAggressive:
		return NewAggressiveBehavior(), nil
	case KindDefensive:
		return NewDefensiveBehavior(), nil
	default:
		return NewPassiveBehavior(), nil
	}
}

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}
