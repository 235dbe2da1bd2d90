package behavior

import (
	"fmt"
	"io"
)

// passiveBehavior keeps the actor out of the fight entirely.
type passiveBehavior struct{}

func (p *passiveBehavior) Describe(actorName string) string {
	return fmt.Sprintf("%s stays back and avoids conflict.", actorName)
}

func (p *passiveBehavior) ExecuteBehavior(w io.Writer, actorName string) error {
	return writeLine(w, p.Describe(actorName))
}

func NewPassiveBehavior() Strategy {
	return &passiveBehavior{}
}
