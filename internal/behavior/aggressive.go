package behavior

import (
	"fmt"
	"io"
)

type aggressiveBehavior struct{}

func (a *aggressiveBehavior) Describe(actorName string) string {
	return fmt.Sprintf("%s charges toward the player attacks ferociously!", actorName)
}

func (a *aggressiveBehavior) ExecuteBehavior(w io.Writer, actorName string) error {
	return writeLine(w, a.Describe(actorName))
}

func NewAggressiveBehavior() Strategy {
	return &aggressiveBehavior{}
}
