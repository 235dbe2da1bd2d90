package behavior

import (
	"fmt"
	"io"
)

type defensiveBehavior struct{}

func (d *defensiveBehavior) Describe(actorName string) string {
	return fmt.Sprintf("%s takes a firm stance and defends cautiously.", actorName)
}

func (d *defensiveBehavior) ExecuteBehavior(w io.Writer, actorName string) error {
	return writeLine(w, d.Describe(actorName))
}

func NewDefensiveBehavior() Strategy {
	return &defensiveBehavior{}
}
