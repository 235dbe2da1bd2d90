// Package actor implements the context side of the behavior strategy:
// a named enemy that delegates everything it does to whichever strategy it
// currently holds, and can be handed a different one at any time.
package actor
