// Package scenario runs the behavior demonstration: every actor in the cast
// performs, the cast is handed new behaviors, and every actor performs again.
package scenario
