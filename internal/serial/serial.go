// Package serial hands out element identifiers.
//
// Identifiers are only required to be unique within a process and strictly
// increasing per generator. Callers that need reproducible ids (tests, golden
// output) inject their own Counter instead of relying on Default.
package serial

import "sync/atomic"

// Generator produces element identifiers.
type Generator interface {
	Next() uint64
}

// Counter is a lock-free monotonic Generator. The zero value starts at 1.
type Counter struct {
	n atomic.Uint64
}

// NewCounter returns a Counter whose first id is start+1.
func NewCounter(start uint64) *Counter {
	c := &Counter{}
	c.n.Store(start)
	return c
}

// Next returns the next identifier.
func (c *Counter) Next() uint64 {
	return c.n.Add(1)
}

var defaultCounter Counter

// Default returns the process-wide generator.
func Default() Generator {
	return &defaultCounter
}
