package generator

import "svw.info/tower/internal/ports"

// UniqueGenerator creates puzzles with a unique solution using a provided Counter.
type UniqueGenerator struct {
	Counter ports.Counter
}

// NewUniqueGenerator wires a generator that uses the given counter for uniqueness checks.
func NewUniqueGenerator(c ports.Counter) *UniqueGenerator {
	return &UniqueGenerator{Counter: c}
}
