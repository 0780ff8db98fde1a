// Package solver counts tower layouts consistent with a list of hints.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"svw.info/tower/internal/hint"
	"svw.info/tower/internal/ports"
)

var ErrUnknownKind = errors.New("unknown counter kind")

// New picks a counter by name: "backtrack" (default) or "sat".
func New(kind string) (ports.Counter, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "backtrack", "backtracking":
		return NewBacktrackingCounter(), nil
	case "sat":
		return NewSATCounter(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// CountAssignments returns how many towers satisfy every hint.
func CountAssignments(hints []hint.Hint) int {
	n, _, err := NewBacktrackingCounter().Count(context.Background(), hints)
	if err != nil {
		// unreachable for hints built by the hint constructors
		panic(err)
	}
	return n
}
