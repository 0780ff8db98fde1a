package solver

import (
	"context"
	"time"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
	"svw.info/tower/internal/ports"
)

// Unique counts towers up to 2 and reports whether exactly one exists.
func (c *BacktrackingCounter) Unique(ctx context.Context, hints []hint.Hint) (bool, ports.Stats, error) {
	start := time.Now()
	s := newSearch(ctx, hints, 2)
	n := s.count(hints, domain.NewState(), 0)
	st := ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if s.err != nil {
		return false, st, s.err
	}
	return n == 1, st, nil
}
