package solver

import (
	"context"
	"time"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
	"svw.info/tower/internal/ports"
)

// Count returns the exact number of towers satisfying every hint.
func (c *BacktrackingCounter) Count(ctx context.Context, hints []hint.Hint) (int, ports.Stats, error) {
	start := time.Now()
	s := newSearch(ctx, hints, 0)
	n := s.count(hints, domain.NewState(), 0)
	st := ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if s.err != nil {
		return 0, st, s.err
	}
	return n, st, nil
}
