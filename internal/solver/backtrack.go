package solver

import (
	"context"
	"errors"
	"fmt"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
)

// ErrQueueOverflow reports a branch that processed more hints than the
// input could ever produce.
var ErrQueueOverflow = errors.New("hint queue overflow")

// BacktrackingCounter walks the hint queue in order, branching on every
// option the head hint proposes. Towers left unconstrained once the queue
// is empty are counted by permutation instead of enumerated.
type BacktrackingCounter struct{}

func NewBacktrackingCounter() *BacktrackingCounter { return &BacktrackingCounter{} }

var factorials = [domain.Size + 1]int{1, 1, 2, 6, 24, 120}

type search struct {
	ctx      context.Context
	limit    int // stop summing once reached; 0 means exhaustive
	maxDepth int
	nodes    int
	err      error
}

func newSearch(ctx context.Context, hints []hint.Hint, limit int) *search {
	// Every original hint is popped once and may leave one derived
	// Absolute behind, which never derives further.
	return &search{ctx: ctx, limit: limit, maxDepth: 2*len(hints) + 1}
}

func (s *search) count(queue []hint.Hint, st domain.State, depth int) int {
	if s.err != nil {
		return 0
	}
	if err := s.ctx.Err(); err != nil {
		s.err = err
		return 0
	}
	if depth > s.maxDepth {
		s.err = fmt.Errorf("%w: depth %d", ErrQueueOverflow, depth)
		return 0
	}
	s.nodes++
	if len(queue) == 0 {
		return factorials[st.Animals.Len()] * factorials[st.Colors.Len()]
	}

	h, rest := queue[0], queue[1:]
	opts := h.Options(st)
	if len(opts) == 0 {
		if h.Satisfied(st.Committed) {
			return s.count(rest, st, depth+1)
		}
		return 0
	}

	total := 0
	for _, o := range opts {
		next := st
		if o.Assignment != nil {
			next = st.Commit(*o.Assignment)
		}
		total += s.count(enqueue(rest, o.Derived), next, depth+1)
		if s.limit > 0 && total >= s.limit {
			break
		}
	}
	return total
}

// enqueue returns a fresh queue so sibling branches never share a backing array.
func enqueue(rest, derived []hint.Hint) []hint.Hint {
	out := make([]hint.Hint, 0, len(rest)+len(derived))
	out = append(out, rest...)
	return append(out, derived...)
}
