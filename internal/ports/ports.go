package ports

import (
	"context"
	"time"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Puzzle is a generated hint list together with the tower it describes.
type Puzzle struct {
	Seed       int64             `json:"seed,omitempty"`
	Difficulty domain.Difficulty `json:"difficulty"`
	Hints      []hint.Hint       `json:"-"`
	Solution   domain.Tower      `json:"solution"`
	CreatedAt  int64             `json:"createdAt,omitempty"`
}

// Counter counts towers consistent with a hint list and can test uniqueness.
type Counter interface {
	Count(ctx context.Context, hints []hint.Hint) (int, Stats, error)
	Unique(ctx context.Context, hints []hint.Hint) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*Puzzle, Stats, error)
}

// Validator checks a complete tower against hints.
type Validator interface {
	Validate(ctx context.Context, t domain.Tower, hints []hint.Hint) (ok bool, violated []hint.Hint, err error)
}
