package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
	"svw.info/tower/internal/ports"
)

func targetHints(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 12
	case domain.Medium:
		return 9
	case domain.Hard:
		return 7
	default:
		return 5 // Expert
	}
}

// Generate picks a random tower, lists clues that hold for it, then drops
// clues in random order while the remaining ones still pin a single tower.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*ports.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// 1) random tower
	tower := randomTower(rng)

	// 2) every true clue allowed at this difficulty, then carve
	hints := facts(tower, diff)
	rng.Shuffle(len(hints), func(i, j int) { hints[i], hints[j] = hints[j], hints[i] })

	target := targetHints(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for i := 0; i < len(hints); {
		if time.Now().After(deadline) || len(hints) <= target {
			break
		}
		trial := make([]hint.Hint, 0, len(hints)-1)
		trial = append(trial, hints[:i]...)
		trial = append(trial, hints[i+1:]...)
		unique, st, err := g.Counter.Unique(ctx, trial)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if unique {
			hints = trial
			continue
		}
		i++
	}

	p := &ports.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Hints:      hints,
		Solution:   tower,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func randomTower(rng *rand.Rand) domain.Tower {
	colors := rng.Perm(domain.Size)
	animals := rng.Perm(domain.Size)
	var t domain.Tower
	for i, f := range domain.Floors {
		t[i] = domain.FloorAssignment{
			Floor:  f,
			Color:  domain.Color(colors[i]),
			Animal: domain.Animal(animals[i]),
		}
	}
	return t
}

// facts lists clues true for t. Absolute clues alone already fix the
// tower, so the starting list is always unique.
func facts(t domain.Tower, diff domain.Difficulty) []hint.Hint {
	out := lo.FlatMap(t[:], func(fa domain.FloorAssignment, _ int) []hint.Hint {
		return []hint.Hint{
			hint.NewAbsolute(fa.Floor, fa.Color),
			hint.NewAbsolute(fa.Floor, fa.Animal),
			hint.NewAbsolute(fa.Color, fa.Animal),
		}
	})
	if diff >= domain.Medium {
		for i := 0; i+1 < domain.Size; i++ {
			below, above := t[i], t[i+1]
			out = append(out,
				hint.NewNeighbor(below.Color, above.Color),
				hint.NewNeighbor(below.Animal, above.Animal),
				hint.NewNeighbor(below.Color, above.Animal),
				hint.NewNeighbor(below.Animal, above.Color),
			)
		}
	}
	if diff >= domain.Hard {
		for i := 0; i < domain.Size; i++ {
			for j := i + 2; j < domain.Size; j++ {
				out = append(out,
					hint.NewRelative(t[j].Color, t[i].Animal, j-i),
					hint.NewRelative(t[i].Color, t[j].Animal, i-j),
				)
			}
		}
	}
	return out
}
