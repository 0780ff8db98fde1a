package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/solver"
	"svw.info/tower/internal/validator"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewBacktrackingCounter()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, seed, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			if st.Duration > 2*time.Second {
				t.Fatalf("generation too slow for %s: %v", tc.name, st.Duration)
			}
			if len(p.Hints) == 0 {
				t.Fatalf("no hints for %s", tc.name)
			}
			// every clue holds for the hidden tower
			ok, violated, err := validator.New().Validate(ctx, p.Solution, p.Hints)
			if err != nil || !ok {
				t.Fatalf("solution violates hints: err=%v violated=%v", err, violated)
			}
			// and pins it down
			if n := solver.CountAssignments(p.Hints); n != 1 {
				t.Fatalf("puzzle for %s has %d solutions", tc.name, n)
			}
			unique, _, err := solver.NewSATCounter().Unique(ctx, p.Hints)
			if err != nil || !unique {
				t.Fatalf("sat counter disagrees: unique=%v err=%v", unique, err)
			}
		})
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingCounter())
	ctx := context.Background()
	a, _, err := g.Generate(ctx, 7, domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := g.Generate(ctx, 7, domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	if a.Solution != b.Solution {
		t.Fatalf("same seed gave different towers:\n%v\n%v", a.Solution, b.Solution)
	}
}
