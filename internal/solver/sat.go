package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
	"svw.info/tower/internal/ports"
)

// SATCounter counts towers by model enumeration on a SAT encoding.
// Variables: floor f has color c, floor f has animal a, plus one
// constant-true variable for clues that name floors directly.
// Every model found is blocked before solving again.
type SATCounter struct{}

func NewSATCounter() *SATCounter { return &SATCounter{} }

const (
	colorBase  = 1
	animalBase = colorBase + domain.Size*domain.Size
	truthVar   = animalBase + domain.Size*domain.Size
)

func colorLit(f domain.Floor, c domain.Color) z.Lit {
	return z.Var(colorBase + (int(f)-1)*domain.Size + int(c)).Pos()
}

func animalLit(f domain.Floor, a domain.Animal) z.Lit {
	return z.Var(animalBase + (int(f)-1)*domain.Size + int(a)).Pos()
}

type formula struct {
	g     *gini.Gini
	truth z.Lit
}

func newFormula() *formula {
	m := &formula{g: gini.New(), truth: z.Var(truthVar).Pos()}
	m.clause(m.truth)
	for _, f := range domain.Floors {
		m.exactlyOne(colorsOn(f))
		m.exactlyOne(animalsOn(f))
	}
	for _, c := range domain.Colors {
		lits := make([]z.Lit, 0, domain.Size)
		for _, f := range domain.Floors {
			lits = append(lits, colorLit(f, c))
		}
		m.exactlyOne(lits)
	}
	for _, a := range domain.Animals {
		lits := make([]z.Lit, 0, domain.Size)
		for _, f := range domain.Floors {
			lits = append(lits, animalLit(f, a))
		}
		m.exactlyOne(lits)
	}
	return m
}

func colorsOn(f domain.Floor) []z.Lit {
	lits := make([]z.Lit, 0, domain.Size)
	for _, c := range domain.Colors {
		lits = append(lits, colorLit(f, c))
	}
	return lits
}

func animalsOn(f domain.Floor) []z.Lit {
	lits := make([]z.Lit, 0, domain.Size)
	for _, a := range domain.Animals {
		lits = append(lits, animalLit(f, a))
	}
	return lits
}

func (m *formula) clause(lits ...z.Lit) {
	for _, l := range lits {
		m.g.Add(l)
	}
	m.g.Add(0)
}

func (m *formula) exactlyOne(lits []z.Lit) {
	m.clause(lits...)
	for i := range lits {
		for j := i + 1; j < len(lits); j++ {
			m.clause(lits[i].Not(), lits[j].Not())
		}
	}
}

// at is true when attribute a sits on floor f.
func (m *formula) at(a domain.Attribute, f domain.Floor) z.Lit {
	switch v := a.(type) {
	case domain.Floor:
		if v == f {
			return m.truth
		}
		return m.truth.Not()
	case domain.Color:
		return colorLit(f, v)
	case domain.Animal:
		return animalLit(f, v)
	}
	return m.truth.Not()
}

func (m *formula) add(h hint.Hint) {
	switch h := h.(type) {
	case hint.Absolute:
		for _, f := range domain.Floors {
			m.clause(m.at(h.A, f).Not(), m.at(h.B, f))
		}
	case hint.Relative:
		for _, f := range domain.Floors {
			if t, ok := f.Offset(h.Diff); ok {
				m.clause(m.at(h.B, f).Not(), m.at(h.A, t))
			} else {
				m.clause(m.at(h.B, f).Not())
			}
		}
	case hint.Neighbor:
		for _, f := range domain.Floors {
			lits := []z.Lit{m.at(h.B, f).Not()}
			for _, d := range [2]int{1, -1} {
				if t, ok := f.Offset(d); ok {
					lits = append(lits, m.at(h.A, t))
				}
			}
			m.clause(lits...)
		}
	}
}

// enumerate counts models up to limit (0 means all).
func (m *formula) enumerate(ctx context.Context, limit int) (n, solves int, err error) {
	for limit == 0 || n < limit {
		if err := ctx.Err(); err != nil {
			return n, solves, err
		}
		solves++
		if m.g.Solve() != 1 {
			break
		}
		n++
		block := make([]z.Lit, 0, 2*domain.Size)
		for _, f := range domain.Floors {
			for _, l := range colorsOn(f) {
				if m.g.Value(l) {
					block = append(block, l.Not())
				}
			}
			for _, l := range animalsOn(f) {
				if m.g.Value(l) {
					block = append(block, l.Not())
				}
			}
		}
		m.clause(block...)
	}
	return n, solves, nil
}

func (c *SATCounter) run(ctx context.Context, hints []hint.Hint, limit int) (int, ports.Stats, error) {
	start := time.Now()
	m := newFormula()
	for _, h := range hints {
		m.add(h)
	}
	n, solves, err := m.enumerate(ctx, limit)
	return n, ports.Stats{Nodes: solves, Duration: time.Since(start)}, err
}

// Count enumerates every model. Cost grows with the answer, so it suits
// checking constrained hint lists rather than the empty one.
func (c *SATCounter) Count(ctx context.Context, hints []hint.Hint) (int, ports.Stats, error) {
	n, st, err := c.run(ctx, hints, 0)
	if err != nil {
		return 0, st, err
	}
	return n, st, nil
}

// Unique stops after the second model.
func (c *SATCounter) Unique(ctx context.Context, hints []hint.Hint) (bool, ports.Stats, error) {
	n, st, err := c.run(ctx, hints, 2)
	if err != nil {
		return false, st, err
	}
	return n == 1, st, nil
}
