// Package hint holds the puzzle clues and how each one narrows the search.
package hint

import (
	"fmt"

	"github.com/samber/lo"

	"svw.info/tower/internal/domain"
)

// Hint is one clue. The variants are Absolute, Relative and Neighbor.
type Hint interface {
	fmt.Stringer
	// Satisfied reports whether the committed rows already make the clue true.
	Satisfied(committed []domain.FloorAssignment) bool
	// Options lists the ways the clue can be advanced from s. An empty
	// result means the clue is either already decided or impossible;
	// Satisfied tells which.
	Options(s domain.State) []Option
	sealed()
}

// Option is one branch proposed by a hint. A nil Assignment defers the
// clue to the Derived hints without committing a row.
type Option struct {
	Assignment *domain.FloorAssignment
	Derived    []Hint
}

func (Absolute) sealed() {}
func (Relative) sealed() {}
func (Neighbor) sealed() {}

// rowWith returns the single committed row holding a.
func rowWith(committed []domain.FloorAssignment, a domain.Attribute) (domain.FloorAssignment, bool) {
	rows := lo.Filter(committed, func(fa domain.FloorAssignment, _ int) bool {
		return fa.Contains(a)
	})
	if len(rows) != 1 {
		return domain.FloorAssignment{}, false
	}
	return rows[0], true
}

// expand turns every row drawn from p into an option. derive may veto a
// row or attach follow-up hints to it.
func expand(p domain.Pools, derive func(domain.FloorAssignment) ([]Hint, bool)) []Option {
	var out []Option
	p.Each(func(fa domain.FloorAssignment) {
		var extra []Hint
		if derive != nil {
			var ok bool
			if extra, ok = derive(fa); !ok {
				return
			}
		}
		row := fa
		out = append(out, Option{Assignment: &row, Derived: extra})
	})
	return out
}
