package hint

import (
	"fmt"

	"github.com/samber/lo"

	"svw.info/tower/internal/domain"
)

// Absolute puts A and B on the same floor.
//
//	NewAbsolute(domain.Third, domain.Red)       // the third floor is red
//	NewAbsolute(domain.Frog, domain.Fifth)      // the frog lives on the fifth floor
//	NewAbsolute(domain.Orange, domain.Chicken)  // the chicken lives on the orange floor
type Absolute struct {
	A, B domain.Attribute
}

func NewAbsolute(a, b domain.Attribute) Absolute { return Absolute{A: a, B: b} }

func (h Absolute) String() string { return fmt.Sprintf("Absolute(%s, %s)", h.A, h.B) }

func (h Absolute) Satisfied(committed []domain.FloorAssignment) bool {
	return lo.SomeBy(committed, func(fa domain.FloorAssignment) bool {
		return fa.Contains(h.A) && fa.Contains(h.B)
	})
}

// Options commits a new row carrying both attributes. Both must still be
// unassigned; two floors that differ leave nothing to commit.
func (h Absolute) Options(s domain.State) []Option {
	p := s.Pools.Restrict(h.A).Restrict(h.B)
	return expand(p, nil)
}
