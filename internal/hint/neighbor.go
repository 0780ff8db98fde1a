package hint

import (
	"fmt"

	"github.com/samber/lo"

	"svw.info/tower/internal/domain"
)

// Neighbor puts A and B on adjacent floors, in either order.
//
//	NewNeighbor(domain.Green, domain.Chicken)
//	NewNeighbor(domain.Yellow, domain.Third)
type Neighbor struct {
	A, B domain.Attribute
	// directions[0] has A above B, directions[1] has B above A.
	directions [2]Relative
}

func NewNeighbor(a, b domain.Attribute) Neighbor {
	return Neighbor{
		A: a,
		B: b,
		directions: [2]Relative{
			NewRelative(a, b, 1),
			NewRelative(b, a, 1),
		},
	}
}

func (h Neighbor) String() string { return fmt.Sprintf("Neighbor(%s, %s)", h.A, h.B) }

func (h Neighbor) Satisfied(committed []domain.FloorAssignment) bool {
	return lo.SomeBy(h.directions[:], func(r Relative) bool {
		return r.Satisfied(committed)
	})
}

// Options is the union of both directions. The directions never overlap,
// so no tower is reached twice.
func (h Neighbor) Options(s domain.State) []Option {
	return lo.FlatMap(h.directions[:], func(r Relative, _ int) []Option {
		return r.Options(s)
	})
}
