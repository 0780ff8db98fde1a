package hint

import (
	"fmt"

	"svw.info/tower/internal/domain"
)

// Relative places A exactly Diff floors above B: floor(A) = floor(B) + Diff.
// A negative Diff puts A below B and zero behaves like Absolute.
//
//	NewRelative(domain.Red, domain.Blue, 1)    // the red floor is right above the blue one
//	NewRelative(domain.Frog, domain.Yellow, -3) // the frog lives three floors below the yellow floor
type Relative struct {
	A, B domain.Attribute
	Diff int
}

func NewRelative(a, b domain.Attribute, diff int) Relative {
	return Relative{A: a, B: b, Diff: diff}
}

func (h Relative) String() string {
	return fmt.Sprintf("Relative(%s, %s, %+d)", h.A, h.B, h.Diff)
}

func (h Relative) Satisfied(committed []domain.FloorAssignment) bool {
	ra, ok := rowWith(committed, h.A)
	if !ok {
		return false
	}
	rb, ok := rowWith(committed, h.B)
	if !ok {
		return false
	}
	want, ok := rb.Floor.Offset(h.Diff)
	if !ok {
		return false
	}
	return ra.Contains(want)
}

// Options places A when it is still free, pinning B with a derived
// Absolute for every candidate floor. Once A is placed and only B is
// free, the clue reduces to a single Absolute on B.
func (h Relative) Options(s domain.State) []Option {
	switch {
	case s.Has(h.A):
		return expand(s.Pools.Restrict(h.A), func(fa domain.FloorAssignment) ([]Hint, bool) {
			target, ok := fa.Floor.Offset(-h.Diff)
			if !ok {
				return nil, false
			}
			return []Hint{NewAbsolute(target, h.B)}, true
		})
	case s.Has(h.B):
		ra, ok := rowWith(s.Committed, h.A)
		if !ok {
			return nil
		}
		target, ok := ra.Floor.Offset(-h.Diff)
		if !ok {
			return nil
		}
		return []Option{{Derived: []Hint{NewAbsolute(target, h.B)}}}
	}
	return nil
}
