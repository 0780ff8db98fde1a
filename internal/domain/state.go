package domain

import "math/bits"

// Set is a bitmask over attribute values of a single kind.
// Floors use bits 1..5, colors and animals bits 0..4.
type Set uint8

func SetOf(a Attribute) Set { return 1 << a.bit() }

func (s Set) has(bit int) bool { return s&(1<<bit) != 0 }

func (s Set) Len() int { return bits.OnesCount8(uint8(s)) }

func (s Set) Without(a Attribute) Set { return s &^ SetOf(a) }

var (
	allFloors  = SetOf(First) | SetOf(Second) | SetOf(Third) | SetOf(Fourth) | SetOf(Fifth)
	allColors  = Set(1<<Size - 1)
	allAnimals = Set(1<<Size - 1)
)

// Pools holds the attributes not yet committed to any floor.
type Pools struct {
	Floors  Set
	Colors  Set
	Animals Set
}

// FullPools returns pools with every attribute unassigned.
func FullPools() Pools {
	return Pools{Floors: allFloors, Colors: allColors, Animals: allAnimals}
}

// Has reports whether a is still unassigned.
func (p Pools) Has(a Attribute) bool {
	switch a.(type) {
	case Floor:
		return p.Floors.has(a.bit())
	case Color:
		return p.Colors.has(a.bit())
	case Animal:
		return p.Animals.has(a.bit())
	}
	return false
}

// Restrict narrows the pool of a's kind to {a}. The pool becomes empty
// when a was not in it.
func (p Pools) Restrict(a Attribute) Pools {
	switch a.(type) {
	case Floor:
		p.Floors &= SetOf(a)
	case Color:
		p.Colors &= SetOf(a)
	case Animal:
		p.Animals &= SetOf(a)
	}
	return p
}

// Without removes the three attributes of fa.
func (p Pools) Without(fa FloorAssignment) Pools {
	return Pools{
		Floors:  p.Floors.Without(fa.Floor),
		Colors:  p.Colors.Without(fa.Color),
		Animals: p.Animals.Without(fa.Animal),
	}
}

// Each calls fn for every floor/animal/color combination drawn from the
// pools, floors outermost and colors innermost.
func (p Pools) Each(fn func(FloorAssignment)) {
	for _, f := range Floors {
		if !p.Floors.has(f.bit()) {
			continue
		}
		for _, a := range Animals {
			if !p.Animals.has(a.bit()) {
				continue
			}
			for _, c := range Colors {
				if !p.Colors.has(c.bit()) {
					continue
				}
				fn(FloorAssignment{Floor: f, Color: c, Animal: a})
			}
		}
	}
}

// State is one node of the search: committed rows plus what is left.
// Values are never shared between sibling branches; Commit copies.
type State struct {
	Committed []FloorAssignment
	Pools
}

// NewState returns the empty tower.
func NewState() State {
	return State{Pools: FullPools()}
}

// Commit returns a new state with fa added and its attributes removed
// from the pools.
func (s State) Commit(fa FloorAssignment) State {
	committed := make([]FloorAssignment, len(s.Committed), len(s.Committed)+1)
	copy(committed, s.Committed)
	return State{
		Committed: append(committed, fa),
		Pools:     s.Pools.Without(fa),
	}
}
