package domain

import "fmt"

// Kind tags which attribute family a value belongs to.
type Kind int

const (
	KindFloor Kind = iota
	KindColor
	KindAnimal
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "Floor"
	case KindColor:
		return "Color"
	default:
		return "Animal"
	}
}

// Attribute is one of Floor, Color or Animal. The set is closed: only
// this package can add implementations. Two attributes are equal (==)
// only when both the kind and the value match.
type Attribute interface {
	fmt.Stringer
	Kind() Kind
	bit() int
}

func (Floor) Kind() Kind  { return KindFloor }
func (Color) Kind() Kind  { return KindColor }
func (Animal) Kind() Kind { return KindAnimal }

func (f Floor) bit() int  { return int(f) }
func (c Color) bit() int  { return int(c) }
func (a Animal) bit() int { return int(a) }

// FloorAssignment binds one color and one animal to a floor.
type FloorAssignment struct {
	Floor  Floor  `json:"floor"`
	Color  Color  `json:"color"`
	Animal Animal `json:"animal"`
}

// Contains reports whether a is one of the three fields of fa.
func (fa FloorAssignment) Contains(a Attribute) bool {
	switch v := a.(type) {
	case Floor:
		return fa.Floor == v
	case Color:
		return fa.Color == v
	case Animal:
		return fa.Animal == v
	}
	return false
}

func (fa FloorAssignment) String() string {
	return fmt.Sprintf("%s: %s %s", fa.Floor, fa.Color, fa.Animal)
}

// Tower is a complete layout, indexed by floor-1.
type Tower [Size]FloorAssignment

// Assignments returns the tower rows as a slice.
func (t Tower) Assignments() []FloorAssignment {
	out := make([]FloorAssignment, Size)
	copy(out, t[:])
	return out
}
